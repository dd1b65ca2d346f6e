package pack

import (
	"os"

	"github.com/pkg/errors"

	"github.com/lunixbochs/mapvis/go/cmd"
	"github.com/lunixbochs/mapvis/go/mapfile"
	"github.com/lunixbochs/mapvis/go/models"
)

// Pack compresses the map file at in to out as a snappy framed stream.
func Pack(in, out string) error {
	src, err := os.Open(in)
	if err != nil {
		return errors.WithStack(err)
	}
	defer src.Close()
	dst, err := os.Create(out)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := mapfile.Compress(dst, src); err != nil {
		dst.Close()
		os.Remove(out)
		return err
	}
	return errors.WithStack(dst.Close())
}

func Main(args []string) int {
	c := cmd.NewMapCmd("pack", "<mapfile> [output]")
	c.NoLoad = true
	c.RunMap = func(_ *models.MapFile, args []string) error {
		if len(args) < 1 || len(args) > 2 {
			c.Flags.Usage()
			return errors.New("pack needs an input and an optional output path")
		}
		out := args[0] + ".sz"
		if len(args) == 2 {
			out = args[1]
		}
		c.Logf("compressing %s to %s\n", args[0], out)
		return Pack(args[0], out)
	}
	return c.Run(args)
}

func init() { cmd.Register("pack", "compress a map file with snappy framing", Main) }
