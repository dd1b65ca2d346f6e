package explore

import (
	"github.com/pkg/errors"

	"github.com/lunixbochs/mapvis/go/cmd"
	"github.com/lunixbochs/mapvis/go/explore"
	"github.com/lunixbochs/mapvis/go/models"
)

func Main(args []string) int {
	c := cmd.NewMapCmd("explore", "<mapfile>")
	c.RunMap = func(m *models.MapFile, args []string) error {
		if len(args) > 0 {
			return errors.Errorf("unexpected arguments: %q", args)
		}
		repl, err := explore.NewRepl(m, c.Config)
		if err != nil {
			return err
		}
		return repl.Run()
	}
	return c.Run(args)
}

func init() { cmd.Register("explore", "interactively query a map file", Main) }
