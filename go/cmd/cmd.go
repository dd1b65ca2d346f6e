package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/lunixbochs/mapvis/go/mapfile"
	"github.com/lunixbochs/mapvis/go/models"
)

// MapCmd is the shared driver for commands that operate on one map file:
// common flags, stored defaults, loading and error reporting.
type MapCmd struct {
	Name   string
	Usage  string
	Config *models.Config

	SetupFlags func() error
	RunMap     func(m *models.MapFile, args []string) error

	// NoLoad skips parsing, passing a nil map and every positional arg.
	NoLoad bool

	Flags  *flag.FlagSet
	Stdout *os.File
	Stderr io.Writer
}

func NewMapCmd(name, usage string) *MapCmd {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &MapCmd{
		Name:   name,
		Usage:  usage,
		Config: models.NewConfig(),
		Flags:  fs,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// PrintError prints err and, for errors carrying a stack, an aligned
// "path | file:line | func()" trace up to main.main.
func (c *MapCmd) PrintError(err error) {
	w := c.Stderr
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", 40))
	fmt.Fprintf(w, "Error: %s\n", err)
	st, ok := err.(stackTracer)
	if !ok {
		return
	}
	var frames [][3]string
	for _, f := range st.StackTrace() {
		var fullpath string
		fileline := fmt.Sprintf("%s:%d", f, f)
		method := fmt.Sprintf("%n", f)
		tmp := strings.SplitN(fmt.Sprintf("%+s", f), "\n", 3)
		if len(tmp) == 2 {
			pathsplit := strings.Split(tmp[0], "/")
			method = pathsplit[len(pathsplit)-1]
			fullpath = strings.TrimSpace(tmp[1])
		}
		frames = append(frames, [3]string{fullpath, fileline, method})
		if method == "main.main" {
			break
		}
	}
	var widths [2]int
	for _, f := range frames {
		for i := 0; i < 2; i++ {
			if len(f[i]) > widths[i] {
				widths[i] = len(f[i])
			}
		}
	}
	for _, f := range frames {
		for i := 0; i < 2; i++ {
			if widths[i] > 0 {
				fmt.Fprintf(w, "%-*s | ", widths[i], f[i])
			}
		}
		fmt.Fprintf(w, "%s()\n", f[2])
	}
}

func (c *MapCmd) Logf(format string, args ...interface{}) {
	if c.Config.Verbose {
		fmt.Fprintf(c.Config.Log, format, args...)
	}
}

// useColor resolves the -color flag against the output terminal.
func useColor(mode string, out *os.File) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		fd := out.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), nil
	default:
		return false, errors.Errorf("invalid -color %q (auto, always or never)", mode)
	}
}

func (c *MapCmd) printUsage() {
	fmt.Fprintf(c.Stderr, "Usage: %s %s [options] %s\n\nOptions:\n", filepath.Base(os.Args[0]), c.Name, c.Usage)
	var flags []*flag.Flag
	c.Flags.VisitAll(func(f *flag.Flag) { flags = append(flags, f) })
	models.PrintFlags(c.Stderr, flags)
}

// Run parses argv (argv[0] is the command name) and runs the command,
// returning a process exit status.
func (c *MapCmd) Run(argv []string) int {
	fs := c.Flags
	color := fs.String("color", "auto", "colorize output: auto, always or never")
	verbose := fs.Bool("v", false, "verbose output")
	jsonOut := fs.Bool("json", false, "print report data as JSON")
	fs.SetOutput(c.Stderr)
	fs.Usage = c.printUsage
	if c.SetupFlags != nil {
		if err := c.SetupFlags(); err != nil {
			c.PrintError(err)
			return 1
		}
	}

	prefix, source, err := LoadDefaults(c.Name)
	if err != nil {
		c.PrintError(err)
		return 1
	}
	c.Config.PrefixArgs = prefix
	args := append(append([]string{}, prefix...), argv[1:]...)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	c.Config.Verbose = *verbose
	c.Config.JSON = *jsonOut
	c.Config.Log = c.Stderr
	if source != "" {
		c.Logf("using defaults from %s: %s\n", source, strings.Join(prefix, " "))
	}

	c.Config.Color, err = useColor(*color, c.Stdout)
	if err != nil {
		c.PrintError(err)
		return 2
	}
	if c.Config.JSON {
		c.Config.Color = false
	}
	if c.Config.Color {
		c.Config.Output = colorable.NewColorable(c.Stdout)
	} else {
		c.Config.Output = c.Stdout
	}
	c.Config.Init()

	rest := fs.Args()
	var m *models.MapFile
	if !c.NoLoad {
		if len(rest) < 1 {
			fs.Usage()
			return 1
		}
		m, err = mapfile.LoadFile(rest[0])
		if err != nil {
			c.PrintError(err)
			return 1
		}
		if m.Empty() {
			c.Logf("%s: no sections recognized\n", rest[0])
		} else {
			c.Logf("%s: %d sections, %d contributions\n", rest[0], len(m.Sizes), m.Count())
		}
		rest = rest[1:]
	}
	if err := c.RunMap(m, rest); err != nil {
		c.PrintError(err)
		return 1
	}
	return 0
}
