package report

import (
	"github.com/pkg/errors"

	"github.com/lunixbochs/mapvis/go/cmd"
	"github.com/lunixbochs/mapvis/go/models"
	"github.com/lunixbochs/mapvis/go/report"
)

// sectionArg returns the optional trailing section name, or the configured
// default.
func sectionArg(c *models.Config, args []string) (string, error) {
	switch len(args) {
	case 0:
		return c.Section, nil
	case 1:
		return args[0], nil
	default:
		return "", errors.Errorf("unexpected arguments: %q", args[1:])
	}
}

func noArgs(args []string) error {
	if len(args) > 0 {
		return errors.Errorf("unexpected arguments: %q", args)
	}
	return nil
}

func summaryCmd() *cmd.MapCmd {
	c := cmd.NewMapCmd("summary", "<mapfile>")
	c.SetupFlags = func() error {
		c.Flags.IntVar(&c.Config.BarWidth, "bar", 40, "bar chart width")
		return nil
	}
	c.RunMap = func(m *models.MapFile, args []string) error {
		if err := noArgs(args); err != nil {
			return err
		}
		return report.NewReporter(m, c.Config).PrintSummary()
	}
	return c
}

func topCmd() *cmd.MapCmd {
	c := cmd.NewMapCmd("top", "<mapfile> [section]")
	c.SetupFlags = func() error {
		c.Flags.IntVar(&c.Config.TopCount, "n", 20, "number of files to list")
		c.Flags.IntVar(&c.Config.TopFileWidth, "width", 70, "truncate file paths to this many columns")
		return nil
	}
	c.RunMap = func(m *models.MapFile, args []string) error {
		section, err := sectionArg(c.Config, args)
		if err != nil {
			return err
		}
		return report.NewReporter(m, c.Config).PrintTop(section, c.Config.TopCount)
	}
	return c
}

func detailCmd() *cmd.MapCmd {
	c := cmd.NewMapCmd("detail", "<mapfile> [section]")
	c.SetupFlags = func() error {
		c.Flags.IntVar(&c.Config.DetailCount, "n", 50, "number of entries to list")
		c.Flags.IntVar(&c.Config.NameWidth, "namewidth", 28, "truncate subsection names to this many columns")
		c.Flags.IntVar(&c.Config.FileWidth, "width", 50, "truncate file paths to this many columns")
		return nil
	}
	c.RunMap = func(m *models.MapFile, args []string) error {
		section, err := sectionArg(c.Config, args)
		if err != nil {
			return err
		}
		return report.NewReporter(m, c.Config).PrintDetail(section, c.Config.DetailCount)
	}
	return c
}

func layoutCmd() *cmd.MapCmd {
	c := cmd.NewMapCmd("layout", "<mapfile>")
	c.SetupFlags = func() error {
		c.Flags.BoolVar(&c.Config.UseLoad, "lma", false, "lay out sections by load address instead of runtime address")
		return nil
	}
	c.RunMap = func(m *models.MapFile, args []string) error {
		if err := noArgs(args); err != nil {
			return err
		}
		return report.NewReporter(m, c.Config).PrintLayout(c.Config.UseLoad)
	}
	return c
}

func findCmd() *cmd.MapCmd {
	c := cmd.NewMapCmd("find", "<mapfile> <substring>")
	c.RunMap = func(m *models.MapFile, args []string) error {
		if len(args) != 1 {
			return errors.New("find needs exactly one substring")
		}
		return report.NewReporter(m, c.Config).PrintFind(args[0])
	}
	return c
}

// showCmd prints the summary followed by the memory layout.
func showCmd() *cmd.MapCmd {
	c := cmd.NewMapCmd("show", "<mapfile>")
	c.SetupFlags = func() error {
		c.Flags.IntVar(&c.Config.BarWidth, "bar", 40, "bar chart width")
		c.Flags.BoolVar(&c.Config.UseLoad, "lma", false, "lay out sections by load address instead of runtime address")
		return nil
	}
	c.RunMap = func(m *models.MapFile, args []string) error {
		if err := noArgs(args); err != nil {
			return err
		}
		r := report.NewReporter(m, c.Config)
		if c.Config.JSON {
			return r.PrintJSON(map[string]interface{}{
				"summary": r.Summarize(c.Config.BarWidth),
				"layout":  r.Layout(c.Config.UseLoad),
			})
		}
		if err := r.PrintSummary(); err != nil {
			return err
		}
		return r.PrintLayout(c.Config.UseLoad)
	}
	return c
}

func SummaryMain(args []string) int { return summaryCmd().Run(args) }
func TopMain(args []string) int { return topCmd().Run(args) }
func DetailMain(args []string) int { return detailCmd().Run(args) }
func LayoutMain(args []string) int { return layoutCmd().Run(args) }
func FindMain(args []string) int { return findCmd().Run(args) }
func ShowMain(args []string) int { return showCmd().Run(args) }

func init() {
	cmd.Register("show", "print the section summary and memory layout", ShowMain)
	cmd.Register("summary", "print per-section sizes", SummaryMain)
	cmd.Register("top", "rank the input files contributing to a section", TopMain)
	cmd.Register("detail", "list the largest fragments of a section", DetailMain)
	cmd.Register("layout", "draw the memory map with gaps between sections", LayoutMain)
	cmd.Register("find", "search fragments by file or subsection name", FindMain)
}
