package explore

import (
	"strings"
)

// section resolves an empty section argument to the configured default.
func (c *Context) section(name string) string {
	if name == "" {
		return c.Config.Section
	}
	return name
}

var HelpCmd = cmd(&Command{
	Name: "help",
	Desc: "List commands.",
	Run: func(c *Context) error {
		width := 0
		for _, name := range names() {
			if len(name) > width {
				width = len(name)
			}
		}
		for _, name := range names() {
			cmd := Commands[name]
			c.Printf("  %-*s  %s\n", width, name, cmd.Desc)
			if cmd.Usage != "" {
				c.Printf("  %-*s  usage: %s %s\n", width, "", name, cmd.Usage)
			}
		}
		return nil
	},
})

var SectionsCmd = cmd(&Command{
	Name: "sections",
	Desc: "List sections with their addresses.",
	Run: func(c *Context) error {
		for _, name := range c.R.SectionNames() {
			if s := c.R.Section(name); s != nil {
				c.Printf("  %s\n", s)
			}
		}
		return nil
	},
})

var SummaryCmd = cmd(&Command{
	Name: "summary",
	Desc: "Print per-section sizes.",
	Run: func(c *Context) error {
		return c.R.PrintSummary()
	},
})

var TopCmd = cmd(&Command{
	Name:     "top",
	Desc:     "Rank input files by their share of a section.",
	Usage:    "[section] [count]",
	Defaults: []string{"", "20"},
	Run: func(c *Context, section string, n int) error {
		return c.R.PrintTop(c.section(section), n)
	},
})

var DetailCmd = cmd(&Command{
	Name:     "detail",
	Desc:     "List the largest fragments of a section.",
	Usage:    "[section] [count]",
	Defaults: []string{"", "50"},
	Run: func(c *Context, section string, n int) error {
		return c.R.PrintDetail(c.section(section), n)
	},
})

var LayoutCmd = cmd(&Command{
	Name: "layout",
	Desc: "Draw the memory map using the current address mode.",
	Run: func(c *Context) error {
		return c.R.PrintLayout(c.Config.UseLoad)
	},
})

var LmaCmd = cmd(&Command{
	Name: "lma",
	Desc: "Lay out sections by load address.",
	Run: func(c *Context) error {
		c.Config.UseLoad = true
		c.Printf("address mode: LMA\n")
		return nil
	},
})

var VmaCmd = cmd(&Command{
	Name: "vma",
	Desc: "Lay out sections by runtime address.",
	Run: func(c *Context) error {
		c.Config.UseLoad = false
		c.Printf("address mode: VMA\n")
		return nil
	},
})

var FindCmd = cmd(&Command{
	Name:  "find",
	Desc:  "Search fragments by file or subsection name.",
	Usage: "<substring>",
	Run: func(c *Context, substr string) error {
		return c.R.PrintFind(strings.TrimSpace(substr))
	},
})

var AddrCmd = cmd(&Command{
	Name:  "addr",
	Desc:  "Show the section and fragment holding a runtime address.",
	Usage: "<address>",
	Run: func(c *Context, addr uint64) error {
		hit := c.R.Lookup(addr)
		if hit.Section == "" {
			c.Printf("0x%x: no section\n", addr)
			return nil
		}
		if hit.Subsection == "" {
			c.Printf("0x%x: %s\n", addr, c.R.Section(hit.Section))
			return nil
		}
		c.Printf("0x%x: %s +0x%x in %s\n", addr, hit.Section, addr-hit.Addr, hit.Contribution.String())
		return nil
	},
})

var QuitCmd = cmd(&Command{
	Name: "quit",
	Desc: "Leave the explorer.",
	Run: func(c *Context) error {
		c.quit = true
		return nil
	},
})
