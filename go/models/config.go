package models

import (
	"io"
	"os"
)

type Config struct {
	Color   bool
	JSON    bool
	Verbose bool

	// report shape
	BarWidth    int
	TopCount    int
	DetailCount int
	Section     string
	UseLoad     bool

	// display truncation, in terminal columns
	NameWidth    int
	FileWidth    int
	TopFileWidth int

	// Output receives reports, Log receives diagnostics.
	Output io.Writer
	Log    io.Writer

	PrefixArgs []string
}

// NewConfig returns a Config holding the default report shape. Counts and
// bar width are used as given afterwards, so callers may set them to zero.
func NewConfig() *Config {
	return &Config{
		BarWidth:    40,
		TopCount:    20,
		DetailCount: 50,
	}
}

// Init fills unset writers, the default section and display widths.
func (c *Config) Init() *Config {
	if c.Output == nil {
		c.Output = os.Stdout
	}
	if c.Log == nil {
		c.Log = os.Stderr
	}
	if c.Section == "" {
		c.Section = ".text"
	}
	if c.NameWidth <= 0 {
		c.NameWidth = 28
	}
	if c.FileWidth <= 0 {
		c.FileWidth = 50
	}
	if c.TopFileWidth <= 0 {
		c.TopFileWidth = 70
	}
	return c
}
