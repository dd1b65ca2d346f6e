package models

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// wrapText splits s into lines of at most width bytes, breaking on the last
// space or newline when one is available.
func wrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	for len(s) > width {
		cut, skip := width, 0
		if i := strings.LastIndexAny(s[:width], " \n"); i > 0 {
			cut, skip = i, 1
		}
		lines = append(lines, s[:cut])
		s = s[cut+skip:]
	}
	return append(lines, s)
}

// PrintFlags writes flag usage as "-name (default) description" columns
// fitting 80 columns.
func PrintFlags(w io.Writer, flags []*flag.Flag) {
	wname, wdef := 0, 0
	for _, f := range flags {
		if len(f.Name) > wname {
			wname = len(f.Name)
		}
		if len(f.DefValue) > wdef {
			wdef = len(f.DefValue)
		}
	}
	lead := fmt.Sprintf("  -%%-%ds %%-%ds ", wname, wdef+2)
	lpad := strings.Repeat(" ", wname+wdef+7)
	for _, f := range flags {
		def := ""
		if f.DefValue != "" && f.DefValue != "[]" {
			def = "(" + f.DefValue + ")"
		}
		fmt.Fprintf(w, lead, f.Name, def)
		for i, line := range wrapText(f.Usage, 80-len(lpad)) {
			if i > 0 {
				io.WriteString(w, lpad)
			}
			fmt.Fprintln(w, line)
		}
	}
}
