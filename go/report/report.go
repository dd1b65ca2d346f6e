// Package report renders size summaries, contributor rankings and memory
// layouts from a parsed map file.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lunixbochs/vtclean"
	"github.com/mattn/go-runewidth"
	"github.com/mgutz/ansi"
	"github.com/pkg/errors"

	"github.com/lunixbochs/mapvis/go/models"
)

const ellipsis = "..."

var (
	colRed     = ansi.ColorCode("red+h")
	colYellow  = ansi.ColorCode("yellow+h")
	colGreen   = ansi.ColorCode("green+h")
	colCyan    = ansi.ColorCode("cyan+h")
	colMagenta = ansi.ColorCode("magenta+h")
	colWhite   = ansi.ColorCode("white+h")
	colTitle   = ansi.ColorCode("cyan+bh")
)

type Reporter struct {
	m      *models.MapFile
	config *models.Config
}

func NewReporter(m *models.MapFile, c *models.Config) *Reporter {
	if c == nil {
		c = models.NewConfig()
	}
	return &Reporter{m: m, config: c.Init()}
}

func (r *Reporter) Printf(f string, args ...interface{}) { fmt.Fprintf(r.config.Output, f, args...) }
func (r *Reporter) Println(args ...interface{})          { fmt.Fprintln(r.config.Output, args...) }

func (r *Reporter) color(s, code string) string {
	if !r.config.Color || code == "" {
		return s
	}
	return code + s + ansi.Reset
}

// rule prints a horizontal separator n columns wide.
func (r *Reporter) rule(n int) {
	r.Println(strings.Repeat("-", n))
}

func (r *Reporter) noData(msg string) {
	r.Println(r.color(msg, colRed))
}

// PrintJSON writes v as indented JSON. Reports with no data are written as
// null.
func (r *Reporter) PrintJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode report")
	}
	r.Printf("%s\n", out)
	return nil
}

// width returns the display width of s, ignoring terminal escape sequences.
func width(s string) int {
	return runewidth.StringWidth(vtclean.Clean(s, false))
}

// padRight pads s with spaces to n display columns. Escape sequences do not
// count towards the width.
func padRight(s string, n int) string {
	if w := width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

// truncateHead keeps the start of s, ending in an ellipsis, when s is wider
// than n columns.
func truncateHead(s string, n int) string {
	if runewidth.StringWidth(s) <= n {
		return s
	}
	return runewidth.Truncate(s, n, ellipsis)
}

// truncateTail keeps the end of s, starting with an ellipsis, when s is wider
// than n columns. The end of a path is usually the part that identifies it.
func truncateTail(s string, n int) string {
	if runewidth.StringWidth(s) <= n {
		return s
	}
	budget := n - len(ellipsis)
	if n <= 0 {
		return ""
	} else if budget <= 0 {
		return ellipsis[:n]
	}
	runes := []rune(s)
	w, i := 0, len(runes)
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if w+rw > budget {
			break
		}
		w += rw
		i--
	}
	return ellipsis + string(runes[i:])
}

// FormatSize renders a byte count as B, KB or MB with two decimals.
func FormatSize(size uint64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%dB", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.2fKB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.2fMB", float64(size)/(1024*1024))
	}
}

// percent returns part/total*100, or 0 when total is 0.
func percent(part, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// bar draws filled '#' cells followed by '-' up to width.
func bar(filled, width int) string {
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
}
