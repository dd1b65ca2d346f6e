package report

import (
	"math"
	"sort"

	"github.com/lunixbochs/fvbommel-util/sortorder"
)

type SummaryRow struct {
	Section string  `json:"section"`
	Size    uint64  `json:"size"`
	Percent float64 `json:"percent"`
	Bar     int     `json:"bar"`
}

type Summary struct {
	Rows     []SummaryRow `json:"sections"`
	Total    uint64       `json:"total"`
	BarWidth int          `json:"bar_width"`
}

// Summarize lists every sized section, largest first. Each row's Bar is its
// size relative to the largest section, scaled to barWidth cells. Returns nil
// if no section has a recorded size.
func (r *Reporter) Summarize(barWidth int) *Summary {
	if len(r.m.Sizes) == 0 {
		return nil
	}
	if barWidth < 0 {
		barWidth = 0
	}
	s := &Summary{BarWidth: barWidth}
	var largest uint64
	for name, size := range r.m.Sizes {
		s.Rows = append(s.Rows, SummaryRow{Section: name, Size: size})
		s.Total += size
		if size > largest {
			largest = size
		}
	}
	sort.Slice(s.Rows, func(i, j int) bool {
		a, b := s.Rows[i], s.Rows[j]
		if a.Size != b.Size {
			return a.Size > b.Size
		}
		return sortorder.NaturalLess(a.Section, b.Section)
	})
	for i := range s.Rows {
		row := &s.Rows[i]
		row.Percent = percent(row.Size, s.Total)
		if largest > 0 {
			row.Bar = int(math.Round(float64(row.Size) / float64(largest) * float64(barWidth)))
		}
	}
	return s
}

func percentColor(p float64) string {
	switch {
	case p > 30:
		return colRed
	case p > 10:
		return colYellow
	default:
		return colGreen
	}
}

func (r *Reporter) PrintSummary() error {
	s := r.Summarize(r.config.BarWidth)
	if r.config.JSON {
		return r.PrintJSON(s)
	}
	if s == nil {
		r.noData("No sections found in map file")
		return nil
	}
	r.Println(r.color("\n=== Memory Usage Summary ===\n", colMagenta))
	r.Printf("%-20s %-15s %-12s %s\n", "Section", "Size", "Percentage", "Visual")
	r.rule(100)
	for _, row := range s.Rows {
		size := r.color(padRight(FormatSize(row.Size), 15), percentColor(row.Percent))
		r.Printf("%s %s %6.2f%%      %s\n", padRight(row.Section, 20), size, row.Percent, bar(row.Bar, s.BarWidth))
	}
	r.rule(100)
	r.Printf("%-20s %s\n\n", "TOTAL", FormatSize(s.Total))
	return nil
}
