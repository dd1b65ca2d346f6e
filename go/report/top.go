package report

import (
	"fmt"
	"sort"
)

type FileTotal struct {
	File    string  `json:"file"`
	Size    uint64  `json:"size"`
	Percent float64 `json:"percent"`
}

// TopContributors sums a section's contributions per input file and returns
// the n largest files (all of them when n <= 0). Percentages are relative to
// the returned files only. Files of equal size keep the order they were first
// seen in. Returns nil for an unknown or empty section.
func (r *Reporter) TopContributors(section string, n int) []FileTotal {
	items := r.m.Contribs[section]
	if len(items) == 0 {
		return nil
	}
	index := make(map[string]int)
	var files []FileTotal
	for _, c := range items {
		i, ok := index[c.File]
		if !ok {
			i = len(files)
			index[c.File] = i
			files = append(files, FileTotal{File: c.File})
		}
		files[i].Size += c.Size
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].Size > files[j].Size })
	if n > 0 && len(files) > n {
		files = files[:n]
	}
	var total uint64
	for _, f := range files {
		total += f.Size
	}
	for i := range files {
		files[i].Percent = percent(files[i].Size, total)
	}
	return files
}

func rankColor(rank int) string {
	switch {
	case rank <= 3:
		return colRed
	case rank <= 10:
		return colYellow
	default:
		return colWhite
	}
}

func (r *Reporter) PrintTop(section string, n int) error {
	files := r.TopContributors(section, n)
	if r.config.JSON {
		return r.PrintJSON(files)
	}
	if files == nil {
		r.noData(fmt.Sprintf("No data found for section: %s", section))
		return nil
	}
	if n <= 0 {
		n = len(files)
	}
	r.Println(r.color(fmt.Sprintf("\n=== Top %d Contributors to %s ===\n", n, section), colTitle))
	r.Printf("%-6s %-15s %-12s %s\n", "Rank", "Size", "Percentage", "File")
	r.rule(100)
	for i, f := range files {
		col := rankColor(i + 1)
		rank := r.color(padRight(fmt.Sprintf("#%d", i+1), 6), col)
		size := r.color(padRight(FormatSize(f.Size), 15), col)
		pct := r.color(fmt.Sprintf("%6.2f%%", f.Percent), col)
		r.Printf("%s %s %s      %s\n", rank, size, pct, truncateTail(f.File, r.config.TopFileWidth))
	}
	r.Println()
	return nil
}
