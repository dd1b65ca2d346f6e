package report

import (
	"fmt"
	"sort"

	"github.com/lunixbochs/mapvis/go/models"
)

// Breakdown returns a section's contributions largest first, keeping file
// order between equal sizes, cut to limit entries (all when limit <= 0).
// Returns nil for an unknown or empty section.
func (r *Reporter) Breakdown(section string, limit int) []models.Contribution {
	items := r.m.Contribs[section]
	if len(items) == 0 {
		return nil
	}
	sorted := make([]models.Contribution, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Size > sorted[j].Size })
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func (r *Reporter) PrintDetail(section string, limit int) error {
	items := r.Breakdown(section, limit)
	if r.config.JSON {
		return r.PrintJSON(items)
	}
	if items == nil {
		r.noData(fmt.Sprintf("No data found for section: %s", section))
		return nil
	}
	if limit <= 0 {
		limit = len(items)
	}
	r.Println(r.color(fmt.Sprintf("\n=== Detailed Breakdown of %s (Top %d) ===\n", section, limit), colTitle))
	r.Printf("%-12s %-15s %-30s %s\n", "Address", "Size", "Subsection", "Source File")
	r.rule(120)
	for _, c := range items {
		r.Printf("%-12s %-15s %s %s\n",
			fmt.Sprintf("0x%08x", c.Addr),
			FormatSize(c.Size),
			padRight(truncateHead(c.Subsection, r.config.NameWidth), 30),
			truncateTail(c.File, r.config.FileWidth),
		)
	}
	r.Println()
	return nil
}
