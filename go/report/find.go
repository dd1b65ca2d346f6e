package report

import (
	"sort"
	"strings"

	"github.com/lunixbochs/fvbommel-util/sortorder"

	"github.com/lunixbochs/mapvis/go/models"
)

type Match struct {
	Section string `json:"section"`
	models.Contribution
}

// SectionNames returns the sized sections in natural name order.
func (r *Reporter) SectionNames() []string {
	names := make([]string, 0, len(r.m.Sizes))
	for name := range r.m.Sizes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return sortorder.NaturalLess(names[i], names[j]) })
	return names
}

// Section returns the address information for name, or nil.
func (r *Reporter) Section(name string) *models.Section {
	return r.m.Sections[name]
}

// Find returns contributions whose file or subsection name contains substr,
// grouped by section and largest first within a section.
func (r *Reporter) Find(substr string) []Match {
	var out []Match
	for _, name := range r.SectionNames() {
		var found []Match
		for _, c := range r.m.Contribs[name] {
			if strings.Contains(c.File, substr) || strings.Contains(c.Subsection, substr) {
				found = append(found, Match{Section: name, Contribution: c})
			}
		}
		sort.SliceStable(found, func(i, j int) bool { return found[i].Size > found[j].Size })
		out = append(out, found...)
	}
	return out
}

// Lookup returns the section whose runtime range holds addr and, when one
// covers it, the contribution at addr. Section is empty when no section
// matches.
func (r *Reporter) Lookup(addr uint64) Match {
	for _, name := range r.SectionNames() {
		s := r.m.Sections[name]
		if s == nil || !s.Segment(false).Contains(addr) {
			continue
		}
		hit := Match{Section: name}
		for _, c := range r.m.Contribs[name] {
			seg := models.Segment{Start: c.Addr, End: c.Addr + c.Size}
			if seg.Contains(addr) {
				hit.Contribution = c
				break
			}
		}
		return hit
	}
	return Match{}
}

func (r *Reporter) PrintFind(substr string) error {
	found := r.Find(substr)
	if r.config.JSON {
		return r.PrintJSON(found)
	}
	if len(found) == 0 {
		r.noData("No contributions matching: " + substr)
		return nil
	}
	var total uint64
	for _, m := range found {
		r.Printf("%s 0x%08x %s %s %s\n",
			padRight(m.Section, 12),
			m.Addr,
			padRight(FormatSize(m.Size), 10),
			padRight(truncateHead(m.Subsection, r.config.NameWidth), 30),
			truncateTail(m.File, r.config.FileWidth),
		)
		total += m.Size
	}
	r.Printf("%d matches, %s\n", len(found), FormatSize(total))
	return nil
}
