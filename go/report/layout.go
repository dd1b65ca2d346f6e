package report

import (
	"sort"
	"strings"

	"github.com/lunixbochs/fvbommel-util/sortorder"

	"github.com/lunixbochs/mapvis/go/models"
)

const (
	gapBarWidth     = 40
	sectionBarWidth = 60
)

// LayoutEntry is either a section or the unused range before it.
type LayoutEntry struct {
	Gap   bool   `json:"gap,omitempty"`
	Name  string `json:"name,omitempty"`
	Start uint64 `json:"start"`
	End   uint64 `json:"end"`
	Size  uint64 `json:"size"`
	Bar   int    `json:"bar"`

	// sections only
	Addr      uint64 `json:"vma,omitempty"`
	LoadAddr  uint64 `json:"lma,omitempty"`
	Relocated bool   `json:"relocated,omitempty"`
	Overlaps  string `json:"overlaps,omitempty"`
}

type MemoryLayout struct {
	UseLoad bool          `json:"lma"`
	Start   uint64        `json:"start"`
	End     uint64        `json:"end"`
	Span    uint64        `json:"span"`
	Entries []LayoutEntry `json:"entries"`
	Used    uint64        `json:"used"`
	Gaps    uint64        `json:"gaps"`
}

// scaled returns part/span of width cells, at least one and at most width.
func scaled(part, span uint64, width int) int {
	n := 0
	if span > 0 {
		n = int(float64(width) * float64(part) / float64(span))
	}
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return n
}

// Layout orders sections by start address, runtime (VMA) or load (LMA)
// address depending on useLoad, and inserts a gap entry wherever a section
// starts after the end of the one before it. The end cursor always moves to
// the end of the latest section, even when that section lies inside the
// previous one. Returns nil when no section has address information.
func (r *Reporter) Layout(useLoad bool) *MemoryLayout {
	if len(r.m.Sections) == 0 {
		return nil
	}
	sections := make([]*models.Section, 0, len(r.m.Sections))
	for _, s := range r.m.Sections {
		sections = append(sections, s)
	}
	sort.Slice(sections, func(i, j int) bool {
		a, b := sections[i].Segment(useLoad), sections[j].Segment(useLoad)
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return sortorder.NaturalLess(sections[i].Name, sections[j].Name)
	})

	first := sections[0].Segment(useLoad)
	last := sections[len(sections)-1].Segment(useLoad)
	l := &MemoryLayout{UseLoad: useLoad, Start: first.Start, End: last.End}
	if l.End > l.Start {
		l.Span = l.End - l.Start
	}

	prevEnd := l.Start
	var prev *models.Section
	var prevSeg *models.Segment
	for _, s := range sections {
		seg := s.Segment(useLoad)
		if seg.Start > prevEnd {
			gap := &models.Segment{Start: prevEnd, End: seg.Start}
			l.Gaps += gap.Size()
			l.Entries = append(l.Entries, LayoutEntry{
				Gap:   true,
				Start: gap.Start,
				End:   gap.End,
				Size:  gap.Size(),
				Bar:   scaled(gap.Size(), l.Span, gapBarWidth),
			})
		}
		entry := LayoutEntry{
			Name:      s.Name,
			Start:     seg.Start,
			End:       seg.End,
			Size:      s.Size,
			Bar:       scaled(s.Size, l.Span, sectionBarWidth),
			Addr:      s.Addr,
			LoadAddr:  s.LoadAddr,
			Relocated: s.Relocated(),
		}
		if prevSeg != nil && seg.Overlaps(prevSeg) {
			entry.Overlaps = prev.Name
		}
		l.Used += s.Size
		l.Entries = append(l.Entries, entry)
		prevEnd = seg.End
		prev, prevSeg = s, seg
	}
	return l
}

func sizeColor(size uint64) string {
	switch {
	case size > 100*1024:
		return colRed
	case size > 10*1024:
		return colYellow
	default:
		return colGreen
	}
}

func (r *Reporter) PrintLayout(useLoad bool) error {
	l := r.Layout(useLoad)
	if r.config.JSON {
		return r.PrintJSON(l)
	}
	if l == nil {
		r.noData("No memory layout information found")
		return nil
	}
	r.Println(r.color("\n"+strings.Repeat("=", 80), colMagenta))
	title := "Memory Layout (VMA)"
	if useLoad {
		title = "Memory Layout (LMA)"
	}
	r.Println(r.color(title, colMagenta))
	r.Println(r.color(strings.Repeat("=", 80)+"\n", colMagenta))
	r.Printf("Region: 0x%08x - 0x%08x (span: %s)\n\n", l.Start, l.End, FormatSize(l.Span))

	for _, e := range l.Entries {
		if e.Gap {
			r.Println(r.color("  [GAP]", colMagenta))
			r.Printf("    0x%08x - 0x%08x  (%s)\n", e.Start, e.End, r.color(FormatSize(e.Size), colYellow))
			r.Printf("    %s\n\n", strings.Repeat(".", e.Bar))
			continue
		}
		r.Printf("  [%s]\n", e.Name)
		r.Printf("    0x%08x - 0x%08x  (%s)\n", e.Start, e.End, r.color(FormatSize(e.Size), sizeColor(e.Size)))
		if e.Relocated {
			if useLoad {
				r.Printf("    VMA: 0x%08x (runs in RAM)\n", e.Addr)
			} else {
				r.Printf("    LMA: 0x%08x (loaded from Flash)\n", e.LoadAddr)
			}
		}
		if e.Overlaps != "" {
			r.Printf("    %s\n", r.color("overlaps "+e.Overlaps, colCyan))
		}
		r.Printf("    %s\n\n", strings.Repeat("#", e.Bar))
	}

	r.rule(80)
	r.Printf("Total Used: %s\n", r.color(FormatSize(l.Used), colGreen))
	r.Printf("Total Gaps: %s\n\n", r.color(FormatSize(l.Gaps), colYellow))
	return nil
}
