package models

import (
	"fmt"
)

// Section is an output section header from a map file. Addr is where the
// section lives at runtime (VMA), LoadAddr is where it is stored before any
// startup copy (LMA).
type Section struct {
	Name           string
	Addr, LoadAddr uint64
	Size           uint64
}

// Relocated reports whether the section is copied at startup, as with
// initialized data stored in flash and run from RAM.
func (s *Section) Relocated() bool {
	return s.Addr != s.LoadAddr
}

// Segment returns the address range of the section by VMA, or by LMA when
// load is set.
func (s *Section) Segment(load bool) *Segment {
	start := s.Addr
	if load {
		start = s.LoadAddr
	}
	return &Segment{Start: start, End: start + s.Size}
}

func (s *Section) String() string {
	desc := fmt.Sprintf("%s 0x%x-0x%x", s.Name, s.Addr, s.Addr+s.Size)
	if s.Relocated() {
		desc += fmt.Sprintf(" [load 0x%x]", s.LoadAddr)
	}
	return desc
}

// Contribution is a sized fragment of a section attributed to an input file.
type Contribution struct {
	Subsection string `json:"subsection"`
	Addr       uint64 `json:"address"`
	Size       uint64 `json:"size"`
	File       string `json:"file"`
}

func (c *Contribution) String() string {
	return fmt.Sprintf("%s 0x%x+0x%x %s", c.Subsection, c.Addr, c.Size, c.File)
}

// MapFile is the model built from one parse of a linker map. It is not
// modified after parsing.
type MapFile struct {
	Sizes    map[string]uint64
	Sections map[string]*Section
	Contribs map[string][]Contribution
}

func NewMapFile() *MapFile {
	return &MapFile{
		Sizes:    make(map[string]uint64),
		Sections: make(map[string]*Section),
		Contribs: make(map[string][]Contribution),
	}
}

func (m *MapFile) Empty() bool {
	return len(m.Sizes) == 0 && len(m.Sections) == 0 && len(m.Contribs) == 0
}

// Count returns the number of stored contributions across all sections.
func (m *MapFile) Count() int {
	n := 0
	for _, list := range m.Contribs {
		n += len(list)
	}
	return n
}
