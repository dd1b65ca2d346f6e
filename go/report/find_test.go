package report

import (
	"strings"
	"testing"

	"github.com/lunixbochs/mapvis/go/models"
)

func TestFind(t *testing.T) {
	m := exampleModel()
	m.Sizes[".data"] = 8
	m.Contribs[".data"] = []models.Contribution{{Subsection: ".data.foo", Size: 8, File: "c.o"}}
	r, buf := newTestReporter(m)

	found := r.Find("foo")
	if len(found) != 2 || found[0].Section != ".data" || found[1].Section != ".text" {
		t.Fatalf("got %+v", found)
	}
	if found := r.Find("b.o"); len(found) != 1 || found[0].Subsection != ".text.bar" {
		t.Fatalf("file match failed: %+v", found)
	}
	r.PrintFind("nothing")
	if !strings.Contains(buf.String(), "No contributions matching: nothing") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
	if names := r.SectionNames(); len(names) != 2 || names[0] != ".data" {
		t.Fatalf("bad names: %v", names)
	}
}

func TestLookup(t *testing.T) {
	m := exampleModel()
	m.Sizes[".bss"] = 0x20
	m.Sections[".bss"] = &models.Section{Name: ".bss", Addr: 0x20000000, LoadAddr: 0x20000000, Size: 0x20}
	r, _ := newTestReporter(m)

	if hit := r.Lookup(0x2801d0); hit.Section != ".text" || hit.Subsection != ".text.bar" || hit.File != "b.o" {
		t.Fatalf("lookup of .text.bar start: %+v", hit)
	}
	if hit := r.Lookup(0x2801cf); hit.Subsection != ".text.foo" {
		t.Fatalf("lookup of .text.foo end: %+v", hit)
	}
	if hit := r.Lookup(0x20000004); hit.Section != ".bss" || hit.Subsection != "" {
		t.Fatalf("section without fragments: %+v", hit)
	}
	if hit := r.Lookup(0x280220); hit.Section != "" {
		t.Fatalf("address past .text matched: %+v", hit)
	}
}
