package models

import (
	"bytes"
	"flag"
	"strings"
	"testing"
)

func TestSegment(t *testing.T) {
	a := &Segment{Start: 0, End: 100}
	b := &Segment{Start: 50, End: 150}
	c := &Segment{Start: 100, End: 200}
	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Fatal("overlapping segments not detected")
	}
	if a.Overlaps(c) || c.Overlaps(a) {
		t.Fatal("adjacent segments should not overlap")
	}
	if a.Size() != 100 || (&Segment{Start: 10, End: 5}).Size() != 0 {
		t.Fatal("bad segment size")
	}
	if !c.Contains(199) || c.Contains(200) {
		t.Fatal("Contains bounds wrong")
	}
}

func TestSectionSegment(t *testing.T) {
	s := &Section{Name: ".data", Addr: 0x20000000, LoadAddr: 0x08001000, Size: 0x10}
	if !s.Relocated() {
		t.Fatal(".data should be relocated")
	}
	if seg := s.Segment(false); seg.Start != 0x20000000 || seg.End != 0x20000010 {
		t.Fatalf("bad VMA segment: %+v", seg)
	}
	if seg := s.Segment(true); seg.Start != 0x08001000 || seg.End != 0x08001010 {
		t.Fatalf("bad LMA segment: %+v", seg)
	}
	if !strings.Contains(s.String(), "load 0x8001000") {
		t.Fatalf("bad String(): %s", s)
	}
}

func TestConfigInit(t *testing.T) {
	c := NewConfig()
	if c.TopCount != 20 || c.BarWidth != 40 || c.DetailCount != 50 {
		t.Fatalf("bad defaults: %+v", c)
	}
	c.TopCount, c.DetailCount, c.BarWidth = 0, 0, 0
	c.Init()
	if c.TopCount != 0 || c.DetailCount != 0 || c.BarWidth != 0 {
		t.Fatalf("Init replaced explicit zero values: %+v", c)
	}
	if c.Section != ".text" || c.Output == nil || c.Log == nil || c.TopFileWidth != 70 {
		t.Fatalf("Init did not fill writers and widths: %+v", c)
	}
}

func TestPrintFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Int("n", 20, "number of files to list")
	fs.String("color", "auto", strings.Repeat("word ", 30))
	var flags []*flag.Flag
	fs.VisitAll(func(f *flag.Flag) { flags = append(flags, f) })
	var buf bytes.Buffer
	PrintFlags(&buf, flags)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("long usage not wrapped:\n%s", buf.String())
	}
	for _, line := range lines {
		if len(line) > 80 {
			t.Fatalf("line wider than 80 columns: %q", line)
		}
	}
	if !strings.Contains(buf.String(), "-n ") || !strings.Contains(buf.String(), "(20)") {
		t.Fatalf("missing flag:\n%s", buf.String())
	}
}
