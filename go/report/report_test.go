package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lunixbochs/mapvis/go/models"
)

func newTestReporter(m *models.MapFile) (*Reporter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewReporter(m, &models.Config{Output: &buf}), &buf
}

func exampleModel() *models.MapFile {
	m := models.NewMapFile()
	m.Sizes[".text"] = 0xa0
	m.Sections[".text"] = &models.Section{Name: ".text", Addr: 0x280180, LoadAddr: 0x280180, Size: 0xa0}
	m.Contribs[".text"] = []models.Contribution{
		{Subsection: ".text.foo", Addr: 0x280180, Size: 0x50, File: "a.o"},
		{Subsection: ".text.bar", Addr: 0x2801d0, Size: 0x50, File: "b.o"},
	}
	return m
}

func TestFormatSize(t *testing.T) {
	cases := map[uint64]string{
		0:               "0B",
		160:             "160B",
		1023:            "1023B",
		1536:            "1.50KB",
		3 * 1024 * 1024: "3.00MB",
	}
	for size, want := range cases {
		if got := FormatSize(size); got != want {
			t.Errorf("FormatSize(%d) = %q, want %q", size, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 40)
	head := truncateHead(long, 28)
	if head != strings.Repeat("a", 25)+"..." {
		t.Fatalf("truncateHead = %q", head)
	}
	path := "build/very/long/path/" + strings.Repeat("d", 40) + "/file.o"
	tail := truncateTail(path, 20)
	if !strings.HasPrefix(tail, "...") || !strings.HasSuffix(tail, "/file.o") || len(tail) != 20 {
		t.Fatalf("truncateTail = %q", tail)
	}
	if truncateTail("short.o", 20) != "short.o" || truncateHead(".text", 28) != ".text" {
		t.Fatal("short strings should be unchanged")
	}
}

func TestPadIgnoresColor(t *testing.T) {
	s := padRight(colRed+"abc"+"\x1b[0m", 6)
	if !strings.HasSuffix(s, "abc\x1b[0m   ") {
		t.Fatalf("padRight counted escape codes: %q", s)
	}
}

func TestNoData(t *testing.T) {
	r, buf := newTestReporter(models.NewMapFile())
	r.PrintSummary()
	r.PrintTop(".nope", 10)
	r.PrintDetail(".nope", 10)
	r.PrintLayout(false)
	out := buf.String()
	for _, msg := range []string{
		"No sections found in map file",
		"No data found for section: .nope",
		"No memory layout information found",
	} {
		if !strings.Contains(out, msg) {
			t.Errorf("missing %q in output:\n%s", msg, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("color codes written with color disabled")
	}
}

func TestUnknownSectionAfterParse(t *testing.T) {
	r, buf := newTestReporter(exampleModel())
	if r.TopContributors(".data", 10) != nil || r.Breakdown(".data", 10) != nil {
		t.Fatal("unknown section should give no data")
	}
	if err := r.PrintTop(".data", 10); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No data found for section: .data") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestNoDataJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(models.NewMapFile(), &models.Config{Output: &buf, JSON: true})
	steps := []func() error{
		r.PrintSummary,
		func() error { return r.PrintTop(".nope", 10) },
		func() error { return r.PrintDetail(".nope", 10) },
		func() error { return r.PrintLayout(false) },
		func() error { return r.PrintFind("nothing") },
	}
	for i, step := range steps {
		buf.Reset()
		if err := step(); err != nil {
			t.Fatal(err)
		}
		if buf.String() != "null\n" {
			t.Errorf("report %d with no data: got %q, want %q", i, buf.String(), "null\n")
		}
	}
}
