package report

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lunixbochs/mapvis/go/cmd"
)

const (
	testFiles   = 30
	testEntries = 60
)

// writeTestMap writes a .text section with more files and fragments than
// the default report limits.
func writeTestMap(t *testing.T, dir string) string {
	var body strings.Builder
	var total uint64
	addr := uint64(0x8000000)
	for i := 0; i < testEntries; i++ {
		size := uint64(0x10 + i)
		fmt.Fprintf(&body, "  .text.fn%02d 0x%08x 0x%x file_%02d.o\n", i, addr, size, i%testFiles)
		addr += size
		total += size
	}
	path := filepath.Join(dir, "fw.map")
	data := fmt.Sprintf(".text 0x08000000 0x%x\n%s", total, body.String())
	if err := ioutil.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCmd(t *testing.T, c *cmd.MapCmd, argv ...string) string {
	dir, err := ioutil.TempDir("", "mapvis")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := writeTestMap(t, dir)
	out, err := os.Create(filepath.Join(dir, "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()
	var stderr bytes.Buffer
	c.Stdout = out
	c.Stderr = &stderr

	args := append([]string{c.Name, "-color", "never"}, argv...)
	args = append(args, path)
	if code := c.Run(args); code != 0 {
		t.Fatalf("%s exited %d: %s", c.Name, code, stderr.String())
	}
	data, err := ioutil.ReadFile(out.Name())
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestTopCountZeroListsAll(t *testing.T) {
	out := runCmd(t, topCmd(), "-n", "0")
	for i := 0; i < testFiles; i++ {
		if name := fmt.Sprintf("file_%02d.o", i); !strings.Contains(out, name) {
			t.Fatalf("top -n 0 is missing %s:\n%s", name, out)
		}
	}
}

func TestTopDefaultCount(t *testing.T) {
	out := runCmd(t, topCmd())
	listed := 0
	for i := 0; i < testFiles; i++ {
		if strings.Contains(out, fmt.Sprintf("file_%02d.o", i)) {
			listed++
		}
	}
	if listed != 20 {
		t.Fatalf("top listed %d files, want 20:\n%s", listed, out)
	}
}

func TestDetailCountZeroListsAll(t *testing.T) {
	out := runCmd(t, detailCmd(), "-n", "0")
	for i := 0; i < testEntries; i++ {
		if name := fmt.Sprintf(".text.fn%02d", i); !strings.Contains(out, name) {
			t.Fatalf("detail -n 0 is missing %s:\n%s", name, out)
		}
	}
}

func TestSummaryBarZero(t *testing.T) {
	out := runCmd(t, summaryCmd(), "-bar", "0")
	if !strings.Contains(out, ".text") {
		t.Fatalf("summary missing .text:\n%s", out)
	}
	if strings.Contains(out, "#") {
		t.Fatalf("summary -bar 0 drew a bar:\n%s", out)
	}
}

func TestShow(t *testing.T) {
	out := runCmd(t, showCmd(), "-bar", "0")
	if !strings.Contains(out, "Memory Usage Summary") || !strings.Contains(out, "Memory Layout (VMA)") {
		t.Fatalf("show output:\n%s", out)
	}
}
