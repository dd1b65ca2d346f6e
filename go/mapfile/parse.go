// Package mapfile extracts section sizes, addresses and per-file
// contributions from GCC/binutils linker map files.
//
// Extraction is best effort: lines that do not look like a section header
// or an indented section fragment are skipped without error.
package mapfile

import (
	"bufio"
	"bytes"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lunixbochs/mapvis/go/models"
)

// .text           0x00280180    0x383c8 load address 0x08001180
var headerRe = regexp.MustCompile(`^(\.\w+[\w.]*)\s+(0x[0-9a-fA-F]+)\s+(0x[0-9a-fA-F]+)`)
var loadRe = regexp.MustCompile(`load address (0x[0-9a-fA-F]+)`)

//  .text.foo      0x00280180       0x7c build/foo.o
var entryRe = regexp.MustCompile(`^\s+(\.\w+[\w.]*)\s+(0x[0-9a-fA-F]+)\s+(0x[0-9a-fA-F]+)\s+(\S.*)$`)

// lines in map files with long archive paths can run past bufio's default
const maxLine = 1024 * 1024

func parseHex(s string) (uint64, bool) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
	return v, err == nil
}

type parser struct {
	m       *models.MapFile
	current string
	// live is false while the cursor sits on a zero-size section
	live bool
}

func (p *parser) header(line string) bool {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return false
	}
	match := headerRe.FindStringSubmatch(line)
	if match == nil {
		return false
	}
	addr, ok := parseHex(match[2])
	if !ok {
		return false
	}
	size, ok := parseHex(match[3])
	if !ok {
		return false
	}
	name := match[1]
	load := addr
	if lm := loadRe.FindStringSubmatch(line); lm != nil {
		if v, ok := parseHex(lm[1]); ok {
			load = v
		}
	}
	// zero-size sections still take the cursor, so their fragments are dropped
	p.current = name
	p.live = size > 0
	if p.live {
		p.m.Sizes[name] = size
		p.m.Sections[name] = &models.Section{Name: name, Addr: addr, LoadAddr: load, Size: size}
	}
	return true
}

func (p *parser) entry(line string) {
	if p.current == "" || !p.live {
		return
	}
	match := entryRe.FindStringSubmatch(line)
	if match == nil {
		return
	}
	addr, ok := parseHex(match[2])
	if !ok {
		return
	}
	size, ok := parseHex(match[3])
	if !ok || size == 0 {
		return
	}
	p.m.Contribs[p.current] = append(p.m.Contribs[p.current], models.Contribution{
		Subsection: match[1],
		Addr:       addr,
		Size:       size,
		File:       strings.TrimRightFunc(match[4], isSpace),
	})
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\v' || r == '\f'
}

// Parse reads a whole map file from r. The only error returned is a read
// error from r.
func Parse(r io.Reader) (*models.MapFile, error) {
	p := &parser{m: models.NewMapFile()}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLine)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if !p.header(line) {
			p.entry(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read map file")
	}
	return p.m, nil
}

func ParseString(s string) (*models.MapFile, error) {
	return Parse(strings.NewReader(s))
}

func ParseBytes(b []byte) (*models.MapFile, error) {
	return Parse(bytes.NewReader(b))
}
