package cmd

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
)

const defaultsFile = "defaults"

// ParseDefaults extracts stored arguments for command from a defaults file.
// Each line is "<command|*> args...", split like a shell would; lines for
// "*" apply to every command and come first. Blank lines and lines starting
// with '#' are ignored.
//
//	* -color never
//	top -n 10
func ParseDefaults(data []byte, command string) ([]string, error) {
	var common, specific []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words, err := shellwords.Parse(line)
		if err != nil {
			return nil, errors.Wrapf(err, "defaults line %d", lineno)
		}
		if len(words) == 0 {
			continue
		}
		switch words[0] {
		case "*":
			common = append(common, words[1:]...)
		case command:
			specific = append(specific, words[1:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return append(common, specific...), nil
}

// LoadDefaults reads stored arguments for command from the first mapvis
// config folder holding a defaults file, returning the args and the file
// they came from.
func LoadDefaults(command string) ([]string, string, error) {
	dirs := configdir.New("mapvis", "")
	folder := dirs.QueryFolderContainsFile(defaultsFile)
	if folder == nil {
		return nil, "", nil
	}
	data, err := folder.ReadFile(defaultsFile)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read defaults")
	}
	path := filepath.Join(folder.Path, defaultsFile)
	args, err := ParseDefaults(data, command)
	if err != nil {
		return nil, "", errors.Wrap(err, path)
	}
	return args, path, nil
}
