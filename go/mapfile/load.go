package mapfile

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/golang/snappy"
	"github.com/pkg/errors"

	"github.com/lunixbochs/mapvis/go/models"
)

// stream identifier chunk that opens every snappy framed stream
var snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")

func MatchSnappy(p []byte) bool {
	return bytes.HasPrefix(p, snappyMagic)
}

// Load parses a map file held in memory, decompressing it first if it is a
// snappy framed stream.
func Load(p []byte) (*models.MapFile, error) {
	if MatchSnappy(p) {
		raw, err := ioutil.ReadAll(snappy.NewReader(bytes.NewReader(p)))
		if err != nil {
			return nil, errors.Wrap(err, "failed to decompress snappy stream")
		}
		p = raw
	}
	return ParseBytes(p)
}

func LoadFile(path string) (*models.MapFile, error) {
	p, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	m, err := Load(p)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return m, nil
}

// Compress writes r to w as a snappy framed stream readable by Load.
func Compress(w io.Writer, r io.Reader) error {
	zw := snappy.NewBufferedWriter(w)
	if _, err := io.Copy(zw, r); err != nil {
		zw.Close()
		return errors.Wrap(err, "failed to compress map file")
	}
	return errors.WithStack(zw.Close())
}
