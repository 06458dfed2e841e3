// Package source is a reference zone.SourceOpener: it opens files from
// disk, transparently decompressing .lz4 targets so a $INCLUDE
// directive can point at a compressed zone fragment without the
// grammar layer knowing the difference.
package source

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"

	"github.com/dnszone/zonescan"
)

// Opener is the default SourceOpener. The zero value is ready to use.
type Opener struct{}

// New returns a ready-to-use Opener.
func New() *Opener {
	return &Opener{}
}

var _ zone.SourceOpener = (*Opener)(nil)

// Open opens path, wrapping it in an lz4 reader when the name ends in
// .lz4. includer is unused by this opener: relative-path resolution
// against the includer's directory is handled by the core's
// (*zone.Parser).Include before Open is ever called.
func (o *Opener) Open(path string, includer *zone.Parser) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(filepath.Ext(path), ".lz4") {
		return f, nil
	}
	return &lz4ReadCloser{inner: f, zr: lz4.NewReader(f)}, nil
}

type lz4ReadCloser struct {
	inner io.Closer
	zr    *lz4.Reader
}

func (l *lz4ReadCloser) Read(p []byte) (int, error) {
	return l.zr.Read(p)
}

func (l *lz4ReadCloser) Close() error {
	return l.inner.Close()
}
