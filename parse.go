package zone

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ParseFile parses the zone file at path, calling opts.Accept.Add for
// every completed record and recognized directive, mirroring
// zone_parse. If opts.Open is nil, a plain os.Open-based opener is
// used — it does not decompress .lz4 $INCLUDE targets; callers that
// need that should set opts.Open to zone/source's default opener.
func ParseFile(path string, opts Options, buffers Buffers, userData any) error {
	opener := opts.Open
	if opener == nil {
		opener = SourceOpenerFunc(openPlainFile)
	}
	opts.Open = opener

	p := newParser(opts, buffers, userData)

	r, err := opener.Open(path, p)
	if err != nil {
		return p.fail(StatusIOError, "ParseFile", err.Error())
	}

	if err := p.open(filepath.Base(path), path, r, nil); err != nil {
		return err
	}
	return p.run()
}

// ParseString parses s as in-memory zone file text, mirroring
// zone_parse_string. There is no underlying path, so $INCLUDE is only
// honored if opts.Open is set.
func ParseString(s string, opts Options, buffers Buffers, userData any) error {
	p := newParser(opts, buffers, userData)
	if err := p.open("<string>", "", strings.NewReader(s), nil); err != nil {
		return err
	}
	return p.run()
}

func openPlainFile(path string, includer *Parser) (io.ReadCloser, error) {
	return os.Open(path)
}

// open installs r as a new top-of-stack frame, seeding it from opts
// (origin, default ttl/class) when it has no includer, or inheriting
// the includer's state otherwise.
func (p *Parser) open(name, path string, r io.Reader, includer *file) error {
	f := newFile(name, path, r, includer)

	if includer == nil {
		f.defaultTTL = p.options.DefaultTTL
		f.lastClass = p.options.DefaultClass
		wire, err := compileOrigin(p.options.Origin)
		if err != nil {
			return p.fail(StatusBadParameter, "open", err.Error())
		}
		installOrigin(f, wire)
	}

	f.ownerBuf = p.ring.nextOwner()
	p.pushFrame(f)
	return nil
}

// include resolves $INCLUDE for path (relative to the current frame's
// directory unless absolute) and pushes a new frame for it.
func (p *Parser) include(path string) error {
	if p.options.NoIncludes {
		return p.fail(StatusNotPermitted, "include", "$INCLUDE disabled by Options.NoIncludes")
	}
	if p.options.Open == nil {
		return p.fail(StatusNotImplemented, "include", "no SourceOpener configured")
	}

	resolved := path
	if !filepath.IsAbs(path) && p.file.path != "" {
		resolved = filepath.Join(filepath.Dir(p.file.path), path)
	}

	r, err := p.options.Open.Open(resolved, p)
	if err != nil {
		return p.fail(StatusIOError, "include", err.Error())
	}
	return p.open(filepath.Base(resolved), resolved, r, p.file)
}

// run drives the configured RecordHandler until it reports io.EOF —
// the convention for "the last NextToken call returned EndOfFile with
// nothing left to consume" — or a real error.
func (p *Parser) run() error {
	if p.options.Accept.Add == nil {
		return p.fail(StatusBadParameter, "run", "no RecordHandler configured (Options.Accept.Add)")
	}
	for {
		err := p.options.Accept.Add.HandleTokens(p)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
