package zone

import "io"

// RecordHandler is the grammar-layer collaborator (the core parser
// never interprets record semantics itself). HandleTokens is driven
// by the dispatcher's token stream for the currently active frame: it
// must pull tokens via p.NextToken() until it has consumed exactly one
// logical line — a resource record, a recognized $ORIGIN/$TTL/$INCLUDE
// directive, or a blank line — or it encounters a syntax error.
//
// The core dispatcher only hands the collaborator a stream of raw
// Contiguous/Quoted/LineFeed tokens; it does not parse owner/ttl/class/
// type/rdata structure itself, since that framing — and recognizing
// the three control directives — is RFC 1035 grammar, not scanning.
type RecordHandler interface {
	HandleTokens(p *Parser) error
}

// SourceOpener resolves a path referenced by $INCLUDE (or the initial
// file given to ParseFile) to a readable stream. includer is the
// Parser as it stood while processing the directive, so an opener can
// resolve relative paths against the includer's own directory.
type SourceOpener interface {
	Open(path string, includer *Parser) (io.ReadCloser, error)
}

// RecordHandlerFunc adapts a plain function to a RecordHandler.
type RecordHandlerFunc func(p *Parser) error

func (f RecordHandlerFunc) HandleTokens(p *Parser) error {
	return f(p)
}

// SourceOpenerFunc adapts a plain function to a SourceOpener.
type SourceOpenerFunc func(path string, includer *Parser) (io.ReadCloser, error)

func (f SourceOpenerFunc) Open(path string, includer *Parser) (io.ReadCloser, error) {
	return f(path, includer)
}
