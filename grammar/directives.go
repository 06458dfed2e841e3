package grammar

import (
	"bytes"

	"github.com/dnszone/zonescan"
)

// handleDirective dispatches a token beginning with '$' to one of the
// three control directives. The original C grammar layer's
// parse_dollar had a bug here: its $INCLUDE branch compared against
// "$ORIGIN" a second time (an 8-byte strncmp copy-paste of the branch
// above it) instead of "$INCLUDE", so $INCLUDE was never recognized.
// This compares the literal directive name instead of repeating a
// prior comparison.
func (h *Handler) handleDirective(p *zone.Parser, tok zone.Token) error {
	switch {
	case bytes.Equal(tok.Data, []byte("$ORIGIN")):
		return h.handleOrigin(p)
	case bytes.Equal(tok.Data, []byte("$TTL")):
		return h.handleTTL(p)
	case bytes.Equal(tok.Data, []byte("$INCLUDE")):
		return h.handleInclude(p)
	default:
		return p.Fail(zone.StatusSyntaxError, "handleDirective", "unknown directive "+string(tok.Data))
	}
}

func (h *Handler) handleOrigin(p *zone.Parser) error {
	tok, err := p.NextToken()
	if err != nil {
		return err
	}
	if tok.Kind != zone.Contiguous {
		return p.Fail(zone.StatusSyntaxError, "handleOrigin", "expected a domain name after $ORIGIN")
	}
	wire, err := zone.CompileOwnerName(string(tok.Data), p.Origin())
	if err != nil {
		return p.Fail(zone.StatusBadParameter, "handleOrigin", err.Error())
	}
	p.SetOrigin(wire)
	return skipToEndOfLine(p)
}

func (h *Handler) handleTTL(p *zone.Parser) error {
	tok, err := p.NextToken()
	if err != nil {
		return err
	}
	if tok.Kind != zone.Contiguous {
		return p.Fail(zone.StatusSyntaxError, "handleTTL", "expected a TTL value after $TTL")
	}
	ttl, ok := parseTTL(tok.Data, p.FriendlyTTLs())
	if !ok {
		return p.Fail(zone.StatusSyntaxError, "handleTTL", "malformed TTL value")
	}
	p.SetDefaultTTL(ttl)
	return skipToEndOfLine(p)
}

func (h *Handler) handleInclude(p *zone.Parser) error {
	if p.NoIncludes() {
		return p.Fail(zone.StatusNotPermitted, "handleInclude", "$INCLUDE is disabled by Options.NoIncludes")
	}
	tok, err := p.NextToken()
	if err != nil {
		return err
	}
	if tok.Kind != zone.Contiguous && tok.Kind != zone.Quoted {
		return p.Fail(zone.StatusSyntaxError, "handleInclude", "expected a path after $INCLUDE")
	}
	path := string(tok.Data)

	// an optional origin argument may follow before the end of line
	tok, err = p.NextToken()
	if err != nil {
		return err
	}
	if tok.Kind == zone.Contiguous {
		wire, err := zone.CompileOwnerName(string(tok.Data), p.Origin())
		if err != nil {
			return p.Fail(zone.StatusBadParameter, "handleInclude", err.Error())
		}
		p.SetOrigin(wire)
		tok, err = p.NextToken()
		if err != nil {
			return err
		}
	}
	if tok.Kind != zone.LineFeed && tok.Kind != zone.EndOfFile {
		return p.Fail(zone.StatusSyntaxError, "handleInclude", "unexpected token after $INCLUDE arguments")
	}

	return p.Include(path)
}

func skipToEndOfLine(p *zone.Parser) error {
	for {
		tok, err := p.NextToken()
		if err != nil {
			return err
		}
		if tok.Kind == zone.LineFeed || tok.Kind == zone.EndOfFile {
			return nil
		}
	}
}
