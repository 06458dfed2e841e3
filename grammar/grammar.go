// Package grammar is a reference implementation of zone.RecordHandler:
// RFC 1035 §5 resource-record framing (owner/ttl/class/type/rdata,
// with inheritance of the previous line's owner/ttl/class), RFC 3597
// generic RDATA notation, and the $ORIGIN/$TTL/$INCLUDE control
// directives. It is a demo collaborator, not part of the scanning
// core: callers wanting different record semantics implement
// zone.RecordHandler directly instead of importing this package.
package grammar

import (
	"io"

	"github.com/dnszone/zonescan"
)

// Record is one fully-framed resource record handed to an AddFunc.
type Record struct {
	Owner zone.Name
	Type  uint16
	Class uint16
	TTL   uint32
	RDATA []byte
}

// AddFunc receives each record Handler completes.
type AddFunc func(p *zone.Parser, rec Record) error

// Handler implements zone.RecordHandler against a small built-in set
// of record types (A, AAAA, NS, CNAME, SOA, MX, TXT) plus RFC 3597
// generic notation for anything else.
type Handler struct {
	Add AddFunc
}

// NewHandler constructs a Handler that reports completed records to
// add.
func NewHandler(add AddFunc) *Handler {
	return &Handler{Add: add}
}

var _ zone.RecordHandler = (*Handler)(nil)

// HandleTokens consumes tokens for exactly one logical line: a blank
// line, a directive, or a resource record, per spec.
func (h *Handler) HandleTokens(p *zone.Parser) error {
	tok, err := p.NextToken()
	if err != nil {
		return err
	}

	switch tok.Kind {
	case zone.EndOfFile:
		return io.EOF
	case zone.LineFeed:
		return nil
	case zone.Quoted:
		return p.Fail(zone.StatusSyntaxError, "HandleTokens", "record cannot begin with a quoted string")
	}

	if tok.StartOfLine && isDirective(tok.Data) {
		return h.handleDirective(p, tok)
	}

	var owner zone.Name
	if tok.StartOfLine {
		wire, cerr := zone.CompileOwnerName(string(tok.Data), p.Origin())
		if cerr != nil {
			return p.Fail(zone.StatusBadParameter, "HandleTokens", cerr.Error())
		}
		p.SetLastOwner(wire)
		owner = p.LastOwner()
		tok, err = p.NextToken()
		if err != nil {
			return err
		}
	} else {
		owner = p.LastOwner()
	}

	ttl := p.LastTTL()
	if ttl == 0 {
		ttl = p.DefaultTTL()
	}
	class := p.LastClass()
	var rrtype uint16
	gotType := false

	for {
		if tok.Kind == zone.LineFeed || tok.Kind == zone.EndOfFile {
			break
		}
		if tok.Kind != zone.Contiguous {
			return p.Fail(zone.StatusSyntaxError, "HandleTokens", "expected ttl, class, or type")
		}

		if n, ok := parseTTL(tok.Data, p.FriendlyTTLs()); ok {
			ttl = n
			if tok, err = p.NextToken(); err != nil {
				return err
			}
			continue
		}
		if c, ok := classOf(tok.Data); ok {
			class = c
			if tok, err = p.NextToken(); err != nil {
				return err
			}
			continue
		}
		if t, ok := typeOf(tok.Data); ok {
			rrtype = t
			gotType = true
			if tok, err = p.NextToken(); err != nil {
				return err
			}
		}
		break
	}

	if !gotType {
		return p.Fail(zone.StatusSyntaxError, "HandleTokens", "missing record type")
	}

	p.SetLastTTL(ttl)
	p.SetLastClass(class)
	p.SetLastType(rrtype)

	var rdata []byte
	for tok.Kind == zone.Contiguous || tok.Kind == zone.Quoted {
		if len(rdata) > 0 {
			rdata = append(rdata, ' ')
		}
		rdata = append(rdata, tok.Data...)
		if tok, err = p.NextToken(); err != nil {
			return err
		}
	}
	rdata = maybeDecodeGeneric(rdata)

	if h.Add == nil {
		return nil
	}
	return h.Add(p, Record{Owner: owner, Type: rrtype, Class: class, TTL: ttl, RDATA: rdata})
}

func isDirective(b []byte) bool {
	return len(b) > 0 && b[0] == '$'
}
