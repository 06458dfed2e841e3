package zone

import (
	"bufio"
	"io"
)

// Rewriter reconstructs zone-file-like text from a token stream. It
// exists to exercise the round-trip testable property of the scanner
// (tokenizing and rewriting a well-formed zone file reproduces the
// same sequence of contiguous/quoted values). The CLI's --debug-tokens
// dump does not use it; that prints each token with repr.
type Rewriter struct {
	w      *bufio.Writer
	needSP bool
}

// NewRewriter wraps w.
func NewRewriter(w io.Writer) *Rewriter {
	return &Rewriter{w: bufio.NewWriter(w)}
}

// Write appends tok's textual form, separating consecutive
// Contiguous/Quoted tokens on the same line with a single space.
func (rw *Rewriter) Write(tok Token) error {
	switch tok.Kind {
	case LineFeed:
		for i := uint32(0); i < tok.Lines; i++ {
			if err := rw.w.WriteByte('\n'); err != nil {
				return err
			}
		}
		rw.needSP = false
	case Quoted:
		if rw.needSP {
			rw.w.WriteByte(' ')
		}
		rw.w.WriteByte('"')
		rw.w.Write(tok.Data)
		rw.w.WriteByte('"')
		rw.needSP = true
	case Contiguous:
		if rw.needSP {
			rw.w.WriteByte(' ')
		}
		rw.w.Write(tok.Data)
		rw.needSP = true
	case EndOfFile:
		// nothing to emit
	}
	return rw.w.Flush()
}

// Flush flushes any buffered output.
func (rw *Rewriter) Flush() error {
	return rw.w.Flush()
}
