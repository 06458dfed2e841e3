package zone

import (
	"io"

	"github.com/dnszone/zonescan/internal/scan"
)

// fillTape scans forward from f.cursor, refilling the window as
// needed, until it has produced at least one new tape entry beyond
// whatever the caller has already consumed, or run out of input
// entirely. Unlike the original C indexer, which fills an entire
// 256-block window's worth of tape before the dispatcher consumes any
// of it, this produces tape incrementally — simpler to reason about in
// Go, at the cost of repeating the "is there a pending batch" check
// more often. Already-consumed entries (those before f.head) are
// dropped, but anything still pending (e.g. an opening quote whose
// match has not been scanned yet) is preserved rather than discarded,
// so a quoted string or contiguous run spanning several blocks never
// loses its earlier half. Carry state (f.carry) is unaffected by this
// and persists across calls exactly as it would across a full-window
// refill.
func (p *Parser) fillTape(f *file) error {
	if f.head > 0 {
		f.tape = append(f.tape[:0], f.tape[f.head:]...)
		f.head = 0
	}
	before := len(f.tape)

	for {
		available := f.tail - f.cursor
		if available < scan.BlockSize || f.cursor+scan.BlockSize > len(f.buf) {
			n, err := f.refill()
			if err != nil && err != io.EOF {
				return p.fail(StatusIOError, "fillTape", err.Error())
			}
			available = f.tail - f.cursor
			if available == 0 {
				return nil
			}
			if available < scan.BlockSize {
				block := extractBlock(f.buf, f.cursor, available)
				blk := scan.ScanBlock(&block, &f.carry)
				f.tape = scan.AppendIndexes(f.tape, &blk, f.cursor, &f.carry.Lines)
				f.cursor += available
				return nil
			}
			continue
		}

		var block [scan.BlockSize]byte
		copy(block[:], f.buf[f.cursor:f.cursor+scan.BlockSize])
		blk := scan.ScanBlock(&block, &f.carry)
		f.tape = scan.AppendIndexes(f.tape, &blk, f.cursor, &f.carry.Lines)
		f.cursor += scan.BlockSize
		if len(f.tape) > before {
			return nil
		}
		// block held no indexable bytes (e.g. all blank); keep scanning
		// forward instead of handing the dispatcher an empty batch.
	}
}

func extractBlock(buf []byte, offset, n int) [scan.BlockSize]byte {
	var block [scan.BlockSize]byte
	copy(block[:], buf[offset:offset+n])
	return block
}

// NextToken pulls the next logical token from the active frame,
// crossing $INCLUDE frame boundaries and synthesizing LineFeed/
// EndOfFile tokens as needed. It is the only way a RecordHandler reads
// input; Quoted and Contiguous tokens' Data alias the parser's
// internal window and are invalidated by the next call to NextToken.
// Data is returned raw: RFC 1035 §5.1 escape sequences (\DDD decimal,
// \X single-character) are not resolved here, since whether a
// backslash is even meaningful depends on what the token turns out to
// be (an owner/RDATA name vs. the literal "\#" RFC 3597 marker); see
// CompileOwnerName.
func (p *Parser) NextToken() (Token, error) {
	return p.nextToken()
}

// nextToken implements the emission state machine of the dispatcher:
// it pulls the next tape entry, classifies it by the byte it points
// at, and returns the corresponding logical token. LineFeed and
// EndOfFile are synthesized directly from tape/frame-stack state;
// Quoted and Contiguous alias the live window buffer and are only
// valid until the next call that advances the parser.
func (p *Parser) nextToken() (Token, error) {
	for {
		f := p.file

		if f.head >= len(f.tape) {
			if err := p.fillTape(f); err != nil {
				return Token{}, err
			}
			if f.head >= len(f.tape) {
				if f.grouped {
					return Token{}, p.fail(StatusSyntaxError, "nextToken", "unterminated grouping")
				}
				if f.includer != nil {
					p.popFrame()
					continue
				}
				return Token{Kind: EndOfFile}, nil
			}
		}

		entry := f.tape[f.head]

		if entry.Pos == scan.LineFeedPos {
			f.head++
			f.line += int(entry.Lines) + 1
			if f.grouped {
				continue
			}
			return Token{Kind: LineFeed, Lines: entry.Lines + 1}, nil
		}

		switch f.buf[entry.Pos] {
		case '\n':
			// reached via the fast (non-batched) path: an ordinary
			// newline outside any quoted or comment span is indexed
			// directly, one tape entry per line, rather than folded
			// into a LineFeedPos batch.
			f.head++
			f.line++
			if f.grouped {
				continue
			}
			return Token{Kind: LineFeed, Lines: 1}, nil
		case '(':
			f.grouped = true
			f.head++
			continue
		case ')':
			if !f.grouped {
				return Token{}, p.fail(StatusSyntaxError, "nextToken", "unmatched )")
			}
			f.grouped = false
			f.head++
			continue
		case '"':
			// the matching close-quote entry may not have been scanned
			// yet if the string spans more than one block; keep pulling
			// more tape without losing this entry until it shows up.
			// fillTape may rebase entry.Pos if it has to shift the
			// window to make room, so re-read it from the tape after
			// every call instead of trusting the local copy.
			for f.head+1 >= len(f.tape) {
				before := len(f.tape)
				if err := p.fillTape(f); err != nil {
					return Token{}, err
				}
				entry = f.tape[f.head]
				if len(f.tape) == before {
					return Token{}, p.fail(StatusSyntaxError, "nextToken", "unterminated quoted string")
				}
			}
			closeEntry := f.tape[f.head+1]
			data := f.buf[entry.Pos+1 : closeEntry.Pos]
			sol := startsLine(f.buf, entry.Pos)
			f.head += 2
			return Token{Kind: Quoted, Data: data, StartOfLine: sol}, nil
		default:
			end := scanContiguousEnd(f.buf, entry.Pos, f.tail)
			// a contiguous run reads raw bytes rather than tape
			// entries, so it can likewise hit the edge of buffered
			// data without having actually reached a delimiter.
			for end == f.tail && f.endOfFile != noMoreData {
				before := len(f.tape)
				if err := p.fillTape(f); err != nil {
					return Token{}, err
				}
				entry = f.tape[f.head]
				end = scanContiguousEnd(f.buf, entry.Pos, f.tail)
				if len(f.tape) == before && end == f.tail {
					break
				}
			}
			data := f.buf[entry.Pos:end]
			sol := startsLine(f.buf, entry.Pos)
			f.head++
			return Token{Kind: Contiguous, Data: data, StartOfLine: sol}, nil
		}
	}
}

func startsLine(buf []byte, pos int) bool {
	return pos == 0 || buf[pos-1] == '\n'
}

// scanContiguousEnd finds where a contiguous run started at start ends,
// walking raw bytes rather than consulting the tape: only the run's
// first byte is indexed (internal/scan/block.go's block.Bits carries
// no entry for the blank/special byte that closes it), so the
// dispatcher has no tape entry to stop at. A backslash here always
// escapes exactly the next byte, so a pair is consumed together and
// never mistaken for a delimiter. This mirrors the odd/even backslash
// parity ScanBlock already applied when it decided this run was
// Contiguous in the first place (internal/scan/block.go's Escaped
// mask), just recomputed locally instead of carried over as state.
func scanContiguousEnd(buf []byte, start, limit int) int {
	i := start
	for i < limit {
		b := buf[i]
		if b == '\\' {
			if i+1 < limit {
				i += 2
			} else {
				i++
			}
			continue
		}
		if scan.IsBlank(b) || scan.IsSpecial(b) {
			break
		}
		i++
	}
	return i
}

func (p *Parser) popFrame() {
	old := p.file
	_ = old.close()
	p.file = old.includer
}

func (p *Parser) pushFrame(f *file) {
	p.file = f
}
