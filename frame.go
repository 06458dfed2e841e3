package zone

import (
	"io"

	"github.com/dnszone/zonescan/internal/scan"
)

// windowSize is the number of bytes buffered per refill, matching
// ZONE_WINDOW_SIZE (256 blocks of 64 bytes).
const windowSize = scan.TapeWindowBlocks * scan.BlockSize

// endOfFileState tracks how much of the underlying reader a frame has
// consumed, mirroring the HAVE_DATA/READ_ALL_DATA/NO_MORE_DATA enum in
// zone_file_t.
type endOfFileState uint8

const (
	haveData endOfFileState = iota
	readAllData
	noMoreData
)

// file is one entry in the include stack: the open source, its
// window and scanner carry state, its tape, and the grammar-visible
// bookkeeping (owner, last type/class/ttl) that $INCLUDE must not
// disturb in the includer's own frame.
type file struct {
	includer *file

	name string
	path string

	reader io.Reader
	closer io.Closer

	buf       []byte // length windowSize+1; buf[tail] is always 0
	tail      int    // logical end of buffered data
	cursor    int    // next byte offset ScanBlock has not yet classified
	endOfFile endOfFileState

	carry scan.Carry
	tape  []scan.Index
	head  int // next unread tape entry
	// tail of the tape (len(tape)) doubles as the write cursor.

	origin     Name
	originBuf  NameBuffer
	owner      Name
	ownerBuf   *NameBuffer
	lastType   uint16
	lastClass  uint16
	lastTTL    uint32
	defaultTTL uint32

	grouped     bool
	startOfLine bool
	line        int
}

func newFile(name, path string, r io.Reader, includer *file) *file {
	f := &file{
		includer:    includer,
		name:        name,
		path:        path,
		reader:      r,
		buf:         make([]byte, windowSize+1),
		startOfLine: true,
		line:        1,
	}
	if c, ok := r.(io.Closer); ok {
		f.closer = c
	}
	f.tape = make([]scan.Index, 0, scan.TapeCapacity())
	if includer != nil {
		f.origin = includer.origin
		f.originBuf = includer.originBuf
		f.defaultTTL = includer.defaultTTL
		f.lastClass = includer.lastClass
	}
	return f
}

func (f *file) close() error {
	if f.closer != nil {
		return f.closer.Close()
	}
	return nil
}

// refill reads more input into the tail of buf, shifting unconsumed
// bytes down to offset 0 first. The shift anchor is the earliest
// position any live tape entry still points at (f.tape[0].Pos), not
// f.cursor: a token such as a quoted string can have its opening
// entry on the tape while ScanBlock has already classified several
// blocks past it looking for the close, so discarding anything before
// cursor would corrupt that pending entry. Every surviving tape
// entry's Pos is rebased by the same shift so it keeps pointing at the
// same byte. One byte before the anchor is kept as well, so that only
// the true start of the source sits at offset 0 and startsLine can
// still look at the byte preceding the earliest live token. It reports
// the number of live bytes now at the front of buf and whether the
// reader reached EOF.
func (f *file) refill() (int, error) {
	anchor := f.cursor
	if len(f.tape) > 0 && f.tape[0].Pos != scan.LineFeedPos && f.tape[0].Pos < anchor {
		anchor = f.tape[0].Pos
	}
	if anchor > 0 {
		anchor--
	}

	live := f.tail - anchor
	if live > 0 {
		copy(f.buf, f.buf[anchor:f.tail])
	}
	f.tail = live
	f.cursor -= anchor
	for i := range f.tape {
		if f.tape[i].Pos != scan.LineFeedPos {
			f.tape[i].Pos -= anchor
		}
	}

	if f.endOfFile == noMoreData {
		for i := f.tail; i < len(f.buf); i++ {
			f.buf[i] = 0
		}
		return live, io.EOF
	}

	n, err := io.ReadFull(f.reader, f.buf[f.tail:len(f.buf)-1])
	f.tail += n
	for i := f.tail; i < len(f.buf); i++ {
		f.buf[i] = 0
	}

	if err == io.ErrUnexpectedEOF || err == io.EOF {
		f.endOfFile = readAllData
		return f.tail, nil
	}
	if err != nil {
		return f.tail, err
	}
	return f.tail, nil
}
