package scan

import "testing"

func makeBlock(s string) [64]byte {
	var b [64]byte
	copy(b[:], s)
	return b
}

func TestScanBlockPlainText(t *testing.T) {
	block := makeBlock("www IN A 192.0.2.1\n")
	var carry Carry
	blk := ScanBlock(&block, &carry)

	if blk.Newline == 0 {
		t.Fatal("expected a newline bit set")
	}
	if blk.Quoted != 0 || blk.Comment != 0 {
		t.Errorf("plain text should have no quoted/comment bits: quoted=%#b comment=%#b", blk.Quoted, blk.Comment)
	}
	// first byte of the block starts a contiguous run and must be indexable.
	if blk.Bits&1 == 0 {
		t.Error("expected bit 0 set in Bits for the start of \"www\"")
	}
}

func TestScanBlockQuotedString(t *testing.T) {
	block := makeBlock(`txt "hello world"` + "\n")
	var carry Carry
	blk := ScanBlock(&block, &carry)

	openPos := 4
	closePos := 16
	if blk.Quoted&(1<<uint(openPos)) == 0 {
		t.Errorf("expected quoted bit at opening quote position %d", openPos)
	}
	if blk.Quoted&(1<<uint(closePos)) == 0 {
		t.Errorf("expected quoted bit at closing quote position %d", closePos)
	}
	// bytes strictly between the quotes must not be separately indexed.
	for i := openPos + 1; i < closePos; i++ {
		if blk.Bits&(1<<uint(i)) != 0 {
			t.Errorf("byte %d inside quotes must not be indexable", i)
		}
	}
}

func TestScanBlockComment(t *testing.T) {
	block := makeBlock("a ; this is a comment\nb\n")
	var carry Carry
	blk := ScanBlock(&block, &carry)

	semicolonPos := 2
	if blk.Comment&(1<<uint(semicolonPos)) == 0 {
		t.Errorf("expected comment bit at semicolon position %d", semicolonPos)
	}
	// the semicolon itself must not be indexed (consumed by comment machinery).
	if blk.Bits&(1<<uint(semicolonPos)) != 0 {
		t.Errorf("semicolon at %d must not appear in Bits", semicolonPos)
	}
	// "this", "is", "a", "comment" must not be indexed: they're inside the comment.
	commentWordPos := 4 // 't' of "this"
	if blk.Bits&(1<<uint(commentWordPos)) != 0 {
		t.Errorf("byte %d inside comment must not be indexable", commentWordPos)
	}
}

func TestScanBlockEscapedQuote(t *testing.T) {
	block := makeBlock(`"a\"b"` + "\n")
	var carry Carry
	blk := ScanBlock(&block, &carry)

	escapedQuotePos := 3
	if blk.Escaped&(1<<uint(escapedQuotePos)) == 0 {
		t.Errorf("expected escaped bit at position %d", escapedQuotePos)
	}
	if blk.Quoted&(1<<uint(escapedQuotePos)) != 0 {
		t.Errorf("escaped quote at %d must not be treated as a delimiter", escapedQuotePos)
	}
}

func TestScanBlockCarryAcrossBlocks(t *testing.T) {
	first := makeBlock(`"open across the boundary without a closing quote yet`)
	var carry Carry
	ScanBlock(&first, &carry)
	if carry.InQuoted == 0 {
		t.Fatal("expected InQuoted carry to be set after an unterminated quote")
	}

	second := makeBlock(`more text" done` + "\n")
	blk := ScanBlock(&second, &carry)
	closePos := 9
	if blk.Quoted&(1<<uint(closePos)) == 0 {
		t.Errorf("expected the carried-in quote to close at position %d", closePos)
	}
}
