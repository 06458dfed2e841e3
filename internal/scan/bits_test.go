package scan

import "testing"

func TestPrefixXOR(t *testing.T) {
	cases := []struct {
		name string
		in   uint64
		want uint64
	}{
		{"zero", 0, 0},
		{"single bit", 1, 0xFFFFFFFFFFFFFFFF},
		{"two adjacent bits toggle off", 0b11, 0b01},
		{"alternating", 0b101, 0b011},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := PrefixXOR(c.in); got != c.want {
				t.Errorf("PrefixXOR(%#b) = %#b, want %#b", c.in, got, c.want)
			}
		})
	}
}

func TestFollows(t *testing.T) {
	var carry uint64
	got := Follows(0b1, &carry)
	if got != 0b10 {
		t.Errorf("Follows(0b1) = %#b, want 0b10", got)
	}
	if carry != 0 {
		t.Errorf("carry = %d, want 0", carry)
	}

	carry = 0
	got = Follows(1<<63, &carry)
	if got != 0 {
		t.Errorf("Follows(1<<63) = %#b, want 0", got)
	}
	if carry != 1 {
		t.Errorf("carry after top-bit match = %d, want 1", carry)
	}
}

func TestAddOverflow(t *testing.T) {
	sum, carry := AddOverflow(1, 1)
	if sum != 2 || carry != 0 {
		t.Errorf("AddOverflow(1,1) = (%d,%d), want (2,0)", sum, carry)
	}

	sum, carry = AddOverflow(^uint64(0), 1)
	if sum != 0 || carry != 1 {
		t.Errorf("AddOverflow(max,1) = (%d,%d), want (0,1)", sum, carry)
	}
}

func TestBitHelpers(t *testing.T) {
	x := uint64(0b10110)
	if got := LowestBit(x); got != 0b10 {
		t.Errorf("LowestBit(%#b) = %#b, want 0b10", x, got)
	}
	if got := ClearLowestBit(x); got != 0b10100 {
		t.Errorf("ClearLowestBit(%#b) = %#b, want 0b10100", x, got)
	}
	if got := CountOnes(x); got != 3 {
		t.Errorf("CountOnes(%#b) = %d, want 3", x, got)
	}
	if got := TrailingZeroes(x); got != 1 {
		t.Errorf("TrailingZeroes(%#b) = %d, want 1", x, got)
	}
	if got := TrailingZeroes(0); got != 64 {
		t.Errorf("TrailingZeroes(0) = %d, want 64", got)
	}
}
