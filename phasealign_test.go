package monobit

import "testing"

func TestPhaseAlignStraight(t *testing.T) {
	store := []byte{0x11, 0x22, 0x33}
	p := newPhaseAlign(store, 0, 0)
	if p.kind != phaseStraight {
		t.Fatalf("d=0 should select phaseStraight, got %v", p.kind)
	}
	p.prefetch() // must be a no-op
	for i, want := range store {
		if got := p.fetch(); got != want {
			t.Fatalf("fetch() #%d = %#02x, want %#02x", i, got, want)
		}
	}
}

func TestPhaseAlignRightShift(t *testing.T) {
	// d=3 > 0: source starts 3 bits earlier within its byte than dest.
	store := []byte{0xFF, 0x00, 0xFF}
	p := newPhaseAlign(store, 0, 3)
	if p.kind != phaseRight {
		t.Fatalf("d=3 should select phaseRight, got %v", p.kind)
	}
	p.prefetch() // no-op for right-shift

	// carry starts at 0 (left edge clears in).
	// fetch 1: lo=0xFF, out = (0<<5)|(0xFF>>3) = 0x1F, carry becomes 0xFF.
	if got := p.fetch(); got != 0x1F {
		t.Fatalf("fetch #1 = %#02x, want 0x1F", got)
	}
	// fetch 2: lo=0x00, out = (0xFF<<5)|(0x00>>3) = 0xE0, carry becomes 0x00.
	if got := p.fetch(); got != 0xE0 {
		t.Fatalf("fetch #2 = %#02x, want 0xE0", got)
	}
	// fetch 3: lo=0xFF, out = (0x00<<5)|(0xFF>>3) = 0x1F, carry becomes 0xFF.
	if got := p.fetch(); got != 0x1F {
		t.Fatalf("fetch #3 = %#02x, want 0x1F", got)
	}
}

func TestPhaseAlignLeftShift(t *testing.T) {
	// d=-3: source starts 3 bits later within its byte than dest; shift=3.
	store := []byte{0xFF, 0x00, 0xFF, 0x00}
	p := newPhaseAlign(store, 0, -3)
	if p.kind != phaseLeft {
		t.Fatalf("d=-3 should select phaseLeft, got %v", p.kind)
	}
	p.prefetch() // preloads carry = store[0] = 0xFF, no advance.
	if p.carry != 0xFF {
		t.Fatalf("prefetch carry = %#02x, want 0xFF", p.carry)
	}
	if p.pos != 0 {
		t.Fatalf("prefetch must not advance pos, got %d", p.pos)
	}

	// fetch 1: pre-increments to store[1]=0x00, out = (0xFF<<3)|(0x00>>5) = 0xF8.
	if got := p.fetch(); got != 0xF8 {
		t.Fatalf("fetch #1 = %#02x, want 0xF8", got)
	}
	// fetch 2: pre-increments to store[2]=0xFF, out = (0x00<<3)|(0xFF>>5) = 0x07.
	if got := p.fetch(); got != 0x07 {
		t.Fatalf("fetch #2 = %#02x, want 0x07", got)
	}
	// fetch 3: pre-increments to store[3]=0x00, out = (0xFF<<3)|(0x00>>5) = 0xF8.
	if got := p.fetch(); got != 0xF8 {
		t.Fatalf("fetch #3 = %#02x, want 0xF8", got)
	}
}

func TestPhaseAlignAdvanceRow(t *testing.T) {
	store := make([]byte, 10)
	p := newPhaseAlign(store, 2, 0)
	p.advanceRow(3)
	if p.pos != 5 {
		t.Fatalf("advanceRow(3) from pos=2 got pos=%d, want 5", p.pos)
	}
}
