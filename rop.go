package monobit

// Rop2 selects one of the sixteen binary Boolean raster operations that a
// Blt dispatcher applies, lane-by-lane, to each bit of a destination byte D
// and a source byte S. The sixteen values are every possible Boolean
// function of two one-bit inputs; the reverse-Polish names follow the
// classic BitBlt convention.
type Rop2 uint8

// The sixteen binary raster operations, indexed 0..15.
const (
	RopBlack     Rop2 = 0  // 0x00, blackness: the truth table's all-zero function.
	RopDSon      Rop2 = 1  // ~(D | S)
	RopDSna      Rop2 = 2  // D & ~S
	RopNotSrc    Rop2 = 3  // ~S, aka notSrcCopy
	RopSrcErase  Rop2 = 4  // S & ~D, aka srcErase
	RopDstInvert Rop2 = 5  // ~D, aka dstInvert
	RopSrcInvert Rop2 = 6  // D ^ S, aka srcInvert
	RopDSan      Rop2 = 7  // ~(D & S)
	RopSrcAnd    Rop2 = 8  // D & S, aka srcAnd
	RopDSxn      Rop2 = 9  // ~(D ^ S)
	RopNop       Rop2 = 10 // D, no-op
	RopMergePaint Rop2 = 11 // D | ~S, aka mergePaint
	RopSrcCopy   Rop2 = 12 // S, aka srcCopy
	RopSDno      Rop2 = 13 // S | ~D
	RopSrcPaint  Rop2 = 14 // D | S, aka srcPaint
	RopWhite     Rop2 = 15 // 0xFF, whiteness: the truth table's all-one function.
)

// Rop1 selects one of the three unary raster operations. Each is a strict
// alias of a binary Rop2 that never references S; BitPlane.BitBlt1 delegates
// to BitBlt with the destination as its own source, relying on the fact that
// these three ops never call Fetch (see ropNeedsSource below) to make that
// aliasing safe.
type Rop1 uint8

// The three unary raster operations.
const (
	Blackness Rop1 = Rop1(RopBlack)
	DstInvert Rop1 = Rop1(RopDstInvert)
	Whiteness Rop1 = Rop1(RopWhite)
)

// AsRop2 converts a unary op to the binary op it delegates to. The
// conversion is total and exact: Rop1's three constants are defined in
// terms of the corresponding Rop2 values, so there is no lossy mapping to
// reason about (spec.md's design notes flag the C++ original's sign-cast
// shortcut here; this type makes the conversion explicit instead).
func (r Rop1) AsRop2() Rop2 { return Rop2(r) }

// ropFunc computes one raster operation over a full byte, eight lanes at a
// time; d is the current destination byte, s is the fetched source byte.
type ropFunc func(d, s byte) byte

// ropTable holds the sixteen Boolean functions, indexed by Rop2.
var ropTable = [16]ropFunc{
	RopBlack:      func(d, s byte) byte { return 0x00 },
	RopDSon:       func(d, s byte) byte { return ^(d | s) },
	RopDSna:       func(d, s byte) byte { return d &^ s },
	RopNotSrc:     func(d, s byte) byte { return ^s },
	RopSrcErase:   func(d, s byte) byte { return s &^ d },
	RopDstInvert:  func(d, s byte) byte { return ^d },
	RopSrcInvert:  func(d, s byte) byte { return d ^ s },
	RopDSan:       func(d, s byte) byte { return ^(d & s) },
	RopSrcAnd:     func(d, s byte) byte { return d & s },
	RopDSxn:       func(d, s byte) byte { return ^(d ^ s) },
	RopNop:        func(d, s byte) byte { return d },
	RopMergePaint: func(d, s byte) byte { return d | ^s },
	RopSrcCopy:    func(d, s byte) byte { return s },
	RopSDno:       func(d, s byte) byte { return s | ^d },
	RopSrcPaint:   func(d, s byte) byte { return d | s },
	RopWhite:      func(d, s byte) byte { return 0xFF },
}

// ropNeedsSource reports whether a raster op's definition references S.
// Ops that don't (indices 0, 5, 10, 15) must never trigger a Fetch call on
// the bound PhaseAlign: the fetcher's cursor would otherwise advance for no
// reason, and the unary-blit self-aliasing idiom (§4.1 of spec.md) depends
// on these four ops being genuinely lazy about reading the source.
var ropNeedsSource = [16]bool{
	RopBlack:      false,
	RopDSon:       true,
	RopDSna:       true,
	RopNotSrc:     true,
	RopSrcErase:   true,
	RopDstInvert:  false,
	RopSrcInvert:  true,
	RopDSan:       true,
	RopSrcAnd:     true,
	RopDSxn:       true,
	RopNop:        false,
	RopMergePaint: true,
	RopSrcCopy:    true,
	RopSDno:       true,
	RopSrcPaint:   true,
	RopWhite:      false,
}
