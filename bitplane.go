package monobit

// BitPlane is a rectangular 1-bit-per-pixel image. Bit 0 is black, bit 1
// is white. Pixel (x, y) lives at byte store[rowBytes*y + (x>>3)], bit
// position 7-(x&7) — the most significant bit of a byte is its leftmost
// pixel.
//
// A BitPlane either owns its backing store (allocated by Create, reclaimed
// by the garbage collector once unreachable) or borrows it from a caller
// (wrapped by NewBitPlaneWithBytes, never released). The zero value is the
// empty plane: width 0, height 0, no storage, borrowed.
type BitPlane struct {
	width    int
	height   int
	rowBytes int
	store    []byte
	owned    bool
}

// NewBitPlane returns an empty plane: width 0, height 0, no owned storage.
// It is equivalent to the zero value and exists for symmetry with
// NewBitPlaneWithBytes.
func NewBitPlane() *BitPlane {
	return &BitPlane{}
}

// NewBitPlaneWithBytes wraps caller-owned bytes as a borrowed BitPlane.
// Negative extents are absolutised; if either extent is zero the plane
// becomes empty and data is ignored. Otherwise rowBytes = ceil(cx/8) and
// the caller must guarantee len(data) >= rowBytes*cy — ErrBufferTooSmall is
// returned (with an empty plane) if that precondition is violated, rather
// than silently reading or writing past the end of data during a later
// blit.
func NewBitPlaneWithBytes(cx, cy int, data []byte) (*BitPlane, error) {
	cx, cy = abs(cx), abs(cy)
	if cx == 0 || cy == 0 {
		return &BitPlane{}, nil
	}
	rowBytes := rowBytesFor(cx)
	if len(data) < rowBytes*cy {
		return &BitPlane{}, ErrBufferTooSmall
	}
	return &BitPlane{
		width:    cx,
		height:   cy,
		rowBytes: rowBytes,
		store:    data,
		owned:    false,
	}, nil
}

// Clone copies a BitPlane: if the source owns its storage, the bytes are
// duplicated into a freshly allocated buffer; if the source borrows, the
// clone shares the same borrowed slice and remains borrowing. Cloning an
// empty plane yields another empty plane.
//
// Unlike spec.md's C++ copy constructor, Clone cannot fail partway through
// in Go: make either succeeds or the runtime aborts the process, so there
// is no partial-failure outcome worth threading an error return through
// (see SPEC_FULL.md Part A §9, open question (a)).
func (p *BitPlane) Clone() *BitPlane {
	if p.width == 0 || p.height == 0 {
		return &BitPlane{}
	}
	if !p.owned {
		return &BitPlane{
			width: p.width, height: p.height, rowBytes: p.rowBytes,
			store: p.store, owned: false,
		}
	}
	data := make([]byte, len(p.store))
	copy(data, p.store)
	return &BitPlane{
		width: p.width, height: p.height, rowBytes: p.rowBytes,
		store: data, owned: true,
	}
}

// Create allocates new owned storage sized for a cx by cy plane, dropping
// any storage this BitPlane previously owned or borrowed. Negative extents
// are absolutised; a non-positive result after absolutisation leaves the
// plane empty and returns false.
func (p *BitPlane) Create(cx, cy int) bool {
	cx, cy = abs(cx), abs(cy)
	if cx <= 0 || cy <= 0 {
		Logger().Warn("monobit: Create rejected non-positive extent", "cx", cx, "cy", cy)
		*p = BitPlane{}
		return false
	}
	rowBytes := rowBytesFor(cx)
	p.width = cx
	p.height = cy
	p.rowBytes = rowBytes
	p.store = make([]byte, rowBytes*cy)
	p.owned = true
	return true
}

// Width returns the plane's width in pixels.
func (p *BitPlane) Width() int { return p.width }

// Height returns the plane's height in pixels.
func (p *BitPlane) Height() int { return p.height }

// RowBytes returns the number of scan bytes per row, ceil(width/8).
func (p *BitPlane) RowBytes() int { return p.rowBytes }

// FindBits returns the byte offset within store of the byte containing
// pixel (x, y). It performs no bounds checking, matching spec.md §6's
// bits(x, y) contract.
func (p *BitPlane) FindBits(x, y int) int {
	return p.rowBytes*y + (x >> 3)
}

// GetPixel reads a single pixel by performing the 1x1 srcCopy blit spec.md
// §4.4 describes as the normative way to read back a pixel: blit (x, y)
// into a one-byte scratch plane and inspect its top bit. Returns false
// (black) if the coordinate lies outside the plane.
func (p *BitPlane) GetPixel(x, y int) bool {
	var scratch BitPlane
	scratch.Create(1, 1)
	if !scratch.BitBlt(0, 0, 1, 1, p, x, y, RopSrcCopy) {
		return false
	}
	return scratch.store[0]&0x80 != 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func rowBytesFor(width int) int {
	return (width + 7) / 8
}
