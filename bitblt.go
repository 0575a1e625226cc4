package monobit

import "fmt"

// BitBlt performs a binary bit-block transfer: it composes the cx by cy
// rectangle at (xSrc, ySrc) in src onto the rectangle at (x, y) in p under
// the chosen raster op. Both rectangles are clipped against their
// respective plane's extent before anything is touched; a rectangle that
// ends up with no area after clipping is a no-op that returns false without
// mutating p. It is the caller's responsibility not to alias p and src's
// backing storage except in the self-source unary idiom BitBlt1 relies on.
//
// rop must be in 0..15; an out-of-range value is a programming error and
// panics rather than returning false, matching spec.md §4.5's treatment of
// out-of-band rop2 codes as assertions, not recoverable failures.
func (p *BitPlane) BitBlt(x, y, cx, cy int, src *BitPlane, xSrc, ySrc int, rop Rop2) bool {
	if rop > RopWhite {
		panic(fmt.Sprintf("monobit: invalid Rop2 %d", rop))
	}
	if p.width == 0 || p.height == 0 || src.width == 0 || src.height == 0 {
		return false
	}

	// 1. Extent normalisation.
	if cx < 0 {
		cx = -cx
		x -= cx
		xSrc -= cx
	}
	if cy < 0 {
		cy = -cy
		y -= cy
		ySrc -= cy
	}

	// 2-3. Clip in X.
	xOff := max(0, max(-x, -xSrc))
	if xOff >= cx {
		return false
	}
	x += xOff
	xSrc += xOff
	cx -= xOff
	cx = min(cx, p.width-x, src.width-xSrc)
	if cx <= 0 {
		return false
	}

	// 4. Clip in Y, symmetrical to X.
	yOff := max(0, max(-y, -ySrc))
	if yOff >= cy {
		return false
	}
	y += yOff
	ySrc += yOff
	cy -= yOff
	cy = min(cy, p.height-y, src.height-ySrc)
	if cy <= 0 {
		return false
	}

	// 5. Phase selection.
	shiftCount := (x & 7) - (xSrc & 7)
	fetcher := newPhaseAlign(src.store, src.FindBits(xSrc, ySrc), shiftCount)

	// 6. Edge masks.
	xMax := x + cx - 1
	leftMask := byte(0xFF) >> uint(x&7)
	rightMask := byte(0xFF) << uint(7-(xMax&7))
	extraBytes := (xMax >> 3) - (x >> 3)

	// 7. Row strides.
	dstStride := p.rowBytes - 1 - extraBytes
	srcStride := src.rowBytes - 1 - extraBytes

	Logger().Debug("bitblt",
		"x", x, "y", y, "cx", cx, "cy", cy,
		"xSrc", xSrc, "ySrc", ySrc, "rop", rop, "phase", fetcher.kind)

	// 8. Inner loop.
	b := &blt{dstStore: p.store, dstPos: p.FindBits(x, y), fetcher: fetcher, op: rop}
	for row := 0; row < cy; row++ {
		fetcher.prefetch()
		if extraBytes == 0 {
			b.fetchLogicStore(leftMask & rightMask)
		} else {
			b.fetchLogicStore(leftMask)
			for i := 0; i < extraBytes-1; i++ {
				b.fetchLogicStoreFull()
			}
			b.fetchLogicStore(rightMask)
		}
		b.dstPos += dstStride
		fetcher.advanceRow(srcStride)
	}

	return true
}

// BitBlt1 performs a unary bit-block transfer: it delegates to BitBlt with
// src = p, xSrc = x, ySrc = y, and the binary op rop.AsRop2(). The three
// unary ops never reference S (see ropNeedsSource), so the self-aliasing
// this delegation creates never actually reads through the alias.
func (p *BitPlane) BitBlt1(x, y, cx, cy int, rop Rop1) bool {
	return p.BitBlt(x, y, cx, cy, p, x, y, rop.AsRop2())
}
