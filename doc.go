// Package monobit provides a 1-bit-per-pixel raster engine: a monochrome
// bitmap type (BitPlane) and a bit-block transfer (blit) primitive that
// composes a source rectangle onto a destination rectangle under one of
// sixteen Boolean raster operations.
//
// # Overview
//
// monobit is a pure Go reimplementation of the classic BitBlt model found in
// early monochrome window systems: every pixel is one bit, and composition
// is a table of 16 Boolean functions of destination and source applied
// byte-at-a-time, with sub-byte phase alignment handled by a small
// carry-propagating shift pipeline.
//
// # Quick Start
//
//	import "github.com/gogpu/monobit"
//
//	dst := &monobit.BitPlane{}
//	dst.Create(64, 64)
//
//	src := &monobit.BitPlane{}
//	src.Create(8, 8)
//
//	dst.BitBlt(4, 4, 8, 8, src, 0, 0, monobit.RopSrcCopy)
//
// # Architecture
//
// The package is organized into three collaborating pieces, leaves first:
//   - PhaseAlign: bit-level source alignment (straight, right-shift, left-shift)
//   - Blt: per-byte fetch/logic/store dispatch over one of 16 raster ops
//   - BitPlane: storage, clipping, and the BitBlt/BitBlt1 entry points
//
// # Coordinate System
//
// Pixel (0,0) is the top-left corner. X increases right, Y increases down.
// Within a scan byte the most significant bit is the leftmost pixel.
//
// # Scope
//
// monobit implements exactly the 1bpp core: no colour, no multi-plane
// composition, no antialiasing, no compressed or on-disk formats, and no
// windowing integration. See SPEC_FULL.md in the repository root for the
// full rationale.
package monobit
