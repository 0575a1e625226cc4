package monobit

import "errors"

// ErrBufferTooSmall is returned by NewBitPlaneWithBytes when the supplied
// buffer is smaller than rowBytes(cx)*cy, the minimum size the wrapped
// BitPlane needs to address every pixel in its logical extent.
var ErrBufferTooSmall = errors.New("monobit: buffer too small for requested extent")
