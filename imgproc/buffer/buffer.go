package buffer

import "unsafe"

// Alignment is the byte boundary that buffers allocated here start on.
const Alignment = 64

const wordsPerLine = Alignment / int(unsafe.Sizeof(float64(0)))

// Buffer holds float64 samples, typically one kernel or one image plane.
type Buffer struct {
	s []float64
}

// New allocates n zeroed samples starting on an Alignment boundary.
func New(n int) *Buffer {
	return &Buffer{s: allocAligned(n)}
}

// FromSlice wraps s without copying. Its alignment is whatever s has.
func FromSlice(s []float64) *Buffer {
	return &Buffer{s: s}
}

// allocAligned over-allocates by one cache line and slices off the
// misaligned head. The capacity is clipped so appends cannot run into the
// padding.
func allocAligned(n int) []float64 {
	n = max(n, 0)
	raw := make([]float64, n+wordsPerLine)
	head := 0
	if mis := uintptr(unsafe.Pointer(unsafe.SliceData(raw))) % Alignment; mis != 0 {
		head = int(Alignment-mis) / int(unsafe.Sizeof(float64(0)))
	}
	return raw[head : head+n : head+n]
}

// Samples returns the backing slice.
func (b *Buffer) Samples() []float64 { return b.s }

// Len returns the number of samples.
func (b *Buffer) Len() int { return len(b.s) }

// IsAligned reports whether the first sample sits on an Alignment boundary.
// An empty buffer counts as aligned.
func (b *Buffer) IsAligned() bool {
	return len(b.s) == 0 || uintptr(unsafe.Pointer(unsafe.SliceData(b.s)))%Alignment == 0
}

// reset makes b hold n zeroed samples, reallocating only when the capacity
// is short.
func (b *Buffer) reset(n int) {
	if n > cap(b.s) {
		b.s = allocAligned(n)
		return
	}
	b.s = b.s[:max(n, 0)]
	clear(b.s)
}
