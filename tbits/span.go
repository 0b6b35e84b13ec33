package tbits

import "errors"

// ErrSpanRange is returned when a requested range does not fit its storage.
var ErrSpanRange = errors.New("tbits: span out of range")

// Span is a view of n consecutive tbits starting at a tbit offset inside a
// word slice. The offset need not be word aligned. Spans are small values;
// copying one aliases the same storage.
type Span[W, T comparable] struct {
	enc   Encoding[W, T]
	words []W
	off   int
	n     int
}

// NewSpan views n tbits of words starting at tbit offset off. It returns
// ErrSpanRange when the range does not lie within len(words)*Size tbits.
func NewSpan[W, T comparable](e Encoding[W, T], words []W, off, n int) (Span[W, T], error) {
	total := len(words) * e.Size()
	if off < 0 || n < 0 || off > total || n > total-off {
		return Span[W, T]{}, ErrSpanRange
	}
	return Span[W, T]{enc: e, words: words, off: off, n: n}, nil
}

// Len returns the number of tbits in the span.
func (s Span[W, T]) Len() int { return s.n }

// Offset returns the tbit offset of the span within its storage.
func (s Span[W, T]) Offset() int { return s.off }

// Words returns the backing word slice. Writes through the slice are
// visible to the span and vice versa.
func (s Span[W, T]) Words() []W { return s.words }

// Enc returns the span's encoding.
func (s Span[W, T]) Enc() Encoding[W, T] { return s.enc }

// At returns the tbit at index i. It panics when i is outside [0, Len).
func (s Span[W, T]) At(i int) T {
	if i < 0 || i >= s.n {
		panic("tbits: span index out of range")
	}
	return Get(s.enc, s.off+i, s.words)
}

// Set stores t at index i. It panics when i is outside [0, Len).
func (s Span[W, T]) Set(i int, t T) {
	if i < 0 || i >= s.n {
		panic("tbits: span index out of range")
	}
	Put(s.enc, s.off+i, s.words, t)
}

// Sub returns the subspan of n tbits starting at index off, sharing the
// receiver's storage. It returns ErrSpanRange when the range does not lie
// within the receiver.
func (s Span[W, T]) Sub(off, n int) (Span[W, T], error) {
	if off < 0 || n < 0 || off > s.n || n > s.n-off {
		return Span[W, T]{}, ErrSpanRange
	}
	return Span[W, T]{enc: s.enc, words: s.words, off: s.off + off, n: n}, nil
}

// CopyFrom copies min(s.Len, src.Len) tbits from src into s and returns the
// count. Copying a span onto itself is the identity; see Copy for when
// overlapping storage is safe.
func (s Span[W, T]) CopyFrom(src Span[W, T]) int {
	n := min(s.n, src.n)
	Copy(s.enc, n, src.off, src.words, s.off, s.words)
	return n
}

// Equal reports whether both spans hold the same tbits. Spans of different
// lengths are never equal.
func (s Span[W, T]) Equal(o Span[W, T]) bool {
	return s.n == o.n && Equal(s.enc, s.n, s.off, s.words, o.off, o.words)
}

// Zero sets every tbit of the span to the zero symbol.
func (s Span[W, T]) Zero() {
	SetZero(s.enc, s.n, s.off, s.words)
}

// ToTbits returns the span's tbits as a fresh slice.
func (s Span[W, T]) ToTbits() []T {
	ts := make([]T, s.n)
	ToTbits(s.enc, s.n, s.off, s.words, ts)
	return ts
}

// FromTbits fills the span from ts, writing min(s.Len, len(ts)) tbits, and
// returns the count.
func (s Span[W, T]) FromTbits(ts []T) int {
	n := min(s.n, len(ts))
	FromTbits(s.enc, n, s.off, s.words, ts)
	return n
}
