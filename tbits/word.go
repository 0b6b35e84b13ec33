package tbits

import "slices"

// Get returns the tbit at offset d in the packed words p.
func Get[W, T comparable](e Encoding[W, T], d int, p []W) T {
	size := e.Size()
	v := make([]T, size)
	e.Unpack(p[d/size], v)
	return v[d%size]
}

// Put stores t at offset d in the packed words p, preserving the other
// tbits of the containing word.
func Put[W, T comparable](e Encoding[W, T], d int, p []W, t T) {
	size := e.Size()
	w := d / size
	v := make([]T, size)
	e.Unpack(p[w], v)
	v[d%size] = t
	p[w] = e.Pack(v)
}

// Visit decodes the n tbits at offset d in p and passes them to f in order:
// a partial head chunk when d is not word aligned, one full chunk per
// interior word, and a partial tail chunk. f must not retain its argument;
// the backing array is reused between calls.
func Visit[W, T comparable](e Encoding[W, T], n, d int, p []W, f func([]T)) {
	if n == 0 {
		return
	}
	size := e.Size()
	w, r := d/size, d%size
	v := make([]T, size)
	if r != 0 {
		e.Unpack(p[w], v)
		k := min(n, size-r)
		f(v[r : r+k])
		n -= k
		w++
	}
	for n >= size {
		e.Unpack(p[w], v)
		f(v)
		n -= size
		w++
	}
	if n > 0 {
		e.Unpack(p[w], v)
		f(v[:n])
	}
}

// Update decodes the n tbits at offset d in p, lets f rewrite each chunk in
// place, and packs the result back. Tbits of the edge words outside the
// range are preserved.
func Update[W, T comparable](e Encoding[W, T], n, d int, p []W, f func([]T)) {
	if n == 0 {
		return
	}
	size := e.Size()
	w, r := d/size, d%size
	v := make([]T, size)
	if r != 0 {
		e.Unpack(p[w], v)
		k := min(n, size-r)
		f(v[r : r+k])
		p[w] = e.Pack(v)
		n -= k
		w++
	}
	for n >= size {
		e.Unpack(p[w], v)
		f(v)
		p[w] = e.Pack(v)
		n -= size
		w++
	}
	if n > 0 {
		e.Unpack(p[w], v)
		f(v[:n])
		p[w] = e.Pack(v)
	}
}

// Produce is Update for visitors that fully overwrite their chunk: interior
// words are packed from whatever f writes without being decoded first. The
// partial edge words are still decoded so tbits outside the range survive.
func Produce[W, T comparable](e Encoding[W, T], n, d int, p []W, f func([]T)) {
	if n == 0 {
		return
	}
	size := e.Size()
	w, r := d/size, d%size
	v := make([]T, size)
	if r != 0 {
		e.Unpack(p[w], v)
		k := min(n, size-r)
		f(v[r : r+k])
		p[w] = e.Pack(v)
		n -= k
		w++
	}
	for n >= size {
		f(v)
		p[w] = e.Pack(v)
		n -= size
		w++
	}
	if n > 0 {
		e.Unpack(p[w], v)
		f(v[:n])
		p[w] = e.Pack(v)
	}
}

// ToTbits decodes the n tbits at offset d in p into ts.
func ToTbits[W, T comparable](e Encoding[W, T], n, d int, p []W, ts []T) {
	Visit(e, n, d, p, func(v []T) {
		copy(ts, v)
		ts = ts[len(v):]
	})
}

// FromTbits encodes the first n tbits of ts into p at offset d.
func FromTbits[W, T comparable](e Encoding[W, T], n, d int, p []W, ts []T) {
	Produce(e, n, d, p, func(v []T) {
		copy(v, ts)
		ts = ts[len(v):]
	})
}

// Copy copies n tbits from offset dx in x to offset dy in y. When the two
// offsets share the same phase within a word the interior is copied word
// at a time and the ranges must not partially overlap; copying a range
// onto itself is the identity. The misaligned path stages through a
// symbol buffer and tolerates any overlap.
func Copy[W, T comparable](e Encoding[W, T], n, dx int, x []W, dy int, y []W) {
	if n == 0 {
		return
	}
	size := e.Size()
	rx, ry := dx%size, dy%size
	if rx != ry {
		ts := make([]T, n)
		ToTbits(e, n, dx, x, ts)
		FromTbits(e, n, dy, y, ts)
		return
	}
	wx, wy := dx/size, dy/size
	xs := make([]T, size)
	ys := make([]T, size)
	if rx != 0 {
		k := min(n, size-rx)
		e.Unpack(x[wx], xs)
		e.Unpack(y[wy], ys)
		copy(ys[ry:ry+k], xs[rx:rx+k])
		y[wy] = e.Pack(ys)
		n -= k
		wx++
		wy++
	}
	if full := n / size; full > 0 {
		copy(y[wy:wy+full], x[wx:wx+full])
		wx += full
		wy += full
		n -= full * size
	}
	if n > 0 {
		e.Unpack(x[wx], xs)
		e.Unpack(y[wy], ys)
		copy(ys[:n], xs[:n])
		y[wy] = e.Pack(ys)
	}
}

// SetZero sets the n tbits at offset d in p to the zero symbol. Interior
// words are stored as ZeroWord without decoding.
func SetZero[W, T comparable](e Encoding[W, T], n, d int, p []W) {
	if n == 0 {
		return
	}
	size := e.Size()
	w, r := d/size, d%size
	z := e.ZeroTbit()
	v := make([]T, size)
	if r != 0 {
		e.Unpack(p[w], v)
		k := min(n, size-r)
		for i := r; i < r+k; i++ {
			v[i] = z
		}
		p[w] = e.Pack(v)
		n -= k
		w++
	}
	zw := e.ZeroWord()
	for n >= size {
		p[w] = zw
		n -= size
		w++
	}
	if n > 0 {
		e.Unpack(p[w], v)
		for i := 0; i < n; i++ {
			v[i] = z
		}
		p[w] = e.Pack(v)
	}
}

// Equal reports whether the n tbits at offset dx in x equal the n tbits at
// offset dy in y. Interior words of phase-aligned ranges are compared as
// raw words with an early exit on the first mismatch; encodings produce one
// canonical word per symbol vector, so word equality and symbol equality
// coincide.
func Equal[W, T comparable](e Encoding[W, T], n, dx int, x []W, dy int, y []W) bool {
	if n == 0 {
		return true
	}
	size := e.Size()
	rx, ry := dx%size, dy%size
	if rx != ry {
		xs := make([]T, n)
		ys := make([]T, n)
		ToTbits(e, n, dx, x, xs)
		ToTbits(e, n, dy, y, ys)
		return slices.Equal(xs, ys)
	}
	wx, wy := dx/size, dy/size
	xs := make([]T, size)
	ys := make([]T, size)
	if rx != 0 {
		k := min(n, size-rx)
		e.Unpack(x[wx], xs)
		e.Unpack(y[wy], ys)
		if !slices.Equal(xs[rx:rx+k], ys[ry:ry+k]) {
			return false
		}
		n -= k
		wx++
		wy++
	}
	for n >= size {
		if x[wx] != y[wy] {
			return false
		}
		n -= size
		wx++
		wy++
	}
	if n > 0 {
		e.Unpack(x[wx], xs)
		e.Unpack(y[wy], ys)
		return slices.Equal(xs[:n], ys[:n])
	}
	return true
}
