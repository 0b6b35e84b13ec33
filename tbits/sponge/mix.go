package sponge

import "github.com/calebren/tbits/tbits"

// cursor reads and writes single tbits through one scratch buffer, so the
// combinators below decode only the words they touch.
type cursor[W, T comparable] struct {
	e    tbits.SpongeEncoding[W, T]
	size int
	v    []T
}

func newCursor[W, T comparable](e tbits.SpongeEncoding[W, T]) cursor[W, T] {
	return cursor[W, T]{e: e, size: e.Size(), v: make([]T, e.Size())}
}

func (c cursor[W, T]) get(d int, p []W) T {
	c.e.Unpack(p[d/c.size], c.v)
	return c.v[d%c.size]
}

func (c cursor[W, T]) put(d int, p []W, t T) {
	w := d / c.size
	c.e.Unpack(p[w], c.v)
	c.v[d%c.size] = t
	p[w] = c.e.Pack(c.v)
}

// Add adds the n tbits at offset dx in x into the state at offset ds in s:
// s[i] += x[i].
func Add[W, T comparable](e tbits.SpongeEncoding[W, T], ds int, s []W, n, dx int, x []W) {
	c := newCursor(e)
	for i := 0; i < n; i++ {
		c.put(ds+i, s, e.Add(c.get(ds+i, s), c.get(dx+i, x)))
	}
}

// SetXAdd couples n data tbits with the state by addition, keeping the
// input in the state: y[i] = x[i] + s[i], then s[i] = x[i]. The x and y
// ranges may be the same; each input tbit is read before either write.
func SetXAdd[W, T comparable](e tbits.SpongeEncoding[W, T], ds int, s []W, n, dx int, x []W, dy int, y []W) {
	c := newCursor(e)
	for i := 0; i < n; i++ {
		tx := c.get(dx+i, x)
		ts := c.get(ds+i, s)
		c.put(ds+i, s, tx)
		c.put(dy+i, y, e.Add(tx, ts))
	}
}

// SetXSub inverts SetXAdd, keeping the recovered output in the state:
// x[i] = y[i] - s[i], then s[i] = x[i]. The y and x ranges may be the same.
func SetXSub[W, T comparable](e tbits.SpongeEncoding[W, T], ds int, s []W, n, dy int, y []W, dx int, x []W) {
	c := newCursor(e)
	for i := 0; i < n; i++ {
		ty := c.get(dy+i, y)
		ts := c.get(ds+i, s)
		tx := e.Sub(ty, ts)
		c.put(ds+i, s, tx)
		c.put(dx+i, x, tx)
	}
}

// SetYAdd couples n data tbits with the state by addition, keeping the sum
// in the state: y[i] = x[i] + s[i], then s[i] = y[i]. The x and y ranges
// may be the same.
func SetYAdd[W, T comparable](e tbits.SpongeEncoding[W, T], ds int, s []W, n, dx int, x []W, dy int, y []W) {
	c := newCursor(e)
	for i := 0; i < n; i++ {
		tx := c.get(dx+i, x)
		ts := c.get(ds+i, s)
		ty := e.Add(tx, ts)
		c.put(ds+i, s, ty)
		c.put(dy+i, y, ty)
	}
}

// SetYSub inverts SetYAdd, keeping the unrecovered input in the state:
// x[i] = y[i] - s[i], then s[i] = y[i]. The y and x ranges may be the same.
func SetYSub[W, T comparable](e tbits.SpongeEncoding[W, T], ds int, s []W, n, dy int, y []W, dx int, x []W) {
	c := newCursor(e)
	for i := 0; i < n; i++ {
		ty := c.get(dy+i, y)
		ts := c.get(ds+i, s)
		tx := e.Sub(ty, ts)
		c.put(ds+i, s, ty)
		c.put(dx+i, x, tx)
	}
}
