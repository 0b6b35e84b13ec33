// Package trinary implements the balanced ternary alphabet: tbits are
// trits with values -1, 0 and +1, and the mixing algebra is addition
// modulo 3.
//
// Two word shapes are provided. T1B1 stores one trit per int8 word and is
// the natural shape for computation. T5B1 packs five trits per byte for
// dense storage; 3^5 = 243 of the 256 byte values are valid words, and the
// all-zero word is the byte 121, not the zero byte.
package trinary

import "github.com/calebren/tbits/tbits"

// Trit is a single balanced ternary tbit.
type Trit int8

const (
	NegOne Trit = -1
	Zero   Trit = 0
	One    Trit = 1
)

func (t Trit) String() string {
	switch t {
	case NegOne:
		return "-"
	case One:
		return "+"
	}
	return "0"
}

// tritAdd returns x+y reduced to the balanced range.
func tritAdd(x, y Trit) Trit {
	s := x + y
	if s > One {
		return s - 3
	}
	if s < NegOne {
		return s + 3
	}
	return s
}

func tritSub(x, y Trit) Trit { return tritAdd(x, -y) }

// T1B1 stores one trit per int8 word. It implements tbits.SpongeEncoding.
type T1B1 struct{}

func (T1B1) Size() int      { return 1 }
func (T1B1) ZeroTbit() Trit { return Zero }
func (T1B1) ZeroWord() int8 { return 0 }

func (T1B1) Unpack(w int8, ts []Trit) { ts[0] = Trit(w) }
func (T1B1) Pack(ts []Trit) int8      { return int8(ts[0]) }

func (T1B1) Add(x, y Trit) Trit { return tritAdd(x, y) }
func (T1B1) Sub(x, y Trit) Trit { return tritSub(x, y) }

// T5B1 packs five trits t0..t4 into the byte (t0+1) + 3*(t1+1) + 9*(t2+1)
// + 27*(t3+1) + 81*(t4+1). It implements tbits.SpongeEncoding. Unpack is
// defined for the valid words 0 through 242 only.
type T5B1 struct{}

func (T5B1) Size() int      { return 5 }
func (T5B1) ZeroTbit() Trit { return Zero }
func (T5B1) ZeroWord() byte { return 121 }

func (T5B1) Unpack(w byte, ts []Trit) {
	_ = ts[4]
	v := int(w)
	for i := 0; i < 5; i++ {
		ts[i] = Trit(v%3 - 1)
		v /= 3
	}
}

func (T5B1) Pack(ts []Trit) byte {
	v := 0
	for i := 4; i >= 0; i-- {
		v = v*3 + int(ts[i]) + 1
	}
	return byte(v)
}

func (T5B1) Add(x, y Trit) Trit { return tritAdd(x, y) }
func (T5B1) Sub(x, y Trit) Trit { return tritSub(x, y) }

// NewSpan views n trits of p starting at trit offset off, one trit per
// int8 word.
func NewSpan(p []int8, off, n int) (tbits.Span[int8, Trit], error) {
	return tbits.NewSpan[int8, Trit](T1B1{}, p, off, n)
}

// Make allocates zeroed storage for n trits and returns the spanning view.
func Make(n int) tbits.Span[int8, Trit] {
	s, _ := tbits.NewSpan[int8, Trit](T1B1{}, make([]int8, n), 0, n)
	return s
}

// NewPackedSpan views n trits of p starting at trit offset off, five trits
// per byte. Every byte of p must be a valid T5B1 word; in particular fresh
// storage must be filled with the zero word 121, as a zero byte decodes to
// five -1 trits. MakePacked allocates storage that way.
func NewPackedSpan(p []byte, off, n int) (tbits.Span[byte, Trit], error) {
	return tbits.NewSpan[byte, Trit](T5B1{}, p, off, n)
}

// MakePacked allocates zero-word storage for n trits packed five per byte
// and returns the spanning view.
func MakePacked(n int) tbits.Span[byte, Trit] {
	p := make([]byte, (n+4)/5)
	for i := range p {
		p[i] = 121
	}
	s, _ := tbits.NewSpan[byte, Trit](T5B1{}, p, 0, n)
	return s
}
