// Package binary implements the bit alphabet: tbits are bits, words are
// bytes packed least significant bit first, and the mixing algebra is XOR.
package binary

import "github.com/calebren/tbits/tbits"

// Bit is a single binary tbit with value 0 or 1.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

func (b Bit) String() string {
	if b == Zero {
		return "0"
	}
	return "1"
}

// Bytes packs eight bits into one byte, least significant bit first.
// It implements tbits.SpongeEncoding with XOR as both Add and Sub.
type Bytes struct{}

func (Bytes) Size() int      { return 8 }
func (Bytes) ZeroTbit() Bit  { return Zero }
func (Bytes) ZeroWord() byte { return 0 }

func (Bytes) Unpack(w byte, ts []Bit) {
	_ = ts[7]
	for i := 0; i < 8; i++ {
		ts[i] = Bit(w>>i) & 1
	}
}

func (Bytes) Pack(ts []Bit) byte {
	_ = ts[7]
	var w byte
	for i := 0; i < 8; i++ {
		w |= byte(ts[i]&1) << i
	}
	return w
}

func (Bytes) Add(x, y Bit) Bit { return x ^ y }
func (Bytes) Sub(x, y Bit) Bit { return x ^ y }

// NewSpan views n bits of p starting at bit offset off.
func NewSpan(p []byte, off, n int) (tbits.Span[byte, Bit], error) {
	return tbits.NewSpan[byte, Bit](Bytes{}, p, off, n)
}

// Make allocates zeroed storage for n bits and returns the spanning view.
func Make(n int) tbits.Span[byte, Bit] {
	s, _ := tbits.NewSpan[byte, Bit](Bytes{}, make([]byte, (n+7)/8), 0, n)
	return s
}
