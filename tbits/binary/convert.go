package binary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/calebren/tbits/tbits"
)

// BitsPerChar is the number of bits one hexadecimal character encodes.
const BitsPerChar = 4

var (
	ErrChar   = errors.New("binary: not a hexadecimal character")
	ErrRange  = errors.New("binary: value out of range")
	ErrLength = errors.New("binary: length mismatch")
)

const hexAlphabet = "0123456789abcdef"

// ToString renders the span as hexadecimal, one character per four bits
// with the least significant bit first inside each character. A trailing
// group of k < 4 bits renders as a character below 1<<k.
func ToString(s tbits.Span[byte, Bit]) string {
	ts := s.ToTbits()
	var b strings.Builder
	b.Grow((len(ts) + BitsPerChar - 1) / BitsPerChar)
	for i := 0; i < len(ts); i += BitsPerChar {
		k := min(BitsPerChar, len(ts)-i)
		v := 0
		for j := 0; j < k; j++ {
			v |= int(ts[i+j]&1) << j
		}
		b.WriteByte(hexAlphabet[v])
	}
	return b.String()
}

// FromString fills the span from a hexadecimal string produced the way
// ToString renders it. The string must hold exactly one character per
// started group of four bits; a character carrying the trailing k < 4 bits
// must stay below 1<<k.
func FromString(str string, s tbits.Span[byte, Bit]) error {
	n := s.Len()
	if len(str) != (n+BitsPerChar-1)/BitsPerChar {
		return fmt.Errorf("%w: %d characters for %d bits", ErrLength, len(str), n)
	}
	ts := make([]Bit, n)
	for i := 0; i < len(str); i++ {
		v := hexVal(str[i])
		if v < 0 {
			return fmt.Errorf("%w: %q", ErrChar, str[i])
		}
		d := i * BitsPerChar
		k := min(BitsPerChar, n-d)
		if v >= 1<<k {
			return fmt.Errorf("%w: %q holds more than %d trailing bits", ErrRange, str[i], k)
		}
		for j := 0; j < k; j++ {
			ts[d+j] = Bit(v>>j) & 1
		}
	}
	s.FromTbits(ts)
	return nil
}

func hexVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// PutUint writes v into the span as unsigned binary, least significant bit
// first. It returns ErrRange when v does not fit in Len bits.
func PutUint(s tbits.Span[byte, Bit], v uint64) error {
	n := s.Len()
	if n < 64 && v>>uint(n) != 0 {
		return fmt.Errorf("%w: %d does not fit in %d bits", ErrRange, v, n)
	}
	ts := make([]Bit, n)
	for i := 0; i < n && i < 64; i++ {
		ts[i] = Bit(v>>uint(i)) & 1
	}
	s.FromTbits(ts)
	return nil
}

// GetUint reads the span as unsigned binary, least significant bit first.
// It returns ErrRange when a bit at index 64 or above is set.
func GetUint(s tbits.Span[byte, Bit]) (uint64, error) {
	var v uint64
	for i, t := range s.ToTbits() {
		if t == Zero {
			continue
		}
		if i >= 64 {
			return 0, fmt.Errorf("%w: bit %d set", ErrRange, i)
		}
		v |= 1 << uint(i)
	}
	return v, nil
}

// PutInt writes v into the span as two's complement, least significant bit
// first, extending the sign across any bits beyond 64. It returns ErrRange
// when v does not fit in Len bits.
func PutInt(s tbits.Span[byte, Bit], v int64) error {
	n := s.Len()
	if n == 0 {
		if v != 0 {
			return fmt.Errorf("%w: %d does not fit in 0 bits", ErrRange, v)
		}
		return nil
	}
	if n < 64 && v>>uint(n-1) != 0 && v>>uint(n-1) != -1 {
		return fmt.Errorf("%w: %d does not fit in %d bits", ErrRange, v, n)
	}
	ts := make([]Bit, n)
	for i := 0; i < n; i++ {
		ts[i] = Bit(v>>uint(min(i, 63))) & 1
	}
	s.FromTbits(ts)
	return nil
}

// GetInt reads the span as a two's complement integer, least significant
// bit first. Bits at index 64 and above must all repeat the sign bit,
// otherwise ErrRange.
func GetInt(s tbits.Span[byte, Bit]) (int64, error) {
	ts := s.ToTbits()
	n := len(ts)
	if n == 0 {
		return 0, nil
	}
	var u uint64
	for i := 0; i < n && i < 64; i++ {
		u |= uint64(ts[i]&1) << uint(i)
	}
	sign := ts[min(n, 64)-1] & 1
	if n < 64 && sign == One {
		u |= ^uint64(0) << uint(n)
	}
	for i := 64; i < n; i++ {
		if ts[i]&1 != sign {
			return 0, fmt.Errorf("%w: bit %d disagrees with the sign", ErrRange, i)
		}
	}
	return int64(u), nil
}
