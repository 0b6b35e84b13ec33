package trinary

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/calebren/tbits/tbits"
)

// TritsPerChar is the number of trits one tryte character encodes.
const TritsPerChar = 3

var (
	ErrChar   = errors.New("trinary: not a tryte character")
	ErrRange  = errors.New("trinary: value out of range")
	ErrLength = errors.New("trinary: length mismatch")
)

// tryteAlphabet maps a tryte value to its character: values 0..13 map to
// '9','A'..'M' directly, values -13..-1 map to 'N'..'Z' after adding 27.
const tryteAlphabet = "9ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ToString renders the span as trytes, one character per three trits with
// the least significant trit first inside each character. A trailing group
// of k < 3 trits always yields a character whose value fits k trits.
func ToString[W comparable](s tbits.Span[W, Trit]) string {
	ts := s.ToTbits()
	var b strings.Builder
	b.Grow((len(ts) + TritsPerChar - 1) / TritsPerChar)
	for i := 0; i < len(ts); i += TritsPerChar {
		k := min(TritsPerChar, len(ts)-i)
		v := 0
		for j := k - 1; j >= 0; j-- {
			v = v*3 + int(ts[i+j])
		}
		if v < 0 {
			v += 27
		}
		b.WriteByte(tryteAlphabet[v])
	}
	return b.String()
}

// FromString fills the span from a tryte string produced the way ToString
// renders it. The string must hold exactly one character per started group
// of three trits; a character carrying the trailing k < 3 trits must hold a
// value representable in k balanced trits.
func FromString[W comparable](str string, s tbits.Span[W, Trit]) error {
	n := s.Len()
	if len(str) != (n+TritsPerChar-1)/TritsPerChar {
		return fmt.Errorf("%w: %d characters for %d trits", ErrLength, len(str), n)
	}
	ts := make([]Trit, n)
	for i := 0; i < len(str); i++ {
		v := strings.IndexByte(tryteAlphabet, str[i])
		if v < 0 {
			return fmt.Errorf("%w: %q", ErrChar, str[i])
		}
		if v > 13 {
			v -= 27
		}
		d := i * TritsPerChar
		k := min(TritsPerChar, n-d)
		if lim := (pow3(k) - 1) / 2; v > lim || v < -lim {
			return fmt.Errorf("%w: %q holds more than %d trailing trits", ErrRange, str[i], k)
		}
		for j := 0; j < k; j++ {
			r := v % 3
			v /= 3
			if r > 1 {
				r -= 3
				v++
			} else if r < -1 {
				r += 3
				v--
			}
			ts[d+j] = Trit(r)
		}
	}
	s.FromTbits(ts)
	return nil
}

func pow3(k int) int {
	v := 1
	for ; k > 0; k-- {
		v *= 3
	}
	return v
}

// PutInt writes v into the span in balanced ternary, least significant
// trit first. It returns ErrRange when v does not fit in Len trits; spans
// of 41 trits or more hold every int64.
func PutInt[W comparable](s tbits.Span[W, Trit], v int64) error {
	n := s.Len()
	ts := make([]Trit, n)
	rest := v
	for i := 0; i < n && rest != 0; i++ {
		r := rest % 3
		rest /= 3
		if r > 1 {
			r -= 3
			rest++
		} else if r < -1 {
			r += 3
			rest--
		}
		ts[i] = Trit(r)
	}
	if rest != 0 {
		return fmt.Errorf("%w: %d does not fit in %d trits", ErrRange, v, n)
	}
	s.FromTbits(ts)
	return nil
}

// GetInt reads the span as a balanced ternary integer, least significant
// trit first. It returns ErrRange when the value overflows int64; 40 trits
// is the widest span that can never overflow.
func GetInt[W comparable](s tbits.Span[W, Trit]) (int64, error) {
	// Largest v with 3v+t still in range for every trit t, and the one
	// value below it reachable with a trailing +1 trit.
	const (
		maxQ = math.MaxInt64 / 3
		minQ = math.MinInt64/3 - 1
	)
	ts := s.ToTbits()
	var v int64
	for i := len(ts) - 1; i >= 0; i-- {
		t := ts[i]
		if v > maxQ || v < minQ || (v == minQ && t != One) {
			return 0, fmt.Errorf("%w: value overflows int64", ErrRange)
		}
		v = v*3 + int64(t)
	}
	return v, nil
}
