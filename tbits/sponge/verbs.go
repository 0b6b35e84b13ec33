package sponge

import "github.com/calebren/tbits/tbits"

// algebra returns the span's encoding with its group operations, panicking
// when the alphabet does not carry them.
func algebra[W, T comparable](s tbits.Span[W, T]) tbits.SpongeEncoding[W, T] {
	e, ok := s.Enc().(tbits.SpongeEncoding[W, T])
	if !ok {
		panic("sponge: span encoding does not provide the tbit algebra")
	}
	return e
}

// AbsorbOverwrite absorbs data by replacing state tbits with it. It
// returns the number of tbits absorbed, the shorter of the two lengths.
func AbsorbOverwrite[W, T comparable](state, data tbits.Span[W, T]) int {
	return state.CopyFrom(data)
}

// AbsorbXor absorbs data by adding it into the state. It returns the
// number of tbits absorbed, the shorter of the two lengths.
func AbsorbXor[W, T comparable](state, data tbits.Span[W, T]) int {
	n := min(state.Len(), data.Len())
	Add(algebra(state), state.Offset(), state.Words(), n, data.Offset(), data.Words())
	return n
}

// SqueezeOverwrite copies state tbits into out and zeroes the tbits it
// exposed, consuming that part of the state. It returns the number of
// tbits squeezed, the shorter of the two lengths.
func SqueezeOverwrite[W, T comparable](state, out tbits.Span[W, T]) int {
	n := min(state.Len(), out.Len())
	e := state.Enc()
	tbits.Copy(e, n, state.Offset(), state.Words(), out.Offset(), out.Words())
	tbits.SetZero(e, n, state.Offset(), state.Words())
	return n
}

// SqueezeXor copies state tbits into out, leaving the state untouched. It
// returns the number of tbits squeezed, the shorter of the two lengths.
func SqueezeXor[W, T comparable](state, out tbits.Span[W, T]) int {
	return out.CopyFrom(state)
}

// SqueezeEqOverwrite reports whether data matches the tbits that
// SqueezeOverwrite would have produced. The compared state tbits are
// zeroed whether or not they match, so the state evolves exactly as on the
// squeezing side and the comparison leaks nothing through it.
func SqueezeEqOverwrite[W, T comparable](state, data tbits.Span[W, T]) bool {
	n := min(state.Len(), data.Len())
	e := state.Enc()
	eq := tbits.Equal(e, n, state.Offset(), state.Words(), data.Offset(), data.Words())
	tbits.SetZero(e, n, state.Offset(), state.Words())
	return eq
}

// SqueezeEqXor reports whether data matches the tbits that SqueezeXor
// would have produced, leaving the state untouched.
func SqueezeEqXor[W, T comparable](state, data tbits.Span[W, T]) bool {
	n := min(state.Len(), data.Len())
	return tbits.Equal(state.Enc(), n, state.Offset(), state.Words(), data.Offset(), data.Words())
}

// EncryptOverwrite encrypts plaintext into ciphertext, replacing state
// tbits with the plaintext: y = x + s, then s = x. The two data spans may
// be the same span for in-place encryption. It returns the number of tbits
// processed, the shortest of the three lengths.
func EncryptOverwrite[W, T comparable](state, plaintext, ciphertext tbits.Span[W, T]) int {
	n := min(state.Len(), plaintext.Len(), ciphertext.Len())
	SetXAdd(algebra(state), state.Offset(), state.Words(), n,
		plaintext.Offset(), plaintext.Words(), ciphertext.Offset(), ciphertext.Words())
	return n
}

// DecryptOverwrite inverts EncryptOverwrite: x = y - s, then s = x. The
// two data spans may be the same span. It returns the number of tbits
// processed, the shortest of the three lengths.
func DecryptOverwrite[W, T comparable](state, ciphertext, plaintext tbits.Span[W, T]) int {
	n := min(state.Len(), ciphertext.Len(), plaintext.Len())
	SetXSub(algebra(state), state.Offset(), state.Words(), n,
		ciphertext.Offset(), ciphertext.Words(), plaintext.Offset(), plaintext.Words())
	return n
}

// EncryptXor encrypts plaintext into ciphertext, replacing state tbits
// with the ciphertext: y = x + s, then s = y. The two data spans may be
// the same span. It returns the number of tbits processed, the shortest of
// the three lengths.
func EncryptXor[W, T comparable](state, plaintext, ciphertext tbits.Span[W, T]) int {
	n := min(state.Len(), plaintext.Len(), ciphertext.Len())
	SetYAdd(algebra(state), state.Offset(), state.Words(), n,
		plaintext.Offset(), plaintext.Words(), ciphertext.Offset(), ciphertext.Words())
	return n
}

// DecryptXor inverts EncryptXor: x = y - s, then s = y. The two data spans
// may be the same span. It returns the number of tbits processed, the
// shortest of the three lengths.
func DecryptXor[W, T comparable](state, ciphertext, plaintext tbits.Span[W, T]) int {
	n := min(state.Len(), ciphertext.Len(), plaintext.Len())
	SetYSub(algebra(state), state.Offset(), state.Words(), n,
		ciphertext.Offset(), ciphertext.Words(), plaintext.Offset(), plaintext.Words())
	return n
}
