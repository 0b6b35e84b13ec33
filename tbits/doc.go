// Package tbits provides tbit-addressable storage over packed machine words.
//
// A tbit is the elementary symbol of the chosen alphabet: a bit for binary
// encodings, a balanced trit for ternary ones. Words pack a fixed number of
// tbits (the encoding's SIZE), and every operation in this package addresses
// storage by tbit offset rather than by word, so spans may start and end
// anywhere inside a word.
//
// Design goals:
//   - One generic implementation of get/put, traversal, copy, fill and
//     compare, shared by every alphabet through the Encoding capability
//   - No decode or encode of words outside the addressed range
//   - An aligned fast path for bulk copy/compare (raw word operations for
//     the interior, read-modify-write only at the two edges)
//   - Bounds checked at span construction, so span operations never fault
//
// The sponge mixing combinators built on these primitives live in the
// sponge subpackage; concrete alphabets live in binary and trinary.
package tbits
