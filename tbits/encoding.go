package tbits

// Encoding packs tbits of symbol type T into machine words of type W.
// Implementations are stateless value types; all word functions in this
// package take the encoding as their first argument.
type Encoding[W, T comparable] interface {
	// Size reports how many tbits one word holds. It is a constant for a
	// given encoding and is at least 1.
	Size() int

	// ZeroTbit returns the zero symbol of the alphabet.
	ZeroTbit() T

	// ZeroWord returns the word whose every tbit is the zero symbol.
	ZeroWord() W

	// Unpack decodes w into ts[:Size()]. ts must have room for Size symbols.
	Unpack(w W, ts []T)

	// Pack encodes ts[:Size()] into a single word. Symbols beyond Size are
	// ignored.
	Pack(ts []T) W
}

// SpongeEncoding extends an Encoding with the symbol group operations the
// sponge combinators mix with: XOR for bits, addition modulo 3 for balanced
// trits. Sub is the inverse of Add in the second argument, so for all x, s:
// Sub(Add(x, s), s) == x.
type SpongeEncoding[W, T comparable] interface {
	Encoding[W, T]

	// Add returns the group sum of two symbols.
	Add(x, y T) T

	// Sub returns the group difference of two symbols.
	Sub(x, y T) T
}
