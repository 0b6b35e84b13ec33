// Package command names the operation vocabulary that message layers
// implement over a sponge context. Each interface is one verb of the
// message syntax; a context (a wrapper, a parser, a size calculator)
// implements the verbs it supports against its own field types, and
// message definitions compose them without knowing which context runs.
//
// The package declares capabilities only. Framing, link resolution,
// signature schemes and key management belong to the layers above.
package command

import "github.com/calebren/tbits/tbits/dump"

// Absorber handles fields that travel in clear and bind the sponge state.
type Absorber[F any] interface {
	Absorb(f F) error
}

// Squeezer produces sponge output into a field: tags, hashes, keystream.
type Squeezer[F any] interface {
	Squeeze(f F) error
}

// Masker handles fields encrypted and decrypted against the sponge state.
type Masker[F any] interface {
	Mask(f F) error
}

// Skipper handles fields that travel in clear without touching the state.
type Skipper[F any] interface {
	Skip(f F) error
}

// Committer closes the current block of operations: the context runs its
// permutation over the state so later output depends on everything
// absorbed so far.
type Committer interface {
	Commit() error
}

// Signer binds a signature over the current state hash with the given key.
type Signer[K, H any] interface {
	Sign(key K, hash H) error
}

// Encapsulator wraps a session secret for the given public key.
type Encapsulator[K, S any] interface {
	Encap(key K, secret S) error
}

// Forker runs cont against a copy of the context, leaving the receiver
// untouched. Branches of a message tree each fork the shared prefix.
type Forker[C any] interface {
	Fork(cont func(C) error) error
}

// Joiner absorbs the secret carried by a linked message identified by l.
type Joiner[L, S any] interface {
	Join(l L, s S) error
}

// Repeater applies f once per element of seq, in order, stopping at the
// first error.
type Repeater[I any] interface {
	Repeat(seq []I, f func(I) error) error
}

// Dumper emits a labeled checkpoint of the context state through the
// dump.Sink the context owner chose.
type Dumper interface {
	Dump(checkpoint string, fields ...dump.Field) error
}
