// Package sponge provides the mixing steps of a sponge duplex over tbit
// spans: absorbing data into a state, squeezing data out of it, and the
// four encrypt/decrypt couplings between data and state.
//
// The package deliberately stops short of a full sponge: it has no
// permutation and no rate/capacity split. Callers own the state span,
// apply these combinators to its rate portion, and run their permutation
// of choice between commits. The examples directory shows a complete
// duplex built this way.
//
// Every combinator comes in two flavors. Overwrite flavors replace state
// tbits with data (or with its group sum) and suit alphabets mixed by
// substitution; xor flavors mix by group addition and leave recovery to
// the inverse operation. For binary spans both additions are XOR.
//
// The data and output arguments of one call may alias each other, so
// in-place encryption is a matter of passing the same span twice. The
// state must not overlap the data arguments.
package sponge
