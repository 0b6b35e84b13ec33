package sponge

import (
	"bytes"
	"slices"
	"testing"

	"golang.org/x/crypto/blake2b"

	"github.com/calebren/tbits/tbits"
	"github.com/calebren/tbits/tbits/binary"
	"github.com/calebren/tbits/tbits/trinary"
)

func bitSpan(t *testing.T, p []byte, off, n int) tbits.Span[byte, binary.Bit] {
	t.Helper()
	s, err := binary.NewSpan(p, off, n)
	if err != nil {
		t.Fatalf("NewSpan: %v", err)
	}
	return s
}

func byteSpan(t *testing.T, p []byte) tbits.Span[byte, binary.Bit] {
	return bitSpan(t, p, 0, len(p)*8)
}

func TestEncryptOverwriteVector(t *testing.T) {
	state := make([]byte, 16)
	s := byteSpan(t, state)

	pt1 := []byte("HELLO, SPONGE!")
	ct1 := make([]byte, len(pt1))
	if n := EncryptOverwrite(s, byteSpan(t, pt1), byteSpan(t, ct1)); n != len(pt1)*8 {
		t.Fatalf("processed %d tbits, want %d", n, len(pt1)*8)
	}
	if !bytes.Equal(ct1, pt1) {
		t.Fatalf("zero state must give an identity keystream, got %q", ct1)
	}
	if !bytes.Equal(state[:14], pt1) {
		t.Fatalf("state does not track the plaintext: %q", state[:14])
	}

	pt2 := bytes.Repeat([]byte(" "), 14)
	ct2 := make([]byte, 14)
	EncryptOverwrite(s, byteSpan(t, pt2), byteSpan(t, ct2))
	want := []byte{'h', 'e', 'l', 'l', 'o', 0x0c, 0x00, 's', 'p', 'o', 'n', 'g', 'e', 0x01}
	if !bytes.Equal(ct2, want) {
		t.Fatalf("second block ciphertext % x, want % x", ct2, want)
	}

	state2 := make([]byte, 16)
	d := byteSpan(t, state2)
	out1 := make([]byte, 14)
	out2 := make([]byte, 14)
	DecryptOverwrite(d, byteSpan(t, ct1), byteSpan(t, out1))
	DecryptOverwrite(d, byteSpan(t, ct2), byteSpan(t, out2))
	if !bytes.Equal(out1, pt1) || !bytes.Equal(out2, pt2) {
		t.Fatalf("decryption diverged: %q %q", out1, out2)
	}
}

func TestEncryptXorRoundTrip(t *testing.T) {
	key := []byte("sixteen byte key")
	state := slices.Clone(key)
	pt := []byte("attack at dawn")
	ct := make([]byte, len(pt))
	EncryptXor(byteSpan(t, state), byteSpan(t, pt), byteSpan(t, ct))
	for i := range ct {
		if want := pt[i] ^ key[i]; ct[i] != want {
			t.Fatalf("ciphertext byte %d = %#x, want %#x", i, ct[i], want)
		}
	}
	if !bytes.Equal(state[:len(ct)], ct) {
		t.Fatalf("state does not track the ciphertext")
	}

	state2 := slices.Clone(key)
	out := make([]byte, len(ct))
	DecryptXor(byteSpan(t, state2), byteSpan(t, ct), byteSpan(t, out))
	if !bytes.Equal(out, pt) {
		t.Fatalf("DecryptXor gave %q", out)
	}
	if !bytes.Equal(state2[:len(ct)], ct) {
		t.Fatalf("decrypt state does not track the ciphertext")
	}
}

func TestEncryptDecryptTrits(t *testing.T) {
	keyTrits := []trinary.Trit{1, -1, 0, 1, 1, -1, 0, 0, 1, -1, 1, 0}
	msg := []trinary.Trit{0, 1, 1, -1, 0, -1, 1, 0, -1}
	modes := []struct {
		name    string
		encrypt func(state, x, y tbits.Span[int8, trinary.Trit]) int
		decrypt func(state, y, x tbits.Span[int8, trinary.Trit]) int
	}{
		{"overwrite", EncryptOverwrite[int8, trinary.Trit], DecryptOverwrite[int8, trinary.Trit]},
		{"xor", EncryptXor[int8, trinary.Trit], DecryptXor[int8, trinary.Trit]},
	}
	for _, m := range modes {
		t.Run(m.name, func(t *testing.T) {
			state := trinary.Make(len(keyTrits))
			state.FromTbits(keyTrits)
			pt := trinary.Make(len(msg))
			pt.FromTbits(msg)
			ct := trinary.Make(len(msg))
			m.encrypt(state, pt, ct)
			if ct.Equal(pt) {
				t.Fatalf("ciphertext equals plaintext under a nonzero key")
			}

			state2 := trinary.Make(len(keyTrits))
			state2.FromTbits(keyTrits)
			out := trinary.Make(len(msg))
			m.decrypt(state2, ct, out)
			if !out.Equal(pt) {
				t.Fatalf("round trip lost the message")
			}
		})
	}
}

func TestInPlaceMatchesTwoBuffer(t *testing.T) {
	pt := []byte("aliasing is allowed here")
	key := []byte("0123456789abcdefghijklmnopqrstuv")
	modes := []struct {
		name string
		enc  func(s, x, y tbits.Span[byte, binary.Bit]) int
		dec  func(s, y, x tbits.Span[byte, binary.Bit]) int
	}{
		{"overwrite", EncryptOverwrite[byte, binary.Bit], DecryptOverwrite[byte, binary.Bit]},
		{"xor", EncryptXor[byte, binary.Bit], DecryptXor[byte, binary.Bit]},
	}
	for _, m := range modes {
		t.Run(m.name, func(t *testing.T) {
			s1 := slices.Clone(key)
			ct := make([]byte, len(pt))
			m.enc(byteSpan(t, s1), byteSpan(t, slices.Clone(pt)), byteSpan(t, ct))

			s2 := slices.Clone(key)
			buf := slices.Clone(pt)
			bspan := byteSpan(t, buf)
			m.enc(byteSpan(t, s2), bspan, bspan)
			if !bytes.Equal(buf, ct) {
				t.Fatalf("in-place ciphertext diverged from the two-buffer form")
			}
			if !bytes.Equal(s1, s2) {
				t.Fatalf("in-place state diverged from the two-buffer form")
			}

			s3 := slices.Clone(key)
			m.dec(byteSpan(t, s3), bspan, bspan)
			if !bytes.Equal(buf, pt) {
				t.Fatalf("in-place decrypt lost the message")
			}
		})
	}
}

func TestAbsorbOverwrite(t *testing.T) {
	state := make([]byte, 8)
	data := []byte("ABCDEFGHIJ")
	if n := AbsorbOverwrite(byteSpan(t, state), byteSpan(t, data)); n != 64 {
		t.Fatalf("absorbed %d tbits, want 64", n)
	}
	if !bytes.Equal(state, data[:8]) {
		t.Fatalf("state = %q", state)
	}
}

func TestAbsorbXorSelfInverse(t *testing.T) {
	init := []byte{9, 8, 7, 6, 5, 4, 3, 2}
	state := slices.Clone(init)
	s := byteSpan(t, state)
	data := []byte{0xFF, 0x01, 0x00, 0xAA, 0x55, 0x10, 0x20, 0x40}
	AbsorbXor(s, byteSpan(t, data))
	if bytes.Equal(state, init) {
		t.Fatalf("absorb did not change the state")
	}
	AbsorbXor(s, byteSpan(t, data))
	if !bytes.Equal(state, init) {
		t.Fatalf("absorbing twice is not the identity")
	}
}

func TestSqueezeOverwriteZeroes(t *testing.T) {
	state := []byte{1, 2, 3, 4, 5, 6}
	out := make([]byte, 4)
	if n := SqueezeOverwrite(byteSpan(t, state), byteSpan(t, out)); n != 32 {
		t.Fatalf("squeezed %d tbits, want 32", n)
	}
	if !bytes.Equal(out, []byte{1, 2, 3, 4}) {
		t.Fatalf("squeezed % x", out)
	}
	if !bytes.Equal(state, []byte{0, 0, 0, 0, 5, 6}) {
		t.Fatalf("squeezed range not zeroed: % x", state)
	}
}

func TestSqueezeXorPreserves(t *testing.T) {
	init := []byte{1, 2, 3, 4, 5, 6}
	state := slices.Clone(init)
	out := make([]byte, 4)
	SqueezeXor(byteSpan(t, state), byteSpan(t, out))
	if !bytes.Equal(out, init[:4]) {
		t.Fatalf("squeezed % x", out)
	}
	if !bytes.Equal(state, init) {
		t.Fatalf("xor squeeze changed the state")
	}
}

func TestSqueezeEqOverwrite(t *testing.T) {
	state1 := []byte{1, 2, 3, 4, 5, 6}
	if !SqueezeEqOverwrite(byteSpan(t, state1), byteSpan(t, []byte{1, 2, 3, 4})) {
		t.Fatalf("matching tag rejected")
	}
	state2 := []byte{1, 2, 3, 4, 5, 6}
	if SqueezeEqOverwrite(byteSpan(t, state2), byteSpan(t, []byte{1, 2, 9, 4})) {
		t.Fatalf("mismatching tag accepted")
	}
	if !bytes.Equal(state1, state2) {
		t.Fatalf("match and mismatch left different states: % x vs % x", state1, state2)
	}
	if !bytes.Equal(state1, []byte{0, 0, 0, 0, 5, 6}) {
		t.Fatalf("compared range not zeroed: % x", state1)
	}
}

func TestSqueezeEqXor(t *testing.T) {
	init := []byte{7, 7, 7, 9}
	state := slices.Clone(init)
	if !SqueezeEqXor(byteSpan(t, state), byteSpan(t, []byte{7, 7, 7, 9})) {
		t.Fatalf("match rejected")
	}
	if SqueezeEqXor(byteSpan(t, state), byteSpan(t, []byte{7, 7, 0, 9})) {
		t.Fatalf("mismatch accepted")
	}
	if !bytes.Equal(state, init) {
		t.Fatalf("comparison changed the state")
	}
}

func TestZeroLengthOps(t *testing.T) {
	state := []byte{1, 2, 3}
	s := byteSpan(t, state)
	empty := binary.Make(0)
	if n := AbsorbOverwrite(s, empty); n != 0 {
		t.Fatalf("AbsorbOverwrite processed %d", n)
	}
	if n := AbsorbXor(s, empty); n != 0 {
		t.Fatalf("AbsorbXor processed %d", n)
	}
	if n := SqueezeOverwrite(s, empty); n != 0 {
		t.Fatalf("SqueezeOverwrite processed %d", n)
	}
	if n := EncryptXor(s, empty, empty); n != 0 {
		t.Fatalf("EncryptXor processed %d", n)
	}
	if !SqueezeEqOverwrite(s, empty) {
		t.Fatalf("empty comparison is vacuously true")
	}
	if !bytes.Equal(state, []byte{1, 2, 3}) {
		t.Fatalf("zero-length ops changed the state: % x", state)
	}
}

func TestMisalignedSpans(t *testing.T) {
	pat := func(i int) binary.Bit { return binary.Bit((i*3 + 1) % 2) }
	newState := func() tbits.Span[byte, binary.Bit] {
		s := bitSpan(t, make([]byte, 6), 3, 20)
		for i := 0; i < 20; i++ {
			s.Set(i, pat(i))
		}
		return s
	}
	pt := bitSpan(t, make([]byte, 4), 2, 20)
	for i := 0; i < 20; i++ {
		pt.Set(i, binary.Bit(i%2))
	}
	ct := bitSpan(t, make([]byte, 4), 5, 20)

	EncryptXor(newState(), pt, ct)
	out := binary.Make(20)
	DecryptXor(newState(), ct, out)
	for i := 0; i < 20; i++ {
		if out.At(i) != pt.At(i) {
			t.Fatalf("bit %d lost across misaligned spans", i)
		}
	}
}

// flat is a test-only alphabet without group operations.
type flat struct{}

func (flat) Size() int                { return 1 }
func (flat) ZeroTbit() byte           { return 0 }
func (flat) ZeroWord() byte           { return 0 }
func (flat) Unpack(w byte, ts []byte) { ts[0] = w }
func (flat) Pack(ts []byte) byte      { return ts[0] }

func TestAlgebraRequired(t *testing.T) {
	s, err := tbits.NewSpan[byte, byte](flat{}, make([]byte, 4), 0, 4)
	if err != nil {
		t.Fatalf("NewSpan: %v", err)
	}
	d, err := tbits.NewSpan[byte, byte](flat{}, make([]byte, 4), 0, 4)
	if err != nil {
		t.Fatalf("NewSpan: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("AbsorbXor over a plain alphabet did not panic")
		}
	}()
	AbsorbXor(s, d)
}

func TestDuplexWithExternalPermutation(t *testing.T) {
	tag := duplexTag(t, []byte("key one"), [][]byte{[]byte("alpha"), []byte("beta")})
	again := duplexTag(t, []byte("key one"), [][]byte{[]byte("alpha"), []byte("beta")})
	if !bytes.Equal(tag, again) {
		t.Fatalf("duplex is not deterministic")
	}
	other := duplexTag(t, []byte("key two"), [][]byte{[]byte("alpha"), []byte("beta")})
	if bytes.Equal(tag, other) {
		t.Fatalf("different keys gave the same tag")
	}
	swapped := duplexTag(t, []byte("key one"), [][]byte{[]byte("beta"), []byte("alpha")})
	if bytes.Equal(tag, swapped) {
		t.Fatalf("block order did not matter")
	}
}

// duplexTag runs a minimal duplex: absorb each block into the rate, run
// BLAKE2b over the full state words as the external permutation, squeeze a
// tag. The state span stays valid while the permutation rewrites the words
// underneath it.
func duplexTag(t *testing.T, key []byte, blocks [][]byte) []byte {
	t.Helper()
	words := make([]byte, 32)
	state := byteSpan(t, words)
	rate, err := state.Sub(0, 16*8)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	permute := func() {
		sum := blake2b.Sum256(words)
		copy(words, sum[:])
	}
	AbsorbXor(rate, byteSpan(t, key))
	permute()
	for _, b := range blocks {
		AbsorbXor(rate, byteSpan(t, b))
		permute()
	}
	tag := make([]byte, 16)
	SqueezeXor(rate, byteSpan(t, tag))
	return tag
}

func BenchmarkEncryptOverwrite(b *testing.B) {
	state := make([]byte, 64*1024)
	buf := make([]byte, 64*1024)
	s, _ := binary.NewSpan(state, 0, len(state)*8)
	d, _ := binary.NewSpan(buf, 0, len(buf)*8)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EncryptOverwrite(s, d, d)
	}
}

func BenchmarkAbsorbXor(b *testing.B) {
	state := make([]byte, 64*1024)
	data := make([]byte, 64*1024)
	s, _ := binary.NewSpan(state, 0, len(state)*8)
	d, _ := binary.NewSpan(data, 0, len(data)*8)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AbsorbXor(s, d)
	}
}
