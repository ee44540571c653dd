// Package sha256 implements the SHA-256 compression function as a circuit
// gadget over single-field-element 32-bit words.
//
// Only the compression path is constrained. Callers pad on the host with
// PadBlocks and feed whole 512-bit blocks; Hash chains the compression
// from the standard initial value. Every addition is reduced mod 2^32
// through a carry witness and the four rotation sets of the round
// functions each share a single chunk decomposition.
package sha256

import (
	"github.com/nickfreeman-de/o1js/math/word"
)

var _K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var initialDigest = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// IV returns the FIPS 180-4 initial hash value as constant words.
func IV() [8]word.U32 {
	var h [8]word.U32
	for i, v := range initialDigest {
		h[i] = word.NewU32(v)
	}
	return h
}

// Sigma_0: rotr 2 xor rotr 13 xor rotr 22
func bigSigma0(w *word.API, x word.U32) word.U32 {
	r := w.RotrSet(x, 2, 13, 22)
	return w.Xor(w.Xor(r[0], r[1]), r[2])
}

// Sigma_1: rotr 6 xor rotr 11 xor rotr 25
func bigSigma1(w *word.API, x word.U32) word.U32 {
	r := w.RotrSet(x, 6, 11, 25)
	return w.Xor(w.Xor(r[0], r[1]), r[2])
}

// sigma_0: rotr 7 xor rotr 18 xor shr 3; the shift is the smallest amount,
// so it rides the same decomposition as the rotations.
func smallSigma0(w *word.API, x word.U32) word.U32 {
	r := w.RotrSetFirstShifted(x, 3, 7, 18)
	return w.Xor(w.Xor(r[0], r[1]), r[2])
}

// sigma_1: rotr 17 xor rotr 19 xor shr 10
func smallSigma1(w *word.API, x word.U32) word.U32 {
	r := w.RotrSetFirstShifted(x, 10, 17, 19)
	return w.Xor(w.Xor(r[0], r[1]), r[2])
}

// Compress applies one SHA-256 compression to the chaining value h with a
// message block in big-endian word order.
func Compress(w *word.API, h [8]word.U32, block [16]word.U32) [8]word.U32 {
	var sched [64]word.U32
	copy(sched[:16], block[:])
	for i := 16; i < 64; i++ {
		sched[i] = w.AddMod32(
			smallSigma1(w, sched[i-2]),
			sched[i-7],
			smallSigma0(w, sched[i-15]),
			sched[i-16],
		)
	}

	a, b, c, d := h[0], h[1], h[2], h[3]
	e, f, g, hh := h[4], h[5], h[6], h[7]
	for i := 0; i < 64; i++ {
		t1 := w.AddMod32(hh, bigSigma1(w, e), w.Ch(e, f, g), word.NewU32(_K[i]), sched[i])
		t2 := w.AddMod32(bigSigma0(w, a), w.Maj(a, b, c))
		hh = g
		g = f
		f = e
		e = w.AddMod32(d, t1)
		d = c
		c = b
		b = a
		a = w.AddMod32(t1, t2)
	}

	return [8]word.U32{
		w.AddMod32(h[0], a), w.AddMod32(h[1], b), w.AddMod32(h[2], c), w.AddMod32(h[3], d),
		w.AddMod32(h[4], e), w.AddMod32(h[5], f), w.AddMod32(h[6], g), w.AddMod32(h[7], hh),
	}
}

// Hash chains Compress over the blocks starting from IV. The blocks must
// already carry the FIPS padding; see PadBlocks.
func Hash(w *word.API, blocks [][16]word.U32) [8]word.U32 {
	if len(blocks) == 0 {
		panic("sha256: need at least one block")
	}
	h := IV()
	for i := range blocks {
		h = Compress(w, h, blocks[i])
	}
	return h
}
