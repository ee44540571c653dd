package word

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bits"
)

// bitsOf returns the 32-bit little-endian decomposition of x, which also
// constrains x below 2^32.
func (w *API) bitsOf(x U32) []frontend.Variable {
	return bits.ToBinary(w.api, x.Val, bits.WithNbDigits(32))
}

// wordFromBits recomposes boolean bits into a word. The bits produced by
// the gadgets below are boolean by construction, so this is a plain linear
// combination.
func (w *API) wordFromBits(bs []frontend.Variable) U32 {
	terms := make([]frontend.Variable, len(bs))
	for i, b := range bs {
		terms[i] = w.api.Mul(b, uint64(1)<<uint(i))
	}
	return U32{Val: w.api.Add(terms[0], terms[1], terms[2:]...)}
}

// Not returns the bitwise complement 2^32-1-x. Linear, no constraints.
func (w *API) Not(x U32) U32 {
	if c, ok := w.constU32(x); ok {
		return NewU32(^c)
	}
	return U32{Val: w.api.Sub(uint64(0xffffffff), x.Val)}
}

// Xor returns x ^ y, one constraint per bit on top of the decompositions.
func (w *API) Xor(x, y U32) U32 {
	cx, okx := w.constU32(x)
	cy, oky := w.constU32(y)
	if okx && oky {
		return NewU32(cx ^ cy)
	}
	xb, yb := w.bitsOf(x), w.bitsOf(y)
	zb := make([]frontend.Variable, 32)
	for i := range zb {
		zb[i] = w.api.Xor(xb[i], yb[i])
	}
	return w.wordFromBits(zb)
}

// And returns x & y, one constraint per bit on top of the decompositions.
func (w *API) And(x, y U32) U32 {
	cx, okx := w.constU32(x)
	cy, oky := w.constU32(y)
	if okx && oky {
		return NewU32(cx & cy)
	}
	xb, yb := w.bitsOf(x), w.bitsOf(y)
	zb := make([]frontend.Variable, 32)
	for i := range zb {
		zb[i] = w.api.Mul(xb[i], yb[i])
	}
	return w.wordFromBits(zb)
}

// Ch returns (x AND y) XOR (NOT x AND z), the SHA-256 choice function.
// Each operand is decomposed once and the per-bit select
// ch = x·(y-z) + z costs a single multiplication.
func (w *API) Ch(x, y, z U32) U32 {
	cx, okx := w.constU32(x)
	cy, oky := w.constU32(y)
	cz, okz := w.constU32(z)
	if okx && oky && okz {
		return NewU32((cx & cy) ^ (^cx & cz))
	}
	xb, yb, zb := w.bitsOf(x), w.bitsOf(y), w.bitsOf(z)
	out := make([]frontend.Variable, 32)
	for i := range out {
		out[i] = w.api.Add(w.api.Mul(xb[i], w.api.Sub(yb[i], zb[i])), zb[i])
	}
	return w.wordFromBits(out)
}

// Maj returns (x AND y) XOR (x AND z) XOR (y AND z), the SHA-256 majority
// function, two multiplications per bit:
// with m = x·y, maj = z·(x+y-2m) + m.
func (w *API) Maj(x, y, z U32) U32 {
	cx, okx := w.constU32(x)
	cy, oky := w.constU32(y)
	cz, okz := w.constU32(z)
	if okx && oky && okz {
		return NewU32((cx & cy) ^ (cx & cz) ^ (cy & cz))
	}
	xb, yb, zb := w.bitsOf(x), w.bitsOf(y), w.bitsOf(z)
	out := make([]frontend.Variable, 32)
	for i := range out {
		m := w.api.Mul(xb[i], yb[i])
		out[i] = w.api.Add(w.api.Mul(zb[i], w.api.Sub(w.api.Add(xb[i], yb[i]), w.api.Mul(2, m))), m)
	}
	return w.wordFromBits(out)
}
