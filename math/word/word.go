// Package word implements 32-bit word gadgets where each word lives in a
// single field element.
//
// Rotations and shifts go through a shared chunked decomposition: the word
// is split once at the rotation boundaries, every chunk is range-checked
// through a 16-bit window, one linear constraint ties the chunks back to
// the word, and each rotated output is just a second weighting of the same
// chunks. Bitwise operations decompose to bits and pay one or two
// multiplications per bit. Additions are reduced mod 2^32 through a carry
// witness and are never silently truncated.
//
// The gadgets are field-agnostic as long as the native field is wider than
// 65 bits or so; they are used here over BN254 and over the Pallas base
// field.
package word

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/rangecheck"
)

// U32 is a 32-bit word held in a single field element in [0, 2^32).
type U32 struct {
	Val frontend.Variable
}

// NewU32 returns the constant word c.
func NewU32(c uint32) U32 {
	return U32{Val: uint64(c)}
}

// API wires the word gadgets to a frontend.API and its range checker.
type API struct {
	api frontend.API
	rc  frontend.Rangechecker
}

// New returns a word gadget API on top of api.
func New(api frontend.API) *API {
	return &API{api: api, rc: rangecheck.New(api)}
}

// constU32 resolves x to a uint32 when it is a compile-time constant.
// A constant outside 32 bits is a programming error, not a witness issue.
func (w *API) constU32(x U32) (uint32, bool) {
	c, ok := w.api.Compiler().ConstantValue(x.Val)
	if !ok {
		return 0, false
	}
	if c.Sign() < 0 || c.BitLen() > 32 {
		panic(fmt.Sprintf("word: constant %s is not a 32-bit word", c.String()))
	}
	return uint32(c.Uint64()), true
}

// AssertWidth constrains v to n bits, 1 <= n <= 16. The primitive range
// check covers a 16-bit window, so v is first checked below 2^16 and, for
// n < 16, v·2^(16-n) is checked below 2^16 as well. Both checks are
// needed: the first bounds v so the scaled product cannot wrap the field,
// the second pins v below 2^n.
func (w *API) AssertWidth(v frontend.Variable, n int) {
	if n < 1 || n > 16 {
		panic(fmt.Sprintf("word: width check for %d bits, want 1..16", n))
	}
	if c, ok := w.api.Compiler().ConstantValue(v); ok {
		if c.Sign() < 0 || c.BitLen() > n {
			panic(fmt.Sprintf("word: constant %s exceeds %d bits", c.String(), n))
		}
		return
	}
	w.rc.Check(v, 16)
	if n < 16 {
		w.rc.Check(w.api.Mul(v, 1<<uint(16-n)), 16)
	}
}

// AssertU32 constrains v to 32 bits and returns it as a word. The value is
// split into 16-bit halves by a hint and the recomposition is asserted.
func (w *API) AssertU32(v frontend.Variable) U32 {
	if c, ok := w.api.Compiler().ConstantValue(v); ok {
		if c.Sign() < 0 || c.BitLen() > 32 {
			panic(fmt.Sprintf("word: constant %s is not a 32-bit word", c.String()))
		}
		return U32{Val: v}
	}
	halves, err := w.api.Compiler().NewHint(split16Hint, 2, v)
	if err != nil {
		panic(err)
	}
	hi, lo := halves[0], halves[1]
	w.AssertWidth(hi, 16)
	w.AssertWidth(lo, 16)
	w.api.AssertIsEqual(v, w.api.Add(w.api.Mul(hi, uint64(1)<<16), lo))
	return U32{Val: v}
}
