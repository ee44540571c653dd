package word

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
)

// AddMod32 returns the sum of the words reduced mod 2^32. At least two
// addends are required. The reduction goes through a carry witness: the
// hint splits the field sum into carry·2^32 + hi·2^16 + lo, the carry is
// width-checked against the addend count and the halves to 16 bits, and
// the full recomposition is asserted, so an overflow can never pass
// unnoticed.
func (w *API) AddMod32(xs ...U32) U32 {
	if len(xs) < 2 {
		panic("word: AddMod32 wants at least two addends")
	}

	allConst := true
	var constSum uint64
	for _, x := range xs {
		c, ok := w.constU32(x)
		if !ok {
			allConst = false
			break
		}
		constSum += uint64(c)
	}
	if allConst {
		return NewU32(uint32(constSum))
	}

	vals := make([]frontend.Variable, len(xs))
	for i, x := range xs {
		vals[i] = x.Val
	}
	sum := w.api.Add(vals[0], vals[1], vals[2:]...)

	outs, err := w.api.Compiler().NewHint(divMod32Hint, 3, sum)
	if err != nil {
		panic(err)
	}
	carry, hi, lo := outs[0], outs[1], outs[2]

	carryBits := big.NewInt(int64(len(xs) - 1)).BitLen()
	w.AssertWidth(carry, carryBits)
	w.AssertWidth(hi, 16)
	w.AssertWidth(lo, 16)

	reduced := w.api.Add(w.api.Mul(hi, uint64(1)<<16), lo)
	w.api.AssertIsEqual(sum, w.api.Add(w.api.Mul(carry, uint64(1)<<32), reduced))
	return U32{Val: reduced}
}
