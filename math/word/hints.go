package word

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
)

// GetHints returns all hint functions used by the package.
func GetHints() []solver.Hint {
	return []solver.Hint{split16Hint, divMod32Hint, chunksHint}
}

func init() {
	solver.RegisterHint(GetHints()...)
}

var (
	mask16 = big.NewInt(0xffff)
	mask32 = new(big.Int).SetUint64(0xffffffff)
)

// split16Hint splits inputs[0] into 16-bit halves:
// outputs[0] = inputs[0] >> 16, outputs[1] = inputs[0] & 0xffff.
func split16Hint(_ *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != 1 || len(outputs) != 2 {
		return errors.New("expecting one input and two outputs")
	}
	outputs[0].Rsh(inputs[0], 16)
	outputs[1].And(inputs[0], mask16)
	return nil
}

// divMod32Hint splits inputs[0] as carry·2^32 + hi·2^16 + lo:
// outputs are (carry, hi, lo).
func divMod32Hint(_ *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != 1 || len(outputs) != 3 {
		return errors.New("expecting one input and three outputs")
	}
	outputs[0].Rsh(inputs[0], 32)
	r := new(big.Int).And(inputs[0], mask32)
	outputs[1].Rsh(r, 16)
	outputs[2].And(r, mask16)
	return nil
}

// chunksHint splits inputs[0] at the bit boundaries given by
// inputs[1..3] into four chunks, low to high.
func chunksHint(_ *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != 4 || len(outputs) != 4 {
		return errors.New("expecting four inputs and four outputs")
	}
	bounds := [5]uint{0, uint(inputs[1].Uint64()), uint(inputs[2].Uint64()), uint(inputs[3].Uint64()), 32}
	for i := 0; i < 4; i++ {
		mask := new(big.Int).Lsh(big.NewInt(1), bounds[i+1]-bounds[i])
		mask.Sub(mask, big.NewInt(1))
		outputs[i].Rsh(inputs[0], bounds[i]).And(outputs[i], mask)
	}
	return nil
}
