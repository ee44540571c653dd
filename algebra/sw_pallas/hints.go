package sw_pallas

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
)

// GetHints returns all hint functions used by the package.
func GetHints() []solver.Hint {
	return []solver.Hint{completeAddHint, splitLow5Hint}
}

func init() {
	solver.RegisterHint(GetHints()...)
}

// completeAddHint proposes the witnesses of the complete-addition gadget
// for p1 = (inputs[0], inputs[1]) and p2 = (inputs[2], inputs[3]).
// Outputs are (s, x3, y3, same_x, inf, inf_z, x21_inv), classified as:
//
//   - x1 != x2: chord slope, same_x = 0, inf = 0, inf_z = 0,
//     x21_inv = (x2-x1)^-1
//   - x1 == x2, y1 == y2: tangent slope, same_x = 1, inf = 0, inf_z = 0
//   - x1 == x2, y1 != y2: tangent slope, same_x = 1, inf = 1,
//     inf_z = (y2-y1)^-1
func completeAddHint(field *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != 4 || len(outputs) != 7 {
		return errors.New("expecting four inputs and seven outputs")
	}
	x1, y1, x2, y2 := inputs[0], inputs[1], inputs[2], inputs[3]
	s, x3, y3 := outputs[0], outputs[1], outputs[2]
	sameX, inf, infZ, x21Inv := outputs[3], outputs[4], outputs[5], outputs[6]

	x21 := new(big.Int).Sub(x2, x1)
	x21.Mod(x21, field)
	y21 := new(big.Int).Sub(y2, y1)
	y21.Mod(y21, field)

	if x21.Sign() != 0 {
		x21Inv.ModInverse(x21, field)
		s.Mul(y21, x21Inv).Mod(s, field)
		sameX.SetInt64(0)
		inf.SetInt64(0)
		infZ.SetInt64(0)
	} else {
		sameX.SetInt64(1)
		x21Inv.SetInt64(0)
		if y1.Sign() == 0 {
			// no curve point of odd order has y = 0
			return errors.New("tangent undefined, input is not a curve point")
		}
		den := new(big.Int).Lsh(y1, 1)
		den.Mod(den, field)
		den.ModInverse(den, field)
		s.Mul(x1, x1).Mod(s, field)
		s.Mul(s, big.NewInt(3)).Mod(s, field)
		s.Mul(s, den).Mod(s, field)
		if y21.Sign() != 0 {
			inf.SetInt64(1)
			infZ.ModInverse(y21, field)
		} else {
			inf.SetInt64(0)
			infZ.SetInt64(0)
		}
	}

	// x3 = s^2 - x1 - x2, y3 = s(x1-x3) - y1
	x3.Mul(s, s).Sub(x3, x1).Sub(x3, x2).Mod(x3, field)
	y3.Sub(x1, x3).Mul(y3, s).Sub(y3, y1).Mod(y3, field)
	return nil
}

// splitLow5Hint splits inputs[0] into its five low bits (little-endian)
// and the remaining high part: outputs are (b0..b4, high).
func splitLow5Hint(_ *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != 1 || len(outputs) != 6 {
		return errors.New("expecting one input and six outputs")
	}
	for i := 0; i < 5; i++ {
		outputs[i].SetUint64(uint64(inputs[0].Bit(i)))
	}
	outputs[5].Rsh(inputs[0], 5)
	return nil
}
