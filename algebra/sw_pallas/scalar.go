package sw_pallas

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/rangecheck"

	"github.com/nickfreeman-de/o1js/pasta"
)

// ScalarField is the emulated field of Pallas scalars: 3 limbs of 88 bits.
type ScalarField struct{}

func (ScalarField) NbLimbs() uint     { return 3 }
func (ScalarField) BitsPerLimb() uint { return 88 }
func (ScalarField) IsPrime() bool     { return true }
func (ScalarField) Modulus() *big.Int { return pasta.ScalarModulus() }

// Scalar is a Pallas scalar as a non-native field element, little-endian
// base-2^88 limbs.
type Scalar = emulated.Element[ScalarField]

// NewScalar returns the constant scalar v.
func NewScalar(v *big.Int) Scalar {
	return emulated.ValueOf[ScalarField](v)
}

// ShiftedScalar is the split form of t = s - 2^254 mod q consumed by the
// scalar multiplication ladder: the five low bits of t (little-endian,
// boolean constrained) and the remaining high part t >> 5, below 2^250.
type ShiftedScalar struct {
	Low5 [5]frontend.Variable
	High frontend.Variable
}

// SplitScalar shifts s by -2^254 mod q and splits the result t into five
// low bits and the 250-bit high part. The subtraction runs in the emulated
// scalar field and t is constrained canonical (below q), so the split is
// sound on its own: each low bit is boolean, the limb-0 remainder is
// width-checked to 83 bits, and the limb-0 recomposition is exact over the
// integers. A constant scalar splits at compile time with no constraints.
func SplitScalar(api frontend.API, s *Scalar) (*ShiftedScalar, error) {
	shift := new(big.Int).Lsh(big.NewInt(1), 254)

	if sc, ok := constantScalar(api, s); ok {
		t := new(big.Int).Sub(sc, shift)
		t.Mod(t, pasta.ScalarModulus())
		var low [5]frontend.Variable
		for i := range low {
			low[i] = t.Bit(i)
		}
		return &ShiftedScalar{Low5: low, High: new(big.Int).Rsh(t, 5)}, nil
	}

	f, err := emulated.NewField[ScalarField](api)
	if err != nil {
		return nil, err
	}
	shiftEl := emulated.ValueOf[ScalarField](shift)
	t := f.Reduce(f.Sub(s, &shiftEl))
	f.AssertIsInRange(t)

	limbs := t.Limbs
	outs, err := api.Compiler().NewHint(splitLow5Hint, 6, limbs[0])
	if err != nil {
		return nil, err
	}
	var low [5]frontend.Variable
	copy(low[:], outs[:5])
	rem := outs[5]

	for i := range low {
		api.AssertIsBoolean(low[i])
	}
	rc := rangecheck.New(api)
	rc.Check(rem, 83)
	api.AssertIsEqual(limbs[0], api.Add(
		low[0],
		api.Mul(low[1], 2),
		api.Mul(low[2], 4),
		api.Mul(low[3], 8),
		api.Mul(low[4], 16),
		api.Mul(rem, 32),
	))

	// t>>5 = rem + limb1·2^83 + limb2·2^171, exact since t < q < 2^255
	high := api.Add(
		rem,
		api.Mul(limbs[1], new(big.Int).Lsh(big.NewInt(1), 83)),
		api.Mul(limbs[2], new(big.Int).Lsh(big.NewInt(1), 171)),
	)
	return &ShiftedScalar{Low5: low, High: high}, nil
}

// constantScalar resolves s to a big.Int when all limbs are compile-time
// constants.
func constantScalar(api frontend.API, s *Scalar) (*big.Int, bool) {
	acc := new(big.Int)
	for i := len(s.Limbs) - 1; i >= 0; i-- {
		c, ok := api.Compiler().ConstantValue(s.Limbs[i])
		if !ok {
			return nil, false
		}
		acc.Lsh(acc, 88)
		acc.Add(acc, c)
	}
	return acc.Mod(acc, pasta.ScalarModulus()), true
}
