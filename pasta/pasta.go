// Package pasta implements host-side arithmetic for the Pallas curve of the
// Pasta cycle: the two field moduli, the affine group law and scalar
// multiplication over math/big.
//
// It plays the role gnark-crypto plays for gnark's built-in curves. The
// in-circuit gadgets in algebra/sw_pallas use it for hint computations and
// constant fast paths; tests use it as the reference implementation.
//
// Pallas is the short Weierstrass curve y² = x³ + 5 over the base field of
// modulus p, with prime group order q. Both moduli lie in (2^254, 2^255),
// and the scalar field of Pallas is the base field of Vesta and vice versa,
// which is why both are defined here.
package pasta

import "math/big"

var (
	pBase   = mustHex("40000000000000000000000000000000224698fc094cf91b992d30ed00000001")
	qScalar = mustHex("40000000000000000000000000000000224698fc0994a8dd8c46eb2100000001")

	bCoeff = big.NewInt(5)
)

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("pasta: invalid modulus literal")
	}
	return n
}

// BaseModulus returns p, the Pallas coordinate field modulus
// (= the Vesta scalar field modulus).
func BaseModulus() *big.Int {
	return new(big.Int).Set(pBase)
}

// ScalarModulus returns q, the Pallas group order
// (= the Vesta coordinate field modulus).
func ScalarModulus() *big.Int {
	return new(big.Int).Set(qScalar)
}

// B returns the curve coefficient of y² = x³ + B.
func B() *big.Int {
	return new(big.Int).Set(bCoeff)
}
