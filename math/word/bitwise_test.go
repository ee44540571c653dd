package word

import (
	"math/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type bitwiseCircuit struct {
	X, Y, Z frontend.Variable
	WantXor frontend.Variable
	WantAnd frontend.Variable
	WantNot frontend.Variable
	WantCh  frontend.Variable
	WantMaj frontend.Variable
}

func (c *bitwiseCircuit) Define(api frontend.API) error {
	w := New(api)
	x := U32{Val: c.X}
	y := U32{Val: c.Y}
	z := U32{Val: c.Z}
	api.AssertIsEqual(w.Xor(x, y).Val, c.WantXor)
	api.AssertIsEqual(w.And(x, y).Val, c.WantAnd)
	api.AssertIsEqual(w.Not(x).Val, c.WantNot)
	api.AssertIsEqual(w.Ch(x, y, z).Val, c.WantCh)
	api.AssertIsEqual(w.Maj(x, y, z).Val, c.WantMaj)
	return nil
}

func chRef(x, y, z uint32) uint32  { return (x & y) ^ (^x & z) }
func majRef(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

func solveBitwise(x, y, z uint32) error {
	witness := &bitwiseCircuit{
		X: uint64(x), Y: uint64(y), Z: uint64(z),
		WantXor: uint64(x ^ y),
		WantAnd: uint64(x & y),
		WantNot: uint64(^x),
		WantCh:  uint64(chRef(x, y, z)),
		WantMaj: uint64(majRef(x, y, z)),
	}
	return test.IsSolved(&bitwiseCircuit{}, witness, ecc.BN254.ScalarField())
}

func TestBitwise(t *testing.T) {
	assert := test.NewAssert(t)

	cases := [][3]uint32{
		{0, 0, 0},
		{0xffffffff, 0xffffffff, 0xffffffff},
		{0xffffffff, 0, 0xffffffff},
		{0x6a09e667, 0xbb67ae85, 0x3c6ef372},
		{0x80000000, 1, 0x55555555},
	}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5; i++ {
		cases = append(cases, [3]uint32{rng.Uint32(), rng.Uint32(), rng.Uint32()})
	}
	for _, tc := range cases {
		assert.NoError(solveBitwise(tc[0], tc[1], tc[2]), "x=%#x y=%#x z=%#x", tc[0], tc[1], tc[2])
	}
}

func TestBitwiseProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("bitwise gadgets match uint32 semantics", prop.ForAll(
		func(x, y, z uint32) bool {
			return solveBitwise(x, y, z) == nil
		},
		gen.UInt32(), gen.UInt32(), gen.UInt32(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
