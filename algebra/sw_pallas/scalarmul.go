package sw_pallas

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bits"

	"github.com/nickfreeman-de/o1js/pasta"
)

// ScaleFastUnpack computes (2^n + 2·high + 1)·q while unpacking high into
// n boolean bits, returned little-endian for reuse. The accumulator seeds
// at 2q and every round doubles then adds ±q by bit, so the circuit pays
// one doubling and one non-zero addition per bit.
//
// q must be a finite point of prime order. For n = 250 over the Pallas
// group no step of the walk can reach the identity: every intermediate
// multiple c of q satisfies 0 < c < q with c ∉ {1, q-1}, which is what
// lets every addition assert a finite result.
func ScaleFastUnpack(api frontend.API, q Point, high frontend.Variable, n int) (Point, []frontend.Variable) {
	if n < 1 {
		panic("sw_pallas: ScaleFastUnpack needs at least one bit")
	}
	bts := bits.ToBinary(api, high, bits.WithNbDigits(n))

	var negQ Point
	negQ.Neg(api, q)

	var acc Point
	acc.Double(api, q)
	for i := n - 1; i >= 0; i-- {
		acc.Double(api, acc)
		var step Point
		step.Select(api, bts[i], q, negQ)
		acc.AddNonZero(api, acc, step)
	}
	return acc, bts
}

// ScalarMul sets p to s·q and returns p. With both scalar and point
// compile-time constants the multiple is computed on the host and emitted
// as a constant; otherwise the variable ladder runs. The result is exact
// for every scalar: s = 0 comes out as the identity encoding (0,0). q
// itself must be a finite curve point of order q, never the identity.
func (p *Point) ScalarMul(api frontend.API, q Point, s *Scalar) *Point {
	if sc, ok := constantScalar(api, s); ok {
		if pt, ok := constantPoint(api, q); ok {
			var r pasta.Point
			r.ScalarMul(pt, sc)
			p.X = new(big.Int).Set(&r.X)
			p.Y = new(big.Int).Set(&r.Y)
			return p
		}
	}
	return p.varScalarMul(api, q, s)
}

func constantPoint(api frontend.API, q Point) (*pasta.Point, bool) {
	qx, okx := api.Compiler().ConstantValue(q.X)
	qy, oky := api.Compiler().ConstantValue(q.Y)
	if !okx || !oky {
		return nil, false
	}
	pt := new(pasta.Point)
	pt.X.Set(qx)
	pt.Y.Set(qy)
	return pt, true
}

func (p *Point) varScalarMul(api frontend.API, q Point, s *Scalar) *Point {
	ss, err := SplitScalar(api, s)
	if err != nil {
		panic(err)
	}
	return p.scaleShifted(api, q, ss)
}

// ScaleShifted computes s·q from the split form of t = s - 2^254 mod q.
// The five low bits are boolean-asserted here, so a ShiftedScalar assembled
// by the caller is checked at this boundary; splits from SplitScalar can
// also be reused across several base points.
func (p *Point) ScaleShifted(api frontend.API, q Point, ss *ShiftedScalar) *Point {
	for i := range ss.Low5 {
		api.AssertIsBoolean(ss.Low5[i])
	}
	return p.scaleShifted(api, q, ss)
}

// scaleShifted runs the shifted ladder: the fast walk yields
// (2^250 + 2·high + 1)·q and the five low bits are folded in one at a
// time. Writing c_k for the multiple of q accumulated before each step,
// every c_k stays inside (0, q) with c_k ∉ {1, q-1}, so all conditional
// steps use non-zero additions. The single exception is the last
// unconditional addition, which legitimately reaches the identity when s
// maps t to epsilon = q - 2^254 (that is, s = 0): it goes through the
// complete addition, the identity is resolved to (0,0) first, and only
// then does the low bit pick the result.
func (p *Point) scaleShifted(api frontend.API, q Point, ss *ShiftedScalar) *Point {
	t0, t1, t2, t3, t4 := ss.Low5[0], ss.Low5[1], ss.Low5[2], ss.Low5[3], ss.Low5[4]

	// R = (2^250 + 2·high + 1)·q
	r, _ := ScaleFastUnpack(api, q, ss.High, 250)

	// fifth bit: keep R when set, subtract q when clear
	var negQ Point
	negQ.Neg(api, q)
	var rSub Point
	rSub.AddNonZero(api, r, negQ)
	var acc Point
	acc.Select(api, t4, r, rSub)

	// bits 3..1: double, then conditionally add q
	for _, b := range []frontend.Variable{t3, t2, t1} {
		var doubled Point
		doubled.Double(api, acc)
		var added Point
		added.AddNonZero(api, doubled, q)
		acc.Select(api, b, added, doubled)
	}

	// final: double, one complete addition, identity resolved before the
	// low-bit select
	var doubled Point
	doubled.Double(api, acc)
	sum, inf := AddComplete(api, doubled, q)
	var masked Point
	masked.Select(api, inf, Point{X: 0, Y: 0}, sum)
	return p.Select(api, t0, masked, doubled)
}
