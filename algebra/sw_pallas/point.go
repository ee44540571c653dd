// Package sw_pallas implements Pallas group operations in-circuit:
// complete affine addition with an explicit infinity flag, doubling, and
// variable-base scalar multiplication through a shifted 255-bit scalar.
//
// The circuit's native field must be the Pallas base field; the scalar
// field is handled non-natively with 3×88-bit limbs. The point at infinity
// is encoded as (0,0) wherever an operation can produce it. (0,0) does not
// satisfy y² = x³ + 5, so the encoding never collides with a real point.
package sw_pallas

import (
	"math/big"

	"github.com/consensys/gnark/frontend"

	"github.com/nickfreeman-de/o1js/pasta"
)

// Point is a Pallas point in affine coordinates over the native field.
type Point struct {
	X, Y frontend.Variable
}

// Generator returns the constant generator (-1, 2).
func Generator() Point {
	g := pasta.Generator()
	return Point{X: new(big.Int).Set(&g.X), Y: new(big.Int).Set(&g.Y)}
}

// Neg sets p to -q and returns p. The identity encoding stays (0,0).
func (p *Point) Neg(api frontend.API, q Point) *Point {
	p.X = q.X
	p.Y = api.Sub(0, q.Y)
	return p
}

// Select sets p to p1 when b is 1 and to p2 otherwise. b must be boolean
// constrained.
func (p *Point) Select(api frontend.API, b frontend.Variable, p1, p2 Point) *Point {
	p.X = api.Select(b, p1.X, p2.X)
	p.Y = api.Select(b, p1.Y, p2.Y)
	return p
}

// Double sets p to 2·q via the tangent formula and returns p. q must be a
// finite curve point; no finite point of a prime-order curve has y = 0, so
// the tangent denominator cannot vanish.
func (p *Point) Double(api frontend.API, q Point) *Point {
	// lambda = 3x²/2y
	lambda := api.DivUnchecked(api.Mul(q.X, q.X, 3), api.Mul(q.Y, 2))
	xr := api.Sub(api.Mul(lambda, lambda), api.Mul(q.X, 2))
	p.Y = api.Sub(api.Mul(lambda, api.Sub(q.X, xr)), q.Y)
	p.X = xr
	return p
}

// AssertIsOnCurve constrains p to satisfy y² = x³ + 5.
func AssertIsOnCurve(api frontend.API, p Point) {
	y2 := api.Mul(p.Y, p.Y)
	x3 := api.Mul(p.X, p.X, p.X)
	api.AssertIsEqual(y2, api.Add(x3, pasta.B()))
}

// AddComplete computes p1+p2 for any pair of finite curve points and
// returns the sum together with an infinity flag. The flag is 1 exactly
// when p1 and p2 are an inverse pair (same x, different y); the returned
// coordinates carry no meaning in that case, so callers select on the flag
// before using them. The hint only proposes witnesses; the seven
// constraints below pin every output, including the flag's booleanity.
func AddComplete(api frontend.API, p1, p2 Point) (Point, frontend.Variable) {
	outs, err := api.Compiler().NewHint(completeAddHint, 7, p1.X, p1.Y, p2.X, p2.Y)
	if err != nil {
		panic(err)
	}
	s, x3, y3 := outs[0], outs[1], outs[2]
	sameX, inf, infZ, x21Inv := outs[3], outs[4], outs[5], outs[6]

	x21 := api.Sub(p2.X, p1.X)
	y21 := api.Sub(p2.Y, p1.Y)
	oneMinusSameX := api.Sub(1, sameX)

	// x21_inv·x21 = 1 - same_x
	api.AssertIsEqual(api.Mul(x21Inv, x21), oneMinusSameX)
	// same_x·x21 = 0
	api.AssertIsEqual(api.Mul(sameX, x21), 0)
	// slope is the tangent when same_x, the chord otherwise:
	// same_x·(2y1·s - 3x1²) + (1-same_x)·(x21·s - y21) = 0
	tangent := api.Sub(api.Mul(api.Mul(p1.Y, 2), s), api.Mul(p1.X, p1.X, 3))
	chord := api.Sub(api.Mul(x21, s), y21)
	api.AssertIsEqual(api.Add(api.Mul(sameX, tangent), api.Mul(oneMinusSameX, chord)), 0)
	// x3 = s² - x1 - x2
	api.AssertIsEqual(api.Add(x3, p1.X, p2.X), api.Mul(s, s))
	// y3 = s(x1-x3) - y1
	api.AssertIsEqual(api.Add(y3, p1.Y), api.Mul(s, api.Sub(p1.X, x3)))
	// inf = same_x and y1 != y2
	api.AssertIsEqual(api.Mul(y21, api.Sub(inf, sameX)), 0)
	api.AssertIsEqual(api.Mul(y21, infZ), inf)

	return Point{X: x3, Y: y3}, inf
}

// AddNonZero sets p to p1+p2 asserting the sum is finite: the inverse-pair
// case is unsatisfiable. Used for ladder steps that provably cannot reach
// the identity.
func (p *Point) AddNonZero(api frontend.API, p1, p2 Point) *Point {
	r, inf := AddComplete(api, p1, p2)
	api.AssertIsEqual(inf, 0)
	p.X = r.X
	p.Y = r.Y
	return p
}
