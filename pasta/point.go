package pasta

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Point is a Pallas point in affine coordinates, with both coordinates kept
// reduced mod p. The zero value (0,0) encodes the group identity; it is not
// a curve point (0 ≠ 5), so the encoding is unambiguous.
type Point struct {
	X, Y big.Int
}

// Generator returns the conventional Pallas generator (-1, 2).
func Generator() *Point {
	g := new(Point)
	g.X.Sub(pBase, big.NewInt(1))
	g.Y.SetInt64(2)
	return g
}

// Set sets p to q and returns p.
func (p *Point) Set(q *Point) *Point {
	p.X.Set(&q.X)
	p.Y.Set(&q.Y)
	return p
}

// SetIdentity sets p to the identity encoding (0,0) and returns p.
func (p *Point) SetIdentity() *Point {
	p.X.SetInt64(0)
	p.Y.SetInt64(0)
	return p
}

// IsIdentity reports whether p is the identity encoding.
func (p *Point) IsIdentity() bool {
	return p.X.Sign() == 0 && p.Y.Sign() == 0
}

// Equal reports coordinate equality.
func (p *Point) Equal(q *Point) bool {
	return p.X.Cmp(&q.X) == 0 && p.Y.Cmp(&q.Y) == 0
}

// IsOnCurve reports whether p satisfies y² = x³ + 5. The identity encoding
// reports false.
func (p *Point) IsOnCurve() bool {
	if p.IsIdentity() {
		return false
	}
	var lhs, rhs big.Int
	lhs.Mul(&p.Y, &p.Y).Mod(&lhs, pBase)
	rhs.Mul(&p.X, &p.X).Mod(&rhs, pBase)
	rhs.Mul(&rhs, &p.X).Add(&rhs, bCoeff).Mod(&rhs, pBase)
	return lhs.Cmp(&rhs) == 0
}

// Neg sets p to -q and returns p.
func (p *Point) Neg(q *Point) *Point {
	p.X.Set(&q.X)
	p.Y.Neg(&q.Y).Mod(&p.Y, pBase)
	return p
}

// Add sets p to a+b and returns p. All cases are handled: identity
// operands, inverse pairs and doubling.
func (p *Point) Add(a, b *Point) *Point {
	if a.IsIdentity() {
		return p.Set(b)
	}
	if b.IsIdentity() {
		return p.Set(a)
	}
	if a.X.Cmp(&b.X) == 0 {
		var s big.Int
		s.Add(&a.Y, &b.Y).Mod(&s, pBase)
		if s.Sign() == 0 {
			return p.SetIdentity()
		}
		return p.Double(a)
	}
	// chord: lambda = (y2-y1)/(x2-x1)
	var lambda, den big.Int
	den.Sub(&b.X, &a.X).Mod(&den, pBase)
	den.ModInverse(&den, pBase)
	lambda.Sub(&b.Y, &a.Y).Mul(&lambda, &den).Mod(&lambda, pBase)
	return p.fromSlope(&lambda, a, b)
}

// Double sets p to 2a and returns p. A point of order two (y = 0) cannot
// exist on a prime-order curve, but the identity and the y = 0 case still
// map to the identity so that garbage inputs cannot divide by zero.
func (p *Point) Double(a *Point) *Point {
	if a.IsIdentity() || a.Y.Sign() == 0 {
		return p.SetIdentity()
	}
	// tangent: lambda = 3x²/2y
	var lambda, den big.Int
	den.Lsh(&a.Y, 1).Mod(&den, pBase)
	den.ModInverse(&den, pBase)
	lambda.Mul(&a.X, &a.X).Mod(&lambda, pBase)
	lambda.Mul(&lambda, big.NewInt(3)).Mul(&lambda, &den).Mod(&lambda, pBase)
	return p.fromSlope(&lambda, a, a)
}

// fromSlope finishes an addition given the slope through a and b:
// x3 = s² - x1 - x2, y3 = s(x1-x3) - y1.
func (p *Point) fromSlope(s *big.Int, a, b *Point) *Point {
	var x3, y3 big.Int
	x3.Mul(s, s).Sub(&x3, &a.X).Sub(&x3, &b.X).Mod(&x3, pBase)
	y3.Sub(&a.X, &x3).Mul(&y3, s).Sub(&y3, &a.Y).Mod(&y3, pBase)
	p.X.Set(&x3)
	p.Y.Set(&y3)
	return p
}

// ScalarMul sets p to s·a and returns p. The scalar is reduced mod q first;
// a zero scalar or identity input yields the identity.
func (p *Point) ScalarMul(a *Point, s *big.Int) *Point {
	k := new(big.Int).Mod(s, qScalar)
	var base Point
	base.Set(a)
	var acc Point
	acc.SetIdentity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc.Double(&acc)
		if k.Bit(i) == 1 {
			acc.Add(&acc, &base)
		}
	}
	return p.Set(&acc)
}

// RandomPoint returns a uniformly random non-identity point.
func RandomPoint(r io.Reader) (*Point, error) {
	bound := new(big.Int).Sub(qScalar, big.NewInt(1))
	s, err := rand.Int(r, bound)
	if err != nil {
		return nil, err
	}
	s.Add(s, big.NewInt(1))
	return new(Point).ScalarMul(Generator(), s), nil
}
