package field

import "math"

// CoulombK is the Coulomb constant in N·m²/C².
const CoulombK = 8987551787.3681764

type Charge struct {
	X, Y float64
	Q    float64
}

func (c Charge) Pos() Point { return Point{X: c.X, Y: c.Y} }

type Point struct {
	X, Y float64
}

type Vec struct {
	X, Y float64
}

func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Seed returns the fixed charge pair: +1 above -1, centered horizontally.
func Seed() []Charge {
	return []Charge{
		{X: 400, Y: 300 - 100, Q: +1},
		{X: 400, Y: 300 + 100, Q: -1},
	}
}

func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// CoulombForce returns k*q1*q2/r². r == 0 is not guarded.
func CoulombForce(q1, q2, r float64) float64 {
	return CoulombK * q1 * q2 / (r * r)
}

// At sums the contribution of every charge at p, treating p as a unit test
// charge. Each term is directed from p towards the charge, scaled by the
// signed force.
func At(p Point, charges []Charge) Vec {
	var f Vec
	for _, c := range charges {
		d := Distance(p, c.Pos())
		s := CoulombForce(c.Q, 1.0, d)

		f.X += s * (c.X - p.X) / d
		f.Y += s * (c.Y - p.Y) / d
	}
	return f
}
