package field

import "math"

const (
	ChargeRadius = 10.0  // радиус диска заряда и начало дуги
	LineLength   = 100.0 // длина стрелки и радиальный размах дуги
	ArcSegments  = 50
	GridStride   = 10
)

// Glyph is what gets drawn at one grid point.
type Glyph struct {
	Arrow [2]Point
	Arc   [ArcSegments + 1]Point
}

// Derive builds the glyph for field f sampled at p. It reports false when
// there is nothing to draw: a zero field, or NaN when p sits on a charge.
//
// The arc turns by a fixed 2π/ArcSegments per step starting from the field
// direction at p. It does not follow the field, so it is a spiral rather
// than a field line.
func Derive(p Point, f Vec) (Glyph, bool) {
	length := f.Len()
	if !(length > 0) {
		return Glyph{}, false
	}

	var g Glyph
	g.Arrow[0] = p
	g.Arrow[1] = Point{
		X: p.X + LineLength*f.X/length,
		Y: p.Y + LineLength*f.Y/length,
	}

	angle := math.Atan2(f.Y, f.X)
	for k := 0; k <= ArcSegments; k++ {
		r := ChargeRadius + LineLength*float64(k)/ArcSegments
		g.Arc[k] = Point{
			X: p.X + r*math.Cos(angle),
			Y: p.Y + r*math.Sin(angle),
		}
		angle += 2 * math.Pi / ArcSegments
	}
	return g, true
}

type Grid struct {
	Width, Height int
	Stride        int
}

// Each visits the lattice column by column, starting at the origin.
func (gr Grid) Each(fn func(Point)) {
	if gr.Stride <= 0 {
		return
	}
	for i := 0; i < gr.Width; i += gr.Stride {
		for j := 0; j < gr.Height; j += gr.Stride {
			fn(Point{X: float64(i), Y: float64(j)})
		}
	}
}

// Sample computes one frame of glyphs and hands each drawable one to fn.
func Sample(gr Grid, charges []Charge, fn func(Glyph)) {
	gr.Each(func(p Point) {
		if g, ok := Derive(p, At(p, charges)); ok {
			fn(g)
		}
	})
}
