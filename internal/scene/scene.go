package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"electric-field/internal/field"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

type State int

const (
	Running State = iota
	Closed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Closed:
		return "closed"
	}
	return "unknown"
}

var (
	positiveColor = color.RGBA{255, 0, 0, 255}
	negativeColor = color.RGBA{0, 0, 255, 255}
	glyphColor    = color.RGBA{0, 255, 0, 255}
)

type Scene struct {
	charges []field.Charge
	grid    field.Grid
	state   State

	// closing reports whether the window close button was pressed.
	closing func() bool
}

func New(charges []field.Charge) *Scene {
	cs := make([]field.Charge, len(charges))
	copy(cs, charges)

	return &Scene{
		charges: cs,
		grid: field.Grid{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Stride: field.GridStride,
		},
		state:   Running,
		closing: ebiten.IsWindowBeingClosed,
	}
}

func (s *Scene) State() State { return s.state }

// Логика

func (s *Scene) Update() error {
	if s.state == Closed {
		return ebiten.Termination
	}
	if s.closing() {
		s.state = Closed
		return ebiten.Termination
	}
	return nil
}

// Интерфейс

func (s *Scene) Draw(screen *ebiten.Image) {
	if s.state != Running {
		return
	}

	screen.Fill(color.Black)

	s.drawCharges(screen)
	field.Sample(s.grid, s.charges, func(g field.Glyph) {
		drawGlyph(screen, g)
	})
}

func (s *Scene) drawCharges(screen *ebiten.Image) {
	face := basicfont.Face7x13
	for _, c := range s.charges {
		col, sign := positiveColor, "+"
		if c.Q <= 0 {
			col, sign = negativeColor, "-"
		}

		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), field.ChargeRadius, col, false)
		text.Draw(screen, sign, face, int(c.X)-3, int(c.Y)+4, color.White)
	}
}

func drawGlyph(screen *ebiten.Image, g field.Glyph) {
	a, b := g.Arrow[0], g.Arrow[1]
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, glyphColor, false)

	for k := 0; k < len(g.Arc)-1; k++ {
		p, q := g.Arc[k], g.Arc[k+1]
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), 1, glyphColor, false)
	}
}

func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
