package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"electric-field/internal/field"
	"electric-field/internal/scene"
)

const title = "Electric Field Simulation"

func main() {
	charges := field.Seed()
	log.Printf("starting with %d charges", len(charges))

	ebiten.SetWindowSize(scene.ScreenWidth, scene.ScreenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)

	s := scene.New(charges)

	if err := ebiten.RunGame(s); err != nil {
		log.Fatal(err)
	}
	log.Printf("window %s", s.State())
}
