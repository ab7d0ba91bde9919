package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/vectorgameexperts/velloplay/config"
	"github.com/vectorgameexperts/velloplay/scenes"
	"github.com/vectorgameexperts/velloplay/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewAnimationScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Running without settings persistence: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
