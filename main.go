package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-dungeon/config"
	"ebiten-dungeon/generation"
)

func main() {
	defaults := generation.DefaultConfig()

	seed := flag.Int64("seed", 0, "seed for dungeon generation (default: current time)")
	width := flag.Int("width", defaults.Width, "map width in cells")
	height := flag.Int("height", defaults.Height, "map height in cells")
	minRooms := flag.Int("min-rooms", defaults.MinRooms, "minimum number of rooms")
	maxRooms := flag.Int("max-rooms", defaults.MaxRooms, "maximum number of rooms")
	prefabs := flag.String("prefabs", "", "directory of JSON prefab templates overriding the built-in ones")
	flag.Parse()

	cfg := defaults
	cfg.Width = *width
	cfg.Height = *height
	cfg.MinRooms = *minRooms
	cfg.MaxRooms = *maxRooms

	startSeed := *seed
	seedGiven := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedGiven = true
		}
	})
	if !seedGiven {
		startSeed = time.Now().UnixNano()
	}

	game, err := NewGame(cfg, startSeed, *prefabs)
	if err != nil {
		log.Fatal(err)
	}

	windowWidth, windowHeight := config.GetScreenDimensions()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Ebiten Dungeon")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
