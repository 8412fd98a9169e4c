package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
	"ebiten-dungeon/data"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/generation"
	"ebiten-dungeon/render"
	"ebiten-dungeon/spawners"
	"ebiten-dungeon/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	world          *ecs.World
	messages       *systems.MessageLog
	mapSystem      *systems.MapSystem
	movementSystem *systems.MovementSystem
	cameraSystem   *systems.CameraSystem
	entitySpawner  *spawners.EntitySpawner
	renderer       *render.TileMapRenderer
	index          *systems.SpatialIndex
	movementKeys   map[ebiten.Key]int
	seed           int64
}

// NewGame creates a new game instance and generates the first map
func NewGame(cfg generation.Config, seed int64, prefabDir string) (*Game, error) {
	world := ecs.NewWorld()
	messages := systems.NewMessageLog(100)
	logMessage := func(message string) {
		messages.Add(message)
		log.Println(message)
	}

	generator, err := generation.NewMapGenerator(cfg, logMessage)
	if err != nil {
		return nil, err
	}

	templateManager := data.NewPrefabTemplateManager()
	if prefabDir != "" {
		if err := templateManager.LoadTemplatesFromDirectory(prefabDir); err != nil {
			return nil, fmt.Errorf("load prefab templates: %w", err)
		}
	}

	index := systems.NewSpatialIndex(8)
	mapSystem := systems.NewMapSystem(generator, logMessage)
	movementSystem := systems.NewMovementSystem(mapSystem, index)
	cameraSystem := systems.NewCameraSystem(config.GameScreenWidth, config.GameScreenHeight)
	entitySpawner := spawners.NewEntitySpawner(world, index, templateManager, logMessage)
	renderer := render.NewTileMapRenderer(cameraSystem, index, messages)

	// Register systems with the world that need to be updated during the game loop
	world.AddSystem(movementSystem)
	world.AddSystem(mapSystem)
	world.AddSystem(cameraSystem)

	// Map generation listeners, in dispatch order
	entitySpawner.Initialize()
	renderer.Initialize(world)

	world.GetEventManager().Subscribe(systems.EventCollision, func(event ecs.Event) {
		ev := event.(systems.CollisionEvent)
		messages.Add(fmt.Sprintf("Something blocks the way at %d,%d", ev.X, ev.Y))
	})

	game := &Game{
		world:          world,
		messages:       messages,
		mapSystem:      mapSystem,
		movementSystem: movementSystem,
		cameraSystem:   cameraSystem,
		entitySpawner:  entitySpawner,
		renderer:       renderer,
		index:          index,
		movementKeys:   defaultMovementKeys(),
	}

	if err := game.generate(seed); err != nil {
		return nil, err
	}
	messages.Add("Use arrow keys to move.")

	return game, nil
}

func defaultMovementKeys() map[ebiten.Key]int {
	return map[ebiten.Key]int{
		// Arrow keys
		ebiten.KeyArrowUp:    systems.DirUp,
		ebiten.KeyArrowDown:  systems.DirDown,
		ebiten.KeyArrowLeft:  systems.DirLeft,
		ebiten.KeyArrowRight: systems.DirRight,

		// Vi keys (hjkl)
		ebiten.KeyH: systems.DirLeft,
		ebiten.KeyJ: systems.DirDown,
		ebiten.KeyK: systems.DirUp,
		ebiten.KeyL: systems.DirRight,
		ebiten.KeyY: systems.DirUpLeft,
		ebiten.KeyU: systems.DirUpRight,
		ebiten.KeyB: systems.DirDownLeft,

		// Numpad (if Num Lock is on)
		ebiten.KeyNumpad8: systems.DirUp,
		ebiten.KeyNumpad2: systems.DirDown,
		ebiten.KeyNumpad4: systems.DirLeft,
		ebiten.KeyNumpad6: systems.DirRight,
		ebiten.KeyNumpad7: systems.DirUpLeft,
		ebiten.KeyNumpad9: systems.DirUpRight,
		ebiten.KeyNumpad1: systems.DirDownLeft,
		ebiten.KeyNumpad3: systems.DirDownRight,
	}
}

// generate builds a new map and centers the camera on the new player
func (g *Game) generate(seed int64) error {
	if _, err := g.mapSystem.Generate(g.world, seed); err != nil {
		return err
	}
	g.seed = seed

	if spawn, ok := g.mapSystem.Generator().SpawnCell(); ok {
		g.cameraSystem.CenterOn(spawn.X, spawn.Y)
	}
	return nil
}

// regenerate replaces the current map, keeping it when generation fails
func (g *Game) regenerate(seed int64) {
	if err := g.generate(seed); err != nil {
		g.messages.Add("Error: " + err.Error())
	}
}

// findNearestEnemy highlights the shortest walkable route from the player
// to the closest enemy
func (g *Game) findNearestEnemy() {
	players := g.world.GetEntitiesWithTag("player")
	if len(players) == 0 {
		return
	}
	from, ok := g.index.Position(players[0].ID)
	if !ok {
		return
	}

	target, path, ok := systems.PathToNearest(g.world, g.index, g.mapSystem.Generator(), from, "enemy")
	if !ok {
		g.renderer.SetPath(nil)
		g.messages.Add("No enemy in reach")
		return
	}
	g.renderer.SetPath(path)

	name := "enemy"
	if c, exists := g.world.GetComponent(target, components.Name); exists {
		name = c.(*components.NameComponent).Name
	}
	g.messages.Add(fmt.Sprintf("Nearest %s is %d steps away", name, len(path)-1))
}

// Update updates the game state.
func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.regenerate(time.Now().UnixNano())
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.regenerate(g.seed + 1)
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.findNearestEnemy()
	}

	for key, dir := range g.movementKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.movementSystem.Queue(dir)
			break
		}
	}

	g.world.Step(1.0 / 60.0)
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
