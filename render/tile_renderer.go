// Package render draws a generated dungeon and the entities standing on it.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/generation"
	"ebiten-dungeon/systems"
)

// Cell colors
var palette = map[generation.CellType]color.RGBA{
	generation.CellEmpty:      {0, 0, 0, 255},
	generation.CellWall:       {100, 100, 100, 255},
	generation.CellFloor:      {200, 200, 200, 255},
	generation.CellRoom:       {220, 220, 220, 255},
	generation.CellCorridor:   {150, 150, 150, 255},
	generation.CellDoor:       {139, 69, 19, 255},
	generation.CellSpawn:      {0, 255, 0, 255},
	generation.CellExit:       {0, 128, 255, 255},
	generation.CellTreasure:   {255, 255, 0, 255},
	generation.CellEnemySpawn: {255, 0, 0, 255},
}

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	panelColor      = color.RGBA{20, 20, 30, 255}
	bossOutline     = color.RGBA{176, 0, 0, 255}
	spawnOutline    = color.RGBA{0, 160, 0, 255}
	pathColor       = color.RGBA{80, 160, 255, 160}
)

// TileMapRenderer draws the current map, its room outlines, the entities
// on it and the message panel. It snapshots the map once per generation.
type TileMapRenderer struct {
	camera    *systems.CameraSystem
	index     *systems.SpatialIndex
	messages  *systems.MessageLog
	grid      *generation.Grid
	rooms     []generation.Room
	seed      int64
	reachable int                // Walkable cells connected to the spawn cell
	path      []generation.Point // Highlighted path, if any
}

// NewTileMapRenderer creates a renderer drawing through camera. Entities
// are looked up in index.
func NewTileMapRenderer(camera *systems.CameraSystem, index *systems.SpatialIndex, messages *systems.MessageLog) *TileMapRenderer {
	return &TileMapRenderer{
		camera:   camera,
		index:    index,
		messages: messages,
	}
}

// SetPath highlights path until the next call or the next generation
func (r *TileMapRenderer) SetPath(path []generation.Point) {
	r.path = path
}

// Initialize subscribes the renderer to map generation events
func (r *TileMapRenderer) Initialize(world *ecs.World) {
	world.GetEventManager().Subscribe(systems.EventMapGenerated, func(event ecs.Event) {
		ev, ok := event.(systems.MapGeneratedEvent)
		if !ok {
			return
		}
		mapComp, exists := world.GetComponent(ev.MapEntity, components.MapComponentID)
		if !exists {
			return
		}
		r.Refresh(mapComp.(*components.MapComponent).Generator)
	})
}

// Refresh takes a new snapshot of the generator's map and rooms
func (r *TileMapRenderer) Refresh(gen *generation.MapGenerator) {
	r.grid = gen.GetMapData()
	r.rooms = gen.GetRooms()
	r.seed = gen.Seed()
	r.path = nil
	r.reachable = 0
	if spawn, ok := gen.SpawnCell(); ok {
		r.reachable = len(gen.ReachableFrom(spawn))
	}
	if r.grid != nil {
		r.camera.SetMapSize(r.grid.Width(), r.grid.Height())
	}
}

// Draw renders the map and all positioned entities
func (r *TileMapRenderer) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if r.grid == nil {
		ebitenutil.DebugPrintAt(screen, "No map generated", 8, 8)
		return
	}

	r.drawCells(screen)
	r.drawRoomOutlines(screen)
	r.drawPath(screen)
	r.drawEntities(world, screen)
	r.drawMessagesPanel(screen)
}

func (r *TileMapRenderer) drawCells(screen *ebiten.Image) {
	ts := float32(config.TileSize)
	for sy := 0; sy < r.camera.ViewportH; sy++ {
		for sx := 0; sx < r.camera.ViewportW; sx++ {
			x, y := sx+r.camera.X, sy+r.camera.Y
			t, err := r.grid.Type(x, y)
			if err != nil {
				continue
			}
			vector.DrawFilledRect(screen, float32(sx)*ts, float32(sy)*ts, ts, ts, palette[t], false)
		}
	}
}

func (r *TileMapRenderer) drawRoomOutlines(screen *ebiten.Image) {
	ts := float32(config.TileSize)
	for _, room := range r.rooms {
		var clr color.RGBA
		switch room.Type {
		case generation.RoomBoss:
			clr = bossOutline
		case generation.RoomSpawn:
			clr = spawnOutline
		default:
			continue
		}
		sx, sy := r.camera.WorldToScreen(room.X, room.Y)
		vector.StrokeRect(screen, float32(sx)*ts, float32(sy)*ts,
			float32(room.Width)*ts, float32(room.Height)*ts, 2, clr, false)
	}
}

func (r *TileMapRenderer) drawPath(screen *ebiten.Image) {
	ts := float32(config.TileSize)
	for _, p := range r.path {
		if !r.camera.Visible(p.X, p.Y) {
			continue
		}
		sx, sy := r.camera.WorldToScreen(p.X, p.Y)
		vector.DrawFilledRect(screen, float32(sx)*ts+ts/4, float32(sy)*ts+ts/4, ts/2, ts/2, pathColor, false)
	}
}

func (r *TileMapRenderer) drawEntities(world *ecs.World, screen *ebiten.Image) {
	ts := float32(config.TileSize)
	visible := r.index.QueryRect(r.camera.X, r.camera.Y,
		r.camera.X+r.camera.ViewportW-1, r.camera.Y+r.camera.ViewportH-1)
	for _, id := range visible {
		posComp, exists := world.GetComponent(id, components.Position)
		if !exists {
			continue
		}
		pos := posComp.(*components.PositionComponent)

		rendComp, exists := world.GetComponent(id, components.Renderable)
		if !exists {
			continue
		}
		rend := rendComp.(*components.RenderableComponent)

		sx, sy := r.camera.WorldToScreen(pos.X, pos.Y)
		size := ts * rend.Scale
		inset := (ts - size) / 2
		px, py := float32(sx)*ts, float32(sy)*ts
		vector.DrawFilledRect(screen, px+inset, py+inset, size, size, rend.FG, false)
		ebitenutil.DebugPrintAt(screen, string(rend.Glyph), int(px)+5, int(py))
	}
}

func (r *TileMapRenderer) drawMessagesPanel(screen *ebiten.Image) {
	top := config.GameScreenHeight * config.TileSize
	vector.DrawFilledRect(screen, 0, float32(top),
		float32(config.WindowWidth), float32(config.MessagePanelHeight*config.TileSize), panelColor, false)

	header := fmt.Sprintf("seed %d  rooms %d  reachable %d  [R] new seed  [N] next seed  [F] find enemy",
		r.seed, len(r.rooms), r.reachable)
	ebitenutil.DebugPrintAt(screen, header, 4, top+2)

	lines := config.MessagePanelHeight - 1
	for i, msg := range r.messages.RecentMessages(lines) {
		ebitenutil.DebugPrintAt(screen, msg, 4, top+2+(i+1)*config.TileSize)
	}
}
