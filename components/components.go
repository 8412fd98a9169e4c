package components

import (
	"image/color"

	"ebiten-dungeon/generation"
)

// PositionComponent stores an entity's grid position
type PositionComponent struct {
	X, Y int
}

// RenderableComponent stores how the renderer draws an entity
type RenderableComponent struct {
	Glyph rune        // Character drawn over the tile
	FG    color.Color // Foreground color
	Scale float32     // Marker size relative to a tile (0..1]
}

// NewRenderableComponent creates a renderable component
func NewRenderableComponent(glyph rune, fg color.Color, scale float32) *RenderableComponent {
	return &RenderableComponent{
		Glyph: glyph,
		FG:    fg,
		Scale: scale,
	}
}

// PlayerComponent indicates that an entity is controlled by the player
type PlayerComponent struct{}

// CollisionComponent indicates entity can collide with other entities
type CollisionComponent struct {
	Blocks bool // Whether this entity blocks movement
}

// ContentComponent keeps the placement directive an entity was created from
type ContentComponent struct {
	Kind       generation.ContentKind
	PrefabHint string
	Boss       bool
	RoomIndex  int // Index of the owning room in the generator's room list
}

// NameComponent stores the display name for entities
type NameComponent struct {
	Name string
}
