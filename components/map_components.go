package components

import (
	"github.com/google/uuid"

	"ebiten-dungeon/generation"
)

// MapComponent attaches a published generation to the map entity
type MapComponent struct {
	ID        uuid.UUID
	Seed      int64
	Generator *generation.MapGenerator
}

// NewMapComponent wraps the generator's current map
func NewMapComponent(id uuid.UUID, generator *generation.MapGenerator) *MapComponent {
	return &MapComponent{
		ID:        id,
		Seed:      generator.Seed(),
		Generator: generator,
	}
}

// IsWalkable returns true if an entity may stand on (x, y)
func (m *MapComponent) IsWalkable(x, y int) bool {
	return m.Generator.IsWalkable(x, y)
}

// Width returns the map width in cells
func (m *MapComponent) Width() int {
	return m.Generator.Config().Width
}

// Height returns the map height in cells
func (m *MapComponent) Height() int {
	return m.Generator.Config().Height
}
