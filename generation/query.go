package generation

import "math"

// Vec2 is a position in world space, where y grows upward
type Vec2 struct {
	X, Y float64
}

// WorldToGrid converts a world position to the cell containing it.
// Grid rows grow downward, so the vertical axis is flipped.
func (g *MapGenerator) WorldToGrid(pos Vec2) (int, int) {
	size := g.cfg.CellSize
	return int(math.Floor(pos.X / size)), int(math.Floor(-pos.Y / size))
}

// GridToWorld converts a cell coordinate to its world position
func (g *MapGenerator) GridToWorld(gx, gy int) Vec2 {
	size := g.cfg.CellSize
	return Vec2{X: float64(gx) * size, Y: -float64(gy) * size}
}

// IsWalkable reports whether an entity may stand on (gx, gy). Coordinates
// outside the map are simply not walkable.
func (g *MapGenerator) IsWalkable(gx, gy int) bool {
	if g.grid == nil || !g.grid.InBounds(gx, gy) {
		return false
	}
	return g.grid.typeAt(gx, gy).Walkable()
}

// GetSpawnPosition returns the world position of the spawn room center, or
// the world origin when the map has no spawn room.
func (g *MapGenerator) GetSpawnPosition() Vec2 {
	room, ok := g.spawnRoom()
	if !ok {
		return Vec2{}
	}
	c := room.Center()
	return g.GridToWorld(c.X, c.Y)
}

// SpawnCell returns the grid coordinate of the spawn room center
func (g *MapGenerator) SpawnCell() (Point, bool) {
	room, ok := g.spawnRoom()
	if !ok {
		return Point{}, false
	}
	return room.Center(), true
}
