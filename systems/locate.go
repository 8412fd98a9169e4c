package systems

import (
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/generation"
)

var cardinalSteps = []generation.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// PathToNearest finds the entity tagged tag closest to from and the shortest
// walkable path from from to a cell next to it. Marker cells are not
// walkable, so the path stops beside the target instead of on it.
func PathToNearest(world *ecs.World, index *SpatialIndex, gen *generation.MapGenerator, from generation.Point, tag string) (ecs.EntityID, []generation.Point, bool) {
	target, ok := index.Nearest(from.X, from.Y, func(id ecs.EntityID) bool {
		entity := world.GetEntity(id)
		return entity != nil && entity.HasTag(tag)
	})
	if !ok {
		return 0, nil, false
	}

	pos, _ := index.Position(target)
	var best []generation.Point
	for _, step := range cardinalSteps {
		path, ok := gen.FindPath(from, generation.Point{X: pos.X + step.X, Y: pos.Y + step.Y})
		if ok && (best == nil || len(path) < len(best)) {
			best = path
		}
	}
	return target, best, best != nil
}
