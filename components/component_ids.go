package components

import (
	"ebiten-dungeon/ecs"
)

// Define component IDs for the dungeon entities
const (
	Position ecs.ComponentID = iota
	Renderable
	Player
	Collision
	Content        // Placement directive an entity was spawned from
	MapComponentID // Generated map attached to the map entity
	Name
	MapContext // Which generation an entity belongs to
)
