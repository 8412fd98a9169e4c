package systems

import (
	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
)

// Direction constants for movement
const (
	DirNone = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	DirUpLeft
	DirUpRight
	DirDownLeft
	DirDownRight
)

// Walkability reports whether an entity may stand on a grid cell
type Walkability interface {
	IsWalkable(x, y int) bool
}

// MovementSystem applies queued player moves against the current map
type MovementSystem struct {
	walk    Walkability
	index   *SpatialIndex
	pending int
}

// NewMovementSystem creates a movement system checking walk for terrain and
// index for blocking entities
func NewMovementSystem(walk Walkability, index *SpatialIndex) *MovementSystem {
	return &MovementSystem{
		walk:    walk,
		index:   index,
		pending: DirNone,
	}
}

// Queue records a move to be applied on the next Update. A later call
// replaces an earlier one.
func (s *MovementSystem) Queue(dir int) {
	s.pending = dir
}

// Update handles entity movement
func (s *MovementSystem) Update(world *ecs.World, dt float64) {
	dir := s.pending
	s.pending = DirNone
	if dir == DirNone {
		return
	}

	playerEntities := world.GetEntitiesWithTag("player")
	if len(playerEntities) == 0 {
		return
	}
	playerID := playerEntities[0].ID

	posComp, exists := world.GetComponent(playerID, components.Position)
	if !exists {
		return
	}
	pos := posComp.(*components.PositionComponent)

	dx, dy := DirectionDelta(dir)
	newX, newY := pos.X+dx, pos.Y+dy

	if !s.walk.IsWalkable(newX, newY) {
		return
	}

	if blocker, ok := s.blockingEntityAt(world, newX, newY, playerID); ok {
		world.EmitEvent(CollisionEvent{
			EntityID1: playerID,
			EntityID2: blocker,
			X:         newX,
			Y:         newY,
		})
		return
	}

	fromX, fromY := pos.X, pos.Y
	pos.X, pos.Y = newX, newY
	s.index.Move(playerID, newX, newY)

	world.EmitEvent(EntityMovedEvent{
		EntityID: playerID,
		FromX:    fromX,
		FromY:    fromY,
		ToX:      newX,
		ToY:      newY,
	})
}

// blockingEntityAt returns the first entity at (x, y) with a blocking
// collision component, ignoring self
func (s *MovementSystem) blockingEntityAt(world *ecs.World, x, y int, self ecs.EntityID) (ecs.EntityID, bool) {
	for _, id := range s.index.At(x, y) {
		if id == self {
			continue
		}
		collComp, exists := world.GetComponent(id, components.Collision)
		if !exists {
			continue
		}
		if collComp.(*components.CollisionComponent).Blocks {
			return id, true
		}
	}
	return 0, false
}

// DirectionDelta converts a direction to dx, dy grid offsets. Row 0 is the
// top of the map, so up decreases y.
func DirectionDelta(dir int) (int, int) {
	switch dir {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUpLeft:
		return -1, -1
	case DirUpRight:
		return 1, -1
	case DirDownLeft:
		return -1, 1
	case DirDownRight:
		return 1, 1
	default:
		return 0, 0
	}
}
