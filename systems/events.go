package systems

import (
	"github.com/google/uuid"

	"ebiten-dungeon/ecs"
)

// Event type constants
const (
	EventMapGenerated   ecs.EventType = "map_generated"
	EventMovement       ecs.EventType = "movement"
	EventCollision      ecs.EventType = "collision"
	EventContentSpawned ecs.EventType = "content_spawned"
)

// MapGeneratedEvent is emitted after a new map has been published
type MapGeneratedEvent struct {
	MapID     uuid.UUID    // Identity of this generation
	MapEntity ecs.EntityID // Entity holding the map component
	Seed      int64
	Rooms     int
}

// Type returns the event type
func (e MapGeneratedEvent) Type() ecs.EventType {
	return EventMapGenerated
}

// EntityMovedEvent is emitted when an entity changes cell
type EntityMovedEvent struct {
	EntityID ecs.EntityID
	FromX    int
	FromY    int
	ToX      int
	ToY      int
}

// Type returns the event type
func (e EntityMovedEvent) Type() ecs.EventType {
	return EventMovement
}

// CollisionEvent is emitted when a move is stopped by a blocking entity
type CollisionEvent struct {
	EntityID1 ecs.EntityID // Entity that tried to move
	EntityID2 ecs.EntityID // Entity in the way
	X         int          // X position where collision occurred
	Y         int          // Y position where collision occurred
}

// Type returns the event type
func (e CollisionEvent) Type() ecs.EventType {
	return EventCollision
}

// ContentSpawnedEvent is emitted once the placement directives of a map
// have been turned into entities
type ContentSpawnedEvent struct {
	MapID     uuid.UUID
	Enemies   int
	Treasures int
}

// Type returns the event type
func (e ContentSpawnedEvent) Type() ecs.EventType {
	return EventContentSpawned
}
