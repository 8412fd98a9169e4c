package systems

import (
	"fmt"

	"github.com/google/uuid"

	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/generation"
)

// MapSystem owns the map entity and republishes it on every generation
type MapSystem struct {
	generator  *generation.MapGenerator
	mapEntity  ecs.EntityID
	logMessage func(string)
	newID      func() uuid.UUID
}

// NewMapSystem creates a map system driving generator
func NewMapSystem(generator *generation.MapGenerator, logFunc func(string)) *MapSystem {
	return &MapSystem{
		generator:  generator,
		logMessage: logFunc,
		newID:      uuid.New,
	}
}

// Generator returns the underlying map generator
func (s *MapSystem) Generator() *generation.MapGenerator {
	return s.generator
}

// Generate runs a new generation with seed and replaces the map entity.
// On failure the previous map entity is left untouched.
func (s *MapSystem) Generate(world *ecs.World, seed int64) (*ecs.Entity, error) {
	if err := s.generator.GenerateNewMap(seed); err != nil {
		return nil, fmt.Errorf("generate map with seed %d: %w", seed, err)
	}

	if s.mapEntity != 0 {
		world.RemoveEntity(s.mapEntity)
	}

	mapEntity := world.CreateEntity()
	world.TagEntity(mapEntity.ID, "map")
	mapComp := components.NewMapComponent(s.newID(), s.generator)
	world.AddComponent(mapEntity.ID, components.MapComponentID, mapComp)
	s.mapEntity = mapEntity.ID

	rooms := len(s.generator.GetRooms())
	s.log(fmt.Sprintf("Map %s ready: %d rooms", mapComp.ID, rooms))

	world.EmitEvent(MapGeneratedEvent{
		MapID:     mapComp.ID,
		MapEntity: mapEntity.ID,
		Seed:      mapComp.Seed,
		Rooms:     rooms,
	})

	return mapEntity, nil
}

// ActiveMap returns the map component of the current map entity
func (s *MapSystem) ActiveMap(world *ecs.World) (*components.MapComponent, bool) {
	if s.mapEntity == 0 {
		return nil, false
	}
	mapComp, exists := world.GetComponent(s.mapEntity, components.MapComponentID)
	if !exists {
		return nil, false
	}
	return mapComp.(*components.MapComponent), true
}

// IsWalkable checks the generator's current map
func (s *MapSystem) IsWalkable(x, y int) bool {
	return s.generator.IsWalkable(x, y)
}

// Update has nothing to do per frame. Generation only happens on request.
func (s *MapSystem) Update(world *ecs.World, dt float64) {}

func (s *MapSystem) log(message string) {
	if s.logMessage != nil {
		s.logMessage(message)
	}
}
