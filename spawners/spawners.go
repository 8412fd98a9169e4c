package spawners

import (
	"fmt"
	"image/color"

	"github.com/google/uuid"

	"ebiten-dungeon/components"
	"ebiten-dungeon/data"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/generation"
	"ebiten-dungeon/systems"
)

// EntitySpawner turns a published map into entities: the player on the
// spawn cell and one entity per content directive
type EntitySpawner struct {
	world           *ecs.World
	index           *systems.SpatialIndex
	templateManager *data.PrefabTemplateManager
	logMessage      func(string) // Function for logging messages
	spawnMapID      uuid.UUID    // Generation entities are being spawned for
	subscription    *ecs.Subscription
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, index *systems.SpatialIndex, templateManager *data.PrefabTemplateManager, logFunc func(string)) *EntitySpawner {
	return &EntitySpawner{
		world:           world,
		index:           index,
		templateManager: templateManager,
		logMessage:      logFunc,
	}
}

// Initialize subscribes the spawner to map generation events. Calling it
// twice has no further effect.
func (s *EntitySpawner) Initialize() {
	if s.subscription != nil {
		return
	}
	sub := s.world.GetEventManager().Subscribe(systems.EventMapGenerated, s.handleMapGenerated)
	s.subscription = &sub
}

// Close removes the event subscription
func (s *EntitySpawner) Close() {
	if s.subscription == nil {
		return
	}
	s.world.GetEventManager().Unsubscribe(*s.subscription)
	s.subscription = nil
}

func (s *EntitySpawner) handleMapGenerated(event ecs.Event) {
	ev, ok := event.(systems.MapGeneratedEvent)
	if !ok {
		return
	}

	mapComp, exists := s.world.GetComponent(ev.MapEntity, components.MapComponentID)
	if !exists {
		s.log("Error: map component not found for generated map")
		return
	}

	if err := s.PopulateLevel(mapComp.(*components.MapComponent)); err != nil {
		s.log("Error: " + err.Error())
	}
}

// PopulateLevel clears entities from the previous generation and spawns the
// player and room content for mapComp
func (s *EntitySpawner) PopulateLevel(mapComp *components.MapComponent) error {
	s.ClearLevel()
	s.spawnMapID = mapComp.ID

	spawn, ok := mapComp.Generator.SpawnCell()
	if !ok {
		return fmt.Errorf("map %s has no spawn room", mapComp.ID)
	}
	s.CreatePlayer(spawn.X, spawn.Y)

	enemies, treasures := s.SpawnRoomContent(mapComp.Generator.GetRooms())

	s.world.EmitEvent(systems.ContentSpawnedEvent{
		MapID:     mapComp.ID,
		Enemies:   enemies,
		Treasures: treasures,
	})
	return nil
}

// ClearLevel removes every entity spawned for a map, the player included
func (s *EntitySpawner) ClearLevel() {
	for _, entity := range s.world.GetEntitiesWithComponent(components.MapContext) {
		s.index.Remove(entity.ID)
		s.world.RemoveEntity(entity.ID)
	}
}

// CreatePlayer creates a player entity at the given position
func (s *EntitySpawner) CreatePlayer(x, y int) *ecs.Entity {
	playerEntity := s.world.CreateEntity()
	s.world.TagEntity(playerEntity.ID, "player")

	s.world.AddComponent(playerEntity.ID, components.Position, &components.PositionComponent{
		X: x,
		Y: y,
	})
	s.world.AddComponent(playerEntity.ID, components.Renderable, components.NewRenderableComponent(
		'@',
		color.RGBA{255, 255, 255, 255},
		0.8,
	))
	s.world.AddComponent(playerEntity.ID, components.Player, &components.PlayerComponent{})
	s.world.AddComponent(playerEntity.ID, components.Collision, &components.CollisionComponent{
		Blocks: true,
	})
	s.world.AddComponent(playerEntity.ID, components.Name, &components.NameComponent{Name: "Player"})
	s.world.AddComponent(playerEntity.ID, components.MapContext, components.NewMapContextComponent(s.spawnMapID))

	s.index.Insert(playerEntity.ID, x, y)

	s.log(fmt.Sprintf("Player created at %d,%d", x, y))
	return playerEntity
}

// SpawnRoomContent creates one entity per content directive, in room order,
// and returns how many enemies and treasures were created
func (s *EntitySpawner) SpawnRoomContent(rooms []generation.Room) (enemies, treasures int) {
	for i, room := range rooms {
		for _, content := range room.Content {
			if _, err := s.CreateContent(i, content); err != nil {
				s.log("Warning: " + err.Error())
				continue
			}
			switch content.Kind {
			case generation.ContentEnemy:
				enemies++
			case generation.ContentTreasure:
				treasures++
			}
		}
	}

	s.log(fmt.Sprintf("Spawned %d enemies and %d treasures", enemies, treasures))
	return enemies, treasures
}

// CreateContent creates the entity described by a single content directive
// of room roomIndex
func (s *EntitySpawner) CreateContent(roomIndex int, content generation.RoomContent) (*ecs.Entity, error) {
	template, exists := s.templateManager.GetTemplate(content.PrefabHint)
	if !exists {
		return nil, fmt.Errorf("no prefab template found with ID '%s'", content.PrefabHint)
	}

	entity := s.world.CreateEntity()
	switch content.Kind {
	case generation.ContentEnemy:
		s.world.TagEntity(entity.ID, "enemy")
		if content.Boss {
			s.world.TagEntity(entity.ID, "boss")
		}
	case generation.ContentTreasure:
		s.world.TagEntity(entity.ID, "treasure")
	default:
		s.world.TagEntity(entity.ID, content.Kind.String())
	}
	for _, tag := range template.Tags {
		s.world.TagEntity(entity.ID, tag)
	}

	s.world.AddComponent(entity.ID, components.Position, &components.PositionComponent{
		X: content.X,
		Y: content.Y,
	})
	s.world.AddComponent(entity.ID, components.Renderable, components.NewRenderableComponent(
		template.GlyphRune(),
		data.ParseHexColor(template.Color),
		template.Scale,
	))
	s.world.AddComponent(entity.ID, components.Collision, &components.CollisionComponent{
		Blocks: template.BlocksPath,
	})
	s.world.AddComponent(entity.ID, components.Name, &components.NameComponent{Name: template.Name})
	s.world.AddComponent(entity.ID, components.Content, &components.ContentComponent{
		Kind:       content.Kind,
		PrefabHint: content.PrefabHint,
		Boss:       content.Boss,
		RoomIndex:  roomIndex,
	})
	s.world.AddComponent(entity.ID, components.MapContext, components.NewMapContextComponent(s.spawnMapID))

	s.index.Insert(entity.ID, content.X, content.Y)

	return entity, nil
}

func (s *EntitySpawner) log(message string) {
	if s.logMessage != nil {
		s.logMessage(message)
	}
}
