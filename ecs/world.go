package ecs

import "slices"

// World manages all entities and components
type World struct {
	nextID   EntityID
	entities map[EntityID]*Entity
	// Store components as map[EntityID]map[ComponentID]Component
	components map[EntityID]ComponentMap
	systems    []System
	// Tag-based entity lookup for quick access
	entityTags map[string]map[EntityID]bool
	// Event manager for system communication
	eventManager *EventManager
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Entity),
		components:   make(map[EntityID]ComponentMap),
		entityTags:   make(map[string]map[EntityID]bool),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	w.nextID++
	entity := newEntity(w.nextID)
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	return entity
}

// RemoveEntity removes an entity and all its components from the world
func (w *World) RemoveEntity(entityID EntityID) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	for tag := range entity.Tags {
		delete(w.entityTags[tag], entityID)
		if len(w.entityTags[tag]) == 0 {
			delete(w.entityTags, tag)
		}
	}

	delete(w.components, entityID)
	delete(w.entities, entityID)
}

// AddComponent adds a component to an entity
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}
	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	component, exists := w.components[entityID][componentID]
	return component, exists
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	_, exists := w.components[entityID][componentID]
	return exists
}

// RemoveComponent removes a component from an entity
func (w *World) RemoveComponent(entityID EntityID, componentID ComponentID) {
	if componentMap, exists := w.components[entityID]; exists {
		delete(componentMap, componentID)
	}
}

// AddSystem adds a system to the world
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Step advances the simulation by dt, running every system once in the
// order they were added. The host loop calls it once per frame.
func (w *World) Step(dt float64) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

// GetSystems returns all systems registered in the world
func (w *World) GetSystems() []System {
	return w.systems
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.Tags[tag] = true

	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	w.entityTags[tag][entityID] = true
}

// GetEntitiesWithTag returns all entities with a specific tag, ordered by ID
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0, len(w.entityTags[tag]))
	for entityID := range w.entityTags[tag] {
		if entity, ok := w.entities[entityID]; ok {
			entities = append(entities, entity)
		}
	}
	sortByID(entities)
	return entities
}

// GetAllEntities returns all entities in the world, ordered by ID
func (w *World) GetAllEntities() []*Entity {
	entities := make([]*Entity, 0, len(w.entities))
	for _, entity := range w.entities {
		entities = append(entities, entity)
	}
	sortByID(entities)
	return entities
}

// GetEntitiesWithComponent returns all entities that have a specific component, ordered by ID
func (w *World) GetEntitiesWithComponent(componentID ComponentID) []*Entity {
	entities := make([]*Entity, 0)
	for id, componentMap := range w.components {
		if _, hasComponent := componentMap[componentID]; hasComponent {
			if entity, ok := w.entities[id]; ok {
				entities = append(entities, entity)
			}
		}
	}
	sortByID(entities)
	return entities
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

// GetEntity returns an entity by its ID
func (w *World) GetEntity(entityID EntityID) *Entity {
	return w.entities[entityID]
}

func sortByID(entities []*Entity) {
	slices.SortFunc(entities, func(a, b *Entity) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}
