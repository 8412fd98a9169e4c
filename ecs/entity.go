package ecs

// EntityID is a unique identifier for an entity within one world
type EntityID uint64

// Entity represents a game object in the ECS architecture
type Entity struct {
	ID EntityID
	// Tags can be used for quick identification (e.g., "player", "enemy")
	Tags map[string]bool
}

func newEntity(id EntityID) *Entity {
	return &Entity{
		ID:   id,
		Tags: make(map[string]bool),
	}
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}
