package components

import "github.com/google/uuid"

// MapContextComponent identifies which generation an entity belongs to
type MapContextComponent struct {
	MapID uuid.UUID // ID of the map the entity was spawned on
}

// NewMapContextComponent creates a new map context component
func NewMapContextComponent(mapID uuid.UUID) *MapContextComponent {
	return &MapContextComponent{
		MapID: mapID,
	}
}
