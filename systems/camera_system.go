package systems

import (
	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
)

// CameraSystem keeps a fixed-size viewport centered on the player,
// constrained to the map boundaries
type CameraSystem struct {
	X, Y       int // Top-left map cell shown in the viewport
	ViewportW  int // Viewport width in cells
	ViewportH  int // Viewport height in cells
	mapW, mapH int
}

// NewCameraSystem creates a camera for a viewport of w by h cells
func NewCameraSystem(w, h int) *CameraSystem {
	return &CameraSystem{
		ViewportW: w,
		ViewportH: h,
	}
}

// SetMapSize sets the bounds the camera is clamped to
func (s *CameraSystem) SetMapSize(w, h int) {
	s.mapW, s.mapH = w, h
}

// Update updates the camera position to follow the player
func (s *CameraSystem) Update(world *ecs.World, dt float64) {
	playerEntities := world.GetEntitiesWithTag("player")
	if len(playerEntities) == 0 {
		return
	}

	posComp, exists := world.GetComponent(playerEntities[0].ID, components.Position)
	if !exists {
		return
	}
	pos := posComp.(*components.PositionComponent)

	s.CenterOn(pos.X, pos.Y)
}

// CenterOn moves the viewport so (x, y) is centered where the map allows it
func (s *CameraSystem) CenterOn(x, y int) {
	s.X = clampView(x-s.ViewportW/2, s.mapW, s.ViewportW)
	s.Y = clampView(y-s.ViewportH/2, s.mapH, s.ViewportH)
}

// WorldToScreen converts map cell coordinates to viewport cell coordinates
func (s *CameraSystem) WorldToScreen(worldX, worldY int) (screenX, screenY int) {
	return worldX - s.X, worldY - s.Y
}

// Visible reports whether a map cell falls inside the viewport
func (s *CameraSystem) Visible(worldX, worldY int) bool {
	sx, sy := s.WorldToScreen(worldX, worldY)
	return sx >= 0 && sx < s.ViewportW && sy >= 0 && sy < s.ViewportH
}

// clampView keeps an offset inside [0, size-view]. Maps smaller than the
// viewport stay anchored at 0.
func clampView(offset, size, view int) int {
	if size <= view || offset < 0 {
		return 0
	}
	if offset > size-view {
		return size - view
	}
	return offset
}
