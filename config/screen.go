package config

// Screen layout configuration
const (
	// Tile size in pixels
	TileSize = 16

	// Map viewport in tiles; larger maps scroll with the camera
	GameScreenWidth  = 50
	GameScreenHeight = 40

	// Message panel below the map, in tiles
	MessagePanelHeight = 6

	// Window dimensions in tiles
	ScreenWidth  = GameScreenWidth
	ScreenHeight = GameScreenHeight + MessagePanelHeight

	// Window dimensions in pixels (derived from tile dimensions)
	WindowWidth  = ScreenWidth * TileSize
	WindowHeight = ScreenHeight * TileSize
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}
