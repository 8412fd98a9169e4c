package generation

import "fmt"

// Config holds the settings of a map generator
type Config struct {
	Width       int     // Map width in cells
	Height      int     // Map height in cells
	MinRooms    int     // Lower bound of the room count target
	MaxRooms    int     // Upper bound of the room count target
	MinRoomSize int     // Smallest room side
	MaxRoomSize int     // Largest room side
	CellSize    float64 // World units per cell
}

// DefaultConfig returns the standard 50x50 configuration
func DefaultConfig() Config {
	return Config{
		Width:       50,
		Height:      50,
		MinRooms:    8,
		MaxRooms:    15,
		MinRoomSize: 5,
		MaxRoomSize: 12,
		CellSize:    32,
	}
}

// minRoomSide is the smallest side that still leaves an interior cell
const minRoomSide = 3

// Validate checks the configuration before any generation work starts
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: map size %dx%d must be positive", ErrInvalidConfiguration, c.Width, c.Height)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %v must be positive", ErrInvalidConfiguration, c.CellSize)
	case c.MinRoomSize < minRoomSide:
		return fmt.Errorf("%w: min room size %d is below %d", ErrInvalidConfiguration, c.MinRoomSize, minRoomSide)
	case c.MinRoomSize > c.MaxRoomSize:
		return fmt.Errorf("%w: min room size %d > max room size %d", ErrInvalidConfiguration, c.MinRoomSize, c.MaxRoomSize)
	case c.MinRooms < 1:
		return fmt.Errorf("%w: min rooms %d must be at least 1", ErrInvalidConfiguration, c.MinRooms)
	case c.MinRooms > c.MaxRooms:
		return fmt.Errorf("%w: min rooms %d > max rooms %d", ErrInvalidConfiguration, c.MinRooms, c.MaxRooms)
	case c.Width < c.MaxRoomSize+2 || c.Height < c.MaxRoomSize+2:
		return fmt.Errorf("%w: map size %dx%d cannot hold rooms of size %d", ErrInvalidConfiguration, c.Width, c.Height, c.MaxRoomSize)
	}
	return nil
}
