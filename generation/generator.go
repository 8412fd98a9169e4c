package generation

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// MapGenerator builds seeded dungeons and answers grid queries about the
// last one it built. It is not safe for concurrent use; run independent
// generators when building several maps at once.
type MapGenerator struct {
	cfg     Config
	logFunc func(string)

	seed      int64
	grid      *Grid
	rooms     []Room
	pathRange *paths.PathRange
}

// NewMapGenerator validates the configuration and returns an empty generator.
// logFunc may be nil.
func NewMapGenerator(cfg Config, logFunc func(string)) (*MapGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &MapGenerator{cfg: cfg, logFunc: logFunc}, nil
}

// Config returns the generator configuration
func (g *MapGenerator) Config() Config {
	return g.cfg
}

// Seed returns the seed of the last successful generation
func (g *MapGenerator) Seed() int64 {
	return g.seed
}

// GenerateNewMap discards the current map and builds a new one from seed.
// The stages run in order on private state, which is published only once all
// of them are done; on error the previous map stays in place.
func (g *MapGenerator) GenerateNewMap(seed int64) error {
	if err := g.cfg.Validate(); err != nil {
		return err
	}

	grid, err := NewGrid(g.cfg.Width, g.cfg.Height)
	if err != nil {
		return err
	}

	rng := NewSeededRandom(seed)
	rooms := placeRooms(grid, g.cfg, rng)
	connectRooms(rooms)
	carveCorridors(grid, rooms)
	placeContent(grid, rooms, rng)

	g.seed = seed
	g.grid = grid
	g.rooms = rooms
	g.pathRange = paths.NewPathRange(gruid.NewRange(0, 0, grid.Width(), grid.Height()))

	g.log(fmt.Sprintf("Generated %d rooms", len(rooms)))
	g.log(fmt.Sprintf("Map generated with seed %d", seed))
	return nil
}

// GetMapData returns a copy of the current grid, or nil before the first generation
func (g *MapGenerator) GetMapData() *Grid {
	if g.grid == nil {
		return nil
	}
	return g.grid.Clone()
}

// GetRooms returns a copy of the current rooms
func (g *MapGenerator) GetRooms() []Room {
	rooms := make([]Room, len(g.rooms))
	for i, r := range g.rooms {
		rooms[i] = r.clone()
	}
	return rooms
}

// spawnRoom returns the spawn room of the current map
func (g *MapGenerator) spawnRoom() (Room, bool) {
	for _, r := range g.rooms {
		if r.Type == RoomSpawn {
			return r, true
		}
	}
	return Room{}, false
}

func (g *MapGenerator) log(message string) {
	if g.logFunc != nil {
		g.logFunc(message)
	}
}
