package generation

// Placement regions, as tenths of the map size
const (
	spawnInsetTenths = 1
	bossInsetTenths  = 8
)

// attemptsPerRoom bounds the rejection sampling loop
const attemptsPerRoom = 10

// placeRooms fills the grid with a spawn room, normal rooms and a boss room.
// Candidates touching an already placed room are dropped, never forced in,
// so the result may hold fewer rooms than the drawn target.
func placeRooms(grid *Grid, cfg Config, rng *SeededRandom) []Room {
	target := rng.NextInt(cfg.MinRooms, cfg.MaxRooms)
	attempts := target * attemptsPerRoom
	rooms := make([]Room, 0, target)

	// Spawn room near the top-left corner, close to the minimum size
	spawnX := cfg.Width * spawnInsetTenths / 10
	spawnY := cfg.Height * spawnInsetTenths / 10
	spawnW := rng.NextInt(cfg.MinRoomSize, cfg.MinRoomSize+2)
	spawnH := rng.NextInt(cfg.MinRoomSize, cfg.MinRoomSize+2)
	if room, ok := tryPlaceRoom(grid, rooms, spawnX, spawnY, spawnW, spawnH, RoomSpawn); ok {
		rooms = append(rooms, room)
	}

	// Normal rooms anywhere; the last slot of the target is kept for the boss
	for i := 0; i < attempts && len(rooms) < target-1; i++ {
		x := rng.NextInt(1, cfg.Width-cfg.MaxRoomSize-1)
		y := rng.NextInt(1, cfg.Height-cfg.MaxRoomSize-1)
		w := rng.NextInt(cfg.MinRoomSize, cfg.MaxRoomSize)
		h := rng.NextInt(cfg.MinRoomSize, cfg.MaxRoomSize)
		if room, ok := tryPlaceRoom(grid, rooms, x, y, w, h, RoomNormal); ok {
			rooms = append(rooms, room)
		}
	}

	// Boss room near the bottom-right corner, close to the maximum size
	if len(rooms) > 0 && len(rooms) < target {
		bossX := cfg.Width * bossInsetTenths / 10
		bossY := cfg.Height * bossInsetTenths / 10
		bossW := rng.NextInt(cfg.MaxRoomSize-2, cfg.MaxRoomSize)
		bossH := rng.NextInt(cfg.MaxRoomSize-2, cfg.MaxRoomSize)
		if room, ok := tryPlaceRoom(grid, rooms, bossX, bossY, bossW, bossH, RoomBoss); ok {
			rooms = append(rooms, room)
		}
	}

	return rooms
}

// tryPlaceRoom trims the candidate to the inside of the outer wall, rejects it
// when it is too small or overlaps a placed room, and otherwise carves its
// footprint as floor.
func tryPlaceRoom(grid *Grid, rooms []Room, x, y, w, h int, t RoomType) (Room, bool) {
	x0, y0 := max(x, 1), max(y, 1)
	x1, y1 := min(x+w, grid.Width()-1), min(y+h, grid.Height()-1)
	x, y, w, h = x0, y0, x1-x0, y1-y0
	if w < minRoomSide || h < minRoomSide {
		return Room{}, false
	}

	for _, existing := range rooms {
		if existing.Overlaps(x, y, w, h) {
			return Room{}, false
		}
	}

	for ry := y; ry < y+h; ry++ {
		for rx := x; rx < x+w; rx++ {
			grid.set(rx, ry, CellFloor)
		}
	}

	return Room{X: x, Y: y, Width: w, Height: h, Type: t}, true
}
