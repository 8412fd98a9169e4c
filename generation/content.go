package generation

// Content probabilities for normal rooms
const (
	enemyRoomChance    = 0.6
	treasureRoomChance = 0.3
	maxNormalEnemies   = 3
)

// placeContent marks spawn, enemy and treasure cells and records the
// matching placement directives on each room.
func placeContent(grid *Grid, rooms []Room, rng *SeededRandom) {
	for i := range rooms {
		room := &rooms[i]
		switch room.Type {
		case RoomSpawn:
			c := room.Center()
			grid.set(c.X, c.Y, CellSpawn)
		case RoomBoss:
			placeEnemies(grid, room, rng, 1, true)
		case RoomNormal:
			if rng.Chance(enemyRoomChance) {
				placeEnemies(grid, room, rng, rng.NextInt(1, maxNormalEnemies), false)
			}
			if rng.Chance(treasureRoomChance) {
				placeTreasure(grid, room, rng)
			}
		}
	}
}

func placeEnemies(grid *Grid, room *Room, rng *SeededRandom, count int, boss bool) {
	prefab := PrefabNormalEnemy
	if boss {
		prefab = PrefabBossEnemy
	}
	for i := 0; i < count; i++ {
		x, y, ok := pickInteriorFloor(grid, room, rng)
		if !ok {
			continue
		}
		grid.set(x, y, CellEnemySpawn)
		room.Content = append(room.Content, RoomContent{
			Kind:       ContentEnemy,
			X:          x,
			Y:          y,
			PrefabHint: prefab,
			Boss:       boss,
		})
	}
}

func placeTreasure(grid *Grid, room *Room, rng *SeededRandom) {
	x, y, ok := pickInteriorFloor(grid, room, rng)
	if !ok {
		return
	}
	grid.set(x, y, CellTreasure)
	room.Content = append(room.Content, RoomContent{
		Kind:       ContentTreasure,
		X:          x,
		Y:          y,
		PrefabHint: PrefabTreasureChest,
	})
}

// pickInteriorFloor draws one cell away from the room edge. A cell that is
// no longer floor (already holding a marker) is not redrawn.
func pickInteriorFloor(grid *Grid, room *Room, rng *SeededRandom) (int, int, bool) {
	x := room.X + rng.NextInt(1, room.Width-2)
	y := room.Y + rng.NextInt(1, room.Height-2)
	if !grid.InBounds(x, y) || grid.typeAt(x, y) != CellFloor {
		return x, y, false
	}
	return x, y, true
}
