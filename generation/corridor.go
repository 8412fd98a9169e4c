package generation

// carveCorridors carves one L-shaped corridor per room connection
func carveCorridors(grid *Grid, rooms []Room) {
	for i, room := range rooms {
		for _, j := range room.Connections {
			// Connections are stored on both rooms; carve each pair once
			if i < j {
				carveCorridor(grid, room.Center(), rooms[j].Center())
			}
		}
	}
}

// carveCorridor walks horizontally along the start row, then vertically
// along the end column. Only walls are turned into corridor, so the path may
// cross other rooms without changing their floor.
func carveCorridor(grid *Grid, from, to Point) {
	x, y := from.X, from.Y

	for x != to.X {
		carveCell(grid, x, y)
		x += step(x, to.X)
	}

	for y != to.Y {
		carveCell(grid, x, y)
		y += step(y, to.Y)
	}
}

func carveCell(grid *Grid, x, y int) {
	if grid.InBounds(x, y) && grid.typeAt(x, y) == CellWall {
		grid.set(x, y, CellCorridor)
	}
}

func step(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}
