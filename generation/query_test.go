package generation

import "testing"

func TestIsWalkableAgreesWithGrid(t *testing.T) {
	g, _ := NewMapGenerator(DefaultConfig(), nil)
	for _, seed := range []int64{3, 42, 99} {
		g.GenerateNewMap(seed)
		grid := g.GetMapData()
		for y := 0; y < grid.Height(); y++ {
			for x := 0; x < grid.Width(); x++ {
				ct, _ := grid.Type(x, y)
				want := ct == CellFloor || ct == CellCorridor || ct == CellDoor || ct == CellSpawn
				if got := g.IsWalkable(x, y); got != want {
					t.Fatalf("seed %d: IsWalkable(%d, %d) = %v for %v, want %v", seed, x, y, got, ct, want)
				}
			}
		}
	}
}

func TestIsWalkableOutOfBounds(t *testing.T) {
	g, _ := NewMapGenerator(DefaultConfig(), nil)
	if g.IsWalkable(5, 5) {
		t.Error("IsWalkable before generation = true, want false")
	}

	g.GenerateNewMap(42)
	for _, c := range [][2]int{{-1, 5}, {1000, 1000}, {50, 0}, {0, 50}, {5, -1}} {
		if g.IsWalkable(c[0], c[1]) {
			t.Errorf("IsWalkable(%d, %d) = true, want false", c[0], c[1])
		}
	}
}

func TestGridWorldRoundTrip(t *testing.T) {
	g, _ := NewMapGenerator(DefaultConfig(), nil)
	for gy := -3; gy < 53; gy++ {
		for gx := -3; gx < 53; gx++ {
			x, y := g.WorldToGrid(g.GridToWorld(gx, gy))
			if x != gx || y != gy {
				t.Fatalf("WorldToGrid(GridToWorld(%d, %d)) = (%d, %d)", gx, gy, x, y)
			}
		}
	}
}

func TestWorldToGridFlipsVerticalAxis(t *testing.T) {
	g, _ := NewMapGenerator(DefaultConfig(), nil)
	tests := []struct {
		pos    Vec2
		gx, gy int
	}{
		{Vec2{0, 0}, 0, 0},
		{Vec2{31.9, -31.9}, 0, 0},
		{Vec2{32, -32}, 1, 1},
		{Vec2{100, -70}, 3, 2},
		{Vec2{-1, 1}, -1, -1},
	}
	for _, tc := range tests {
		if gx, gy := g.WorldToGrid(tc.pos); gx != tc.gx || gy != tc.gy {
			t.Errorf("WorldToGrid(%v) = (%d, %d), want (%d, %d)", tc.pos, gx, gy, tc.gx, tc.gy)
		}
	}

	if got := g.GridToWorld(2, 3); got != (Vec2{64, -96}) {
		t.Errorf("GridToWorld(2, 3) = %v, want {64 -96}", got)
	}
}

func TestGetSpawnPosition(t *testing.T) {
	g, _ := NewMapGenerator(DefaultConfig(), nil)
	if got := g.GetSpawnPosition(); got != (Vec2{}) {
		t.Errorf("GetSpawnPosition without rooms = %v, want origin", got)
	}

	g.GenerateNewMap(42)
	cell, ok := g.SpawnCell()
	if !ok {
		t.Fatal("SpawnCell() found no spawn room")
	}
	if got, want := g.GetSpawnPosition(), g.GridToWorld(cell.X, cell.Y); got != want {
		t.Errorf("GetSpawnPosition() = %v, want %v", got, want)
	}
	if ct, _ := g.GetMapData().Type(cell.X, cell.Y); ct != CellSpawn {
		t.Errorf("spawn cell type = %v, want spawn", ct)
	}
	if !g.IsWalkable(cell.X, cell.Y) {
		t.Error("spawn cell is not walkable")
	}
}

func TestGetSpawnPositionFallsBackToOrigin(t *testing.T) {
	g, _ := NewMapGenerator(DefaultConfig(), nil)
	g.GenerateNewMap(42)
	// Drop the spawn room to exercise the degenerate case
	g.rooms = g.rooms[1:]

	if got := g.GetSpawnPosition(); got != (Vec2{}) {
		t.Errorf("GetSpawnPosition() = %v, want origin", got)
	}
	if _, ok := g.SpawnCell(); ok {
		t.Error("SpawnCell() reported a spawn room")
	}
}
