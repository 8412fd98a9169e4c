package generation

import "testing"

func TestPlaceRoomsInvariants(t *testing.T) {
	cfg := DefaultConfig()
	for seed := int64(0); seed < 200; seed++ {
		grid, _ := NewGrid(cfg.Width, cfg.Height)
		rooms := placeRooms(grid, cfg, NewSeededRandom(seed))

		if len(rooms) == 0 || rooms[0].Type != RoomSpawn {
			t.Fatalf("seed %d: first room is not the spawn room: %+v", seed, rooms)
		}
		if len(rooms) > cfg.MaxRooms {
			t.Errorf("seed %d: %d rooms, want at most %d", seed, len(rooms), cfg.MaxRooms)
		}

		spawns, bosses := 0, 0
		for i, r := range rooms {
			switch r.Type {
			case RoomSpawn:
				spawns++
			case RoomBoss:
				bosses++
			}

			if r.X < 1 || r.Y < 1 || r.X+r.Width > cfg.Width-1 || r.Y+r.Height > cfg.Height-1 {
				t.Errorf("seed %d: room %d %+v crosses the outer wall", seed, i, r)
			}
			for y := r.Y; y < r.Y+r.Height; y++ {
				for x := r.X; x < r.X+r.Width; x++ {
					if got, _ := grid.Type(x, y); got != CellFloor {
						t.Fatalf("seed %d: room %d cell (%d, %d) = %v, want floor", seed, i, x, y, got)
					}
				}
			}

			for j := i + 1; j < len(rooms); j++ {
				o := rooms[j]
				if r.Overlaps(o.X, o.Y, o.Width, o.Height) {
					t.Errorf("seed %d: rooms %d and %d overlap: %+v %+v", seed, i, j, r, o)
				}
			}
		}

		if spawns != 1 {
			t.Errorf("seed %d: %d spawn rooms, want 1", seed, spawns)
		}
		if bosses > 1 {
			t.Errorf("seed %d: %d boss rooms, want at most 1", seed, bosses)
		}
	}
}

func TestTryPlaceRoomRejectsOverlap(t *testing.T) {
	grid, _ := NewGrid(30, 30)
	first, ok := tryPlaceRoom(grid, nil, 5, 5, 5, 5, RoomNormal)
	if !ok {
		t.Fatal("first room rejected on an empty grid")
	}
	rooms := []Room{first}

	tests := []struct {
		name       string
		x, y, w, h int
		want       bool
	}{
		{"inside", 6, 6, 3, 3, false},
		{"within buffer", 12, 5, 4, 4, false},
		{"just past buffer", 13, 5, 4, 4, true},
		{"far away", 20, 20, 5, 5, true},
	}
	for _, tc := range tests {
		grid, _ := NewGrid(30, 30)
		if _, got := tryPlaceRoom(grid, rooms, tc.x, tc.y, tc.w, tc.h, RoomNormal); got != tc.want {
			t.Errorf("%s: tryPlaceRoom(%d, %d, %d, %d) = %v, want %v", tc.name, tc.x, tc.y, tc.w, tc.h, got, tc.want)
		}
	}
}

func TestTryPlaceRoomTrimsToBorder(t *testing.T) {
	grid, _ := NewGrid(50, 50)

	room, ok := tryPlaceRoom(grid, nil, 40, 40, 12, 12, RoomBoss)
	if !ok {
		t.Fatal("boss room rejected")
	}
	if room.X != 40 || room.Y != 40 || room.Width != 9 || room.Height != 9 {
		t.Errorf("trimmed room = %+v, want 40,40 9x9", room)
	}
	if got, _ := grid.Type(49, 49); got != CellWall {
		t.Errorf("outer wall (49, 49) = %v, want wall", got)
	}

	if _, ok := tryPlaceRoom(grid, nil, 47, 10, 6, 6, RoomNormal); ok {
		t.Error("room trimmed to width 2 was accepted")
	}
}

func TestPlaceRoomsCrampedMapProceedsWithFewerRooms(t *testing.T) {
	cfg := Config{Width: 14, Height: 14, MinRooms: 8, MaxRooms: 15, MinRoomSize: 5, MaxRoomSize: 12, CellSize: 32}
	for seed := int64(0); seed < 50; seed++ {
		grid, _ := NewGrid(cfg.Width, cfg.Height)
		rooms := placeRooms(grid, cfg, NewSeededRandom(seed))
		if len(rooms) < 1 || len(rooms) >= cfg.MinRooms {
			t.Errorf("seed %d: %d rooms on a cramped map", seed, len(rooms))
		}
	}
}
