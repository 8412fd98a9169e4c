package systems

import (
	"testing"

	"ebiten-dungeon/ecs"
	"ebiten-dungeon/generation"
)

func TestPathToNearestEnemy(t *testing.T) {
	gen, err := generation.NewMapGenerator(generation.DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := gen.GenerateNewMap(42); err != nil {
		t.Fatal(err)
	}

	world := ecs.NewWorld()
	index := NewSpatialIndex(8)
	for _, room := range gen.GetRooms() {
		for _, c := range room.Content {
			e := world.CreateEntity()
			if c.Kind == generation.ContentEnemy {
				world.TagEntity(e.ID, "enemy")
			}
			index.Insert(e.ID, c.X, c.Y)
		}
	}

	spawn, ok := gen.SpawnCell()
	if !ok {
		t.Fatal("no spawn room")
	}

	target, path, ok := PathToNearest(world, index, gen, spawn, "enemy")
	if !ok {
		t.Fatal("no path to an enemy")
	}
	if !world.GetEntity(target).HasTag("enemy") {
		t.Errorf("target %d is not an enemy", target)
	}
	if path[0] != spawn {
		t.Errorf("path starts at %v, want spawn %v", path[0], spawn)
	}

	for i, p := range path {
		if !gen.IsWalkable(p.X, p.Y) {
			t.Errorf("path step %d at %v is not walkable", i, p)
		}
		if i > 0 {
			q := path[i-1]
			if d := abs(p.X-q.X) + abs(p.Y-q.Y); d != 1 {
				t.Errorf("path steps %v -> %v are %d apart", q, p, d)
			}
		}
	}

	end := path[len(path)-1]
	pos, _ := index.Position(target)
	if d := abs(end.X-pos.X) + abs(end.Y-pos.Y); d != 1 {
		t.Errorf("path ends at %v, %d cells from target %v", end, d, pos)
	}
}

func TestPathToNearestWithoutTargets(t *testing.T) {
	gen, _ := generation.NewMapGenerator(generation.DefaultConfig(), nil)
	if err := gen.GenerateNewMap(42); err != nil {
		t.Fatal(err)
	}
	world := ecs.NewWorld()
	index := NewSpatialIndex(8)
	chest := world.CreateEntity()
	world.TagEntity(chest.ID, "treasure")
	index.Insert(chest.ID, 3, 3)

	spawn, _ := gen.SpawnCell()
	if _, _, ok := PathToNearest(world, index, gen, spawn, "enemy"); ok {
		t.Error("found a path with no enemies indexed")
	}
}
