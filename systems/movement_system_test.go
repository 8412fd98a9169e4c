package systems

import (
	"testing"

	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
)

// openFloor is walkable everywhere inside a w by h rectangle except walls
type openFloor struct {
	w, h  int
	walls map[[2]int]bool
}

func (f openFloor) IsWalkable(x, y int) bool {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return false
	}
	return !f.walls[[2]int{x, y}]
}

func newMovementFixture(t *testing.T, walk Walkability) (*ecs.World, *MovementSystem, *SpatialIndex, ecs.EntityID) {
	t.Helper()
	world := ecs.NewWorld()
	index := NewSpatialIndex(4)
	player := world.CreateEntity()
	world.TagEntity(player.ID, "player")
	world.AddComponent(player.ID, components.Position, &components.PositionComponent{X: 2, Y: 2})
	index.Insert(player.ID, 2, 2)

	ms := NewMovementSystem(walk, index)
	world.AddSystem(ms)
	return world, ms, index, player.ID
}

func playerPos(t *testing.T, world *ecs.World, id ecs.EntityID) (int, int) {
	t.Helper()
	c, ok := world.GetComponent(id, components.Position)
	if !ok {
		t.Fatal("player lost its position")
	}
	p := c.(*components.PositionComponent)
	return p.X, p.Y
}

func TestMovementSystemMovesPlayer(t *testing.T) {
	world, ms, index, id := newMovementFixture(t, openFloor{w: 5, h: 5})

	var moved []EntityMovedEvent
	world.GetEventManager().Subscribe(EventMovement, func(e ecs.Event) {
		moved = append(moved, e.(EntityMovedEvent))
	})

	ms.Queue(DirUp)
	world.Step(1)
	if x, y := playerPos(t, world, id); x != 2 || y != 1 {
		t.Errorf("position after up = %d,%d, want 2,1", x, y)
	}
	if p, _ := index.Position(id); p.X != 2 || p.Y != 1 {
		t.Errorf("index position = %v, want 2,1", p)
	}
	if len(moved) != 1 || moved[0].FromY != 2 || moved[0].ToY != 1 {
		t.Errorf("movement events = %+v", moved)
	}

	// The queue is consumed by a step
	world.Step(1)
	if len(moved) != 1 {
		t.Errorf("idle step emitted %d extra events", len(moved)-1)
	}

	ms.Queue(DirDownRight)
	world.Step(1)
	if x, y := playerPos(t, world, id); x != 3 || y != 2 {
		t.Errorf("position after down-right = %d,%d, want 3,2", x, y)
	}
}

func TestMovementSystemStopsAtWalls(t *testing.T) {
	walk := openFloor{w: 5, h: 5, walls: map[[2]int]bool{{1, 2}: true}}
	world, ms, _, id := newMovementFixture(t, walk)

	ms.Queue(DirLeft)
	world.Step(1)
	if x, y := playerPos(t, world, id); x != 2 || y != 2 {
		t.Errorf("moved into a wall: %d,%d", x, y)
	}

	for i := 0; i < 5; i++ {
		ms.Queue(DirDown)
		world.Step(1)
	}
	if x, y := playerPos(t, world, id); x != 2 || y != 4 {
		t.Errorf("position after walking off the map = %d,%d, want 2,4", x, y)
	}
}

func TestMovementSystemCollidesWithBlockers(t *testing.T) {
	world, ms, index, id := newMovementFixture(t, openFloor{w: 5, h: 5})

	enemy := world.CreateEntity()
	world.AddComponent(enemy.ID, components.Collision, &components.CollisionComponent{Blocks: true})
	index.Insert(enemy.ID, 3, 2)

	chest := world.CreateEntity()
	world.AddComponent(chest.ID, components.Collision, &components.CollisionComponent{Blocks: false})
	index.Insert(chest.ID, 2, 3)

	var hits []CollisionEvent
	world.GetEventManager().Subscribe(EventCollision, func(e ecs.Event) {
		hits = append(hits, e.(CollisionEvent))
	})

	ms.Queue(DirRight)
	world.Step(1)
	if x, y := playerPos(t, world, id); x != 2 || y != 2 {
		t.Errorf("walked through a blocker: %d,%d", x, y)
	}
	if len(hits) != 1 || hits[0].EntityID1 != id || hits[0].EntityID2 != enemy.ID {
		t.Errorf("collision events = %+v", hits)
	}

	ms.Queue(DirDown)
	world.Step(1)
	if x, y := playerPos(t, world, id); x != 2 || y != 3 {
		t.Errorf("non-blocking entity stopped the player: %d,%d", x, y)
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    int
		dx, dy int
	}{
		{DirNone, 0, 0},
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
		{DirUpLeft, -1, -1},
		{DirUpRight, 1, -1},
		{DirDownLeft, -1, 1},
		{DirDownRight, 1, 1},
		{99, 0, 0},
	}
	for _, tt := range tests {
		if dx, dy := DirectionDelta(tt.dir); dx != tt.dx || dy != tt.dy {
			t.Errorf("DirectionDelta(%d) = %d,%d, want %d,%d", tt.dir, dx, dy, tt.dx, tt.dy)
		}
	}
}
