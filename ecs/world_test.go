package ecs

import (
	"strings"
	"testing"
)

type countingSystem struct {
	steps int
	dt    float64
	log   *[]string
	name  string
}

func (s *countingSystem) Update(world *World, dt float64) {
	s.steps++
	s.dt += dt
	*s.log = append(*s.log, s.name)
}

type pingEvent struct{}

func (pingEvent) Type() EventType { return "ping" }

func TestWorldEntityIDsArePerWorld(t *testing.T) {
	a, b := NewWorld(), NewWorld()
	if id := a.CreateEntity().ID; id != 1 {
		t.Errorf("first id in world a = %d, want 1", id)
	}
	if id := b.CreateEntity().ID; id != 1 {
		t.Errorf("first id in world b = %d, want 1", id)
	}
	if id := a.CreateEntity().ID; id != 2 {
		t.Errorf("second id in world a = %d, want 2", id)
	}
}

func TestWorldComponentsAndTags(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.AddComponent(e.ID, 7, "payload")
	w.TagEntity(e.ID, "enemy")

	if c, ok := w.GetComponent(e.ID, 7); !ok || c != "payload" {
		t.Errorf("GetComponent = %v, %v", c, ok)
	}
	if got := w.GetEntitiesWithTag("enemy"); len(got) != 1 || got[0] != e {
		t.Errorf("GetEntitiesWithTag(enemy) = %v", got)
	}
	if !e.HasTag("enemy") {
		t.Error("entity lost its tag")
	}

	w.RemoveEntity(e.ID)
	if w.HasComponent(e.ID, 7) {
		t.Error("component survived entity removal")
	}
	if got := w.GetEntitiesWithTag("enemy"); len(got) != 0 {
		t.Errorf("tag lookup after removal = %v", got)
	}
	if w.GetEntity(e.ID) != nil {
		t.Error("GetEntity after removal is not nil")
	}

	// Components on unknown entities are ignored
	w.AddComponent(99, 7, "ghost")
	if w.HasComponent(99, 7) {
		t.Error("component attached to an unknown entity")
	}
}

func TestWorldQueriesAreOrdered(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 20; i++ {
		e := w.CreateEntity()
		w.TagEntity(e.ID, "thing")
		w.AddComponent(e.ID, 1, i)
	}

	for _, list := range [][]*Entity{w.GetEntitiesWithTag("thing"), w.GetAllEntities(), w.GetEntitiesWithComponent(1)} {
		for i := 1; i < len(list); i++ {
			if list[i-1].ID >= list[i].ID {
				t.Fatalf("entities out of order at %d: %d >= %d", i, list[i-1].ID, list[i].ID)
			}
		}
	}
}

func TestWorldStepRunsSystemsInOrder(t *testing.T) {
	w := NewWorld()
	var log []string
	first := &countingSystem{log: &log, name: "first"}
	second := &countingSystem{log: &log, name: "second"}
	w.AddSystem(first)
	w.AddSystem(second)

	w.Step(0.5)
	w.Step(0.25)

	if first.steps != 2 || second.steps != 2 {
		t.Errorf("steps = %d, %d, want 2, 2", first.steps, second.steps)
	}
	if first.dt != 0.75 {
		t.Errorf("accumulated dt = %v, want 0.75", first.dt)
	}
	want := []string{"first", "second", "first", "second"}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, log[i], want[i])
		}
	}
}

func TestEventManagerUnsubscribe(t *testing.T) {
	w := NewWorld()
	em := w.GetEventManager()

	var a, b int
	subA := em.Subscribe("ping", func(Event) { a++ })
	em.Subscribe("ping", func(Event) { b++ })

	w.EmitEvent(pingEvent{})
	em.Unsubscribe(subA)
	w.EmitEvent(pingEvent{})

	if a != 1 || b != 2 {
		t.Errorf("handler calls = %d, %d, want 1, 2", a, b)
	}
}

func TestEventManagerUnsubscribeDuringEmit(t *testing.T) {
	em := NewEventManager()
	var calls []string
	var subA Subscription
	subA = em.Subscribe("ping", func(Event) {
		calls = append(calls, "a")
		em.Unsubscribe(subA)
	})
	em.Subscribe("ping", func(Event) { calls = append(calls, "b") })
	em.Subscribe("ping", func(Event) { calls = append(calls, "c") })

	em.Emit(pingEvent{})
	if got := strings.Join(calls, ""); got != "abc" {
		t.Errorf("first emit called %q, want \"abc\"", got)
	}

	calls = nil
	em.Emit(pingEvent{})
	if got := strings.Join(calls, ""); got != "bc" {
		t.Errorf("second emit called %q, want \"bc\"", got)
	}
}

func TestEventManagerSubscribeDuringEmit(t *testing.T) {
	em := NewEventManager()
	count := 0
	em.Subscribe("ping", func(Event) {
		em.Subscribe("ping", func(Event) { count++ })
	})

	em.Emit(pingEvent{})
	if count != 0 {
		t.Errorf("handler added during emit ran %d times, want 0", count)
	}
	em.Emit(pingEvent{})
	if count != 1 {
		t.Errorf("handler ran %d times on the next emit, want 1", count)
	}
}
