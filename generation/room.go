package generation

import "fmt"

// RoomType identifies the gameplay role of a room
type RoomType int

const (
	RoomNormal RoomType = iota
	RoomBoss
	RoomTreasure
	RoomSpawn
	RoomSecret
)

func (t RoomType) String() string {
	switch t {
	case RoomNormal:
		return "normal"
	case RoomBoss:
		return "boss"
	case RoomTreasure:
		return "treasure"
	case RoomSpawn:
		return "spawn"
	case RoomSecret:
		return "secret"
	}
	return fmt.Sprintf("RoomType(%d)", int(t))
}

// ContentKind is the kind of a placement directive
type ContentKind int

const (
	ContentEnemy ContentKind = iota
	ContentTreasure
	ContentDecoration
	ContentObstacle
)

func (k ContentKind) String() string {
	switch k {
	case ContentEnemy:
		return "enemy"
	case ContentTreasure:
		return "treasure"
	case ContentDecoration:
		return "decoration"
	case ContentObstacle:
		return "obstacle"
	}
	return fmt.Sprintf("ContentKind(%d)", int(k))
}

// Prefab hints attached to placement directives
const (
	PrefabNormalEnemy   = "NormalEnemy"
	PrefabBossEnemy     = "BossEnemy"
	PrefabTreasureChest = "TreasureChest"
)

// RoomContent is a placement directive for the spawning layer. It is not a
// live entity; spawners turn it into one.
type RoomContent struct {
	Kind       ContentKind
	X, Y       int
	PrefabHint string
	Boss       bool
}

// Room is a rectangular region of floor cells
type Room struct {
	X, Y, Width, Height int
	Type                RoomType
	IsMainPath          bool
	// Connections holds indices into the generator's room slice
	Connections []int
	Content     []RoomContent
}

// roomBuffer is the free margin required between two rooms
const roomBuffer = 2

// Center returns the center cell of the room
func (r Room) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether (x, y) lies inside the room footprint
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Overlaps reports whether the rectangle, grown by the room buffer,
// touches this room
func (r Room) Overlaps(x, y, width, height int) bool {
	return !(x+width+roomBuffer < r.X ||
		x-roomBuffer > r.X+r.Width ||
		y+height+roomBuffer < r.Y ||
		y-roomBuffer > r.Y+r.Height)
}

// clone copies the room including its slices
func (r Room) clone() Room {
	r.Connections = append([]int(nil), r.Connections...)
	r.Content = append([]RoomContent(nil), r.Content...)
	return r
}

// distanceSquared compares centers; the ordering matches Euclidean distance
func distanceSquared(a, b Room) int {
	ca, cb := a.Center(), b.Center()
	dx, dy := ca.X-cb.X, ca.Y-cb.Y
	return dx*dx + dy*dy
}
