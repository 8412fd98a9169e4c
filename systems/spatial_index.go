package systems

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"ebiten-dungeon/ecs"
	"ebiten-dungeon/generation"
)

// defaultBucketSize is the side, in cells, of one index bucket
const defaultBucketSize = 8

type bucketKey struct {
	bx, by int
}

// SpatialIndex buckets live entities by grid position so that range and
// nearest-neighbour lookups never walk the whole entity list.
type SpatialIndex struct {
	bucketSize int
	buckets    map[bucketKey]mapset.Set[ecs.EntityID]
	positions  map[ecs.EntityID]generation.Point
}

// NewSpatialIndex creates an index with square buckets of bucketSize cells
func NewSpatialIndex(bucketSize int) *SpatialIndex {
	if bucketSize <= 0 {
		bucketSize = defaultBucketSize
	}
	return &SpatialIndex{
		bucketSize: bucketSize,
		buckets:    make(map[bucketKey]mapset.Set[ecs.EntityID]),
		positions:  make(map[ecs.EntityID]generation.Point),
	}
}

// Len returns the number of indexed entities
func (s *SpatialIndex) Len() int {
	return len(s.positions)
}

// Insert adds an entity at (x, y), moving it if it is already indexed
func (s *SpatialIndex) Insert(id ecs.EntityID, x, y int) {
	if _, ok := s.positions[id]; ok {
		s.Move(id, x, y)
		return
	}
	s.positions[id] = generation.Point{X: x, Y: y}
	s.bucket(s.keyFor(x, y), true).Put(id)
}

// Move updates the position of an indexed entity
func (s *SpatialIndex) Move(id ecs.EntityID, x, y int) {
	old, ok := s.positions[id]
	if !ok {
		s.Insert(id, x, y)
		return
	}

	from, to := s.keyFor(old.X, old.Y), s.keyFor(x, y)
	if from != to {
		s.removeFromBucket(from, id)
		s.bucket(to, true).Put(id)
	}
	s.positions[id] = generation.Point{X: x, Y: y}
}

// Remove drops an entity from the index
func (s *SpatialIndex) Remove(id ecs.EntityID) {
	p, ok := s.positions[id]
	if !ok {
		return
	}
	s.removeFromBucket(s.keyFor(p.X, p.Y), id)
	delete(s.positions, id)
}

// Clear drops every entity
func (s *SpatialIndex) Clear() {
	s.buckets = make(map[bucketKey]mapset.Set[ecs.EntityID])
	s.positions = make(map[ecs.EntityID]generation.Point)
}

// Position returns the indexed position of an entity
func (s *SpatialIndex) Position(id ecs.EntityID) (generation.Point, bool) {
	p, ok := s.positions[id]
	return p, ok
}

// At returns the entities standing on (x, y), ordered by ID
func (s *SpatialIndex) At(x, y int) []ecs.EntityID {
	return s.QueryRect(x, y, x, y)
}

// QueryRect returns the entities inside the inclusive rectangle
// (x0, y0)-(x1, y1), ordered by ID
func (s *SpatialIndex) QueryRect(x0, y0, x1, y1 int) []ecs.EntityID {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}

	var result []ecs.EntityID
	k0, k1 := s.keyFor(x0, y0), s.keyFor(x1, y1)
	for by := k0.by; by <= k1.by; by++ {
		for bx := k0.bx; bx <= k1.bx; bx++ {
			b := s.bucket(bucketKey{bx, by}, false)
			if b.Size() == 0 {
				continue
			}
			b.Each(func(id ecs.EntityID) {
				p := s.positions[id]
				if p.X >= x0 && p.X <= x1 && p.Y >= y0 && p.Y <= y1 {
					result = append(result, id)
				}
			})
		}
	}

	slices.Sort(result)
	return result
}

// Nearest returns the entity closest to (x, y) by Euclidean distance that
// satisfies keep (nil keeps everything). Ties go to the lower ID.
func (s *SpatialIndex) Nearest(x, y int, keep func(ecs.EntityID) bool) (ecs.EntityID, bool) {
	if len(s.positions) == 0 {
		return 0, false
	}

	origin := s.keyFor(x, y)
	maxRing := 0
	for k := range s.buckets {
		maxRing = max(maxRing, abs(k.bx-origin.bx), abs(k.by-origin.by))
	}

	var best ecs.EntityID
	bestDist := -1
	consider := func(id ecs.EntityID) {
		if keep != nil && !keep(id) {
			return
		}
		p := s.positions[id]
		dx, dy := p.X-x, p.Y-y
		d := dx*dx + dy*dy
		if bestDist < 0 || d < bestDist || (d == bestDist && id < best) {
			best, bestDist = id, d
		}
	}

	for ring := 0; ring <= maxRing; ring++ {
		for by := origin.by - ring; by <= origin.by+ring; by++ {
			for bx := origin.bx - ring; bx <= origin.bx+ring; bx++ {
				if max(abs(bx-origin.bx), abs(by-origin.by)) != ring {
					continue
				}
				s.bucket(bucketKey{bx, by}, false).Each(consider)
			}
		}

		// Every cell of the next ring is at least ring*bucketSize+1 away
		if bestDist >= 0 {
			reach := ring*s.bucketSize + 1
			if bestDist < reach*reach {
				break
			}
		}
	}

	return best, bestDist >= 0
}

func (s *SpatialIndex) keyFor(x, y int) bucketKey {
	return bucketKey{floorDiv(x, s.bucketSize), floorDiv(y, s.bucketSize)}
}

// bucket returns the set for key, creating it when create is set. A missing
// bucket without create is returned as an empty set.
func (s *SpatialIndex) bucket(key bucketKey, create bool) mapset.Set[ecs.EntityID] {
	b, ok := s.buckets[key]
	if !ok {
		b = mapset.New[ecs.EntityID]()
		if create {
			s.buckets[key] = b
		}
	}
	return b
}

func (s *SpatialIndex) removeFromBucket(key bucketKey, id ecs.EntityID) {
	b, ok := s.buckets[key]
	if !ok {
		return
	}
	b.Remove(id)
	if b.Size() == 0 {
		delete(s.buckets, key)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
