package generation

import (
	"slices"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// walkablePather exposes the walkable cells of a map to gruid's path search
type walkablePather struct {
	g   *MapGenerator
	nbs paths.Neighbors
}

func (p *walkablePather) Neighbors(q gruid.Point) []gruid.Point {
	return p.nbs.Cardinal(q, func(r gruid.Point) bool {
		return p.g.IsWalkable(r.X, r.Y)
	})
}

func (p *walkablePather) Cost(q, r gruid.Point) int {
	return 1
}

func (p *walkablePather) Estimation(q, r gruid.Point) int {
	return paths.DistanceManhattan(q, r)
}

// FindPath returns a shortest 4-connected walkable path between two cells,
// both ends included. It reports false when either end is not walkable or
// no path exists.
func (g *MapGenerator) FindPath(from, to Point) ([]Point, bool) {
	if g.pathRange == nil || !g.IsWalkable(from.X, from.Y) || !g.IsWalkable(to.X, to.Y) {
		return nil, false
	}

	path := g.pathRange.AstarPath(&walkablePather{g: g}, toGruidPoint(from), toGruidPoint(to))
	if len(path) == 0 {
		return nil, false
	}

	result := make([]Point, len(path))
	for i, p := range path {
		result[i] = Point{X: p.X, Y: p.Y}
	}
	return result, true
}

// ReachableFrom returns every walkable cell connected to p, sorted by row
// then column. It returns nil when p itself is not walkable.
func (g *MapGenerator) ReachableFrom(p Point) []Point {
	if g.pathRange == nil || !g.IsWalkable(p.X, p.Y) {
		return nil
	}

	cc := g.pathRange.CCMap(&walkablePather{g: g}, toGruidPoint(p))
	result := make([]Point, 0, len(cc))
	for _, q := range cc {
		result = append(result, Point{X: q.X, Y: q.Y})
	}
	slices.SortFunc(result, func(a, b Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return result
}

func toGruidPoint(p Point) gruid.Point {
	return gruid.Point{X: p.X, Y: p.Y}
}
