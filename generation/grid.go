package generation

import "fmt"

// CellType tags a grid cell with its gameplay meaning
type CellType int

// Cell types
const (
	CellEmpty CellType = iota
	CellWall
	CellFloor
	CellRoom
	CellCorridor
	CellDoor
	CellSpawn
	CellExit
	CellTreasure
	CellEnemySpawn
)

func (t CellType) String() string {
	switch t {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellFloor:
		return "floor"
	case CellRoom:
		return "room"
	case CellCorridor:
		return "corridor"
	case CellDoor:
		return "door"
	case CellSpawn:
		return "spawn"
	case CellExit:
		return "exit"
	case CellTreasure:
		return "treasure"
	case CellEnemySpawn:
		return "enemy-spawn"
	}
	return fmt.Sprintf("CellType(%d)", int(t))
}

// Walkable reports whether entities may stand on this cell type
func (t CellType) Walkable() bool {
	switch t {
	case CellFloor, CellCorridor, CellDoor, CellSpawn:
		return true
	}
	return false
}

// Point is a grid coordinate
type Point struct {
	X, Y int
}

// Cell is one unit of the dungeon map
type Cell struct {
	X, Y        int
	Type        CellType
	IsConnected bool
	Connections []Point
}

// Grid stores the map cells in [y][x] order
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid allocates a width x height grid with every cell set to Wall
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d must be positive", ErrInvalidConfiguration, width, height)
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Cell{X: x, Y: y, Type: CellWall}
		}
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns a copy of the cell at (x, y)
func (g *Grid) At(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Cell{}, outOfBounds(x, y)
	}
	c := g.cells[y][x]
	c.Connections = append([]Point(nil), c.Connections...)
	return c, nil
}

// Type returns the cell type at (x, y)
func (g *Grid) Type(x, y int) (CellType, error) {
	if !g.InBounds(x, y) {
		return CellEmpty, outOfBounds(x, y)
	}
	return g.cells[y][x].Type, nil
}

// SetType changes the cell type at (x, y)
func (g *Grid) SetType(x, y int, t CellType) error {
	if !g.InBounds(x, y) {
		return outOfBounds(x, y)
	}
	g.cells[y][x].Type = t
	return nil
}

// Count returns how many cells carry the given type
func (g *Grid) Count(t CellType) int {
	n := 0
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x].Type == t {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.height)
	for y := range g.cells {
		cells[y] = make([]Cell, g.width)
		copy(cells[y], g.cells[y])
		for x := range cells[y] {
			if len(cells[y][x].Connections) > 0 {
				cells[y][x].Connections = append([]Point(nil), cells[y][x].Connections...)
			}
		}
	}
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// typeAt reads a cell the caller has already bounds-checked
func (g *Grid) typeAt(x, y int) CellType {
	return g.cells[y][x].Type
}

// set is the write path of the generation stages. An out-of-range write
// there is a generator bug, so it panics instead of returning an error.
func (g *Grid) set(x, y int, t CellType) {
	if err := g.SetType(x, y, t); err != nil {
		panic(err)
	}
}

func outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
}
