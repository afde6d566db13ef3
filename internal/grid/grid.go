// Package grid provides the tile-grid data store shared by the decoder,
// the text engine, and the viewer. It contains no rendering or I/O so the
// data model stays pure and testable.
package grid

// Point is a signed 2D coordinate. Negative values are legal everywhere:
// reads outside a grid yield sentinels and writes outside are dropped.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Grid stores a rectangular field of tile identifiers and packed colors.
// Both buffers are row-major (index = y*w + x) and always share the same
// dimensions; dimensions are fixed at construction and never change.
//
// Tile identifiers index an external sprite atlas. Zero is the sentinel
// returned for out-of-range reads; negative ids mark cells decoded as empty.
type Grid struct {
	w, h   int
	tiles  []int32
	colors []Color
}

// New creates a grid with the given dimensions. All tiles start at 0 and
// all colors at 0. Negative dimensions are treated as zero; a zero-sized
// grid is valid and simply has no addressable cells.
func New(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{
		w:      w,
		h:      h,
		tiles:  make([]int32, w*h),
		colors: make([]Color, w*h),
	}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.h
}

// InBounds returns true if p addresses a cell of the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

// index converts a coordinate to a flat buffer index.
func (g *Grid) index(p Point) int {
	return p.Y*g.w + p.X
}

// TileAt returns the tile id at p, or 0 if p is out of range.
func (g *Grid) TileAt(p Point) int32 {
	if !g.InBounds(p) {
		return 0
	}
	return g.tiles[g.index(p)]
}

// ColorAt returns the packed color at p, or 0 if p is out of range.
func (g *Grid) ColorAt(p Point) Color {
	if !g.InBounds(p) {
		return 0
	}
	return g.colors[g.index(p)]
}

// Set writes the tile id and color of the cell at p in one step.
// Out-of-range writes are silently dropped; there is no error signal.
// Callers rely on writes being total, so this stays a no-op forever.
func (g *Grid) Set(p Point, id int32, c Color) {
	if !g.InBounds(p) {
		return
	}
	i := g.index(p)
	g.tiles[i] = id
	g.colors[i] = c
}

// Fill overwrites every cell with the given tile id and color.
func (g *Grid) Fill(id int32, c Color) {
	for i := range g.tiles {
		g.tiles[i] = id
		g.colors[i] = c
	}
}

// SetSquare sets every cell from origin towards origin+size, exclusive.
// The sign of each size component selects the step direction on that axis,
// so a negative size walks backward from the origin. Cells are written
// through Set one by one: parts of the square outside the grid are skipped
// cell-wise rather than clipped as a rectangle.
func (g *Grid) SetSquare(origin, size Point, id int32, c Color) {
	stepX, stepY := 1, 1
	if size.X < 0 {
		stepX = -1
	}
	if size.Y < 0 {
		stepY = -1
	}
	for x := origin.X; x != origin.X+size.X; x += stepX {
		for y := origin.Y; y != origin.Y+size.Y; y += stepY {
			g.Set(Pt(x, y), id, c)
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		w:      g.w,
		h:      g.h,
		tiles:  make([]int32, len(g.tiles)),
		colors: make([]Color, len(g.colors)),
	}
	copy(c.tiles, g.tiles)
	copy(c.colors, g.colors)
	return c
}

// Equal returns true if both grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, id := range g.tiles {
		if id != other.tiles[i] {
			return false
		}
	}
	for i, c := range g.colors {
		if c != other.colors[i] {
			return false
		}
	}
	return true
}
