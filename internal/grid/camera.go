package grid

// Camera describes a windowed read over a grid. Pos is the first source
// coordinate sampled and may sit anywhere, including outside the grid.
// The sign of each Size component selects the scan direction on that axis;
// the magnitude fixes the output dimensions.
type Camera struct {
	Pos  Point
	Size Point
}

// View is a snapshot produced by Camera.Snapshot: two freshly allocated
// row-major buffers of shape W x H. It keeps no reference to the source
// grid and does not update when the source changes.
type View struct {
	W, H   int
	Tiles  []int32
	Colors []Color
}

// Snapshot samples the grid through the camera window and returns a new
// view. Output dimensions are the absolute values of the camera size, so
// zero components produce empty buffers. Source cells outside the grid
// read as sentinels per TileAt/ColorAt. Every call allocates a fresh pair
// of buffers; callers wanting per-frame reuse must cache on their side.
func (c Camera) Snapshot(g *Grid) View {
	w, h := abs(c.Size.X), abs(c.Size.Y)
	v := View{
		W:      w,
		H:      h,
		Tiles:  make([]int32, w*h),
		Colors: make([]Color, w*h),
	}

	stepX, stepY := 1, 1
	if c.Size.X < 0 {
		stepX = -1
	}
	if c.Size.Y < 0 {
		stepY = -1
	}

	sx := c.Pos.X
	for i := 0; i < w; i++ {
		sy := c.Pos.Y
		for j := 0; j < h; j++ {
			p := Pt(sx, sy)
			v.Tiles[j*w+i] = g.TileAt(p)
			v.Colors[j*w+i] = g.ColorAt(p)
			sy += stepY
		}
		sx += stepX
	}
	return v
}

// TileAt returns the snapshot tile at (x, y), or 0 if out of range.
func (v View) TileAt(x, y int) int32 {
	if x < 0 || x >= v.W || y < 0 || y >= v.H {
		return 0
	}
	return v.Tiles[y*v.W+x]
}

// ColorAt returns the snapshot color at (x, y), or 0 if out of range.
func (v View) ColorAt(x, y int) Color {
	if x < 0 || x >= v.W || y < 0 || y >= v.H {
		return 0
	}
	return v.Colors[y*v.W+x]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
