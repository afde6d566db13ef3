package grid

import "testing"

// numberedGrid builds a w x h grid whose tile ids encode their coordinates
// as 10*x + y, with color x+y, so tests can tell cells apart.
func numberedGrid(w, h int) *Grid {
	g := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(Pt(x, y), int32(10*x+y), Color(x+y))
		}
	}
	return g
}

func TestSnapshotShape(t *testing.T) {
	g := numberedGrid(4, 4)

	testCases := []struct {
		size  Point
		wantW int
		wantH int
	}{
		{Pt(3, 2), 3, 2},
		{Pt(-3, 2), 3, 2},
		{Pt(3, -2), 3, 2},
		{Pt(-3, -2), 3, 2},
		{Pt(0, 5), 0, 5},
		{Pt(5, 0), 5, 0},
		{Pt(0, 0), 0, 0},
	}

	for _, tc := range testCases {
		v := Camera{Pos: Pt(0, 0), Size: tc.size}.Snapshot(g)
		if v.W != tc.wantW || v.H != tc.wantH {
			t.Errorf("snapshot size for %v = %dx%d, expected %dx%d", tc.size, v.W, v.H, tc.wantW, tc.wantH)
		}
		if len(v.Tiles) != tc.wantW*tc.wantH || len(v.Colors) != tc.wantW*tc.wantH {
			t.Errorf("snapshot buffers for %v have %d/%d cells, expected %d",
				tc.size, len(v.Tiles), len(v.Colors), tc.wantW*tc.wantH)
		}
	}
}

func TestSnapshotContent(t *testing.T) {
	g := numberedGrid(4, 4)

	v := Camera{Pos: Pt(1, 2), Size: Pt(2, 2)}.Snapshot(g)

	wantTiles := []int32{
		12, 22,
		13, 23,
	}
	for i, want := range wantTiles {
		if v.Tiles[i] != want {
			t.Errorf("snapshot tile %d = %d, expected %d", i, v.Tiles[i], want)
		}
	}
	if got := v.ColorAt(0, 0); got != Color(3) {
		t.Errorf("snapshot color (0, 0) = %d, expected 3", got)
	}
}

func TestSnapshotNegativeSizeReverses(t *testing.T) {
	g := numberedGrid(4, 4)

	// A negative width walks x leftward from the camera position.
	v := Camera{Pos: Pt(2, 0), Size: Pt(-3, 1)}.Snapshot(g)

	wantTiles := []int32{20, 10, 0}
	for i, want := range wantTiles {
		if v.Tiles[i] != want {
			t.Errorf("reversed snapshot tile %d = %d, expected %d", i, v.Tiles[i], want)
		}
	}
}

func TestSnapshotOutsideReadsSentinel(t *testing.T) {
	g := numberedGrid(2, 2)
	g.Fill(5, ColorMax)

	v := Camera{Pos: Pt(-1, -1), Size: Pt(4, 4)}.Snapshot(g)

	// The window hangs over every edge: only the 2x2 middle carries data.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := int32(0)
			if x >= 1 && x <= 2 && y >= 1 && y <= 2 {
				want = 5
			}
			if got := v.TileAt(x, y); got != want {
				t.Errorf("snapshot tile (%d, %d) = %d, expected %d", x, y, got, want)
			}
		}
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	g := numberedGrid(3, 3)

	v := Camera{Pos: Pt(0, 0), Size: Pt(3, 3)}.Snapshot(g)
	g.Fill(99, ColorMax)

	if got := v.TileAt(1, 1); got != 11 {
		t.Errorf("snapshot changed after source mutation: tile (1, 1) = %d, expected 11", got)
	}

	// And each call allocates fresh buffers.
	v2 := Camera{Pos: Pt(0, 0), Size: Pt(3, 3)}.Snapshot(g)
	if &v.Tiles[0] == &v2.Tiles[0] {
		t.Error("consecutive snapshots share a tile buffer")
	}
}

func TestViewAccessorsOutOfRange(t *testing.T) {
	g := numberedGrid(2, 2)
	v := Camera{Pos: Pt(0, 0), Size: Pt(2, 2)}.Snapshot(g)

	if got := v.TileAt(-1, 0); got != 0 {
		t.Errorf("TileAt(-1, 0) = %d, expected 0", got)
	}
	if got := v.ColorAt(0, 2); got != 0 {
		t.Errorf("ColorAt(0, 2) = %d, expected 0", got)
	}
}
