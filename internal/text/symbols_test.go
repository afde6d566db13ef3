package text

import "testing"

func TestTileFor(t *testing.T) {
	testCases := []struct {
		r    rune
		want int32
	}{
		{'A', 78},
		{'M', 90},
		{'Z', 103},
		{'a', 104},
		{'z', 129},
		{'0', 130},
		{'9', 139},
		{' ', 0},
		{'!', 140},
		{'~', 171},
		{'─', 172},
		{'█', 212},
		{'♥', 236},
		{'⌂', 289},
	}

	for _, tc := range testCases {
		id, ok := TileFor(tc.r)
		if !ok {
			t.Errorf("TileFor(%q) not mapped, expected tile %d", tc.r, tc.want)
			continue
		}
		if id != tc.want {
			t.Errorf("TileFor(%q) = %d, expected %d", tc.r, id, tc.want)
		}
	}
}

func TestTileForUnmapped(t *testing.T) {
	for _, r := range []rune{'\n', '\t', '™', '🙂', 'д'} {
		if id, ok := TileFor(r); ok {
			t.Errorf("TileFor(%q) = %d, expected no mapping", r, id)
		}
	}
}

func TestRuneFor(t *testing.T) {
	testCases := []struct {
		id   int32
		want rune
	}{
		{0, ' '},
		{78, 'A'},
		{103, 'Z'},
		{104, 'a'},
		{130, '0'},
		{139, '9'},
		{236, '♥'},
	}

	for _, tc := range testCases {
		r, ok := RuneFor(tc.id)
		if !ok {
			t.Errorf("RuneFor(%d) not mapped, expected %q", tc.id, tc.want)
			continue
		}
		if r != tc.want {
			t.Errorf("RuneFor(%d) = %q, expected %q", tc.id, r, tc.want)
		}
	}

	for _, id := range []int32{-1, 1, 77, 290, 9999} {
		if r, ok := RuneFor(id); ok {
			t.Errorf("RuneFor(%d) = %q, expected no mapping", id, r)
		}
	}
}

func TestTileForRoundTrip(t *testing.T) {
	for r := range symbolTiles {
		id, ok := TileFor(r)
		if !ok {
			t.Fatalf("TileFor(%q) not mapped", r)
		}
		back, ok := RuneFor(id)
		if !ok || back != r {
			t.Errorf("RuneFor(TileFor(%q)) = %q, expected %q", r, back, r)
		}
	}
}
