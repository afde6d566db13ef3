package grid

import "testing"

func TestRGBPacking(t *testing.T) {
	testCases := []struct {
		r, g, b uint8
		want    Color
	}{
		{0, 0, 0, 0x00},
		{255, 255, 255, 0xff},
		{255, 0, 0, 0xe0},
		{0, 255, 0, 0x1c},
		{0, 0, 255, 0x03},
		{255, 255, 0, 0xfc},
	}

	for _, tc := range testCases {
		if got := RGB(tc.r, tc.g, tc.b); got != tc.want {
			t.Errorf("RGB(%d, %d, %d) = %#02x, expected %#02x", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

func TestColorChannels(t *testing.T) {
	c := ColorMax
	if c.R() != 255 || c.G() != 255 || c.B() != 255 {
		t.Errorf("ColorMax channels = (%d, %d, %d), expected (255, 255, 255)", c.R(), c.G(), c.B())
	}

	c = Color(0)
	if c.R() != 0 || c.G() != 0 || c.B() != 0 {
		t.Errorf("zero color channels = (%d, %d, %d), expected (0, 0, 0)", c.R(), c.G(), c.B())
	}

	// Each channel scales over its own full range.
	if got := Color(0xe0).R(); got != 255 {
		t.Errorf("red-only R() = %d, expected 255", got)
	}
	if got := Color(0x1c).G(); got != 255 {
		t.Errorf("green-only G() = %d, expected 255", got)
	}
	if got := Color(0x03).B(); got != 255 {
		t.Errorf("blue-only B() = %d, expected 255", got)
	}
}

func TestColorHex(t *testing.T) {
	testCases := []struct {
		c    Color
		want string
	}{
		{ColorMax, "#ffffff"},
		{0, "#000000"},
		{RGB(255, 0, 0), "#ff0000"},
	}

	for _, tc := range testCases {
		if got := tc.c.Hex(); got != tc.want {
			t.Errorf("Color(%#02x).Hex() = %q, expected %q", uint8(tc.c), got, tc.want)
		}
	}
}
