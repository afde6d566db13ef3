package tilemap

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tileforge/internal/grid"
)

func writeTMX(t *testing.T, layers ...string) string {
	t.Helper()
	var b bytes.Buffer
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n<map>\n")
	for _, l := range layers {
		b.WriteString(l + "\n")
	}
	b.WriteString("</map>\n")
	path := filepath.Join(t.TempDir(), "map.tmx")
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func layerXML(name, width, height, encoding, compression, payload string) string {
	attrs := ""
	if encoding != "" {
		attrs += fmt.Sprintf(" encoding=%q", encoding)
	}
	if compression != "" {
		attrs += fmt.Sprintf(" compression=%q", compression)
	}
	return fmt.Sprintf("<layer name=%q width=%q height=%q><data%s>%s</data></layer>",
		name, width, height, attrs, payload)
}

// rawPayload packs TMX tile ids (the stored, one-based form) the way a map
// editor would: little-endian int32s, optionally compressed, then base64.
func rawPayload(t *testing.T, compression string, ids ...int32) string {
	t.Helper()
	raw := make([]byte, 4*len(ids))
	for i, id := range ids {
		binary.LittleEndian.PutUint32(raw[4*i:], uint32(id))
	}
	var buf bytes.Buffer
	switch compression {
	case "":
		buf.Write(raw)
	case "gzip":
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(raw); err != nil {
			t.Fatalf("gzip fixture: %v", err)
		}
		if err := zw.Close(); err != nil {
			t.Fatalf("gzip fixture: %v", err)
		}
	case "zlib":
		zw := zlib.NewWriter(&buf)
		if _, err := zw.Write(raw); err != nil {
			t.Fatalf("zlib fixture: %v", err)
		}
		if err := zw.Close(); err != nil {
			t.Fatalf("zlib fixture: %v", err)
		}
	default:
		t.Fatalf("unknown fixture compression %q", compression)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func checkTiles(t *testing.T, g *grid.Grid, w, h int, want []int32) {
	t.Helper()
	if g.Width() != w || g.Height() != h {
		t.Fatalf("grid is %dx%d, expected %dx%d", g.Width(), g.Height(), w, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := grid.Pt(x, y)
			if got := g.TileAt(p); got != want[y*w+x] {
				t.Errorf("tile at (%d,%d) = %d, expected %d", x, y, got, want[y*w+x])
			}
			if got := g.ColorAt(p); got != grid.ColorMax {
				t.Errorf("color at (%d,%d) = %d, expected %d", x, y, got, grid.ColorMax)
			}
		}
	}
}

func TestLoadCSV(t *testing.T) {
	path := writeTMX(t, layerXML("ground", "3", "2", "csv", "", "\n3,4,5,\n6,7,8\n"))
	g, err := Load(path, "ground")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	checkTiles(t, g, 3, 2, []int32{2, 3, 4, 5, 6, 7})
}

func TestLoadBase64(t *testing.T) {
	for _, compression := range []string{"", "gzip", "zlib"} {
		payload := rawPayload(t, compression, 1, 2, 3, 4)
		path := writeTMX(t, layerXML("ground", "2", "2", "base64", compression, payload))
		g, err := Load(path, "ground")
		if err != nil {
			t.Fatalf("Load with compression %q returned error: %v", compression, err)
		}
		checkTiles(t, g, 2, 2, []int32{0, 1, 2, 3})
	}
}

func TestLoadAbsentEncodingReadsAsCSV(t *testing.T) {
	path := writeTMX(t, layerXML("ground", "2", "1", "", "", "5,6"))
	g, err := Load(path, "ground")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	checkTiles(t, g, 2, 1, []int32{4, 5})
}

func TestLoadEmptyCells(t *testing.T) {
	path := writeTMX(t, layerXML("ground", "2", "1", "csv", "", "0,5"))
	g, err := Load(path, "ground")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	checkTiles(t, g, 2, 1, []int32{-1, 4})
}

func TestLoadArgumentErrors(t *testing.T) {
	if _, err := Load("", "ground"); !errors.Is(err, ErrMissingPath) {
		t.Errorf("Load with empty path = %v, expected ErrMissingPath", err)
	}
	if _, err := Load("map.tmx", ""); !errors.Is(err, ErrMissingLayer) {
		t.Errorf("Load with empty layer = %v, expected ErrMissingLayer", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.tmx"), "ground")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load of absent file = %v, expected fs.ErrNotExist", err)
	}
}

func TestLoadLayerNotFound(t *testing.T) {
	path := writeTMX(t, layerXML("ground", "1", "1", "csv", "", "1"))
	if _, err := Load(path, "water"); !errors.Is(err, ErrLayerNotFound) {
		t.Errorf("Load of missing layer = %v, expected ErrLayerNotFound", err)
	}
}

func TestLoadUnsupportedFormats(t *testing.T) {
	testCases := []struct {
		name        string
		encoding    string
		compression string
	}{
		{"unknown encoding", "hex", ""},
		{"compressed csv", "csv", "gzip"},
		{"compressed bare csv", "", "zlib"},
		{"unknown compression", "base64", "lzma"},
	}

	for _, tc := range testCases {
		path := writeTMX(t, layerXML("ground", "1", "1", tc.encoding, tc.compression, "AQAAAA=="))
		if _, err := Load(path, "ground"); !errors.Is(err, ErrUnsupported) {
			t.Errorf("%s: Load = %v, expected ErrUnsupported", tc.name, err)
		}
	}
}

func TestLoadFirstMatchingLayerWins(t *testing.T) {
	path := writeTMX(t,
		layerXML("ground", "1", "1", "csv", "", "7"),
		layerXML("ground", "1", "1", "csv", "", "9"),
	)
	g, err := Load(path, "ground")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := g.TileAt(grid.Pt(0, 0)); got != 6 {
		t.Errorf("tile = %d, expected 6 from the first layer", got)
	}
}

func TestLoadGarbageDims(t *testing.T) {
	path := writeTMX(t, layerXML("ground", "banana", "-3", "csv", "", ""))
	g, err := Load(path, "ground")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if g.Width() != 0 || g.Height() != 0 {
		t.Errorf("grid is %dx%d, expected 0x0", g.Width(), g.Height())
	}
	if got := g.TileAt(grid.Pt(0, 0)); got != 0 {
		t.Errorf("read from empty grid = %d, expected 0", got)
	}
}

func TestLoadClampsOverlongPayload(t *testing.T) {
	path := writeTMX(t, layerXML("ground", "2", "2", "csv", "", "1,2,3,4,5,9"))
	g, err := Load(path, "ground")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	checkTiles(t, g, 2, 2, []int32{0, 1, 2, 8})
}

func TestLoadBadCSVValue(t *testing.T) {
	path := writeTMX(t, layerXML("ground", "1", "1", "csv", "", "1,x"))
	if _, err := Load(path, "ground"); err == nil {
		t.Error("Load of malformed csv succeeded, expected error")
	}
}

func TestLoadMalformedXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.tmx")
	if err := os.WriteFile(path, []byte("<map><layer"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path, "ground"); err == nil {
		t.Error("Load of malformed xml succeeded, expected error")
	}
}

func TestReadInfo(t *testing.T) {
	path := writeTMX(t,
		layerXML("ground", "8", "4", "csv", "", "1"),
		layerXML("water", "8", "4", "base64", "zlib", ""),
	)
	info, err := ReadInfo(path)
	if err != nil {
		t.Fatalf("ReadInfo returned error: %v", err)
	}
	if info.Path != path {
		t.Errorf("info.Path = %q, expected %q", info.Path, path)
	}
	want := []LayerInfo{
		{Name: "ground", Width: 8, Height: 4, Encoding: "csv"},
		{Name: "water", Width: 8, Height: 4, Encoding: "base64", Compression: "zlib"},
	}
	if len(info.Layers) != len(want) {
		t.Fatalf("ReadInfo found %d layers, expected %d", len(info.Layers), len(want))
	}
	for i, l := range info.Layers {
		if l != want[i] {
			t.Errorf("layer %d = %+v, expected %+v", i, l, want[i])
		}
	}
}

func TestEncodeCSVRoundTrip(t *testing.T) {
	path := writeTMX(t, layerXML("ground", "3", "2", "csv", "", "3,4,5,\n6,7,8"))
	g, err := Load(path, "ground")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := "3,4,5\n6,7,8"
	if got := EncodeCSV(g); got != want {
		t.Errorf("EncodeCSV = %q, expected %q", got, want)
	}
}
