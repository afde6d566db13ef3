// Package tilemap reads Tiled TMX map files into grids.
//
// A TMX map holds named layers; each layer carries its tile ids either as
// CSV text or as base64-encoded little-endian int32s, optionally gzip or
// zlib compressed. TMX stores ids off by one so that 0 can mean "empty";
// decoding shifts every id down by one and empty cells come out as -1.
package tilemap

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/tileforge/internal/grid"
)

var (
	ErrMissingPath   = errors.New("tilemap: map path is empty")
	ErrMissingLayer  = errors.New("tilemap: layer name is empty")
	ErrLayerNotFound = errors.New("tilemap: layer not found")
	ErrUnsupported   = errors.New("tilemap: unsupported layer format")
)

// MapInfo describes a TMX file without decoding its payloads.
type MapInfo struct {
	Path   string
	Layers []LayerInfo
}

// LayerInfo is one layer's header data.
type LayerInfo struct {
	Name        string
	Width       int
	Height      int
	Encoding    string
	Compression string
}

type xmlMap struct {
	XMLName xml.Name   `xml:"map"`
	Layers  []xmlLayer `xml:"layer"`
}

type xmlLayer struct {
	Name   string  `xml:"name,attr"`
	Width  string  `xml:"width,attr"`
	Height string  `xml:"height,attr"`
	Data   xmlData `xml:"data"`
}

type xmlData struct {
	Encoding    string `xml:"encoding,attr"`
	Compression string `xml:"compression,attr"`
	Payload     string `xml:",chardata"`
}

// Load decodes the named layer of the TMX file at path into a grid. The
// first layer with a matching name wins. Every decoded cell gets the
// maximum color; tile indexes past the last cell clamp onto it.
func Load(path, layer string) (*grid.Grid, error) {
	if path == "" {
		return nil, ErrMissingPath
	}
	if layer == "" {
		return nil, ErrMissingLayer
	}
	doc, err := readMap(path)
	if err != nil {
		return nil, err
	}
	for _, l := range doc.Layers {
		if l.Name == layer {
			return decodeLayer(l)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrLayerNotFound, layer)
}

// ReadInfo parses the TMX file at path and reports its layers without
// decoding any payload.
func ReadInfo(path string) (*MapInfo, error) {
	if path == "" {
		return nil, ErrMissingPath
	}
	doc, err := readMap(path)
	if err != nil {
		return nil, err
	}
	info := &MapInfo{Path: path, Layers: make([]LayerInfo, 0, len(doc.Layers))}
	for _, l := range doc.Layers {
		info.Layers = append(info.Layers, LayerInfo{
			Name:        l.Name,
			Width:       dim(l.Width),
			Height:      dim(l.Height),
			Encoding:    l.Data.Encoding,
			Compression: l.Data.Compression,
		})
	}
	return info, nil
}

// EncodeCSV renders a grid as a TMX csv payload, ids shifted back up by
// one, one row per line.
func EncodeCSV(g *grid.Grid) string {
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width(); x++ {
			if x > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(g.TileAt(grid.Pt(x, y))) + 1))
		}
	}
	return b.String()
}

func readMap(path string) (*xmlMap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tilemap: read %s: %w", path, err)
	}
	var doc xmlMap
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("tilemap: parse %s: %w", path, err)
	}
	return &doc, nil
}

func decodeLayer(l xmlLayer) (*grid.Grid, error) {
	ids, err := decodeData(l.Data)
	if err != nil {
		return nil, err
	}
	w, h := dim(l.Width), dim(l.Height)
	g := grid.New(w, h)
	g.Fill(0, grid.ColorMax)
	if w == 0 || h == 0 {
		return g, nil
	}
	last := w*h - 1
	for i, id := range ids {
		idx := i
		if idx > last {
			idx = last
		}
		g.Set(grid.Pt(idx%w, idx/w), id, grid.ColorMax)
	}
	return g, nil
}

func decodeData(d xmlData) ([]int32, error) {
	switch d.Encoding {
	case "", "csv":
		// An absent encoding attribute reads as csv text.
		if d.Compression != "" {
			return nil, fmt.Errorf("%w: csv with %s compression", ErrUnsupported, d.Compression)
		}
		return decodeCSV(d.Payload)
	case "base64":
		return decodeBase64(d.Payload, d.Compression)
	}
	return nil, fmt.Errorf("%w: encoding %q", ErrUnsupported, d.Encoding)
}

func decodeCSV(payload string) ([]int32, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, nil
	}
	parts := strings.Split(payload, ",")
	ids := make([]int32, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("tilemap: csv value %q: %w", strings.TrimSpace(part), err)
		}
		ids = append(ids, int32(n)-1)
	}
	return ids, nil
}

func decodeBase64(payload, compression string) ([]int32, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, fmt.Errorf("tilemap: base64 payload: %w", err)
	}
	raw, err = decompress(raw, compression)
	if err != nil {
		return nil, err
	}
	ids := make([]int32, 0, len(raw)/4)
	for i := 0; i+4 <= len(raw); i += 4 {
		ids = append(ids, int32(binary.LittleEndian.Uint32(raw[i:]))-1)
	}
	return ids, nil
}

func decompress(raw []byte, compression string) ([]byte, error) {
	var r io.Reader
	switch compression {
	case "":
		return raw, nil
	case "gzip":
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("tilemap: gzip payload: %w", err)
		}
		defer zr.Close()
		r = zr
	case "zlib":
		zr, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("tilemap: zlib payload: %w", err)
		}
		defer zr.Close()
		r = zr
	default:
		return nil, fmt.Errorf("%w: compression %q", ErrUnsupported, compression)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tilemap: decompress payload: %w", err)
	}
	return out, nil
}

// dim parses a layer dimension attribute; anything unusable reads as 0.
func dim(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
