package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"sort"
	"strconv"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is a tile grid plus object markers. Layers are row-major with
// Width*Height cells; a non-zero cell is a tile. Marker coordinates are in
// world pixels.
type Level struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	TileSize  int         `json:"tile_size"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Name    string `json:"name"`
	Physics bool   `json:"physics"`
	Hazard  string `json:"hazard,omitempty"`
	Color   string `json:"color,omitempty"`
}

// Entity is an object marker. Type is one of the Marker* tags.
type Entity struct {
	Type  string         `json:"type"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

const (
	MarkerSpawn    = "spawn"
	MarkerCoin     = "coin"
	MarkerGoal     = "goal"
	MarkerEnemy    = "enemy"
	MarkerPlatform = "platform"
	MarkerPowerUp  = "powerup"
)

// Load reads an embedded level by basename; the .json suffix is optional.
func Load(name string) (*Level, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Names lists the embedded levels in play order.
func Names() []string {
	entries, err := fs.Glob(LevelsFS, "*.json")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e, ".json"))
	}
	sort.Strings(names)
	return names
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidLevel, l.Width, l.Height)
	}
	if l.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %d", ErrInvalidLevel, l.TileSize)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("%w: layer %d has %d cells, want %d", ErrInvalidLevel, i, len(layer), l.Width*l.Height)
		}
	}
	return nil
}

// Meta returns the metadata for layer i, or a zero value when none is given.
func (l *Level) Meta(i int) LayerMeta {
	if i < 0 || i >= len(l.LayerMeta) {
		return LayerMeta{}
	}
	return l.LayerMeta[i]
}

// RGBA parses the layer's #rrggbb color, or returns fallback when the
// color is missing or malformed.
func (m LayerMeta) RGBA(fallback color.RGBA) color.RGBA {
	s := strings.TrimPrefix(m.Color, "#")
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

func (l *Level) Tile(layer, x, y int) int {
	if layer < 0 || layer >= len(l.Layers) || x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return 0
	}
	return l.Layers[layer][y*l.Width+x]
}

func (l *Level) PixelSize() (float64, float64) {
	return float64(l.Width * l.TileSize), float64(l.Height * l.TileSize)
}

// Markers returns every marker with the given type tag.
func (l *Level) Markers(kind string) []Entity {
	var out []Entity
	for _, e := range l.Entities {
		if e.Type == kind {
			out = append(out, e)
		}
	}
	return out
}

func (e Entity) FloatProp(key string, def float64) float64 {
	switch v := e.Props[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

func (e Entity) StringProp(key, def string) string {
	if v, ok := e.Props[key].(string); ok && v != "" {
		return v
	}
	return def
}
