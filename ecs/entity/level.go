package entity

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
	"github.com/milk9111/alienswim/levels"
)

var (
	groundColor = color.RGBA{R: 0x5b, G: 0x8c, B: 0x3a, A: 0xff}
	waterColor  = color.RGBA{R: 0x2f, G: 0x6f, B: 0xd1, A: 0xff}
)

const (
	terrainLayer = 0
	waterLayer   = 4
	waterAlpha   = 0.85
)

// LoadLevel turns a level into entities: merged terrain colliders, hazard
// volumes, pickups, platforms, enemies, the goal, the player and the camera.
// Bad markers are logged and skipped so a level with a typo is still
// playable. It returns the player entity.
func LoadLevel(w *ecs.World, lvl *levels.Level, name string, p *Prefabs) (ecs.Entity, error) {
	if w == nil || lvl == nil {
		return 0, errors.New("level: nil world or level")
	}
	if p == nil {
		return 0, errors.New("level: nil prefabs")
	}

	if _, err := NewSession(w, name); err != nil {
		return 0, err
	}

	tileSize := float64(lvl.TileSize)
	for i, layer := range lvl.Layers {
		meta := lvl.Meta(i)
		switch {
		case meta.Physics:
			if err := addTerrain(w, layer, lvl.Width, lvl.Height, tileSize, meta.RGBA(groundColor)); err != nil {
				return 0, fmt.Errorf("level: layer %d: %w", i, err)
			}
		case meta.Hazard != "":
			if err := addHazards(w, layer, lvl.Width, lvl.Height, tileSize, meta.Hazard, meta.RGBA(waterColor)); err != nil {
				return 0, fmt.Errorf("level: layer %d: %w", i, err)
			}
		default:
			for _, r := range mergeTileRuns(layer, lvl.Width, lvl.Height) {
				x, y, rw, rh := r.bounds(tileSize)
				if err := addDecoration(w, x, y, rw, rh, meta.RGBA(groundColor), terrainLayer); err != nil {
					return 0, fmt.Errorf("level: layer %d: %w", i, err)
				}
			}
		}
	}

	goals := lvl.Markers(levels.MarkerGoal)
	if len(goals) == 0 {
		log.Printf("level %s: no goal marker; the level cannot be won", name)
	}
	for _, m := range goals {
		if _, err := NewGoalFromMarker(w, m); err != nil {
			log.Printf("level %s: %v", name, err)
		}
	}

	for _, m := range lvl.Markers(levels.MarkerCoin) {
		if _, err := NewCoinAt(w, p.Pickups, m.X, m.Y); err != nil {
			log.Printf("level %s: %v", name, err)
		}
	}
	for _, m := range lvl.Markers(levels.MarkerPowerUp) {
		if _, err := NewPowerUpAt(w, p.Pickups, m.StringProp("type", ""), m.X, m.Y); err != nil {
			log.Printf("level %s: %v", name, err)
		}
	}
	for _, m := range lvl.Markers(levels.MarkerPlatform) {
		if _, err := NewPlatformFromMarker(w, p.Platform, m); err != nil {
			log.Printf("level %s: %v", name, err)
		}
	}
	for _, m := range lvl.Markers(levels.MarkerEnemy) {
		if _, err := NewEnemyFromMarker(w, p.Enemies, m); err != nil {
			log.Printf("level %s: %v", name, err)
		}
	}

	spawnX, spawnY := spawnPoint(lvl, name, p)
	player, err := NewPlayerAt(w, p.Player, spawnX, spawnY)
	if err != nil {
		return 0, fmt.Errorf("level: %w", err)
	}

	width, height := lvl.PixelSize()
	if _, err := NewCameraAt(w, spawnX, spawnY, width, height); err != nil {
		return 0, fmt.Errorf("level: %w", err)
	}

	return player, nil
}

func spawnPoint(lvl *levels.Level, name string, p *Prefabs) (float64, float64) {
	spawns := lvl.Markers(levels.MarkerSpawn)
	if len(spawns) > 0 {
		if len(spawns) > 1 {
			log.Printf("level %s: %d spawn markers; using the first", name, len(spawns))
		}
		return spawns[0].X, spawns[0].Y
	}

	x, y := 200.0, 200.0
	if p.Player != nil {
		x = orDefault(p.Player.FallbackSpawnX, x)
		y = orDefault(p.Player.FallbackSpawnY, y)
	}
	log.Printf("level %s: no spawn marker; spawning at (%.0f, %.0f)", name, x, y)
	return x, y
}

func addTerrain(w *ecs.World, layer []int, width, height int, tileSize float64, c color.RGBA) error {
	for _, r := range mergeTileRuns(layer, width, height) {
		x, y, rw, rh := r.bounds(tileSize)
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.TerrainComponent.Kind(), &component.Terrain{}); err != nil {
			return fmt.Errorf("terrain: add tag: %w", err)
		}
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
			return fmt.Errorf("terrain: add transform: %w", err)
		}
		if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Width:    rw,
			Height:   rh,
			Friction: 0.9,
			Kind:     component.BodyStatic,
			Layer:    component.LayerSolid,
		}); err != nil {
			return fmt.Errorf("terrain: add physics body: %w", err)
		}
		if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
			Color:  c,
			Width:  rw,
			Height: rh,
			Alpha:  1,
			Layer:  terrainLayer,
		}); err != nil {
			return fmt.Errorf("terrain: add sprite: %w", err)
		}
	}
	return nil
}

func addHazards(w *ecs.World, layer []int, width, height int, tileSize float64, kind string, c color.RGBA) error {
	for _, r := range mergeTileRuns(layer, width, height) {
		x, y, rw, rh := r.bounds(tileSize)
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{
			Kind:   kind,
			Width:  rw,
			Height: rh,
		}); err != nil {
			return fmt.Errorf("hazard: add hazard: %w", err)
		}
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
			return fmt.Errorf("hazard: add transform: %w", err)
		}
		if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
			Color:  c,
			Width:  rw,
			Height: rh,
			Alpha:  waterAlpha,
			Layer:  waterLayer,
		}); err != nil {
			return fmt.Errorf("hazard: add sprite: %w", err)
		}
	}
	return nil
}

// tileRun is a rectangle of tiles in grid coordinates.
type tileRun struct {
	X, Y, W, H int
}

// bounds returns the run's center and size in pixels.
func (r tileRun) bounds(tileSize float64) (x, y, width, height float64) {
	width = float64(r.W) * tileSize
	height = float64(r.H) * tileSize
	return float64(r.X)*tileSize + width/2, float64(r.Y)*tileSize + height/2, width, height
}

// mergeTileRuns greedily covers the filled cells of a layer with rectangles:
// widest run along the row first, then as many full rows below as fit.
func mergeTileRuns(layer []int, width, height int) []tileRun {
	if width <= 0 || height <= 0 {
		return nil
	}
	visited := make([]bool, width*height)
	filled := func(x, y int) bool {
		idx := y*width + x
		return idx < len(layer) && !visited[idx] && layer[idx] > 0
	}

	var runs []tileRun
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !filled(x, y) {
				continue
			}

			runW := 0
			for x2 := x; x2 < width && filled(x2, y); x2++ {
				runW++
			}

			runH := 1
		rows:
			for y2 := y + 1; y2 < height; y2++ {
				for x2 := x; x2 < x+runW; x2++ {
					if !filled(x2, y2) {
						break rows
					}
				}
				runH++
			}

			for yy := y; yy < y+runH; yy++ {
				for xx := x; xx < x+runW; xx++ {
					visited[yy*width+xx] = true
				}
			}
			runs = append(runs, tileRun{X: x, Y: y, W: runW, H: runH})
		}
	}
	return runs
}
