package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/alienswim/prefabs"
)

// TurretScripts compiles turret direction scripts once per path and runs them
// after every shot. A script reads shots, direction and player_dx and must
// leave next_direction set to a non-zero number.
type TurretScripts struct {
	load     func(name string) ([]byte, error)
	compiled map[string]*tengo.Compiled
	failed   map[string]error
}

func NewTurretScripts() *TurretScripts {
	return &TurretScripts{
		load:     prefabs.LoadScript,
		compiled: make(map[string]*tengo.Compiled),
		failed:   make(map[string]error),
	}
}

// NextDirection returns the direction of the next shot. Without a script, or
// when the script fails, the turret alternates. Failures are logged once per
// script.
func (s *TurretScripts) NextDirection(path string, shots int, direction, playerDX float64) float64 {
	fallback := -direction
	if fallback == 0 {
		fallback = 1
	}
	path = strings.TrimSpace(path)
	if s == nil || path == "" {
		return fallback
	}
	if _, failed := s.failed[path]; failed {
		return fallback
	}

	next, err := s.run(path, shots, direction, playerDX)
	if err != nil {
		s.failed[path] = err
		log.Printf("turret script %s: %v; alternating instead", path, err)
		return fallback
	}
	return next
}

func (s *TurretScripts) run(path string, shots int, direction, playerDX float64) (float64, error) {
	compiled, err := s.compile(path)
	if err != nil {
		return 0, err
	}
	if err := compiled.Set("shots", shots); err != nil {
		return 0, err
	}
	if err := compiled.Set("direction", int(direction)); err != nil {
		return 0, err
	}
	if err := compiled.Set("player_dx", playerDX); err != nil {
		return 0, err
	}
	if err := compiled.Run(); err != nil {
		return 0, err
	}
	if !compiled.IsDefined("next_direction") {
		return 0, fmt.Errorf("next_direction not set")
	}
	next := compiled.Get("next_direction").Float()
	switch {
	case next > 0:
		return 1, nil
	case next < 0:
		return -1, nil
	}
	return 0, fmt.Errorf("next_direction is zero")
}

func (s *TurretScripts) compile(path string) (*tengo.Compiled, error) {
	if c, ok := s.compiled[path]; ok {
		return c, nil
	}
	src, err := s.load(path)
	if err != nil {
		return nil, err
	}
	script := tengo.NewScript(src)
	_ = script.Add("shots", 0)
	_ = script.Add("direction", 1)
	_ = script.Add("player_dx", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	s.compiled[path] = compiled
	return compiled, nil
}
