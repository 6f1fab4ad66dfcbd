package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Durations in specs are milliseconds; builders convert them to frames.

type PlayerSpec struct {
	Name              string        `yaml:"name"`
	Acceleration      float64       `yaml:"acceleration"`
	Drag              float64       `yaml:"drag"`
	MaxSpeed          float64       `yaml:"max_speed"`
	JumpSpeed         float64       `yaml:"jump_speed"`
	BounceSpeed       float64       `yaml:"bounce_speed"`
	DashSpeed         float64       `yaml:"dash_speed"`
	DashMS            int           `yaml:"dash_ms"`
	DashCooldownMS    int           `yaml:"dash_cooldown_ms"`
	FootstepMS        int           `yaml:"footstep_ms"`
	SpawnGraceMS      int           `yaml:"spawn_grace_ms"`
	DrownMS           int           `yaml:"drown_ms"`
	DeathFadeMS       int           `yaml:"death_fade_ms"`
	LandShakeMS       int           `yaml:"land_shake_ms"`
	LandShakeAmount   float64       `yaml:"land_shake_intensity"`
	CelebrationMS     int           `yaml:"celebration_ms"`
	CelebrationStopMS int           `yaml:"celebration_stop_ms"`
	FallbackSpawnX    float64       `yaml:"fallback_spawn_x"`
	FallbackSpawnY    float64       `yaml:"fallback_spawn_y"`
	Collider          ColliderSpec  `yaml:"collider"`
	Sprite            SpriteSpec    `yaml:"sprite"`
	Animation         AnimationSpec `yaml:"animation"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Health            int          `yaml:"health"`
	Speed             float64      `yaml:"speed"`
	PatrolDistance    float64      `yaml:"patrol_distance"`
	TurnMS            int          `yaml:"turn_ms"`
	ShootIntervalMS   int          `yaml:"shoot_interval_ms"`
	ProjectileSpeed   float64      `yaml:"projectile_speed"`
	ProjectileMS      int          `yaml:"projectile_ms"`
	ProjectileSize    float64      `yaml:"projectile_size"`
	SpawnOffset       float64      `yaml:"spawn_offset"`
	Script            string       `yaml:"script"`
	DeathFadeMS       int          `yaml:"death_fade_ms"`
	DeathRise         float64      `yaml:"death_rise"`
	Collider          ColliderSpec `yaml:"collider"`
	Sprite            SpriteSpec   `yaml:"sprite"`
	ProjectileColor   *YAMLColor   `yaml:"projectile_color"`
	StompTolerancePx  float64      `yaml:"stomp_tolerance"`
	InitialDirection  float64      `yaml:"initial_direction"`
	AnimationFPS      float64      `yaml:"animation_fps"`
	AnimationFrameCnt int          `yaml:"animation_frames"`
}

// EnemiesSpec holds one entry per enemy kind, keyed by the level type tag.
type EnemiesSpec struct {
	Enemies map[string]EnemySpec `yaml:"enemies"`
}

func LoadEnemiesSpec() (*EnemiesSpec, error) {
	spec, err := LoadSpec[EnemiesSpec]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlatformSpec struct {
	Distance float64      `yaml:"distance"`
	Speed    float64      `yaml:"speed"`
	DelayMS  int          `yaml:"delay_ms"`
	Collider ColliderSpec `yaml:"collider"`
	Sprite   SpriteSpec   `yaml:"sprite"`
}

func LoadPlatformSpec() (*PlatformSpec, error) {
	spec, err := LoadSpec[PlatformSpec]("platform.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PowerUpSpec struct {
	Multiplier float64    `yaml:"multiplier"`
	DurationMS int        `yaml:"duration_ms"`
	Color      *YAMLColor `yaml:"color"`
}

type PickupsSpec struct {
	CoinValue    int                    `yaml:"coin_value"`
	CoinSize     float64                `yaml:"coin_size"`
	CoinColor    *YAMLColor             `yaml:"coin_color"`
	PowerUpSize  float64                `yaml:"powerup_size"`
	BobAmplitude float64                `yaml:"bob_amplitude"`
	BobSpeed     float64                `yaml:"bob_speed"`
	PowerUps     map[string]PowerUpSpec `yaml:"powerups"`
}

func LoadPickupsSpec() (*PickupsSpec, error) {
	spec, err := LoadSpec[PickupsSpec]("pickups.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EffectSpec struct {
	Count   int        `yaml:"count"`
	Speed   float64    `yaml:"speed"`
	Spread  float64    `yaml:"spread"`
	Gravity float64    `yaml:"gravity"`
	LifeMS  int        `yaml:"life_ms"`
	Size    float64    `yaml:"size"`
	Color   *YAMLColor `yaml:"color"`
}

type EffectsSpec struct {
	Effects map[string]EffectSpec `yaml:"effects"`
}

func LoadEffectsSpec() (*EffectsSpec, error) {
	spec, err := LoadSpec[EffectsSpec]("effects.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ColliderSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

type SpriteSpec struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
	Layer  int        `yaml:"layer"`
}

type AnimationSpec struct {
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
	Current string                      `yaml:"current"`
}

type AnimationDefSpec struct {
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type YAMLColor struct {
	C color.RGBA
}

// Or returns the parsed color, or fallback when the spec left it out.
func (c *YAMLColor) Or(fallback color.RGBA) color.RGBA {
	if c == nil {
		return fallback
	}
	return c.C
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = v
	}

	c.C = color.RGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
