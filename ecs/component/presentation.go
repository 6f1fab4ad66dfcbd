package component

// The request types below travel on the world event queue from gameplay
// systems to the presentation layer. None of them return anything.

type SoundRequest struct {
	Key    string
	Volume float64
}

type EffectRequest struct {
	Kind string
	X    float64
	Y    float64
}

type PanelKind string

const (
	PanelWin   PanelKind = "win"
	PanelDeath PanelKind = "death"
)

type PanelRequest struct {
	Kind    PanelKind
	Message string
}

// Sound keys and effect kinds shared by gameplay and the asset layer.
const (
	SoundJump          = "jump_sound"
	SoundLand          = "land_sound"
	SoundDash          = "dash_sound"
	SoundCoin          = "coin_collect_sound"
	SoundDrown         = "drown_sound"
	SoundEnemyHit      = "enemy_hit_sound"
	SoundEnemyDie      = "enemy_die_sound"
	SoundPowerUp       = "powerup_collect"
	SoundFootstepStem  = "footstep_grass_"
	FootstepVariations = 5

	EffectJump        = "jump"
	EffectLand        = "land"
	EffectDash        = "dash"
	EffectCoin        = "coin"
	EffectDrown       = "drown"
	EffectEnemyDie    = "enemy_die"
	EffectPowerUp     = "powerup"
	EffectCelebration = "celebration"
	EffectFootstep    = "footstep"
)
