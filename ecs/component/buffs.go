package component

type BuffKind string

const (
	BuffSpeed  BuffKind = "speed"
	BuffJump   BuffKind = "jump"
	BuffShield BuffKind = "shield"
)

// Buff is one active timed effect. Baseline and BaselineMax hold the tuning
// values captured when the effect first started, so expiry restores them
// exactly however often the effect was refreshed.
type Buff struct {
	Remaining   int
	Baseline    float64
	BaselineMax float64
}

// Buffs tracks at most one timer per effect type.
type Buffs struct {
	Active map[BuffKind]*Buff
}

var BuffsComponent = NewComponent[Buffs]()
