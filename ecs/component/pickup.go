package component

type PickupKind string

const (
	PickupCoin    PickupKind = "coin"
	PickupPowerUp PickupKind = "powerup"
)

// Pickup is a collectible with a hover bob. Value is the score for coins;
// PowerUp selects the buff for power-ups.
type Pickup struct {
	Kind            PickupKind
	PowerUp         BuffKind
	Value           int
	Multiplier      float64
	DurationFrames  int
	BaseY           float64
	BobAmplitude    float64
	BobSpeed        float64
	BobPhase        float64
	CollisionWidth  float64
	CollisionHeight float64
	Initialized     bool
}

var PickupComponent = NewComponent[Pickup]()
