package component

// Hazard marks a region that drowns the player on overlap. Bounds are centered
// on the entity transform.
type Hazard struct {
	Kind   string
	Width  float64
	Height float64
}

var HazardComponent = NewComponent[Hazard]()

const HazardWater = "water"
