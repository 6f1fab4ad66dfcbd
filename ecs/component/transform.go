package component

// Transform is the world-space center of an entity in logical pixels.
// Rotation is in radians.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
