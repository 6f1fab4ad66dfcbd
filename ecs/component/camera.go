package component

// Camera follows the player within the level bounds. X and Y are the top-left
// of the view in world space.
type Camera struct {
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Smoothness float64
	ShakeX     float64
	ShakeY     float64

	ShakeFrames    int
	ShakeIntensity float64
}

var CameraComponent = NewComponent[Camera]()
