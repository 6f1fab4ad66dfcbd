package component

// CameraShakeRequest asks the camera system to apply a short shake effect.
// Intensity is a fraction of the view size, as in the source tuning values.
type CameraShakeRequest struct {
	Frames    int
	Intensity float64
}

var CameraShakeRequestComponent = NewComponent[CameraShakeRequest]()
