package component

import "image/color"

// Sprite is a flat colored rectangle centered on the transform. Alpha
// multiplies Color's alpha.
type Sprite struct {
	Color      color.RGBA
	Width      float64
	Height     float64
	Alpha      float64
	FacingLeft bool
	Layer      int
	Hidden     bool
}

var SpriteComponent = NewComponent[Sprite]()
