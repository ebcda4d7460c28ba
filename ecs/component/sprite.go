package component

import "image"

// Sprite references a registered sheet image by key. Source selects the
// sub-rectangle drawn when UseSource is set.
type Sprite struct {
	Sheet      string
	Source     image.Rectangle
	UseSource  bool
	OriginX    float64
	OriginY    float64
	FacingLeft bool
}

var SpriteComponent = NewComponent[Sprite]()
