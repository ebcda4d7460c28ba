package component

// ScreenSpace marks renderable entities that should be drawn in screen/UI space
// (not affected by camera translation or zoom).
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()

// ScreenAnchor is a pixel offset from the top-left corner of the screen.
type ScreenAnchor struct {
	X float64
	Y float64
}

var ScreenAnchorComponent = NewComponent[ScreenAnchor]()
