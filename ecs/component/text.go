package component

import "image/color"

// Text is a mutable UI label.
type Text struct {
	Value string
	Color color.Color
}

var TextComponent = NewComponent[Text]()
