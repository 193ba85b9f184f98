// Package render draws a core.Game onto a Surface. Surfaces work in field
// units (the game's 1000x600 space) and decide for themselves how that maps
// onto their pixels.
package render

import (
	"image/color"

	"ContribPong/core"
)

// Surface is the drawing side of the rendering/input collaborator.
type Surface interface {
	Clear(c color.RGBA)
	FillRect(r core.Rect, fill color.RGBA)
	// StrokeRect outlines r with a border of the given width drawn inside it.
	StrokeRect(r core.Rect, c color.RGBA, width float64)
	// Text draws a single line whose top-left corner is (x, y).
	Text(x, y float64, s string, c color.RGBA)
	// Present shows everything drawn since the last Clear.
	Present() error
}
