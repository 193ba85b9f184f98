package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"ContribPong/core"
)

// Canvas is an off-screen Surface backed by a gg raster at one pixel per
// field unit.
type Canvas struct {
	dc *gg.Context
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

func (c *Canvas) Clear(bg color.RGBA) {
	c.dc.SetColor(bg)
	c.dc.Clear()
}

func (c *Canvas) FillRect(r core.Rect, fill color.RGBA) {
	c.dc.SetColor(fill)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.Fill()
}

func (c *Canvas) StrokeRect(r core.Rect, col color.RGBA, width float64) {
	half := width / 2
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawRectangle(r.X+half, r.Y+half, r.W-width, r.H-width)
	c.dc.Stroke()
}

func (c *Canvas) Text(x, y float64, s string, col color.RGBA) {
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x, y, 0, 1)
}

func (c *Canvas) Present() error {
	return nil
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}
