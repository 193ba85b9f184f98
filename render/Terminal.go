package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell"

	"ContribPong/core"
)

// HalfBlock paints two vertical pixels per cell: foreground on top,
// background below.
const HalfBlock = 0x2580

type textRun struct {
	col, row int
	text     string
	color    color.RGBA
}

// Terminal is a Surface on a tcell screen. The field is scaled onto a pixel
// buffer of cols x rows*2 and flushed as half-block characters; text is laid
// over the pixels as ordinary characters.
type Terminal struct {
	screen         tcell.Screen
	fieldW, fieldH float64

	cols, rows int
	pixels     []color.RGBA
	texts      []textRun
}

func NewTerminal(screen tcell.Screen, fieldWidth, fieldHeight int) *Terminal {
	return &Terminal{
		screen: screen,
		fieldW: float64(fieldWidth),
		fieldH: float64(fieldHeight),
	}
}

// Clear starts a new frame. The screen size is read here so a resize takes
// effect on the next frame.
func (t *Terminal) Clear(c color.RGBA) {
	cols, rows := t.screen.Size()
	if cols != t.cols || rows != t.rows {
		t.cols, t.rows = cols, rows
		t.pixels = make([]color.RGBA, cols*rows*2)
		t.screen.Sync()
	}
	for i := range t.pixels {
		t.pixels[i] = c
	}
	t.texts = t.texts[:0]
}

func (t *Terminal) FillRect(r core.Rect, fill color.RGBA) {
	x0, x1, y0, y1 := t.bounds(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			t.pixels[y*t.cols+x] = fill
		}
	}
}

// StrokeRect draws a one pixel ring. Boxes smaller than 3x3 pixels have no
// room for an inside, so they are left as filled.
func (t *Terminal) StrokeRect(r core.Rect, c color.RGBA, _ float64) {
	x0, x1, y0, y1 := t.bounds(r)
	if x1-x0 < 3 || y1-y0 < 3 {
		return
	}
	for x := x0; x < x1; x++ {
		t.pixels[y0*t.cols+x] = c
		t.pixels[(y1-1)*t.cols+x] = c
	}
	for y := y0; y < y1; y++ {
		t.pixels[y*t.cols+x0] = c
		t.pixels[y*t.cols+x1-1] = c
	}
}

func (t *Terminal) Text(x, y float64, s string, c color.RGBA) {
	col := int(x * float64(t.cols) / t.fieldW)
	row := int(y * float64(t.rows) / t.fieldH)
	t.texts = append(t.texts, textRun{col: col, row: row, text: s, color: c})
}

func (t *Terminal) Present() error {
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			style := tcell.StyleDefault.
				Foreground(toColor(t.pixel(col, row*2))).
				Background(toColor(t.pixel(col, row*2+1)))
			t.screen.SetContent(col, row, HalfBlock, nil, style)
		}
	}

	for _, run := range t.texts {
		if run.row < 0 || run.row >= t.rows {
			continue
		}
		col := run.col
		for _, ch := range run.text {
			if col >= t.cols {
				break
			}
			if col >= 0 {
				style := tcell.StyleDefault.
					Foreground(toColor(run.color)).
					Background(toColor(t.pixel(col, run.row*2)))
				t.screen.SetContent(col, run.row, ch, nil, style)
			}
			col++
		}
	}

	t.screen.Show()
	return nil
}

// Size returns the pixel buffer size of the current frame.
func (t *Terminal) Size() (int, int) {
	return t.cols, t.rows * 2
}

func (t *Terminal) pixel(x, y int) color.RGBA {
	return t.pixels[y*t.cols+x]
}

// bounds maps a field rectangle onto the pixel buffer. Anything with a
// positive size covers at least one pixel.
func (t *Terminal) bounds(r core.Rect) (x0, x1, y0, y1 int) {
	height := t.rows * 2
	x0, x1 = span(r.X, r.W, float64(t.cols)/t.fieldW, t.cols)
	y0, y1 = span(r.Y, r.H, float64(height)/t.fieldH, height)
	return x0, x1, y0, y1
}

func span(pos, size, scale float64, limit int) (int, int) {
	a := int(math.Floor(pos * scale))
	b := int(math.Floor((pos + size) * scale))
	if b <= a {
		b = a + 1
	}
	return core.ClampInt(a, 0, limit), core.ClampInt(b, 0, limit)
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
