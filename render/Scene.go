package render

import (
	"fmt"
	"strconv"

	"ContribPong/core"
)

const TileSize = 8 // 方塊大小
const TileGap = 2

var Instructions = []string{
	"Left Player: W/S keys",
	"Right Player: UP/DOWN arrows",
	"Press R to reset game",
}

// Scene draws full frames of a game in the contribution-graph style.
type Scene struct {
	surface Surface
	cfg     core.Config
}

func NewScene(surface Surface, cfg core.Config) *Scene {
	return &Scene{surface: surface, cfg: cfg}
}

// Render draws grid, paddles, ball, scores, centre line and instructions, in
// that order, then presents the frame.
func (s *Scene) Render(g *core.Game) error {
	pal := s.cfg.Palette
	s.surface.Clear(pal.Background)

	s.drawGrid(g.Grid)
	s.drawPaddle(g.Left)
	s.drawPaddle(g.Right)
	s.drawBall(g.Ball)

	//分數更新
	width := float64(s.cfg.FieldWidth)
	s.drawLetters(width/4, 50, strconv.Itoa(g.Match.LeftScore))
	s.drawLetters(width/4*3, 50, strconv.Itoa(g.Match.RightScore))
	s.drawCenterLine()
	s.drawInstructions()

	if err := s.surface.Present(); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

func (s *Scene) drawGrid(grid *core.Grid) {
	size := float64(grid.CellSize())
	grid.Each(func(c core.Cell) {
		r := core.Rect{X: float64(c.X), Y: float64(c.Y), W: size, H: size}
		s.surface.FillRect(r, s.cfg.TierColor(c.Level))
		s.surface.StrokeRect(r, s.cfg.Palette.Grid, 1)
	})
}

// drawPaddle tiles the paddle with small squares. Only tiles that fit whole
// are drawn, so a 15x80 paddle is one column of eight.
func (s *Scene) drawPaddle(p *core.Paddle) {
	color := s.cfg.TierColor(3)
	for i := 0.0; i+TileSize <= p.Height; i += TileSize + TileGap {
		for j := 0.0; j+TileSize <= p.Width; j += TileSize + TileGap {
			r := core.Rect{X: p.X + j, Y: p.Y + i, W: TileSize, H: TileSize}
			s.surface.FillRect(r, color)
			s.surface.StrokeRect(r, s.cfg.Palette.Grid, 1)
		}
	}
}

func (s *Scene) drawBall(b *core.Ball) {
	r := b.BoundingBox()
	s.surface.FillRect(r, s.cfg.Palette.Ball)
	s.surface.StrokeRect(r, s.cfg.TierColor(4), 2)
}

// drawLetters draws word in block digits with its top-left corner at (x, y).
func (s *Scene) drawLetters(x, y float64, word string) {
	const unit = TileSize + TileGap
	color := s.cfg.Palette.Text

	for i, letter := range word {
		offsetX := x + float64(i*(LetterWidth+1)*unit)
		for _, cell := range GetCellsFromChar(string(letter)) {
			r := core.Rect{
				X: offsetX + float64(cell[0]*unit),
				Y: y + float64(cell[1]*unit),
				W: TileSize,
				H: TileSize,
			}
			s.surface.FillRect(r, color)
		}
	}
}

//中線
func (s *Scene) drawCenterLine() {
	x := float64(s.cfg.FieldWidth)/2 - TileSize/2
	for y := 0; y < s.cfg.FieldHeight; y += 20 {
		s.surface.FillRect(core.Rect{X: x, Y: float64(y), W: TileSize, H: TileSize}, s.cfg.TierColor(1))
	}
}

func (s *Scene) drawInstructions() {
	top := float64(s.cfg.FieldHeight) - 80
	for i, line := range Instructions {
		s.surface.Text(10, top+float64(i*25), line, s.cfg.Palette.Text)
	}
}
