package core

import (
	"fmt"
	"image/color"
	"time"
)

const FieldWidth = 1000 // 場地寬度 (logical units)
const FieldHeight = 600 // 場地高度
const PaddleWidth = 15
const PaddleHeight = 80
const PaddleSpeed = 6
const BallSize = 15
const BallSpeed = 5

// Palette is the contribution-graph colour scheme. Tiers[0] matches the grid
// colour so an idle cell blends into the background.
type Palette struct {
	Background color.RGBA
	Grid       color.RGBA
	Ball       color.RGBA
	Text       color.RGBA
	Tiers      []color.RGBA
}

// Config carries every compiled-in constant the game needs. Entities take it
// (or the fields they care about) in their constructors.
type Config struct {
	FieldWidth, FieldHeight int

	PaddleWidth, PaddleHeight float64
	PaddleSpeed               float64
	PaddleInset               float64

	BallSize  float64
	BallSpeed float64
	// BallSpin is the largest dy perturbation added on a paddle hit.
	BallSpin float64

	CellSize, CellSpacing int
	HitRadius             float64
	ScoreBurst            int

	FrameRate int
	Palette   Palette
}

func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{13, 17, 23, 255},
		Grid:       color.RGBA{22, 27, 34, 255},
		Ball:       color.RGBA{255, 255, 255, 255},
		Text:       color.RGBA{201, 209, 217, 255},
		Tiers: []color.RGBA{
			{22, 27, 34, 255},
			{14, 68, 41, 255},
			{0, 109, 50, 255},
			{38, 166, 65, 255},
			{57, 211, 83, 255},
		},
	}
}

func DefaultConfig() Config {
	return Config{
		FieldWidth:   FieldWidth,
		FieldHeight:  FieldHeight,
		PaddleWidth:  PaddleWidth,
		PaddleHeight: PaddleHeight,
		PaddleSpeed:  PaddleSpeed,
		PaddleInset:  30,
		BallSize:     BallSize,
		BallSpeed:    BallSpeed,
		BallSpin:     1,
		CellSize:     8,
		CellSpacing:  2,
		HitRadius:    50,
		ScoreBurst:   20,
		FrameRate:    60,
		Palette:      DefaultPalette(),
	}
}

// Validate rejects configurations the game cannot be built from.
func (c Config) Validate() error {
	switch {
	case c.FieldWidth <= 0 || c.FieldHeight <= 0:
		return fmt.Errorf("field size %dx%d must be positive", c.FieldWidth, c.FieldHeight)
	case c.PaddleHeight <= 0 || c.PaddleHeight > float64(c.FieldHeight):
		return fmt.Errorf("paddle height %v must be in (0, %d]", c.PaddleHeight, c.FieldHeight)
	case c.BallSize <= 0 || c.BallSpeed <= 0:
		return fmt.Errorf("ball size %v and speed %v must be positive", c.BallSize, c.BallSpeed)
	case c.CellSize <= 0 || c.CellSpacing < 0:
		return fmt.Errorf("cell size %d must be positive and spacing %d not negative", c.CellSize, c.CellSpacing)
	case c.Tiers() == 0:
		return fmt.Errorf("palette has no tiers")
	case c.FrameRate < 0:
		return fmt.Errorf("frame rate %d is negative", c.FrameRate)
	}
	return nil
}

// Tiers is the number of intensity levels a background cell can take.
func (c Config) Tiers() int {
	return len(c.Palette.Tiers)
}

func (c Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FrameRate)
}

// TierColor maps a level onto the palette, saturating at the brightest tier.
func (c Config) TierColor(level int) color.RGBA {
	tiers := c.Palette.Tiers
	return tiers[ClampInt(level, 0, len(tiers)-1)]
}
