package core

// GameObject is the shared body of everything that moves on the field.
type GameObject struct {
	X, Y          float64
	Width, Height float64
}

func (o *GameObject) BoundingBox() Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// Paddle only moves vertically and never leaves the field.
type Paddle struct {
	GameObject
	Speed float64

	fieldHeight float64
}

func NewPaddle(x, y float64, cfg Config) *Paddle {
	p := &Paddle{
		GameObject: GameObject{X: x, Width: cfg.PaddleWidth, Height: cfg.PaddleHeight},
		Speed:      cfg.PaddleSpeed,

		fieldHeight: float64(cfg.FieldHeight),
	}
	p.Y = Clamp(y, 0, p.maxY())
	return p
}

func (p *Paddle) MoveUp() {
	p.Y = Clamp(p.Y-p.Speed, 0, p.maxY())
}

func (p *Paddle) MoveDown() {
	p.Y = Clamp(p.Y+p.Speed, 0, p.maxY())
}

func (p *Paddle) maxY() float64 {
	return p.fieldHeight - p.Height
}

// Ball moves by (DX, DY) every tick. |DX| stays at the configured speed for
// the whole match; DY drifts with every paddle hit and is never clamped.
type Ball struct {
	GameObject
	DX, DY float64

	speed                   float64
	fieldWidth, fieldHeight float64
	rnd                     Random
}

func NewBall(cfg Config, rnd Random) *Ball {
	b := &Ball{
		GameObject:  GameObject{Width: cfg.BallSize, Height: cfg.BallSize},
		speed:       cfg.BallSpeed,
		fieldWidth:  float64(cfg.FieldWidth),
		fieldHeight: float64(cfg.FieldHeight),
		rnd:         rnd,
	}
	b.Reset()
	return b
}

// Advance moves the ball one tick and reflects it off the top and bottom
// walls. The position is not corrected, so the ball may sit past a wall for
// one frame.
func (b *Ball) Advance() {
	b.X += b.DX
	b.Y += b.DY

	//撞到上下牆壁
	if b.Y <= 0 || b.Y >= b.fieldHeight-b.Height {
		b.DY = -b.DY
	}
}

// Reset puts the ball back at the field centre with a freshly drawn velocity.
func (b *Ball) Reset() {
	b.X = b.fieldWidth / 2
	b.Y = b.fieldHeight / 2
	b.DX = sign(b.rnd) * b.speed
	b.DY = uniform(b.rnd, -b.speed, b.speed)
}

// Bounce sends the ball back the way it came and nudges its vertical speed by
// up to spin in either direction.
func (b *Ball) Bounce(spin float64) {
	b.DX = -b.DX
	b.DY += uniform(b.rnd, -spin, spin)
}
