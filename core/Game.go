package core

// Input is the held-key snapshot for one frame.
type Input struct {
	LeftUp, LeftDown   bool
	RightUp, RightDown bool
	Reset              bool
	Quit               bool
}

// Events reports what happened during one Step.
type Events struct {
	LeftHit  bool
	RightHit bool
	Scorer   Side
}

// Game owns every entity on the table. It is not safe for concurrent use; the
// loop that drives it is the only owner.
type Game struct {
	Config Config

	Left  *Paddle
	Right *Paddle
	Ball  *Ball
	Grid  *Grid
	Match *Match
}

// NewGame builds a game from cfg. It panics if cfg fails Validate.
func NewGame(cfg Config, rnd Random) *Game {
	if err := cfg.Validate(); err != nil {
		panic("core: " + err.Error())
	}
	paddleStart := float64(cfg.FieldHeight)/2 - cfg.PaddleHeight/2

	return &Game{
		Config: cfg,
		Left:   NewPaddle(cfg.PaddleInset, paddleStart, cfg),
		Right:  NewPaddle(float64(cfg.FieldWidth)-cfg.PaddleInset-cfg.PaddleWidth, paddleStart, cfg),
		Ball:   NewBall(cfg, rnd),
		Grid:   NewGrid(cfg.FieldWidth, cfg.FieldHeight, cfg.CellSize, cfg.CellSpacing, cfg.Tiers(), rnd),
		Match:  &Match{},
	}
}

// Step runs one simulation tick: paddles, ball, collisions, scoring.
// Reset and Quit in the input are the caller's business.
func (g *Game) Step(in Input) Events {
	g.movePaddles(in)
	g.Ball.Advance()

	var ev Events
	ev.LeftHit, ev.RightHit = g.resolveCollisions()
	ev.Scorer = g.resolveScoring()
	return ev
}

// Reset starts a new match: zero scores, centred ball, re-seeded grid.
func (g *Game) Reset() {
	g.Match.Reset()
	g.Ball.Reset()
	g.Grid.ResetLevels()
}

func (g *Game) movePaddles(in Input) {
	if in.LeftUp {
		g.Left.MoveUp()
	}
	if in.LeftDown {
		g.Left.MoveDown()
	}
	if in.RightUp {
		g.Right.MoveUp()
	}
	if in.RightDown {
		g.Right.MoveDown()
	}
}

// resolveCollisions checks both paddles independently, so a ball overlapping
// both boxes in the same tick bounces twice. Nothing stops a fast ball from
// passing through a paddle between ticks.
func (g *Game) resolveCollisions() (left, right bool) {
	box := g.Ball.BoundingBox()

	if box.Intersects(g.Left.BoundingBox()) && g.Ball.DX < 0 {
		g.hit(g.Left)
		left = true
	}
	if box.Intersects(g.Right.BoundingBox()) && g.Ball.DX > 0 {
		g.hit(g.Right)
		right = true
	}
	return left, right
}

func (g *Game) hit(p *Paddle) {
	g.Ball.Bounce(g.Config.BallSpin)
	g.Grid.ApplyProximityEffect(p.X, p.Y, g.Config.HitRadius)
}

func (g *Game) resolveScoring() Side {
	var scorer Side
	switch {
	case g.Ball.X < 0:
		scorer = RightSide
	case g.Ball.X > float64(g.Config.FieldWidth):
		scorer = LeftSide
	default:
		return NoSide
	}

	g.Match.Score(scorer)
	g.Ball.Reset()
	g.Grid.ApplyScoreEffect(g.Config.ScoreBurst)
	return scorer
}
