package core

// Side names one half of the table.
type Side int

const (
	NoSide Side = iota
	LeftSide
	RightSide
)

func (s Side) String() string {
	switch s {
	case LeftSide:
		return "left"
	case RightSide:
		return "right"
	}
	return "none"
}

// Match holds the score. Scores only grow until Reset.
type Match struct {
	LeftScore  int
	RightScore int
}

func (m *Match) Score(side Side) {
	switch side {
	case LeftSide:
		m.LeftScore += 1
	case RightSide:
		m.RightScore += 1
	}
}

func (m *Match) Reset() {
	m.LeftScore = 0
	m.RightScore = 0
}
