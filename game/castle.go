package game

// DevelopmentTurns is the number of cycle-processing passes a castle
// takes to finish one development cycle.
const DevelopmentTurns = 2

// Castle is a single location on the board. Point is the score awarded
// when a development cycle completes, Defense resists takeover, and
// Stability aids development and resists poaching.
type Castle struct {
	Name      string
	Point     int
	Defense   int
	Stability int
	Owner     Actor
	Cycle     int // remaining development turns, 0 = idle
}

// Developing reports whether the castle is partway through a development
// cycle. A developing castle cannot be poached or re-developed.
func (c *Castle) Developing() bool {
	return c.Cycle > 0
}
