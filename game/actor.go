package game

// Actor identifies one of the three competitors. The zero value means
// nobody: an unclaimed castle has Owner == ActorNone.
type Actor int

const (
	ActorNone Actor = iota
	Human
	ComputerA
	ComputerB
)

// TurnOrder is the fixed order in which actors act each round. Victory
// checks walk the same order, so the human wins ties.
var TurnOrder = [3]Actor{Human, ComputerA, ComputerB}

func (a Actor) String() string {
	switch a {
	case Human:
		return "Player"
	case ComputerA:
		return "CPU"
	case ComputerB:
		return "CPU2"
	default:
		return "Unclaimed"
	}
}
