package game

import (
	"errors"
	"fmt"
)

// ActionType represents the kind of action an actor can take on a castle.
type ActionType int

const (
	DevelopAction ActionType = iota // start a development cycle on an own idle castle
	ClaimAction                     // take an unclaimed castle
	PoachAction                     // take another actor's idle castle
)

func (t ActionType) String() string {
	switch t {
	case DevelopAction:
		return "develop"
	case ClaimAction:
		return "claim"
	case PoachAction:
		return "poach"
	default:
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
}

// ErrIneligible is returned when a castle cannot be targeted this turn,
// e.g. it is already under development. The caller re-prompts without
// consuming the turn.
var ErrIneligible = errors.New("castle cannot be targeted this turn")

// ActionFor determines which action applies when actor targets the given
// castle. The castle's current state alone decides the action: own idle
// castles are developed, unclaimed ones claimed, rivals' idle ones
// poached. Developing castles are locked.
func ActionFor(actor Actor, target *Castle) (ActionType, error) {
	switch {
	case target.Owner == actor:
		if target.Developing() {
			return 0, fmt.Errorf("'%s' is already under development: %w", target.Name, ErrIneligible)
		}
		return DevelopAction, nil
	case target.Owner == ActorNone:
		return ClaimAction, nil
	default:
		if target.Developing() {
			return 0, fmt.Errorf("'%s' is locked while developing: %w", target.Name, ErrIneligible)
		}
		return PoachAction, nil
	}
}

// SuccessChance returns the probability that the given action succeeds
// against the target. Values may stray outside [0,1] for pathological
// attribute combinations; the shipped castles never produce them and the
// formulas are kept verbatim.
func SuccessChance(action ActionType, target *Castle) float64 {
	switch action {
	case DevelopAction:
		return float64(target.Stability) / 10
	case ClaimAction:
		return (10 - float64(target.Defense)/2) / 10
	case PoachAction:
		return float64(10+target.Stability-target.Defense) / 20
	default:
		return 0
	}
}
