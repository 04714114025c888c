package game

// DrawSource supplies the uniform randomness behind action resolution:
// Float64 draws in [0,1) decide success, Intn picks targets for the
// computer actors. *rand.Rand from golang.org/x/exp/rand satisfies it;
// tests substitute scripted draws.
type DrawSource interface {
	Float64() float64
	Intn(n int) int
}

// Resolver applies probability-weighted actions to the game state. All
// three actors resolve through the same routine; only target selection
// differs between the human and the computers.
type Resolver struct {
	rng DrawSource
}

func NewResolver(rng DrawSource) *Resolver {
	if rng == nil {
		panic("resolver needs a draw source")
	}
	return &Resolver{rng: rng}
}

// Outcome describes one resolved action, for narration by the caller.
type Outcome struct {
	Actor     Actor
	Action    ActionType
	Target    *Castle
	PrevOwner Actor // owner before resolution, meaningful for poaches
	Chance    float64
	Success   bool
}

// Resolve applies the action implied by the target's current state. On
// success the mutation is a cycle start (develop) or an ownership
// transfer (claim, poach); on failure the state is untouched. A poached
// castle's development progress is not preserved: its cycle is already 0
// or it could not be poached.
func (r *Resolver) Resolve(gs *GameState, actor Actor, target *Castle) (Outcome, error) {
	action, err := ActionFor(actor, target)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{
		Actor:     actor,
		Action:    action,
		Target:    target,
		PrevOwner: target.Owner,
		Chance:    SuccessChance(action, target),
	}
	out.Success = r.rng.Float64() < out.Chance
	if out.Success {
		switch action {
		case DevelopAction:
			target.Cycle = DevelopmentTurns
		case ClaimAction, PoachAction:
			target.Owner = actor
		}
	}
	return out, nil
}
