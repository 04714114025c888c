package game

// Category is one eligibility class an automated actor considers on its
// turn: an action plus the predicate admitting castles to it.
type Category struct {
	Action   ActionType
	Eligible func(actor Actor, c *Castle) bool
}

// Categories returns the priority-ordered categories for a computer
// actor. Both computers first develop their own idle castles, then claim
// unowned ones, then poach the human's idle holdings; ComputerB
// additionally poaches ComputerA's idle holdings as a last resort.
func Categories(actor Actor) []Category {
	cats := []Category{
		{Action: DevelopAction, Eligible: func(a Actor, c *Castle) bool {
			return c.Owner == a && !c.Developing()
		}},
		{Action: ClaimAction, Eligible: func(a Actor, c *Castle) bool {
			return c.Owner == ActorNone
		}},
		{Action: PoachAction, Eligible: func(a Actor, c *Castle) bool {
			return c.Owner == Human && !c.Developing()
		}},
	}
	if actor == ComputerB {
		cats = append(cats, Category{Action: PoachAction, Eligible: func(a Actor, c *Castle) bool {
			return c.Owner == ComputerA && !c.Developing()
		}})
	}
	return cats
}

// AutomatedTurn takes one turn for an automated actor: the first
// category with any eligible castle is used exclusively, a target is
// picked from it uniformly at random, and the action resolves through
// the same routine the human uses. ok is false when no category has an
// eligible castle and the turn is a no-op.
func (r *Resolver) AutomatedTurn(gs *GameState, actor Actor, cats []Category) (out Outcome, ok bool) {
	for _, cat := range cats {
		var eligible []*Castle
		for _, c := range gs.Castles {
			if cat.Eligible(actor, c) {
				eligible = append(eligible, c)
			}
		}
		if len(eligible) == 0 {
			continue
		}
		target := eligible[r.rng.Intn(len(eligible))]
		out, err := r.Resolve(gs, actor, target)
		if err != nil {
			// category predicates only admit resolvable targets
			panic(err)
		}
		return out, true
	}
	return Outcome{}, false
}
