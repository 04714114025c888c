package game

// Winner returns the first actor, in fixed turn order, whose score has
// reached the target. Later actors are not evaluated once one matches.
func Winner(gs *GameState, target int) (Actor, bool) {
	for _, a := range TurnOrder {
		if gs.Scores[a] >= target {
			return a, true
		}
	}
	return ActorNone, false
}

// Takeover records one castle changing hands during a victory sweep.
type Takeover struct {
	Castle    *Castle
	PrevOwner Actor
}

// HandleVictory ends the round under the winner's sole control: every
// castle transfers to the winner unconditionally, then every idle castle
// (including just-transferred ones) restarts its development cycle.
// Castles mid-development keep their remaining cycle. Returns the
// takeovers and restarts for narration, in board order.
func HandleVictory(gs *GameState, winner Actor) (taken []Takeover, restarted []*Castle) {
	for _, c := range gs.Castles {
		if c.Owner != winner {
			taken = append(taken, Takeover{Castle: c, PrevOwner: c.Owner})
		}
		c.Owner = winner
	}
	for _, c := range gs.Castles {
		if !c.Developing() {
			c.Cycle = DevelopmentTurns
			restarted = append(restarted, c)
		}
	}
	return taken, restarted
}
