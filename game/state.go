package game

// GameState represents the dynamic state of the game at any point: the
// castles (mutated in place by the resolver, cycle processor, and victory
// handler), the per-actor scores, and the human player's display name.
// A GameState is built fresh at game start and on every reset; castles
// are never added or removed afterwards.
type GameState struct {
	Castles    []*Castle
	Scores     map[Actor]int
	PlayerName string
}

// NewGameState initializes and returns a new GameState around the given
// castles. An empty board is a setup bug, not a playable game.
func NewGameState(castles []*Castle) *GameState {
	if len(castles) == 0 {
		panic("need at least one castle")
	}
	return &GameState{
		Castles: castles,
		Scores:  map[Actor]int{Human: 0, ComputerA: 0, ComputerB: 0},
	}
}

// CastleByName returns the castle with the given name, or nil.
func (gs *GameState) CastleByName(name string) *Castle {
	for _, c := range gs.Castles {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// OwnedBy returns the castles currently held by the given actor, in
// board order.
func (gs *GameState) OwnedBy(actor Actor) []*Castle {
	var owned []*Castle
	for _, c := range gs.Castles {
		if c.Owner == actor {
			owned = append(owned, c)
		}
	}
	return owned
}

// NameOf returns the display name for an actor. The human's free-form
// name is carried here rather than on the Actor tag itself.
func (gs *GameState) NameOf(a Actor) string {
	if a == Human && gs.PlayerName != "" {
		return gs.PlayerName
	}
	return a.String()
}
