package game

// CycleEvent records one castle whose development advanced during a
// cycle-processing pass.
type CycleEvent struct {
	Castle    *Castle
	Completed bool
	Points    int // awarded when Completed
	Total     int // actor's score after the award
}

// AdvanceCycles steps development on every castle the actor holds with a
// cycle in progress. A castle reaching cycle 0 has completed development:
// the actor's score grows by the castle's point value, exactly once. The
// pass runs immediately after the actor's own turn, before the victory
// check for that slot. Events come back in board order for narration.
func AdvanceCycles(gs *GameState, actor Actor) []CycleEvent {
	var events []CycleEvent
	for _, c := range gs.Castles {
		if c.Owner != actor || !c.Developing() {
			continue
		}
		c.Cycle--
		ev := CycleEvent{Castle: c}
		if c.Cycle == 0 {
			ev.Completed = true
			ev.Points = c.Point
			gs.Scores[actor] += c.Point
			ev.Total = gs.Scores[actor]
		}
		events = append(events, ev)
	}
	return events
}
