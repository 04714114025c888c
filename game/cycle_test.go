package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceCyclesDecrements(t *testing.T) {
	c := &Castle{Name: "Northkeep", Point: 10, Owner: Human, Cycle: 2}
	gs := NewGameState([]*Castle{c})

	events := AdvanceCycles(gs, Human)

	require.Len(t, events, 1)
	assert.False(t, events[0].Completed)
	assert.Equal(t, 1, c.Cycle)
	assert.Equal(t, 0, gs.Scores[Human], "no points until the cycle completes")
}

func TestAdvanceCyclesAwardsPointExactlyOnce(t *testing.T) {
	c := &Castle{Name: "Riverhold", Point: 8, Owner: Human, Cycle: 1}
	gs := NewGameState([]*Castle{c})

	events := AdvanceCycles(gs, Human)

	require.Len(t, events, 1)
	assert.True(t, events[0].Completed)
	assert.Equal(t, 8, events[0].Points)
	assert.Equal(t, 8, events[0].Total)
	assert.Equal(t, 8, gs.Scores[Human])
	assert.Equal(t, 0, c.Cycle)

	// A completed castle sits idle: further passes change nothing.
	assert.Empty(t, AdvanceCycles(gs, Human))
	assert.Equal(t, 8, gs.Scores[Human])
}

func TestAdvanceCyclesOnlyTouchesOwnHoldings(t *testing.T) {
	mine := &Castle{Name: "Northkeep", Point: 10, Owner: Human, Cycle: 2}
	theirs := &Castle{Name: "Eastwatch", Point: 6, Owner: ComputerA, Cycle: 1}
	idle := &Castle{Name: "Stonegate", Point: 8, Owner: Human}
	gs := NewGameState([]*Castle{mine, theirs, idle})

	events := AdvanceCycles(gs, Human)

	require.Len(t, events, 1)
	assert.Equal(t, mine, events[0].Castle)
	assert.Equal(t, 1, theirs.Cycle, "another actor's cycle must not move")
	assert.Equal(t, 0, gs.Scores[ComputerA])
}
