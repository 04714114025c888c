package game

import (
	"testing"
)

func TestInitialCastles(t *testing.T) {
	castles := InitialCastles()
	if len(castles) == 0 {
		t.Fatal("expected a non-empty board")
	}

	seen := map[string]bool{}
	for _, c := range castles {
		if c.Owner != ActorNone {
			t.Errorf("%s should start unclaimed, got owner %v", c.Name, c.Owner)
		}
		if c.Cycle != 0 {
			t.Errorf("%s should start idle, got cycle %d", c.Name, c.Cycle)
		}
		if c.Point <= 0 {
			t.Errorf("%s should have a positive point value, got %d", c.Name, c.Point)
		}
		if seen[c.Name] {
			t.Errorf("duplicate castle name %q", c.Name)
		}
		seen[c.Name] = true
	}

	// The factory must be order-stable across calls.
	again := InitialCastles()
	for i := range castles {
		if castles[i].Name != again[i].Name {
			t.Errorf("castle order changed between calls: %s vs %s", castles[i].Name, again[i].Name)
		}
	}
}

func TestNewGameStateEmptyBoard(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an empty board")
		}
	}()
	NewGameState(nil)
}

func TestNewGameStateFresh(t *testing.T) {
	gs := NewGameState(InitialCastles())
	for _, a := range TurnOrder {
		if gs.Scores[a] != 0 {
			t.Errorf("expected zero score for %v, got %d", a, gs.Scores[a])
		}
	}
}

func TestCastleByName(t *testing.T) {
	gs := NewGameState(InitialCastles())

	if c := gs.CastleByName("Riverhold"); c == nil || c.Name != "Riverhold" {
		t.Errorf("expected to find Riverhold, got %v", c)
	}
	if c := gs.CastleByName("Atlantis"); c != nil {
		t.Errorf("expected nil for an unknown name, got %v", c)
	}
	// Matching is exact, not case-insensitive.
	if c := gs.CastleByName("riverhold"); c != nil {
		t.Errorf("expected exact-match lookup, got %v", c)
	}
}

func TestOwnedBy(t *testing.T) {
	gs := NewGameState(InitialCastles())
	gs.Castles[0].Owner = Human
	gs.Castles[2].Owner = Human
	gs.Castles[3].Owner = ComputerA

	owned := gs.OwnedBy(Human)
	if len(owned) != 2 {
		t.Fatalf("expected 2 castles, got %d", len(owned))
	}
	if owned[0] != gs.Castles[0] || owned[1] != gs.Castles[2] {
		t.Error("expected holdings in board order")
	}
}

func TestNameOf(t *testing.T) {
	gs := NewGameState(InitialCastles())

	if got := gs.NameOf(Human); got != "Player" {
		t.Errorf("expected fallback name before setup, got %q", got)
	}
	gs.PlayerName = "Alice"
	if got := gs.NameOf(Human); got != "Alice" {
		t.Errorf("expected the player's name, got %q", got)
	}
	if got := gs.NameOf(ComputerA); got != "CPU" {
		t.Errorf("expected CPU, got %q", got)
	}
	if got := gs.NameOf(ComputerB); got != "CPU2" {
		t.Errorf("expected CPU2, got %q", got)
	}
	if got := gs.NameOf(ActorNone); got != "Unclaimed" {
		t.Errorf("expected Unclaimed, got %q", got)
	}
}
