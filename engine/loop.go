package engine

import (
	"fmt"
	"strings"

	"conquest/game"

	"github.com/rs/zerolog/log"
)

// turnOutcome is what a human turn hands back to the round loop.
type turnOutcome int

const (
	turnContinue turnOutcome = iota
	turnReset
)

// Run drives the whole game: setup, repeated rounds, and resets. It
// returns once a victory completes a game.
func (e *Engine) Run() {
	for {
		e.state = game.NewGameState(e.factory())
		e.setup()
		log.Info().Str("player", e.state.PlayerName).Int("target", e.target).Msg("game started")
		if e.play() == turnReset {
			log.Info().Msg("reset requested, starting over")
			continue
		}
		return
	}
}

// setup blocks on the readiness token, then captures the player's name.
func (e *Engine) setup() {
	for {
		ready := strings.ToLower(strings.TrimSpace(e.io.Prompt("Ready? (type 'start') ")))
		if ready == "start" {
			break
		}
	}
	e.state.PlayerName = strings.TrimSpace(e.io.Prompt("What is your name? "))
}

// play runs rounds until a victory or a reset. Each actor's slot is turn,
// then cycle processing, then the victory check; a reset abandons the
// round immediately, with no cycle processing and no further actors.
func (e *Engine) play() turnOutcome {
	for {
		if e.checkVictory() {
			return turnContinue
		}
		if e.humanTurn() == turnReset {
			return turnReset
		}
		e.processCycles(game.Human)
		if e.checkVictory() {
			return turnContinue
		}

		e.computerTurn(game.ComputerA)
		e.processCycles(game.ComputerA)
		if e.checkVictory() {
			return turnContinue
		}

		e.computerTurn(game.ComputerB)
		e.processCycles(game.ComputerB)
		if e.checkVictory() {
			return turnContinue
		}
	}
}

// humanTurn shows the scoreboard and board, then prompts until a valid
// token arrives. "reset" and "skip" are meta-actions; anything else must
// name a castle the player can act on, or the prompt repeats without
// consuming the turn.
func (e *Engine) humanTurn() turnOutcome {
	e.io.Pause(e.pace)
	name := e.state.NameOf(game.Human)
	e.io.Display(fmt.Sprintf("\n%s, choose a castle to claim or develop.", name))
	e.io.Display(fmt.Sprintf("CPU points: %d", e.state.Scores[game.ComputerA]))
	e.io.Display(fmt.Sprintf("CPU2 points: %d", e.state.Scores[game.ComputerB]))
	e.io.Display(fmt.Sprintf("%s points: %d", name, e.state.Scores[game.Human]))
	e.printBoard()

	for {
		input := strings.TrimSpace(e.io.Prompt("Which castle? ('reset' restarts the game, 'skip' passes) "))

		switch input {
		case "reset":
			e.io.Display("\nResetting the game...")
			e.io.Pause(e.pace)
			return turnReset
		case "skip":
			e.io.Display(fmt.Sprintf("\n%s passes this turn.", name))
			e.io.Pause(e.pace)
			return turnContinue
		}

		target := e.state.CastleByName(input)
		if target == nil {
			e.io.Display(fmt.Sprintf("%s cannot be claimed or developed. Choose again.", input))
			continue
		}

		out, err := e.resolver.Resolve(e.state, game.Human, target)
		if err != nil {
			e.io.Display(fmt.Sprintf("'%s' cannot be targeted right now. Choose again.", target.Name))
			continue
		}
		e.narrate(out)
		e.io.Pause(e.pace)
		break
	}
	e.io.Pause(e.pace)
	return turnContinue
}

// computerTurn takes one automated turn. An actor with nothing eligible
// simply passes.
func (e *Engine) computerTurn(actor game.Actor) {
	out, ok := e.resolver.AutomatedTurn(e.state, actor, game.Categories(actor))
	if !ok {
		log.Debug().Stringer("actor", actor).Msg("no eligible action, passing")
		e.io.Pause(e.pace)
		return
	}
	log.Debug().
		Stringer("actor", actor).
		Stringer("action", out.Action).
		Str("target", out.Target.Name).
		Bool("success", out.Success).
		Msg("automated action resolved")
	e.narrate(out)
	e.io.Pause(e.pace)
}

// processCycles advances development for the actor's holdings and
// narrates progress, completions, and the running score.
func (e *Engine) processCycles(actor game.Actor) {
	name := e.state.NameOf(actor)
	for _, ev := range game.AdvanceCycles(e.state, actor) {
		e.io.Display(fmt.Sprintf("%s's development at '%s' advanced.", name, ev.Castle.Name))
		e.io.Pause(e.pace)
		if ev.Completed {
			e.io.Display(fmt.Sprintf("'%s' finished development for %s.", ev.Castle.Name, name))
			e.io.Pause(e.pace)
			e.io.Display(fmt.Sprintf("%s now has %d points!", name, ev.Total))
			e.io.Pause(e.pace)
		}
	}
}

// checkVictory fires the victory sweep for the first actor at or past
// the target score. Reports whether the game ended.
func (e *Engine) checkVictory() bool {
	winner, ok := game.Winner(e.state, e.target)
	if !ok {
		return false
	}
	name := e.state.NameOf(winner)
	log.Info().Stringer("winner", winner).Int("score", e.state.Scores[winner]).Msg("game over")
	e.io.Display(fmt.Sprintf("\n%s wins!", name))
	e.io.Display(fmt.Sprintf("\n%s moves to seize every remaining castle.", name))
	e.io.Pause(e.pace)

	taken, restarted := game.HandleVictory(e.state, winner)
	for _, t := range taken {
		e.io.Display(fmt.Sprintf("'%s' taken from %s!", t.Castle.Name, e.state.NameOf(t.PrevOwner)))
		e.io.Pause(e.pace)
	}
	for _, c := range restarted {
		e.io.Display(fmt.Sprintf("%s started development at '%s'.", name, c.Name))
		e.io.Pause(e.pace)
	}
	e.printBoard()
	return true
}

// narrate turns a resolved action into its attempt and result lines.
func (e *Engine) narrate(out game.Outcome) {
	actor := e.state.NameOf(out.Actor)
	target := out.Target.Name
	switch out.Action {
	case game.DevelopAction:
		e.io.Display(fmt.Sprintf("\n%s is trying to develop '%s'...", actor, target))
		e.io.Pause(e.pace)
		if out.Success {
			e.io.Display(fmt.Sprintf("%s started development at '%s'.", actor, target))
		} else {
			e.io.Display(fmt.Sprintf("%s failed to develop '%s'.", actor, target))
		}
	case game.ClaimAction:
		e.io.Display(fmt.Sprintf("\n%s makes a move on '%s'!", actor, target))
		e.io.Pause(e.pace)
		if out.Success {
			e.io.Display(fmt.Sprintf("%s claimed '%s'.", actor, target))
		} else {
			e.io.Display(fmt.Sprintf("%s failed to claim '%s'.", actor, target))
		}
	case game.PoachAction:
		prev := e.state.NameOf(out.PrevOwner)
		e.io.Display(fmt.Sprintf("\n%s is trying to poach '%s' from %s...", actor, target, prev))
		e.io.Pause(e.pace)
		if out.Success {
			e.io.Display(fmt.Sprintf("%s poached '%s' from %s.", actor, target, prev))
		} else {
			e.io.Display(fmt.Sprintf("%s failed to poach '%s'.", actor, target))
		}
	}
}

// printBoard lists every castle with its stats, holder, and development
// progress.
func (e *Engine) printBoard() {
	e.io.Display("\nCurrent castle holdings:")
	for _, c := range e.state.Castles {
		marker := ""
		if c.Developing() {
			marker = fmt.Sprintf(" developing(%d)", c.Cycle)
		}
		e.io.Display(fmt.Sprintf("- %s: %d points, defense %d (%s%s)",
			c.Name, c.Point, c.Defense, e.state.NameOf(c.Owner), marker))
	}
}
