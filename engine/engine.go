package engine

import (
	"time"

	"conquest/game"
)

// IO is the presentation port the engine drives. Display emits one line,
// Prompt emits a prompt and blocks for a line of input (the engine trims
// surrounding whitespace), Pause blocks for roughly the given duration
// and exists purely for pacing.
type IO interface {
	Display(message string)
	Prompt(message string) string
	Pause(d time.Duration)
}

// DefaultTargetScore is the score an actor must reach to win.
const DefaultTargetScore = 10

// Engine runs the full game against a presentation port: setup, the
// three-actor rounds, victory handling, and resets. It owns the game
// state exclusively; nothing mutates it outside the engine's loop.
type Engine struct {
	io       IO
	resolver *game.Resolver
	factory  func() []*game.Castle
	target   int
	pace     time.Duration
	state    *game.GameState
}

type Option func(*Engine)

// WithTargetScore overrides the winning score.
func WithTargetScore(target int) Option {
	return func(e *Engine) {
		e.target = target
	}
}

// WithPace overrides the pacing delay applied after key display events.
// Tests pass zero.
func WithPace(pace time.Duration) Option {
	return func(e *Engine) {
		e.pace = pace
	}
}

// New builds an engine around a presentation port, a resolver, and a
// castle factory consumed once per setup or reset.
func New(io IO, resolver *game.Resolver, factory func() []*game.Castle, options ...Option) *Engine {
	if io == nil || resolver == nil || factory == nil {
		panic("engine needs io, a resolver, and a castle factory")
	}
	e := &Engine{
		io:       io,
		resolver: resolver,
		factory:  factory,
		target:   DefaultTargetScore,
		pace:     time.Second,
	}
	for _, option := range options {
		option(e)
	}
	return e
}
