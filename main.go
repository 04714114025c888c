package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"conquest/config"
	"conquest/engine"
	"conquest/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// consoleIO implements the engine's presentation port on stdin/stdout.
type consoleIO struct {
	in *bufio.Scanner
}

func newConsoleIO() *consoleIO {
	return &consoleIO{in: bufio.NewScanner(os.Stdin)}
}

func (c *consoleIO) Display(message string) {
	fmt.Println(message)
}

func (c *consoleIO) Prompt(message string) string {
	fmt.Print(message)
	if !c.in.Scan() {
		return ""
	}
	return c.in.Text()
}

func (c *consoleIO) Pause(d time.Duration) {
	time.Sleep(d)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	setupLogging(cfg.LogLevel)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Uint64("seed", seed).Msg("seeding rng")
	rng := rand.New(rand.NewSource(seed))

	e := engine.New(newConsoleIO(), game.NewResolver(rng), game.InitialCastles,
		engine.WithTargetScore(cfg.TargetScore),
		engine.WithPace(cfg.Pace))
	e.Run()
}

// setupLogging configures the global zerolog logger. Logs go to stderr
// so the game's narration on stdout stays clean.
func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}
