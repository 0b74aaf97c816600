// Package registry maps game IDs to constructors so frontends (the terminal,
// the SSH server, the CLI listing) can build games they do not import.
// Every game is built from an already validated JumperConfig; games never
// read configuration files themselves.
package registry

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Game is the interface every playable game implements.
// Games contain pure logic with no Bubble Tea or Ebiten dependencies.
// Frontends handle input mapping, timing, and drawing.
type Game interface {
	// ID returns the identifier the game was registered under.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset reseeds the game from cfg and starts a new run.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current run status (score, game over).
	State() core.GameState
}

// Factory builds a game from a validated configuration.
type Factory func(cfg config.JumperConfig) Game

// GameInfo describes a registered game for listings.
type GameInfo struct {
	ID    string
	Title string
}

type entry struct {
	title string
	build Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game under id. It is meant for init() functions and panics
// on a duplicate id.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: title, build: f}
}

// List returns the registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for _, id := range slices.Sorted(maps.Keys(entries)) {
		infos = append(infos, GameInfo{ID: id, Title: entries[id].title})
	}
	return infos
}

// Create builds a new game instance for one run or session.
func Create(id string, cfg config.JumperConfig) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("registry: %s: %w", id, err)
	}
	return e.build(cfg), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
