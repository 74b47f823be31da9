// Package registry maps game IDs to factories. Board variants register
// themselves from init(), so the CLI, the TUI and the leaderboard can look
// them up without importing each one by name.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/cubesnake/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the platform drives. Implementations hold pure logic: the
// platform maps keys to actions, paces Step calls and draws the screen.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// score store (e.g. "cubesnake_mini").
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh game with the given runtime settings.
	Reset(cfg core.RuntimeConfig)

	// Step advances one frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the score and the game-over and paused flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(factories))
	for id := range factories {
		out = append(out, GameInfo{ID: id, Title: titles[id]})
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display name for id, or id itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
