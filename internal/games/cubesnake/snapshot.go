package cubesnake

import (
	"time"

	"github.com/vovakirdan/cubesnake/internal/cube"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateWon      GameStateType = "won"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Moves     uint64
	GridSize  int
	Score     int
	HighScore int
	Eaten     int
	SnakeLen  int
	Head      cube.Position
	Dir       cube.Direction
	Food      cube.Position
	HasFood   bool
	Prize     bool
	Interval  time.Duration
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{State: StateGameOver}
	}
	s := g.state

	state := StatePlaying
	switch {
	case s.Won():
		state = StateWon
	case s.GameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:      g.tick,
		Moves:     g.moves,
		GridSize:  s.GridSize(),
		Score:     s.Score(),
		HighScore: s.HighScore(),
		Eaten:     s.Eaten(),
		SnakeLen:  s.Len(),
		Head:      s.Head(),
		Dir:       s.Direction(),
		Food:      s.Food(),
		HasFood:   s.HasFood(),
		Prize:     s.IsPrize(),
		Interval:  g.pacer.Interval(),
		State:     state,
	}
}

// LogFields returns the snapshot as key/value pairs for a structured logger.
func (s Snapshot) LogFields() []any {
	return []any{
		"state", s.State,
		"score", s.Score,
		"length", s.SnakeLen,
		"eaten", s.Eaten,
		"moves", s.Moves,
		"head", s.Head.String(),
		"interval", s.Interval,
	}
}

// LogFields describes the current game for the platform's logs.
func (g *Game) LogFields() []any {
	return g.Snapshot().LogFields()
}
