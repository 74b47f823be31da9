package cubesnake

import (
	"time"

	"github.com/vovakirdan/cubesnake/internal/config"
	"github.com/vovakirdan/cubesnake/internal/core"
	"github.com/vovakirdan/cubesnake/internal/cube"
	"github.com/vovakirdan/cubesnake/internal/registry"
)

// Variant is one registered board size.
type Variant struct {
	ID       string
	Title    string
	GridSize int // 0 takes board.grid_size from the config
}

// Variants lists the registered board sizes.
var Variants = []Variant{
	{ID: "cubesnake", Title: "Cube Snake", GridSize: 0},
	{ID: "cubesnake_mini", Title: "Cube Snake (Mini 6x6)", GridSize: 6},
	{ID: "cubesnake_large", Title: "Cube Snake (Large 16x16)", GridSize: 16},
}

// configPath is the custom config file used by every variant.
var configPath string

// SetConfigPath sets a custom config file. Empty uses the default search order.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return NewVariant(v)
		})
	}
}

// Game adapts State to the platform: input to directions, frame pacing,
// difficulty and rendering.
type Game struct {
	variant Variant
	cfg     config.CubeSnakeConfig
	diff    *config.DifficultyManager
	state   *State
	pacer   *core.Pacer
	frame   time.Duration // Elapsed time per Step
	tick    uint64        // Steps since Reset
	moves   uint64        // State updates since the last (re)start
	paused  bool
	err     error

	screenW int
	screenH int
}

// NewGame creates the default cube snake game.
func NewGame() *Game {
	return NewVariant(Variants[0])
}

// NewVariant creates a game for the given board variant.
func NewVariant(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset loads the configuration and starts a new game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadCubeSnake(configPath)
	if err != nil {
		cfg = config.DefaultCubeSnakeConfig()
	}
	if rc.Difficulty != "" {
		if preset, err := config.ParsePreset(rc.Difficulty); err == nil {
			config.ApplyPreset(&cfg, preset)
		}
	}
	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	grid := g.variant.GridSize
	if grid == 0 {
		grid = cfg.Board.GridSize
	}

	highScore := rc.HighScore
	if g.state != nil {
		highScore = max(highScore, g.state.HighScore())
	}

	g.state, g.err = New(grid,
		WithSeed(rc.Seed),
		WithHighScore(highScore),
		WithScoring(cfg.Scoring.FoodPoints, cfg.Scoring.PrizePoints, cfg.Scoring.PrizeEvery),
		WithSpawnRetries(cfg.Spawn.Retries),
	)

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(tickRate)
	g.tick = 0
	g.moves = 0
	g.paused = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.pacer = core.NewPacer(g.interval())
}

// interval returns the move interval for the current score.
func (g *Game) interval() time.Duration {
	base := time.Duration(g.cfg.Timing.BaseIntervalMs) * time.Millisecond
	floor := time.Duration(g.cfg.Timing.MinIntervalMs) * time.Millisecond
	score := 0
	if g.state != nil {
		score = g.state.Score()
	}
	return g.diff.Interval(base, floor, score, int(g.tick))
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == nil {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	// Handle restart
	if in.Has(core.ActionRestart) && g.state.GameOver() {
		g.state = g.state.Restart()
		g.tick = 0
		g.moves = 0
		g.paused = false
		g.pacer = core.NewPacer(g.interval())
		return core.StepResult{State: g.State()}
	}

	if g.state.GameOver() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.processInput(in)

	if !g.pacer.Advance(g.frame) {
		return core.StepResult{State: g.State()}
	}

	ev := g.state.Update()
	g.moves++
	g.pacer.SetInterval(g.interval())

	return core.StepResult{
		State:  g.State(),
		Events: g.events(ev),
	}
}

// processInput buffers a direction change. Arrow keys map directly onto
// the local frame of the face the head is on.
func (g *Game) processInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.state.SetDirection(cube.DirUp)
	case in.Has(core.ActionDown):
		g.state.SetDirection(cube.DirDown)
	case in.Has(core.ActionLeft):
		g.state.SetDirection(cube.DirLeft)
	case in.Has(core.ActionRight):
		g.state.SetDirection(cube.DirRight)
	}
}

// events translates a state event for the platform.
func (g *Game) events(ev Event) []core.Event {
	var out []core.Event
	switch ev {
	case EventEat:
		out = append(out, core.EventEat)
	case EventEatPrize:
		out = append(out, core.EventPrize)
	case EventGameOver:
		out = append(out, core.EventGameOver)
	}
	if ev != EventGameOver && g.state.Won() {
		out = append(out, core.EventCleared)
	}
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: g.state.GameOver(),
		Paused:   g.paused,
	}
}

// Board exposes the underlying state machine.
func (g *Game) Board() *State {
	return g.state
}
