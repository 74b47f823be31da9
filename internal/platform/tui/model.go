package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cubesnake/internal/core"
	"github.com/vovakirdan/cubesnake/internal/random"
	"github.com/vovakirdan/cubesnake/internal/registry"
	"github.com/vovakirdan/cubesnake/internal/storage"
)

// flashFrames is how long an event message stays on screen, in frames.
const flashFrames = 45

// fieldLogger is implemented by games that can describe themselves in logs.
type fieldLogger interface {
	LogFields() []any
}

// GameModel runs one game: it maps keys to actions, steps the game each
// frame, saves the score on game over and draws the screen.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	flash      string
	flashColor core.Color
	flashLeft  int
	canGoBack  bool // Esc/B returns to the menu when paused or over
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// GameOptions configures a GameModel.
type GameOptions struct {
	// Player is stored with each score. Empty saves as anonymous.
	Player string

	// Logger receives score-saving failures. Nil discards them.
	Logger *log.Logger

	// CanGoBack enables Esc/B to leave the game for the menu.
	CanGoBack bool
}

// NewGameModel creates a model for game. The stored high score for the
// game is loaded into cfg.HighScore.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = random.Seed()
	}
	if store != nil {
		if best, err := store.HighScore(game.ID()); err == nil {
			cfg.HighScore = max(cfg.HighScore, best)
		} else if opts.Logger != nil {
			opts.Logger.Warn("could not load high score", "game", game.ID(), "error", err)
		}
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     opts.Logger,
		player:     opts.Player,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		canGoBack:  opts.CanGoBack,
	}
}

// Init resets the game and starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board is laid out at draw time, so a resize keeps the game.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.canGoBack && m.inputFrame.Has(core.ActionBack) &&
		(m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick steps the game by one frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
	}

	m.tickFlash(result)

	if m.gameState.GameOver && !m.scoreSaved {
		m.logGameOver()
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// tickFlash counts down the current message and picks up a new one from
// the step's events.
func (m *GameModel) tickFlash(result core.StepResult) {
	if m.flashLeft > 0 {
		m.flashLeft--
	}

	switch {
	case result.Has(core.EventCleared):
		m.setFlash("Every cell filled!", core.ColorBrightYellow)
	case result.Has(core.EventPrize):
		m.setFlash("Prize!", core.ColorBrightMagenta)
	case result.Has(core.EventEat):
		m.setFlash("Yum", core.ColorBrightGreen)
	case result.Has(core.EventGameOver):
		m.flashLeft = 0
	}
}

func (m *GameModel) setFlash(text string, c core.Color) {
	m.flash = text
	m.flashColor = c
	m.flashLeft = flashFrames
}

func (m *GameModel) logGameOver() {
	if m.logger == nil {
		return
	}
	fields := []any{"game", m.game.ID()}
	if fl, ok := m.game.(fieldLogger); ok {
		fields = append(fields, fl.LogFields()...)
	} else {
		fields = append(fields, "score", m.gameState.Score)
	}
	m.logger.Info("game over", fields...)
}

// saveScore stores a finished game's score. Failures are logged and the
// game carries on.
func (m *GameModel) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.player, m.gameState.Score); err != nil {
		if m.logger != nil {
			m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		}
		return
	}
	if m.logger != nil {
		m.logger.Info("score saved", "game", m.game.ID(), "player", storage.NormalizePlayer(m.player), "score", m.gameState.Score)
	}
}

// saveScreenshot writes the current screen as text under
// ~/.cubesnake/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".cubesnake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.flashLeft > 0 && m.screen.Height() > 0 {
		m.screen.DrawTextCenteredColored(m.screen.Height()-1, m.flash, m.flashColor)
	}
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the user asked to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the local terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) error {
	p := tea.NewProgram(
		NewGameModel(game, store, cfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
