package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	_ "github.com/vovakirdan/cubesnake/internal/games/cubesnake"
)

func sessionConfigHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestMenuListsVariants(t *testing.T) {
	store := openStore(t)
	store.SaveScore("cubesnake_mini", "ada", 12)

	m := NewMenuModel(store, testConfig())
	ids := make(map[string]int)
	for _, item := range m.items {
		ids[item.GameID] = item.Best
	}
	for _, id := range []string{"cubesnake", "cubesnake_mini", "cubesnake_large"} {
		if _, ok := ids[id]; !ok {
			t.Errorf("Menu is missing %s", id)
		}
	}
	if ids["cubesnake_mini"] != 12 {
		t.Errorf("Expected best 12 for the mini board, got %d", ids["cubesnake_mini"])
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("Cursor should stay at the top, got %d", m.cursor)
	}

	next, _ = m.Update(runeKey('j'))
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if cmd == nil || m.Selected() == nil {
		t.Fatal("Enter should select an item")
	}
	if m.Selected().GameID != m.items[1].GameID {
		t.Errorf("Selected %s, expected %s", m.Selected().GameID, m.items[1].GameID)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("Tab should open the scoreboard")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}
	if next.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestMenuView(t *testing.T) {
	cfg := testConfig()
	cfg.ScreenW = 100
	m := NewMenuModel(nil, cfg)
	view := m.View()
	if !strings.Contains(view, "Cube Snake") {
		t.Error("Menu should list the boards")
	}
	if !strings.Contains(view, "play") {
		t.Error("Menu should show key help")
	}
}

func TestScoreboard(t *testing.T) {
	store := openStore(t)
	store.SaveScore("cubesnake_mini", "ada", 12)
	store.SaveScore("cubesnake_mini", "bob", 30)

	m := NewScoreboardModel(store, 100, 30, "cubesnake_mini")
	if m.games[m.gameCursor].ID != "cubesnake_mini" {
		t.Fatalf("Opened on %s, expected cubesnake_mini", m.games[m.gameCursor].ID)
	}
	if len(m.scores) != 2 || m.scores[0].Player != "bob" {
		t.Errorf("Expected bob first of 2 scores, got %+v", m.scores)
	}
	if !strings.Contains(m.View(), "bob") {
		t.Error("View should list player names")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.games[m.gameCursor].ID == "cubesnake_mini" {
		t.Error("Tab should move to the next board")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("Esc should go back")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20, "")
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("Expected an unavailable message without a store")
	}
}

func TestSessionFlow(t *testing.T) {
	sessionConfigHome(t)
	store := openStore(t)

	cfg := testConfig()
	cfg.ScreenW, cfg.ScreenH = 120, 40
	var m tea.Model = NewSessionModel(store, cfg, "ada", log.New(io.Discard))

	// Menu -> game
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := m.(SessionModel)
	if s.gameModel == nil {
		t.Fatal("Enter should start a game")
	}
	if s.gameModel.player != "ada" {
		t.Errorf("Game player is %q, expected the SSH user", s.gameModel.player)
	}

	// Pause, then leave
	m, _ = m.Update(runeKey('p'))
	m, _ = m.Update(TickMsg(time.Now()))
	if !m.(SessionModel).gameModel.gameState.Paused {
		t.Fatal("Expected the game to be paused")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = m.(SessionModel)
	if s.gameModel != nil {
		t.Fatal("Esc while paused should return to the menu")
	}
	if !strings.Contains(s.View(), "Pick a board") {
		t.Error("Expected the menu view")
	}

	// Menu -> scoreboard -> menu
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.(SessionModel).scoreboard == nil {
		t.Fatal("Tab should open the scoreboard")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(SessionModel).scoreboard != nil {
		t.Fatal("Esc should close the scoreboard")
	}

	// Quit
	m, cmd := m.Update(runeKey('q'))
	if cmd == nil || m.View() != "" {
		t.Error("q should end the session")
	}
}
