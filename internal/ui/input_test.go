package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/sweeper/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

func TestTypingFiltersMenu(t *testing.T) {
	h := newTestHarness(t, Options{}, 3)
	h.Type("qu")
	view := plainView(h)
	if strings.Contains(view, "New game") || !strings.Contains(view, "Quit") {
		t.Fatalf("expected only Quit to match, got:\n%s", view)
	}
	h.Key(tea.KeyEnter)
	if !h.Quit() {
		t.Fatalf("expected filtered enter to activate Quit")
	}
}

func TestFilterWithoutMatches(t *testing.T) {
	h := newTestHarness(t, Options{}, 3)
	h.Type("zz")
	if view := plainView(h); !strings.Contains(view, `No matches for "zz"`) {
		t.Fatalf("expected no-match message, got:\n%s", view)
	}
	h.Key(tea.KeyEnter)
	if h.Model().Session().State() != session.StateMainMenu {
		t.Fatalf("expected enter with no matches to do nothing")
	}
	if view := plainView(h); !strings.Contains(view, "Nothing matches the filter") {
		t.Fatalf("expected info message, got:\n%s", view)
	}

	h.Key(tea.KeyBackspace)
	if h.Model().menu.Filter != "z" {
		t.Fatalf("expected backspace to drop one rune, got %q", h.Model().menu.Filter)
	}
	h.Key(tea.KeyCtrlU)
	view := plainView(h)
	if !strings.Contains(view, "New game") || !strings.Contains(view, "Quit") {
		t.Fatalf("expected both buttons after clearing, got:\n%s", view)
	}
}

func TestMenuCursorMovement(t *testing.T) {
	h := newTestHarness(t, Options{}, 3)
	m := h.Model()
	h.Key(tea.KeyUp)
	if m.menu.Cursor != 1 {
		t.Fatalf("expected wrap to last button, got %d", m.menu.Cursor)
	}
	h.Key(tea.KeyHome)
	if m.menu.Cursor != 0 {
		t.Fatalf("expected home to select first button, got %d", m.menu.Cursor)
	}
	h.Key(tea.KeyEnd)
	if m.menu.Cursor != 1 {
		t.Fatalf("expected end to select last button, got %d", m.menu.Cursor)
	}
}

func TestStartClearsFilter(t *testing.T) {
	h := newTestHarness(t, Options{}, 3)
	h.Type("new")
	h.Key(tea.KeyEnter)
	if h.Model().Session().State() != session.StateBoard {
		t.Fatalf("expected filtered start to begin a game")
	}
	if h.Model().menu.Filter != "" {
		t.Fatalf("expected filter cleared after starting, got %q", h.Model().menu.Filter)
	}
}
