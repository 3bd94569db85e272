package state

import (
	"testing"

	"github.com/atomicstack/sweeper/internal/menu"
)

func newTestLevel(labels ...string) *Level {
	items := make([]menu.Item, len(labels))
	for i, label := range labels {
		items[i] = menu.Item{Index: i, ID: label, Label: label}
	}
	return NewLevel("test", "Test", items)
}

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	level := newTestLevel("one", "two", "three")
	level.Cursor = 2
	level.SetFilter("two")

	if level.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", level.Filter)
	}
	if level.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", level.Cursor)
	}
	if len(level.Items) != 1 || level.Items[0].ID != "two" {
		t.Fatalf("expected filtered items to contain only 'two', got %#v", level.Items)
	}

	level.SetFilter("")
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
	if level.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", level.LastCursor)
	}
}

func TestAppendAndDeleteFilterText(t *testing.T) {
	level := newTestLevel("alpha", "beta")

	if !level.AppendFilter("be") {
		t.Fatal("expected append to succeed")
	}
	if level.Filter != "be" || len(level.Items) != 1 {
		t.Fatalf("unexpected filter state %q/%d", level.Filter, len(level.Items))
	}
	if level.AppendFilter("") {
		t.Fatal("expected empty append to be ignored")
	}
	if !level.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if level.Filter != "b" {
		t.Fatalf("expected 'b', got %q", level.Filter)
	}
	if !level.ClearFilter() {
		t.Fatal("expected clear to succeed")
	}
	if level.ClearFilter() || level.DeleteFilterRuneBackward() {
		t.Fatal("expected no-ops on empty filter")
	}
	if len(level.Items) != 2 {
		t.Fatalf("expected all items after clear, got %d", len(level.Items))
	}
}

func TestFilterItemsMatchesMenuLabels(t *testing.T) {
	items := menu.NewMainMenu().Items()

	got := FilterItems(items, "ng")
	if len(got) != 1 || got[0].ID != "start" {
		t.Fatalf("expected fuzzy match on 'New game', got %#v", got)
	}
	got = FilterItems(items, "QUIT")
	if len(got) != 1 || got[0].ID != "quit" {
		t.Fatalf("expected case-insensitive match on 'Quit', got %#v", got)
	}
	if got = FilterItems(items, "zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %#v", got)
	}
	if got = FilterItems(items, "  "); len(got) != len(items) {
		t.Fatalf("expected blank query to keep every item, got %d", len(got))
	}
}

func TestBestMatchIndexPrefersExactThenPrefix(t *testing.T) {
	items := []menu.Item{
		{ID: "quickstart", Label: "Quick start"},
		{ID: "quit", Label: "Quit"},
	}
	if idx := BestMatchIndex(items, "quit"); idx != 1 {
		t.Fatalf("expected exact match at 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "qui"); idx != 0 {
		t.Fatalf("expected first prefix match at 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "qui"); idx != -1 {
		t.Fatalf("expected -1 for empty items, got %d", idx)
	}
}

func TestEmptyFilterResultParksCursor(t *testing.T) {
	level := newTestLevel("one", "two")
	level.Cursor = 1
	level.SetFilter("xyz")
	if len(level.Items) != 0 || level.Cursor != 0 {
		t.Fatalf("expected empty view with cursor 0, got %d items cursor %d", len(level.Items), level.Cursor)
	}
	if _, ok := level.Current(); ok {
		t.Fatal("expected no current item")
	}
	level.SetFilter("")
	if level.Cursor != 1 {
		t.Fatalf("expected cursor restored to 1, got %d", level.Cursor)
	}
}
