package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Success               *lipgloss.Style
	Header                *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style

	CellHidden   *lipgloss.Style
	CellFlagged  *lipgloss.Style
	CellRevealed *lipgloss.Style
	CellMine     *lipgloss.Style
	CellExploded *lipgloss.Style
	CellWrong    *lipgloss.Style
	CellSelected *lipgloss.Style
	// Numbers is indexed by adjacent mine count; index 0 is unused.
	Numbers [9]*lipgloss.Style
}

var defaultStyles = Styles{
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	CellHidden: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236")),
	),
	CellFlagged: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Background(lipgloss.Color("236")).Bold(true),
	),
	CellRevealed: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	CellMine: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	CellExploded: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")).Bold(true),
	),
	CellWrong: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Strikethrough(true),
	),
	CellSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	Numbers: [9]*lipgloss.Style{
		nil,
		ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("33"))),
		ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("34"))),
		ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("196"))),
		ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("19"))),
		ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("124"))),
		ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("37"))),
		ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255"))),
		ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("244"))),
	},
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Number returns the style for a revealed cell with n adjacent mines.
func (s *Styles) Number(n int) *lipgloss.Style {
	if n < 1 || n >= len(s.Numbers) {
		return s.CellRevealed
	}
	return s.Numbers[n]
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
