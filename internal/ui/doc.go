// Package ui contains the Bubble Tea program that presents the game.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse events, window resizes).
//   - Handlers translate raw input into session actions. Key bindings live in
//     keys.go; board navigation and mouse translation live in navigation.go;
//     menu keys and filter editing live in input.go.
//   - The session applies each action synchronously. When it reaches the
//     exiting state, finishUpdate returns tea.Quit.
//
// State ownership:
//   - The session.Session owns the main menu, the active board controller and
//     the top-level state. The model never mutates the board directly apart
//     from the selection and pointer, which are presentation state.
//   - The filtered view of the main menu lives in internal/ui/state.Level.
//
// Rendering reads the board cell by cell and draws each cell three columns
// wide starting at row boardTop, so mouse coordinates map back onto cells
// through game.Controller.Locate.
package ui
