package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/sweeper/internal/game"
	"github.com/atomicstack/sweeper/internal/logging"
	"github.com/atomicstack/sweeper/internal/session"
	"github.com/atomicstack/sweeper/internal/theme"
	uistate "github.com/atomicstack/sweeper/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

const mainMenuID = "main"

// Screen geometry shared by the renderer and the mouse translation.
const (
	menuTop    = 2
	boardTop   = 2
	boardLeft  = 0
	cellWidth  = 3
	cellHeight = 1
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the presentation layer.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Mouse      bool
}

// Model implements the Bubble Tea model for the game.
type Model struct {
	session     *session.Session
	menu        *level
	gameID      string
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	mouse       bool
	quitting    bool

	keys keyMap
	help help.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps a session. A nil session starts a default one.
func NewModel(sess *session.Session, opts Options) *Model {
	if sess == nil {
		sess = session.New(nil)
	}
	m := &Model{
		session:    sess,
		menu:       uistate.NewLevel(mainMenuID, sess.Menu().Title(), sess.Menu().Items()),
		showFooter: opts.ShowFooter,
		mouse:      opts.Mouse,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.syncGame()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		cmd = handler(msg)
	}
	return m, m.finishUpdate(cmd)
}

// Session exposes the underlying state machine.
func (m *Model) Session() *session.Session { return m.session }

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmd tea.Cmd) tea.Cmd {
	if m.session.State() == session.StateExiting && !m.quitting {
		m.quitting = true
		return tea.Quit
	}
	return cmd
}

// dispatch forwards an action to the session. Errors are shown on the status
// line and leave the session untouched.
func (m *Model) dispatch(a session.Action) tea.Cmd {
	m.errMsg = ""
	if _, err := m.session.Dispatch(a); err != nil {
		m.errMsg = err.Error()
		logging.Error(err)
		return nil
	}
	m.syncGame()
	return nil
}

// syncGame puts the selection in the middle of a freshly started board.
func (m *Model) syncGame() {
	id := m.session.GameID()
	if id == m.gameID {
		return
	}
	m.gameID = id
	m.forceClearInfo()
	c := m.session.Controller()
	if c == nil {
		return
	}
	mid := c.Board().Size() / 2
	_ = c.Select(mid, mid)
}

func (m *Model) controller() *game.Controller {
	if m.session.State() != session.StateBoard {
		return nil
	}
	return m.session.Controller()
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}
