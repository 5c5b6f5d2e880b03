package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/specialistvlad/gridsheet/internal/cellid"
	"github.com/specialistvlad/gridsheet/internal/ctxlog"
	"github.com/specialistvlad/gridsheet/internal/eval"
	"github.com/specialistvlad/gridsheet/internal/render"
	"github.com/specialistvlad/gridsheet/internal/session"
	"github.com/specialistvlad/gridsheet/internal/viewport"
)

// wheelLines is how far one mouse wheel step scrolls.
const wheelLines = 3

// barPrefixWidth leaves room for the address label in front of the formula
// bar.
const barPrefixWidth = 30

type focus int

const (
	focusGrid focus = iota
	focusBar
)

// resizeMsg carries a debounced terminal size. Only the latest one applies.
type resizeMsg struct {
	seq           int
	width, height int
}

// Options configures a Model.
type Options struct {
	Styles render.Styles
	// ResizeDebounce is how long resize events settle before the viewport
	// is recomputed. Zero applies every resize at once.
	ResizeDebounce time.Duration
}

// Model is the bubbletea model of an interactive sheet.
type Model struct {
	ctx      context.Context
	sess     *session.Session
	vp       *viewport.Viewport
	frame    *eval.Frame
	styles   render.Styles
	bar      textinput.Model
	editor   textinput.Model
	focus    focus
	width    int
	height   int
	sized    bool
	seq      int
	debounce time.Duration
	err      error
}

// New builds a model over sess, drawing through vp.
func New(ctx context.Context, sess *session.Session, vp *viewport.Viewport, opts Options) Model {
	bar := textinput.New()
	bar.Prompt = ""
	bar.Placeholder = "select a cell"

	editor := textinput.New()
	editor.Prompt = ""
	editor.Width = max(1, vp.CellWidth-1)

	m := Model{
		ctx:      ctx,
		sess:     sess,
		vp:       vp,
		frame:    sess.Evaluator().NewFrame(),
		styles:   opts.Styles,
		bar:      bar,
		editor:   editor,
		debounce: opts.ResizeDebounce,
	}
	m.sync()
	return m
}

// Session returns the model's session.
func (m Model) Session() *session.Session { return m.sess }

// Viewport returns the model's viewport.
func (m Model) Viewport() *viewport.Viewport { return m.vp }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.onWindowSize(msg)
	case resizeMsg:
		if msg.seq == m.seq {
			m.resize(msg.width, msg.height)
		}
		return m, nil
	case tea.MouseMsg:
		return m.onMouse(msg)
	case tea.KeyMsg:
		return m.onKey(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.sized {
		return ""
	}
	opts := render.Options{
		Styles: m.styles,
		Frame:  m.frame,
		Status: m.status(),
	}
	if m.focus == focusBar {
		opts.FormulaBar = m.bar.View()
	} else if m.sess.State() == session.StateEditing {
		opts.Editor = m.editor.View()
	}
	return render.Frame(m.ctx, m.sess, m.vp, opts)
}

func (m Model) status() string {
	if m.err != nil {
		return m.styles.Error.Render(m.err.Error())
	}
	if m.focus == focusBar {
		return "formula bar · enter/tab confirm · esc back"
	}
	return "arrows move · enter edit · ctrl+f formula bar · ctrl+q quit"
}

// onWindowSize applies the first size at once and debounces the rest.
func (m Model) onWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if !m.sized || m.debounce <= 0 {
		m.resize(msg.Width, msg.Height)
		return m, nil
	}
	m.seq++
	seq := m.seq
	return m, tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return resizeMsg{seq: seq, width: msg.Width, height: msg.Height}
	})
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.sized = true
	gutter := render.RowHeaderWidth(m.vp.Rows)
	m.vp.Resize(width-gutter, height-render.ChromeLines)
	m.bar.Width = max(1, width-barPrefixWidth)
	m.reveal()

	ctxlog.FromContext(m.ctx).Debug("Viewport resized.",
		"width", m.vp.Width,
		"height", m.vp.Height,
		"window", m.vp.Window(),
	)
}

// gridOrigin is where the first body cell is drawn on screen.
func (m Model) gridOrigin() (x, y int) {
	return render.RowHeaderWidth(m.vp.Rows), render.ChromeLines - 1
}

func (m Model) onMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.vp.ScrollBy(0, -wheelLines*m.vp.CellHeight)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.vp.ScrollBy(0, wheelLines*m.vp.CellHeight)
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	// The formula bar line.
	if msg.Y == 1 {
		return m.focusBar()
	}

	ox, oy := m.gridOrigin()
	c, ok := m.vp.CellAt(msg.X-ox, msg.Y-oy)
	if !ok {
		return m, nil
	}
	m.focus = focusGrid
	m.apply(m.sess.Click(m.ctx, c))
	return m, m.sync()
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+q":
		m.apply(m.sess.Commit(m.ctx))
		return m, tea.Quit
	}

	if m.focus == focusBar {
		return m.onBarKey(msg)
	}
	if m.sess.State() == session.StateEditing {
		return m.onEditorKey(msg)
	}
	return m.onGridKey(msg)
}

func (m Model) onBarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.apply(m.sess.Confirm(m.ctx, session.SurfaceFormulaBar, session.Down))
		return m, m.sync()
	case "tab":
		m.apply(m.sess.Confirm(m.ctx, session.SurfaceFormulaBar, session.Right))
		return m, m.sync()
	case "esc":
		m.apply(m.sess.Blur(m.ctx))
		m.focus = focusGrid
		return m, m.sync()
	}

	var cmd tea.Cmd
	m.bar, cmd = m.bar.Update(msg)
	m.sess.SetBuffer(m.bar.Value())
	return m, cmd
}

func (m Model) onEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.apply(m.sess.Confirm(m.ctx, session.SurfaceGrid, session.Down))
		return m, m.sync()
	case "tab":
		m.apply(m.sess.Confirm(m.ctx, session.SurfaceGrid, session.Right))
		return m, m.sync()
	case "esc":
		m.sess.Cancel(m.ctx)
		return m, m.sync()
	case "ctrl+f":
		m.apply(m.sess.Blur(m.ctx))
		return m.focusBar()
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.sess.SetBuffer(m.editor.Value())
	return m, cmd
}

func (m Model) onGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if _, ok := m.sess.Selection(); !ok {
		// The first key selects A1; navigation keys stop there.
		m.apply(m.sess.Select(m.ctx, cellid.Coord{}))
		switch msg.String() {
		case "up", "down", "left", "right", "tab", "shift+tab", "pgup", "pgdown", "home":
			return m, m.sync()
		}
	}

	page := max(1, m.vp.Height/max(1, m.vp.CellHeight))
	switch msg.String() {
	case "up":
		m.apply(m.sess.Move(m.ctx, -1, 0))
	case "down":
		m.apply(m.sess.Move(m.ctx, 1, 0))
	case "left", "shift+tab":
		m.apply(m.sess.Move(m.ctx, 0, -1))
	case "right", "tab":
		m.apply(m.sess.Move(m.ctx, 0, 1))
	case "pgup":
		m.apply(m.sess.Move(m.ctx, -page, 0))
	case "pgdown":
		m.apply(m.sess.Move(m.ctx, page, 0))
	case "home":
		c, _ := m.sess.Selection()
		m.apply(m.sess.Select(m.ctx, cellid.Coord{Row: c.Row}))
	case "enter", "f2":
		m.sess.Edit()
	case "ctrl+f":
		return m.focusBar()
	case "delete", "backspace":
		m.sess.SetBuffer("")
		m.apply(m.sess.Commit(m.ctx))
	default:
		if msg.Type == tea.KeyRunes && !msg.Alt {
			// Typing over a selected cell replaces its content.
			m.sess.Edit()
			m.sess.SetBuffer(string(msg.Runes))
		}
	}
	return m, m.sync()
}

func (m Model) focusBar() (tea.Model, tea.Cmd) {
	if _, ok := m.sess.Selection(); !ok {
		m.apply(m.sess.Select(m.ctx, cellid.Coord{}))
	}
	m.focus = focusBar
	return m, m.sync()
}

// apply records the outcome of a session transition for the status line.
func (m *Model) apply(err error) {
	if err != nil {
		ctxlog.FromContext(m.ctx).Error("Session transition failed.", "error", err)
	}
	m.err = err
}

// sync copies the session buffer into the inputs, moves input focus to
// match the session and keeps the selection on screen.
func (m *Model) sync() tea.Cmd {
	buf := m.sess.Buffer()
	m.bar.SetValue(buf)
	m.bar.CursorEnd()
	m.editor.SetValue(buf)
	m.editor.CursorEnd()

	var cmd tea.Cmd
	switch {
	case m.focus == focusBar:
		m.editor.Blur()
		cmd = m.bar.Focus()
	case m.sess.State() == session.StateEditing:
		m.bar.Blur()
		cmd = m.editor.Focus()
	default:
		m.bar.Blur()
		m.editor.Blur()
	}
	m.reveal()
	return cmd
}

func (m *Model) reveal() {
	if c, ok := m.sess.Selection(); ok {
		m.vp.Reveal(c)
	}
}
