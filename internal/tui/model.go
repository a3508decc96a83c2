// Package tui provides the Bubble Tea reading interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/glance/internal/document"
	"github.com/verte-zerg/glance/internal/model"
	"github.com/verte-zerg/glance/internal/player"
	"github.com/verte-zerg/glance/internal/store"
)

const (
	modeRead = iota
	modeGoto
	modeOpen
)

// tickMsg carries the timer generation it was scheduled under. The
// generation is bumped whenever the rate, the play state, or the word
// sequence changes, so ticks from a torn-down schedule are dropped instead
// of mutating state.
type tickMsg struct {
	gen int
}

// Model implements the Bubble Tea reading UI.
type Model struct {
	config model.Config
	store  *store.Store
	player *player.Player
	doc    document.Document

	width  int
	height int

	gen int

	mode  int
	input textinput.Model
	bar   progress.Model
	peek  viewport.Model

	peeking bool
	errMsg  string

	started   bool
	startedAt time.Time
	maxIndex  int
}

// NewModel constructs a reading TUI model.
func NewModel(cfg model.Config, st *store.Store, doc document.Document) *Model {
	p := player.New(cfg.WPM)
	p.Load(doc.Words)

	input := textinput.New()
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)

	accent := cfg.Accent
	if accent == "" {
		accent = defaultAccent
	}
	bar := progress.New(progress.WithSolidFill(accent), progress.WithoutPercentage())

	m := &Model{
		config: cfg,
		store:  st,
		player: p,
		doc:    doc,
		input:  input,
		bar:    bar,
		peek:   viewport.New(0, 0),
	}
	m.refreshPeek()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		switch m.mode {
		case modeGoto, modeOpen:
			return m.updatePrompt(msg)
		default:
			return m.updateRead(msg)
		}
	default:
		return m, nil
	}
}

func (m *Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}
	if m.player.Tick() {
		m.trackPosition()
		return m, m.scheduleTick()
	}
	// Auto-stopped at the final word; the schedule is dead.
	m.trackPosition()
	m.gen++
	return m, nil
}

func (m *Model) updateRead(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Errors stay visible until the next action.
	m.errMsg = ""
	switch msg.String() {
	case "ctrl+c", "q":
		m.finishReading()
		return m, tea.Quit
	case " ":
		wasPlaying := m.player.Playing()
		m.player.TogglePlay()
		if m.player.Playing() == wasPlaying {
			return m, nil
		}
		m.gen++
		if m.player.Playing() {
			m.markStarted()
			m.trackPosition()
			return m, m.scheduleTick()
		}
		return m, nil
	case "r":
		m.player.Reset()
		m.gen++
		return m, nil
	case "left", "h":
		m.player.Step(-1)
		return m, nil
	case "right", "l":
		m.player.Step(1)
		m.trackPosition()
		return m, nil
	case "up", "+", "=":
		return m, m.adjustRate(1)
	case "down", "-":
		return m, m.adjustRate(-1)
	case "g":
		if m.doc.Empty() {
			return m, nil
		}
		return m.startPrompt(modeGoto, "Go to word: ", "")
	case "o":
		return m.startPrompt(modeOpen, "Open file: ", "path/to/text.txt")
	case "v":
		m.peeking = !m.peeking
		m.updateLayout()
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) adjustRate(steps int) tea.Cmd {
	before := m.player.WPM()
	m.player.AdjustWPM(steps)
	if m.player.WPM() == before {
		return nil
	}
	// The period changed: tear down any pending tick and, while playing,
	// schedule the next one under the new period.
	m.gen++
	if m.player.Playing() {
		return m.scheduleTick()
	}
	return nil
}

func (m *Model) startPrompt(mode int, prompt, placeholder string) (tea.Model, tea.Cmd) {
	// Opening a prompt pauses playback so the schedule cannot advance the
	// word behind the prompt.
	if m.player.Playing() {
		m.player.TogglePlay()
		m.gen++
	}
	m.mode = mode
	m.errMsg = ""
	m.input.Prompt = prompt
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	return m, m.input.Focus()
}

func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePrompt()
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.closePrompt()
		switch mode {
		case modeGoto:
			m.applyGoto(value)
		case modeOpen:
			m.applyOpen(value)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.mode = modeRead
	m.input.Blur()
}

func (m *Model) applyGoto(value string) {
	if value == "" {
		return
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		m.errMsg = fmt.Sprintf("not a word number: %s", value)
		return
	}
	m.player.Seek(n - 1)
	m.trackPosition()
}

// applyOpen reads the named file synchronously inside the update loop, so
// overlapping loads cannot occur. On failure the current document is kept
// and the error reported.
func (m *Model) applyOpen(value string) {
	if value == "" {
		return
	}
	doc, err := document.Load(value)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.finishReading()
	m.SetDocument(doc)
}

// SetDocument replaces the current document wholesale: the word sequence is
// rebuilt, the position rewinds, and playback stops.
func (m *Model) SetDocument(doc document.Document) {
	m.doc = doc
	m.player.Load(doc.Words)
	m.gen++
	m.started = false
	m.startedAt = time.Time{}
	m.maxIndex = 0
	m.refreshPeek()
}

func (m *Model) markStarted() {
	if m.started {
		return
	}
	m.started = true
	m.startedAt = time.Now()
}

func (m *Model) trackPosition() {
	if m.player.Index() > m.maxIndex {
		m.maxIndex = m.player.Index()
	}
}

// finishReading records the session so far. Best effort: store errors are
// logged, never fatal.
func (m *Model) finishReading() {
	if !m.started || m.store == nil || m.doc.Empty() {
		return
	}
	endedAt := time.Now()
	stats := model.ReadingStats{
		StartedAt:  m.startedAt,
		EndedAt:    endedAt,
		Source:     m.doc.Source,
		WordsTotal: m.player.Len(),
		WordsRead:  m.maxIndex + 1,
		WPM:        m.player.WPM(),
		DurationMs: endedAt.Sub(m.startedAt).Milliseconds(),
		Completed:  m.maxIndex == m.player.Len()-1,
	}
	if _, err := m.store.InsertReading(context.Background(), stats); err != nil {
		logErrf("failed to save reading: %v\n", err)
	}
}

func (m *Model) scheduleTick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.player.Interval(), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	frame := frameWidth(m.width)
	m.bar.Width = frame
	m.peek.Width = frame
	peekHeight := m.config.PeekLines
	if peekHeight <= 0 {
		peekHeight = defaultPeekLines
	}
	if limit := m.height - 8; peekHeight > limit && limit > 0 {
		peekHeight = limit
	}
	m.peek.Height = peekHeight
	m.refreshPeek()
}

func (m *Model) refreshPeek() {
	if m.peek.Width <= 0 {
		return
	}
	content := m.doc.Text
	if strings.TrimSpace(content) == "" {
		content = "Nothing to show."
	}
	m.peek.SetContent(lipgloss.NewStyle().Width(m.peek.Width).Render(content))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
