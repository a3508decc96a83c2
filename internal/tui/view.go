package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/glance/internal/player"
	"github.com/verte-zerg/glance/internal/text"
)

const (
	defaultAccent    = "#C89A3A"
	defaultPeekLines = 8
	maxFrameWidth    = 64
)

var (
	wordStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	orpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)
	guideStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// frameWidth bounds the reading frame so the pivot stays near the eye's
// resting position on wide terminals.
func frameWidth(termWidth int) int {
	w := termWidth - 4
	if w > maxFrameWidth {
		w = maxFrameWidth
	}
	if w < 1 {
		w = 1
	}
	return w
}

// pivotColumn is the fixed display column the ORP rune is aligned to.
func pivotColumn(frame int) int {
	return frame / 3
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	frame := frameWidth(m.width)
	var sections []string

	if m.doc.Empty() {
		sections = append(sections,
			placeholderStyle.Render("No text loaded."),
			"",
			placeholderStyle.Render("Pipe text in, pass a file, or press o to open one."),
		)
	} else {
		sections = append(sections, renderWordBlock(m.player.Word(), frame))
		sections = append(sections, "", m.renderProgress(frame))
	}

	if m.peeking {
		sections = append(sections, "", guideStyle.Render(strings.Repeat("─", frame)), m.peek.View())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	footer := m.renderFooter()
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

// renderWordBlock paints the current word with its recognition point pinned
// to the pivot column, framed by guide marks.
func renderWordBlock(word string, frame int) string {
	pivot := pivotColumn(frame)
	runes := []rune(word)
	orp := text.ORPIndex(word)

	prefixWidth := 0
	for i := 0; i < orp && i < len(runes); i++ {
		prefixWidth += runewidth.RuneWidth(runes[i])
	}
	pad := pivot - prefixWidth
	if pad < 0 {
		pad = 0
	}

	var line strings.Builder
	line.WriteString(strings.Repeat(" ", pad))
	if len(runes) > 0 {
		line.WriteString(wordStyle.Render(string(runes[:orp])))
		line.WriteString(orpStyle.Render(string(runes[orp])))
		if orp+1 < len(runes) {
			line.WriteString(wordStyle.Render(string(runes[orp+1:])))
		}
	}

	marker := strings.Repeat(" ", pivot)
	top := guideStyle.Render(marker + "▼")
	bottom := guideStyle.Render(marker + "▲")
	return top + "\n" + line.String() + "\n" + bottom
}

func (m *Model) renderProgress(frame int) string {
	pct := text.Progress(m.player.Index(), m.player.Len())
	counter := footerStyle.Render(fmt.Sprintf("%d/%d · %.0f%%", m.player.Index()+1, m.player.Len(), pct))
	return m.bar.ViewAs(pct/100) + "\n" + counter
}

func (m *Model) renderFooter() string {
	if m.mode != modeRead {
		return m.input.View()
	}
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg)
	}

	state := "paused"
	switch m.player.State() {
	case player.Idle:
		state = "idle"
	case player.Playing:
		state = "playing"
	}
	segments := []string{
		fmt.Sprintf("%d WPM", m.player.WPM()),
		state,
	}
	if !m.doc.Empty() {
		segments = append(segments, fmt.Sprintf("%s · %d words", m.doc.Source, m.player.Len()))
	}
	segments = append(segments, "space play · r reset · ←/→ step · ↑/↓ rate · g goto · o open · v peek · q quit")
	return footerStyle.Render(strings.Join(segments, "  "))
}
