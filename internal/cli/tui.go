package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pictolab/glyphgrid/pkg/pictograph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// LetterListModel - Interactive letter browser
// =============================================================================

// LetterListModel is the bubbletea model for browsing the letter taxonomy.
// The left pane lists all letters; the detail pane shows the selected
// letter's classification and placement attribute sets.
type LetterListModel struct {
	Letters []pictograph.Letter
	Cursor  int
	Height  int
	Offset  int
}

// NewLetterListModel creates a letter browser over the full alphabet.
func NewLetterListModel() LetterListModel {
	return LetterListModel{
		Letters: pictograph.AllLetters(),
		Cursor:  0,
		Height:  15,
		Offset:  0,
	}
}

func (m LetterListModel) Init() tea.Cmd {
	return nil
}

func (m LetterListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Letters)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m LetterListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Letters"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Letters) {
		end = len(m.Letters)
	}

	for i := m.Offset; i < end; i++ {
		l := m.Letters[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		line := fmt.Sprintf("%s%-3s %s", cursor, l, l.Type())
		b.WriteString(style.Render(line))
		if i == m.Cursor {
			for _, f := range letterFlags(l) {
				b.WriteString(listDimStyle.Render("  " + f))
			}
		}
		b.WriteString("\n")
	}

	if end < len(m.Letters) {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("\n  %d more...", len(m.Letters)-end)))
		b.WriteString("\n")
	}

	return b.String()
}

// runLetterBrowser runs the interactive letter browser until quit.
func runLetterBrowser() error {
	_, err := tea.NewProgram(NewLetterListModel()).Run()
	return err
}
