// ============================================================================
// adoc - AsciiDoc-like markup toolkit
// ============================================================================
//
// Package:     viewer
// Description: Main Bubbletea model for the document viewer
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

// Package viewer is a terminal UI that shows the parsed tree of a document
// and follows changes to it.
package viewer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	adoclog "github.com/msto63/adoc/foundation/core/log"
	"github.com/msto63/adoc/foundation/markup"
	adocast "github.com/msto63/adoc/foundation/markup/ast"
	"github.com/msto63/adoc/internal/dump"
)

// Mode selects how the document is shown
type Mode int

const (
	ModeTree Mode = iota
	ModeJSON
	ModeYAML
)

func (m Mode) String() string {
	switch m {
	case ModeJSON:
		return "json"
	case ModeYAML:
		return "yaml"
	default:
		return "tree"
	}
}

// Parser reads and parses a document file. *markup.Engine implements it.
type Parser interface {
	ParseFile(path string) (*adocast.Document, error)
}

// Config holds viewer configuration
type Config struct {
	// Path of the document shown in the header and used for reloads
	Path string

	// Parser used by the reload key; nil disables reloading
	Parser Parser

	// Color enables styled tree output
	Color bool

	// Debounce is the quiet period before a changed file is parsed again
	Debounce time.Duration

	// Logger for the file watcher (optional)
	Logger *adoclog.Logger
}

// Model is the main Bubbletea model for the viewer
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	loading bool
	mode    Mode

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Document state
	doc      *adocast.Document
	err      error
	stats    markup.Stats
	size     int64
	parsedAt time.Time

	// Configuration
	path   string
	parser Parser
	color  bool
}

// New creates a new viewer model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Model{
		spinner: sp,
		loading: cfg.Parser != nil,
		path:    cfg.Path,
		parser:  cfg.Parser,
		color:   cfg.Color,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	if m.parser == nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.reload)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3 // Title panel
		footerHeight := 4 // Doc border + status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case documentMsg:
		m.loading = false
		m.doc = msg.doc
		m.err = msg.err
		m.parsedAt = msg.parsedAt
		m.size = msg.size
		if m.size == 0 && m.path != "" {
			if info, err := os.Stat(m.path); err == nil {
				m.size = info.Size()
			}
		}
		if msg.err == nil {
			m.stats = markup.CollectStats(msg.doc)
		}
		m.updateViewportContent()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "m":
		m.mode = (m.mode + 1) % 3
		m.updateViewportContent()
		m.viewport.GotoTop()

	case "r":
		if m.parser != nil {
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.reload)
		}

	case "g", "home":
		m.viewport.GotoTop()

	case "G", "end":
		m.viewport.GotoBottom()

	case "pgup":
		m.viewport.ViewUp()

	case "pgdown", " ":
		m.viewport.ViewDown()

	case "up", "k":
		m.viewport.LineUp(1)

	case "down", "j":
		m.viewport.LineDown(1)
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading viewer..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderBody())
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title panel with file name and mode
func (m Model) renderHeader() string {
	name := "(no file)"
	if m.path != "" {
		name = filepath.Base(m.path)
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		FileStyle.Render(name),
		strings.Repeat(" ", 3),
		ModeStyle.Render("["+m.mode.String()+"]"),
	)

	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderBody renders the document viewport or the parse error
func (m Model) renderBody() string {
	if m.err != nil {
		text := m.err.Error()
		if line, column, ok := markup.Position(m.err); ok {
			text = fmt.Sprintf("line %d, column %d\n\n%s", line, column, text)
		}
		return ErrorPanelStyle.Width(m.width - 2).Render(text)
	}
	style := DocPanelStyle.Width(m.width - 2).Height(m.viewport.Height)
	return style.Render(m.viewport.View())
}

// renderStatusBar renders document statistics and parse state
func (m Model) renderStatusBar() string {
	var left string
	switch {
	case m.loading:
		left = m.spinner.View() + StatusLoadingStyle.Render(" Parsing...")
	case m.err != nil:
		left = StatusErrorStyle.Render("Parse failed")
	case m.doc != nil:
		left = StatusOKStyle.Render(fmt.Sprintf("%s blocks  %s inlines  depth %d",
			humanize.Comma(int64(m.stats.Blocks)),
			humanize.Comma(int64(m.stats.Inlines)),
			m.stats.MaxDepth))
	default:
		left = HelpDescStyle.Render("No document")
	}

	var right []string
	if m.size > 0 {
		right = append(right, humanize.Bytes(uint64(m.size)))
	}
	if !m.parsedAt.IsZero() {
		right = append(right, "parsed "+humanize.Time(m.parsedAt))
	}
	rightPart := HelpDescStyle.Render(strings.Join(right, "  "))

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(rightPart) - 4
	if padding < 2 {
		padding = 2
	}

	return StatusBarStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", padding) + rightPart)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("m", "Mode"),
		RenderKeyHint("r", "Reload"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("↑/↓", "Scroll"),
		RenderKeyHint("q", "Quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent renders the document in the current mode
func (m *Model) updateViewportContent() {
	if m.doc == nil {
		m.viewport.SetContent("")
		return
	}

	var content string
	switch m.mode {
	case ModeJSON, ModeYAML:
		var buf bytes.Buffer
		write := dump.JSON
		if m.mode == ModeYAML {
			write = dump.YAML
		}
		if err := write(&buf, m.doc); err != nil {
			content = err.Error()
		} else {
			content = buf.String()
		}
	default:
		content = dump.RenderTree(*m.doc, m.color)
	}
	m.viewport.SetContent(content)
}

// reload parses the document again
func (m Model) reload() tea.Msg {
	start := time.Now()
	doc, err := m.parser.ParseFile(m.path)
	msg := documentMsg{doc: doc, err: err, parsedAt: start}
	if info, statErr := os.Stat(m.path); statErr == nil {
		msg.size = info.Size()
	}
	return msg
}

// Document returns the currently shown document, nil before the first
// successful parse
func (m Model) Document() *adocast.Document {
	return m.doc
}

// Err returns the last parse error
func (m Model) Err() error {
	return m.err
}

// Mode returns the current display mode
func (m Model) Mode() Mode {
	return m.mode
}
