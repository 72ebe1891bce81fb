package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textstat/internal/domain"
	"textstat/internal/report"
)

// TextPort is the TUI-facing subset of the text service.
type TextPort interface {
	AnalyzeText(text string) domain.AnalysisResult
	SummarizeText(text string) string
}

type analysisDoneMsg struct{ result domain.AnalysisResult }

type summaryDoneMsg struct{ summary string }

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service     TextPort
	input       textarea.Model
	viewport    viewport.Model
	result      *domain.AnalysisResult
	summary     string
	status      string
	analyzing   bool
	summarizing bool
	ready       bool
}

// New creates a new TUI model instance, optionally prefilled with text.
func New(service TextPort, initial string) Model {
	ta := textarea.New()
	ta.Placeholder = "Type or paste text to analyze..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetValue(initial)
	ta.Focus()
	vp := viewport.New(0, 0)
	return Model{service: service, input: ta, viewport: vp, status: helpText}
}

const (
	helpText       = "ctrl+a analyze · ctrl+s summarize · ctrl+l clear · esc quit"
	emptyInputText = "Enter some text first. " + helpText
)

// Init initializes the model (text area cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		inputHeight := max(3, msg.Height/3)
		m.input.SetWidth(max(20, msg.Width-4))
		m.input.SetHeight(inputHeight)
		reserved := 2 + inputHeight + ih + rh // header + status
		m.viewport.Width = max(20, msg.Width-4)
		m.viewport.Height = max(3, msg.Height-reserved)
		m.viewport.SetContent(m.renderResults())
		return m, nil
	case analysisDoneMsg:
		m.analyzing = false
		res := msg.result
		m.result = &res
		m.status = "Analysis complete. " + helpText
		m.viewport.SetContent(m.renderResults())
		return m, nil
	case summaryDoneMsg:
		m.summarizing = false
		m.summary = msg.summary
		m.status = "Summary ready. " + helpText
		m.viewport.SetContent(m.renderResults())
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d", "esc":
			return m, tea.Quit
		case "ctrl+a":
			if m.analyzing {
				return m, nil
			}
			if m.blank() {
				m.status = emptyInputText
				return m, nil
			}
			m.analyzing = true
			m.status = "Analyzing..."
			return m, m.analyzeCmd(m.input.Value())
		case "ctrl+s":
			if m.summarizing {
				return m, nil
			}
			if m.blank() {
				m.status = emptyInputText
				return m, nil
			}
			m.summarizing = true
			m.status = "Summarizing..."
			return m, m.summarizeCmd(m.input.Value())
		case "ctrl+l":
			m.input.Reset()
			m.result = nil
			m.summary = ""
			m.status = helpText
			m.viewport.SetContent(m.renderResults())
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and current results.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Text Analyzer")
	input := inputBoxStyle.Render(m.input.View())
	results := resultBoxStyle.Render(m.viewport.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + input + "\n" + results + "\n" + status
}

func (m Model) blank() bool {
	return strings.TrimSpace(m.input.Value()) == ""
}

func (m Model) analyzeCmd(text string) tea.Cmd {
	svc := m.service
	return func() tea.Msg {
		return analysisDoneMsg{result: svc.AnalyzeText(text)}
	}
}

func (m Model) summarizeCmd(text string) tea.Cmd {
	svc := m.service
	return func() tea.Msg {
		return summaryDoneMsg{summary: svc.SummarizeText(text)}
	}
}

func (m Model) renderResults() string {
	if m.result == nil && m.summary == "" {
		return "No results yet."
	}
	var parts []string
	if m.result != nil {
		parts = append(parts, report.Analysis(*m.result))
	}
	if m.summary != "" {
		parts = append(parts, report.Summary(m.summary))
	}
	return strings.Join(parts, "\n")
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)
