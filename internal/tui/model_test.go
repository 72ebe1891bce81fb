package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textstat/internal/analyzer"
	"textstat/internal/domain"
	"textstat/internal/summarizer"
)

type fakePort struct {
	analyzer   domain.Analyzer
	summarizer domain.Summarizer
}

func (f fakePort) AnalyzeText(text string) domain.AnalysisResult { return f.analyzer.Analyze(text) }
func (f fakePort) SummarizeText(text string) string              { return f.summarizer.Summarize(text) }

func newPort() fakePort {
	return fakePort{analyzer: analyzer.NewDefault(), summarizer: summarizer.NewLeadSummarizer(3, 3)}
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

func TestView_LoadingUntilSized(t *testing.T) {
	t.Parallel()

	m := New(newPort(), "")
	assert.Equal(t, "Loading...", m.View())
	m = sized(t, m)
	assert.Contains(t, m.View(), "Text Analyzer")
	assert.Contains(t, m.View(), "No results yet.")
}

func TestAnalyze_BlankInputIsRejected(t *testing.T) {
	t.Parallel()

	m := sized(t, New(newPort(), "   \n "))
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})

	assert.Nil(t, cmd)
	assert.Equal(t, emptyInputText, next.(Model).status)
}

func TestAnalyze_RunsAndRenders(t *testing.T) {
	t.Parallel()

	m := sized(t, New(newPort(), "Hello world. This is a simple test sentence for analysis."))
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	require.NotNil(t, cmd)
	m = next.(Model)
	assert.True(t, m.analyzing)

	// a second request while busy is ignored
	_, again := m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	assert.Nil(t, again)

	next, _ = m.Update(cmd())
	m = next.(Model)
	require.NotNil(t, m.result)
	assert.False(t, m.analyzing)
	assert.Equal(t, 10, m.result.WordCount)
	assert.Contains(t, m.renderResults(), "Reading Time")
}

func TestSummarize_RunsAndRenders(t *testing.T) {
	t.Parallel()

	m := sized(t, New(newPort(), "One two three four. Five six seven eight."))
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	next, _ = next.(Model).Update(cmd())
	m = next.(Model)
	assert.Equal(t, "One two three four.  Five six seven eight.", m.summary)
	assert.Contains(t, m.renderResults(), "Summary")
}

func TestClear(t *testing.T) {
	t.Parallel()

	m := sized(t, New(newPort(), "some words here"))
	next, _ := m.Update(analysisDoneMsg{result: domain.AnalysisResult{WordCount: 3}})
	next, _ = next.(Model).Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = next.(Model)

	assert.Nil(t, m.result)
	assert.Empty(t, m.input.Value())
	assert.Equal(t, "No results yet.", m.renderResults())
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	m := sized(t, New(newPort(), ""))
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}
