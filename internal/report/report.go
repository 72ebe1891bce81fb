// Package report renders analysis results for terminals and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"textstat/internal/domain"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
	}
}

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	LabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ValueStyle   = lipgloss.NewStyle().Bold(true)
	WordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	SummaryStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Write encodes reports to w in the given format.
func Write(w io.Writer, format Format, reports []domain.Report) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		blocks := make([]string, 0, len(reports))
		for _, r := range reports {
			blocks = append(blocks, Text(r))
		}
		_, err := io.WriteString(w, strings.Join(blocks, "\n\n")+"\n")
		return err
	}
}

// Text renders a report the way the results panel lays it out.
func Text(r domain.Report) string {
	var b strings.Builder
	if r.Document.Path != "" {
		b.WriteString(TitleStyle.Render(r.Document.Path))
		if r.Document.Size > 0 {
			b.WriteString(LabelStyle.Render(" (" + humanize.Bytes(uint64(r.Document.Size)) + ")"))
		}
		b.WriteString("\n")
	}
	b.WriteString(Analysis(r.Analysis))
	if r.Summary != "" {
		b.WriteString("\n")
		b.WriteString(Summary(r.Summary))
	}
	return b.String()
}

// Analysis renders the statistics block.
func Analysis(a domain.AnalysisResult) string {
	metrics := []struct {
		label string
		value string
	}{
		{"Characters", fmt.Sprint(a.CharacterCount)},
		{"Words", fmt.Sprint(a.WordCount)},
		{"Paragraphs", fmt.Sprint(a.ParagraphCount)},
		{"Longest Word", a.LongestWord},
		{"Reading Time", a.ReadingTime},
	}
	var b strings.Builder
	for _, m := range metrics {
		b.WriteString(LabelStyle.Render(fmt.Sprintf("%-13s", m.label)))
		b.WriteString(ValueStyle.Render(m.value))
		b.WriteString("\n")
	}
	if len(a.MostFrequentWords) > 0 {
		b.WriteString(LabelStyle.Render("Most Frequent Words"))
		b.WriteString("\n")
		words := make([]string, 0, len(a.MostFrequentWords))
		for _, wf := range a.MostFrequentWords {
			words = append(words, WordStyle.Render(wf.Word)+fmt.Sprintf(" (%d)", wf.Count))
		}
		b.WriteString("  " + strings.Join(words, "  "))
		b.WriteString("\n")
	}
	return b.String()
}

// Summary renders the summary in a box.
func Summary(s string) string {
	return TitleStyle.Render("Summary") + "\n" + SummaryStyle.Render(strings.TrimSpace(s))
}
