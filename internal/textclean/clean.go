// Package textclean strips code-like content from free text.
//
// The rules are shallow regular expressions, not a parser: groups are matched
// non-nested and shortest-first in a single pass. Word characters follow the
// ASCII class [A-Za-z0-9_].
package textclean

import (
	"regexp"
	"strings"
)

// Stage is one cleaning step.
type Stage func(string) string

// Pipeline applies its stages in order.
type Pipeline []Stage

// Apply runs every stage on text.
func (p Pipeline) Apply(text string) string {
	for _, stage := range p {
		text = stage(text)
	}
	return text
}

var (
	functionBlockRe = regexp.MustCompile(`\(function\([^)]*\)\{[^}]*\}`)
	bracketGroupRe  = regexp.MustCompile(`\[[^\]]*\]`)
	braceGroupRe    = regexp.MustCompile(`\{[^}]*\}`)
	symbolRe        = regexp.MustCompile(`[^\w\s]`)
	nonSentenceRe   = regexp.MustCompile(`[^\w\s.,!?]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// StripFunctionBlocks removes "(function(...){...}" snippets.
func StripFunctionBlocks(text string) string {
	return functionBlockRe.ReplaceAllLiteralString(text, "")
}

// StripBrackets removes "[...]" groups.
func StripBrackets(text string) string {
	return bracketGroupRe.ReplaceAllLiteralString(text, "")
}

// StripBraces removes "{...}" groups.
func StripBraces(text string) string {
	return braceGroupRe.ReplaceAllLiteralString(text, "")
}

// ReplaceSymbols turns every character that is not a word character or
// whitespace into a space.
func ReplaceSymbols(text string) string {
	return symbolRe.ReplaceAllLiteralString(text, " ")
}

// ReplaceNonSentenceSymbols is ReplaceSymbols but keeps . , ! and ?.
func ReplaceNonSentenceSymbols(text string) string {
	return nonSentenceRe.ReplaceAllLiteralString(text, " ")
}

// CollapseWhitespace folds whitespace runs into one space and trims the ends.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllLiteralString(text, " "))
}

var (
	analysisPipeline = Pipeline{StripFunctionBlocks, StripBrackets, StripBraces, ReplaceSymbols, CollapseWhitespace}
	summaryPipeline  = Pipeline{StripFunctionBlocks, StripBrackets, StripBraces, ReplaceNonSentenceSymbols, CollapseWhitespace}
)

// ForAnalysis cleans raw text down to word characters separated by single spaces.
func ForAnalysis(raw string) string { return analysisPipeline.Apply(raw) }

// ForSummary cleans raw text but keeps sentence punctuation.
func ForSummary(raw string) string { return summaryPipeline.Apply(raw) }
