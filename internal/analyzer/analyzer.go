// Package analyzer implements the text analysis itself. Everything here is a
// pure function of the input string, which keeps the HTTP layer a thin shell
// around it.
package analyzer

import (
	"strings"
	"unicode/utf8"

	"github.com/textwise/text-analysis-service/internal/model"
)

// WordCount returns the number of maximal runs of non-whitespace characters
// in text. Whitespace is Unicode whitespace, so tabs, newlines and exotic
// spaces all act as separators. Leading and trailing whitespace is ignored.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CharacterCount returns the number of Unicode code points in text,
// whitespace included.
func CharacterCount(text string) int {
	return utf8.RuneCountInString(text)
}

// Analyze builds the full result for text: the verbatim echo plus both counts.
func Analyze(text string) model.AnalysisResult {
	return model.AnalysisResult{
		OriginalText:   text,
		WordCount:      WordCount(text),
		CharacterCount: CharacterCount(text),
	}
}
