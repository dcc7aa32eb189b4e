package ai

import (
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// CleanText collapses runs of whitespace into single spaces and trims
// the result. Embedding quality degrades on ragged markdown spacing.
func CleanText(text string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}

// LoadParagraphs reads a text document and splits it into cleaned
// paragraphs on blank lines. Empty paragraphs are dropped.
func LoadParagraphs(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read document %s", path)
	}
	return SplitParagraphs(string(raw)), nil
}

// SplitParagraphs splits text on blank lines into cleaned paragraphs.
func SplitParagraphs(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")

	var paragraphs []string
	for _, block := range strings.Split(normalized, "\n\n") {
		cleaned := CleanText(block)
		if cleaned == "" {
			continue
		}
		paragraphs = append(paragraphs, cleaned)
	}
	return paragraphs
}
