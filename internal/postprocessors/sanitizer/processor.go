// Package sanitizer strips control characters, escape sequences, markup
// commands and content-stream leftovers from recovered text.
package sanitizer

import (
	"context"
	"regexp"
	"strings"
)

var (
	controlChars = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	escapeTokens = regexp.MustCompile(`\\(?:[0-9]{3}|x[0-9a-fA-F]{2}|u[0-9a-fA-F]{4})`)
	commandArg   = regexp.MustCompile(`\\[a-zA-Z]+\{([^}]*)\}`)
	commandBare  = regexp.MustCompile(`\\[a-zA-Z]+`)
	displayMath  = regexp.MustCompile(`\$\$[^$]*\$\$`)
	inlineMath   = regexp.MustCompile(`\$[^$]*\$`)
	markupChars  = regexp.MustCompile(`[{}\\]`)
	nonPrintable = regexp.MustCompile(`[^\x20-\x7E\n]`)

	// operatorLeftovers are content-stream operators, removed in this order.
	operatorLeftovers = []*regexp.Regexp{
		regexp.MustCompile(`BT\s+ET`),
		regexp.MustCompile(`Tj\s*\([^)]*\)`),
		regexp.MustCompile(`TJ\s*\[[^\]]*\]`),
		regexp.MustCompile(`[0-9]+\s+[0-9]+\s+obj`),
		regexp.MustCompile(`endobj`),
	}

	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Sanitize applies the rewrite sequence until the text stops changing.
// Removed tokens leave a space behind, so each changing pass shrinks the
// text and the loop terminates. The result is printable ASCII with single
// spaces, no blank lines and no surrounding whitespace, and Sanitize is
// idempotent.
func Sanitize(text string) string {
	for {
		next := sanitizeOnce(text)
		if next == text {
			return next
		}
		text = next
	}
}

// sanitizeOnce runs each rewrite exactly once. Order matters: earlier
// rewrites change what later ones match.
func sanitizeOnce(s string) string {
	if s == "" {
		return s
	}

	s = controlChars.ReplaceAllString(s, "")
	s = lineEndings.Replace(s)

	s = escapeTokens.ReplaceAllString(s, " ")

	// \textbf{Experience} keeps "Experience"; \newline disappears.
	s = commandArg.ReplaceAllString(s, " ${1} ")
	s = commandBare.ReplaceAllString(s, " ")

	s = displayMath.ReplaceAllString(s, " ")
	s = inlineMath.ReplaceAllString(s, " ")

	s = markupChars.ReplaceAllString(s, "")

	for _, re := range operatorLeftovers {
		s = re.ReplaceAllString(s, " ")
	}

	s = nonPrintable.ReplaceAllString(s, " ")

	return collapseWhitespace(s)
}

// collapseWhitespace turns space runs into one space, trims every line and
// drops blank lines.
func collapseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		collapsed := strings.Join(strings.Fields(line), " ")
		if collapsed == "" {
			continue
		}
		out = append(out, collapsed)
	}
	return strings.Join(out, "\n")
}

// Processor wraps Sanitize as a pipeline stage.
type Processor struct{}

// New creates a sanitizer processor.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "sanitizer"
}

// Process sanitises the text. It never fails.
func (p *Processor) Process(_ context.Context, text string) (string, error) {
	return Sanitize(text), nil
}
