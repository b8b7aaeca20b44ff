package domain

import "strings"

// Strategy identifies how a piece of text was recovered.
type Strategy int

// Recovery strategies. The first three form the binary fallback cascade
// and are tried in declaration order.
const (
	// StrategyNone means no strategy produced text.
	StrategyNone Strategy = iota

	// StrategyByteRun scans raw bytes for natural-language runs.
	StrategyByteRun

	// StrategyEncoding re-decodes the buffer under a list of encodings.
	StrategyEncoding

	// StrategyStructure scans container markers (literals, streams, objects).
	StrategyStructure

	// StrategyDirect reads plain text bytes as UTF-8 without the cascade.
	StrategyDirect

	// StrategyFallback is a best-effort decode for other MIME types.
	StrategyFallback
)

// String returns the strategy name used in logs and output.
func (s Strategy) String() string {
	switch s {
	case StrategyByteRun:
		return "byte_run"
	case StrategyEncoding:
		return "encoding"
	case StrategyStructure:
		return "structure"
	case StrategyDirect:
		return "direct"
	case StrategyFallback:
		return "fallback"
	default:
		return "none"
	}
}

// RecoveryAttempt is the output of a single recovery strategy.
type RecoveryAttempt struct {
	// Strategy is the strategy that produced Text.
	Strategy Strategy

	// Text is the recovered text, possibly empty.
	Text string
}

// Succeeded reports whether the attempt yielded non-blank text.
func (a RecoveryAttempt) Succeeded() bool {
	return strings.TrimSpace(a.Text) != ""
}
