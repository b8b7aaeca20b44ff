package domain

import "time"

// ExtractionFailedNotice replaces the text of a binary document when no
// recovery strategy produced anything. Downstream stages always receive a string.
const ExtractionFailedNotice = "PDF text extraction failed. Please ensure the PDF contains selectable text."

// Extraction is the outcome of running one document through the pipeline.
type Extraction struct {
	// ID correlates log lines for one invocation. It is not persisted.
	ID string

	// URI is copied from the raw document.
	URI string

	// MIMEType is the declared type used for dispatch.
	MIMEType string

	// Strategy is the strategy whose output was used.
	Strategy Strategy

	// Attempts lists every strategy tried, in order.
	Attempts []RecoveryAttempt

	// RawText is the recovered text before sanitisation.
	RawText string

	// Text is the sanitised, filtered text bounded by the text budget.
	Text string

	// Excerpt is Text bounded by the excerpt budget.
	Excerpt string

	// Placeholder is true when Text is the extraction-failed notice.
	Placeholder bool

	// CreatedAt is when the extraction finished.
	CreatedAt time.Time
}
