package domain

import "fmt"

// Default windows and budgets.
const (
	// DefaultByteRunHead is how many leading bytes the byte-run scan reads.
	DefaultByteRunHead = 50_000

	// DefaultByteRunTail is how many trailing bytes the byte-run scan reads.
	DefaultByteRunTail = 20_000

	// DefaultEncodingWindow bounds the bytes re-decoded by the encoding prober.
	DefaultEncodingWindow = 200_000

	// DefaultStructureWindow bounds the bytes scanned for container markers.
	DefaultStructureWindow = 100_000

	// DefaultReadabilityThreshold is the special-character ratio at which a line is dropped.
	DefaultReadabilityThreshold = 0.5

	// DefaultTextBudget caps the stored text, in characters.
	DefaultTextBudget = 10_000

	// DefaultExcerptBudget caps the analysis excerpt, in characters.
	DefaultExcerptBudget = 4_000

	// DefaultMaxFileBytes is the upload size limit (5 MiB).
	DefaultMaxFileBytes = 5 * 1024 * 1024
)

// Well-known MIME types.
const (
	MIMETypePDF       = "application/pdf"
	MIMETypePlainText = "text/plain"
	MIMETypeMSWord    = "application/msword"
	MIMETypeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// RecoverySettings holds the byte windows used by the recovery strategies.
type RecoverySettings struct {
	// ByteRunHead is the leading window for the byte-run scan.
	ByteRunHead int

	// ByteRunTail is the trailing window for the byte-run scan.
	ByteRunTail int

	// EncodingWindow bounds the encoding prober. It must be positive.
	EncodingWindow int

	// StructureWindow bounds the container-structure scan.
	StructureWindow int
}

// BudgetSettings holds the two independent character budgets.
type BudgetSettings struct {
	// Text caps the persisted text.
	Text int

	// Excerpt caps the excerpt handed to analysis.
	Excerpt int
}

// IntakeSettings holds upload validation limits.
type IntakeSettings struct {
	// MaxBytes is the largest accepted document. Zero or less disables the check.
	MaxBytes int

	// AllowedTypes lists accepted MIME types. Empty allows any type.
	AllowedTypes []string
}

// ExtractionSettings holds all pipeline settings.
// Settings are passed explicitly to each component; there are no package-level defaults
// beyond the constants above.
type ExtractionSettings struct {
	// Recovery holds strategy windows.
	Recovery RecoverySettings

	// ReadabilityThreshold is the special-character ratio at which a line is dropped.
	ReadabilityThreshold float64

	// Budget holds the truncation budgets.
	Budget BudgetSettings

	// Intake holds upload validation limits.
	Intake IntakeSettings
}

// DefaultExtractionSettings returns the default windows, budgets and intake limits.
func DefaultExtractionSettings() ExtractionSettings {
	return ExtractionSettings{
		Recovery: RecoverySettings{
			ByteRunHead:     DefaultByteRunHead,
			ByteRunTail:     DefaultByteRunTail,
			EncodingWindow:  DefaultEncodingWindow,
			StructureWindow: DefaultStructureWindow,
		},
		ReadabilityThreshold: DefaultReadabilityThreshold,
		Budget: BudgetSettings{
			Text:    DefaultTextBudget,
			Excerpt: DefaultExcerptBudget,
		},
		Intake: IntakeSettings{
			MaxBytes:     DefaultMaxFileBytes,
			AllowedTypes: DefaultAllowedTypes(),
		},
	}
}

// DefaultAllowedTypes returns the MIME types accepted at intake.
func DefaultAllowedTypes() []string {
	return []string{
		MIMETypePDF,
		MIMETypeMSWord,
		MIMETypeDOCX,
		MIMETypePlainText,
	}
}

// Validate checks that windows and budgets are usable.
func (s ExtractionSettings) Validate() error {
	if s.Recovery.ByteRunHead < 0 || s.Recovery.ByteRunTail < 0 {
		return fmt.Errorf("%w: byte-run windows must not be negative", ErrInvalidSettings)
	}
	if s.Recovery.EncodingWindow <= 0 {
		return fmt.Errorf("%w: encoding window must be positive, got %d",
			ErrInvalidSettings, s.Recovery.EncodingWindow)
	}
	if s.Recovery.StructureWindow < 0 {
		return fmt.Errorf("%w: structure window must not be negative", ErrInvalidSettings)
	}
	if s.ReadabilityThreshold <= 0 || s.ReadabilityThreshold > 1 {
		return fmt.Errorf("%w: readability threshold must be in (0, 1], got %v",
			ErrInvalidSettings, s.ReadabilityThreshold)
	}
	if s.Budget.Text <= 0 {
		return fmt.Errorf("%w: text budget must be positive, got %d", ErrInvalidSettings, s.Budget.Text)
	}
	if s.Budget.Excerpt <= 0 {
		return fmt.Errorf("%w: excerpt budget must be positive, got %d", ErrInvalidSettings, s.Budget.Excerpt)
	}
	return nil
}
