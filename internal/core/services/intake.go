package services

import (
	"fmt"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

// Intake validates documents before any recovery work is done.
type Intake struct {
	maxBytes int
	allowed  map[string]struct{}
}

// NewIntake creates an intake validator. MaxBytes of zero or less disables
// the size check and an empty AllowedTypes accepts every type.
func NewIntake(settings domain.IntakeSettings) *Intake {
	i := &Intake{maxBytes: settings.MaxBytes}
	if len(settings.AllowedTypes) > 0 {
		i.allowed = make(map[string]struct{}, len(settings.AllowedTypes))
		for _, t := range settings.AllowedTypes {
			i.allowed[mediaType(t)] = struct{}{}
		}
	}
	return i
}

// Validate checks presence, type and size, in that order. Zero-byte content
// passes: an empty binary document ends up as the failure notice and an empty
// text document as "".
func (i *Intake) Validate(raw *domain.RawDocument) error {
	if raw == nil {
		return domain.ErrInvalidInput
	}
	if i.allowed != nil {
		if _, ok := i.allowed[mediaType(raw.MIMEType)]; !ok {
			return fmt.Errorf("%q: %w", raw.MIMEType, domain.ErrUnsupportedType)
		}
	}
	if i.maxBytes > 0 && raw.Size() > i.maxBytes {
		return fmt.Errorf("%d bytes exceeds limit of %d: %w", raw.Size(), i.maxBytes, domain.ErrFileTooLarge)
	}
	return nil
}

// Allows reports whether the MIME type passes the type check.
func (i *Intake) Allows(mimeType string) bool {
	if i.allowed == nil {
		return true
	}
	_, ok := i.allowed[mediaType(mimeType)]
	return ok
}
