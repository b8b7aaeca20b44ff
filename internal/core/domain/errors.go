package domain

import "errors"

// Domain errors represent pipeline failures.
// Only ErrNoTextExtractable is expected to reach callers of the recovery
// cascade; the others come from intake validation and configuration.
var (
	// ErrNoTextExtractable indicates every binary recovery strategy came back empty.
	// Callers may substitute a placeholder notice instead of failing the request.
	ErrNoTextExtractable = errors.New("no extractable text")

	// ErrUnsupportedEncoding indicates a strict decoder rejected the byte sequence.
	// It is swallowed by the encoding prober and never crosses the pipeline boundary.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a MIME type that intake does not accept
	// or that no normaliser handles.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrFileTooLarge indicates the document exceeds the configured size limit.
	ErrFileTooLarge = errors.New("file too large")


	// ErrInvalidSettings indicates extraction settings failed validation.
	ErrInvalidSettings = errors.New("invalid settings")
)
