package domain

// RawDocument represents opaque uploaded bytes before text recovery.
// It is input only and is never mutated by the pipeline.
type RawDocument struct {
	// URI is the original location (file path, upload name, etc).
	URI string

	// MIMEType is the declared content type (e.g., "application/pdf").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains caller-supplied key-value pairs.
	Metadata map[string]any
}

// Size returns the content length in bytes.
func (r *RawDocument) Size() int {
	if r == nil {
		return 0
	}
	return len(r.Content)
}
