package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRawDocument_Fields tests RawDocument structure fields
func TestRawDocument_Fields(t *testing.T) {
	raw := RawDocument{
		URI:      "file:///cv.pdf",
		MIMEType: "application/pdf",
		Content:  []byte("%PDF-1.4"),
		Metadata: map[string]any{"size": 8},
	}

	assert.Equal(t, "file:///cv.pdf", raw.URI)
	assert.Equal(t, "application/pdf", raw.MIMEType)
	assert.Equal(t, []byte("%PDF-1.4"), raw.Content)
	assert.Equal(t, 8, raw.Metadata["size"])
	assert.Equal(t, 8, raw.Size())
}

func TestRawDocument_SizeNil(t *testing.T) {
	var raw *RawDocument
	assert.Equal(t, 0, raw.Size())
}
