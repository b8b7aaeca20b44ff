package mcp

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/services"
)

func TestServer_handleExtract(t *testing.T) {
	ctx := context.Background()

	t.Run("returns extraction", func(t *testing.T) {
		mock := &mockExtractionService{
			extraction: &domain.Extraction{
				Text:     "Senior Engineer",
				Excerpt:  "Senior Engineer",
				Strategy: domain.StrategyByteRun,
				Attempts: []domain.RecoveryAttempt{{Strategy: domain.StrategyByteRun, Text: "Senior Engineer"}},
			},
		}
		server, err := NewServer(&Ports{Extraction: mock})
		require.NoError(t, err)

		input := ExtractInput{
			ContentBase64: base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
			MIMEType:      "application/pdf",
		}
		_, output, err := server.handleExtract(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "Senior Engineer", output.Text)
		assert.Equal(t, "byte_run", output.Strategy)
		assert.False(t, output.Placeholder)
		require.Len(t, output.Attempts, 1)
		assert.Equal(t, AttemptOutput{Strategy: "byte_run", Length: 15}, output.Attempts[0])
		assert.Equal(t, "application/pdf", mock.lastRaw.MIMEType)
		assert.Equal(t, []byte("%PDF-1.4"), mock.lastRaw.Content)
	})

	t.Run("sniffs mime type when empty", func(t *testing.T) {
		mock := &mockExtractionService{extraction: &domain.Extraction{}}
		server, err := NewServer(&Ports{Extraction: mock})
		require.NoError(t, err)

		input := ExtractInput{ContentBase64: base64.StdEncoding.EncodeToString([]byte("%PDF-1.7 body"))}
		_, _, err = server.handleExtract(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "application/pdf", mock.lastRaw.MIMEType)
	})

	t.Run("max length bounds text", func(t *testing.T) {
		mock := &mockExtractionService{extraction: &domain.Extraction{Text: strings.Repeat("a", 50)}}
		server, err := NewServer(&Ports{Extraction: mock})
		require.NoError(t, err)

		input := ExtractInput{ContentBase64: "eA==", MIMEType: "text/plain", MaxLength: 10}
		_, output, err := server.handleExtract(ctx, nil, input)

		require.NoError(t, err)
		assert.Len(t, output.Text, 10)
	})

	t.Run("invalid base64", func(t *testing.T) {
		server, err := NewServer(&Ports{Extraction: &mockExtractionService{}})
		require.NoError(t, err)

		_, _, err = server.handleExtract(ctx, nil, ExtractInput{ContentBase64: "not base64!"})

		assert.ErrorIs(t, err, ErrInvalidContent)
	})

	t.Run("returns error on extraction failure", func(t *testing.T) {
		mock := &mockExtractionService{err: errors.New("extraction failed")}
		server, err := NewServer(&Ports{Extraction: mock})
		require.NoError(t, err)

		_, _, err = server.handleExtract(ctx, nil, ExtractInput{ContentBase64: "eA==", MIMEType: "text/plain"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "extraction failed")
	})
}

func TestServer_handleExtract_RealPipeline(t *testing.T) {
	svc, err := services.NewExtractionServiceFromSettings(domain.DefaultExtractionSettings())
	require.NoError(t, err)
	server, err := NewServer(&Ports{Extraction: svc})
	require.NoError(t, err)

	t.Run("placeholder for image-only pdf", func(t *testing.T) {
		input := ExtractInput{
			ContentBase64: base64.StdEncoding.EncodeToString([]byte{0x00, 0xFF, 0x00, 0xFF}),
			MIMEType:      "application/pdf",
		}
		_, output, err := server.handleExtract(context.Background(), nil, input)

		require.NoError(t, err)
		assert.True(t, output.Placeholder)
		assert.Equal(t, domain.ExtractionFailedNotice, output.Text)
		assert.Len(t, output.Attempts, 3)
	})

	t.Run("unsupported type is an error", func(t *testing.T) {
		input := ExtractInput{
			ContentBase64: base64.StdEncoding.EncodeToString([]byte("GIF89a")),
			MIMEType:      "image/gif",
		}
		_, _, err := server.handleExtract(context.Background(), nil, input)

		assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	})
}
