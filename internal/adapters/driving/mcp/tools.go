package mcp

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/normalisers"
	"github.com/custodia-labs/docsift/internal/postprocessors/truncator"
)

// ExtractInput is the input schema for the extract_text tool.
type ExtractInput struct {
	ContentBase64 string `json:"content_base64" jsonschema:"the document bytes, base64 encoded"`
	MIMEType      string `json:"mime_type,omitempty" jsonschema:"declared content type; sniffed from the bytes when empty"`
	MaxLength     int    `json:"max_length,omitempty" jsonschema:"further bound on the returned text in characters (default: configured text budget)"`
}

// ExtractOutput is the output schema for the extract_text tool.
type ExtractOutput struct {
	Text        string          `json:"text"`
	Excerpt     string          `json:"excerpt"`
	Strategy    string          `json:"strategy"`
	Placeholder bool            `json:"placeholder"`
	Attempts    []AttemptOutput `json:"attempts"`
}

// AttemptOutput summarises one recovery attempt.
type AttemptOutput struct {
	Strategy string `json:"strategy"`
	Length   int    `json:"length"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_text",
		Description: "Recover readable text from a PDF, Word or plain text document",
	}, s.handleExtract)
}

// handleExtract handles the extract_text tool invocation.
func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	content, err := base64.StdEncoding.DecodeString(input.ContentBase64)
	if err != nil {
		return nil, ExtractOutput{}, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	mimeType := input.MIMEType
	if mimeType == "" {
		mimeType = normalisers.DetectMIMEType("", content)
	}

	ext, err := s.ports.Extraction.Extract(ctx, &domain.RawDocument{
		URI:      "mcp:extract_text",
		MIMEType: mimeType,
		Content:  content,
	})
	if err != nil {
		return nil, ExtractOutput{}, err
	}

	return nil, toOutput(ext, input.MaxLength), nil
}

func toOutput(ext *domain.Extraction, maxLength int) ExtractOutput {
	text := ext.Text
	if maxLength > 0 {
		text = truncator.Truncate(text, maxLength)
	}

	out := ExtractOutput{
		Text:        text,
		Excerpt:     ext.Excerpt,
		Strategy:    ext.Strategy.String(),
		Placeholder: ext.Placeholder,
		Attempts:    make([]AttemptOutput, len(ext.Attempts)),
	}
	for i, a := range ext.Attempts {
		out.Attempts[i] = AttemptOutput{Strategy: a.Strategy.String(), Length: len(a.Text)}
	}
	return out
}
