// Package mcp provides an MCP (Model Context Protocol) server adapter for docsift.
// It lets AI assistants hand documents to the extraction pipeline and read
// back cleaned, bounded text.
package mcp

import "errors"

var (
	// ErrMissingExtractionService is returned when the extraction service is not provided.
	ErrMissingExtractionService = errors.New("mcp: extraction service is required")

	// ErrInvalidContent is returned when the tool input is not valid base64.
	ErrInvalidContent = errors.New("mcp: content_base64 is not valid base64")
)
