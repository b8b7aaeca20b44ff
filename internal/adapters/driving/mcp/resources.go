package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for docsift resources.
	uriScheme = "docsift://"
)

// settingsView is the JSON shape of the settings resource.
type settingsView struct {
	ByteRunHead          int      `json:"byte_run_head"`
	ByteRunTail          int      `json:"byte_run_tail"`
	EncodingWindow       int      `json:"encoding_window"`
	StructureWindow      int      `json:"structure_window"`
	ReadabilityThreshold float64  `json:"readability_threshold"`
	TextBudget           int      `json:"text_budget"`
	ExcerptBudget        int      `json:"excerpt_budget"`
	MaxBytes             int      `json:"max_bytes"`
	AllowedTypes         []string `json:"allowed_types"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Active extraction windows, budgets and intake limits",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleSettingsResource returns the active settings, or the defaults when
// no settings service is wired.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := domain.DefaultExtractionSettings()
	if s.ports.Settings != nil {
		current, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("reading settings: %w", err)
		}
		settings = *current
	}

	data, err := json.MarshalIndent(settingsView{
		ByteRunHead:          settings.Recovery.ByteRunHead,
		ByteRunTail:          settings.Recovery.ByteRunTail,
		EncodingWindow:       settings.Recovery.EncodingWindow,
		StructureWindow:      settings.Recovery.StructureWindow,
		ReadabilityThreshold: settings.ReadabilityThreshold,
		TextBudget:           settings.Budget.Text,
		ExcerptBudget:        settings.Budget.Excerpt,
		MaxBytes:             settings.Intake.MaxBytes,
		AllowedTypes:         settings.Intake.AllowedTypes,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
