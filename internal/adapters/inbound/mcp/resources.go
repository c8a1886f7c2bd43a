package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/costflow/costflow/internal/adapters/outbound/config"
	"github.com/costflow/costflow/internal/application"
)

const (
	configURI   = "costflow://config"
	variantsURI = "costflow://variants"
)

// registerResources registers all costflow MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. costflow://config - effective project configuration
	s.AddResource(
		mcplib.NewResource(
			configURI,
			"Configuration",
			mcplib.WithResourceDescription("Effective .costflow.yaml after defaults and environment overrides"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(projectPath),
	)

	// 2. costflow://variants - registered stage variants
	s.AddResource(
		mcplib.NewResource(
			variantsURI,
			"Stage Variants",
			mcplib.WithResourceDescription("Registered variants per pipeline stage category"),
			mcplib.WithMIMEType("application/json"),
		),
		handleVariantsResource(),
	)
}

func handleConfigResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return jsonResource(configURI, cfg)
	}
}

func handleVariantsResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonResource(variantsURI, application.Variants())
	}
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
