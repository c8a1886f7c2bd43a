package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	mcpadapter "github.com/costflow/costflow/internal/adapters/inbound/mcp"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCostflowMCPServer(t *testing.T) {
	s := mcpadapter.NewCostflowMCPServer(t.TempDir(), zerolog.Nop())
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewCostflowMCPServer(t.TempDir(), zerolog.Nop())

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"costflow_quote",
		"costflow_discount",
		"costflow_variants",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}

func callTool(t *testing.T, name string, args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	s := mcpadapter.NewCostflowMCPServer(t.TempDir(), zerolog.Nop())
	tool, ok := s.ListTools()[name]
	require.True(t, ok)

	req := mcplib.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	return res
}

func text(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	tc, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestQuoteTool(t *testing.T) {
	res := callTool(t, "costflow_quote", map[string]any{
		"cost":          "2000",
		"date":          "2021-03-16T12:00:00Z",
		"invoice":       "inv3",
		"shipping":      "sh2",
		"freight":       "fr3",
		"availability":  "av4",
		"shipping_date": "sd2",
	})
	require.False(t, res.IsError, text(t, res))

	var quote struct {
		Adjustment struct {
			Cost    string `json:"cost"`
			Weekday int    `json:"weekday"`
		} `json:"adjustment"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &quote))
	assert.Equal(t, "1780", quote.Adjustment.Cost)
	assert.Equal(t, 1, quote.Adjustment.Weekday)
}

func TestQuoteTool_MissingCost(t *testing.T) {
	res := callTool(t, "costflow_quote", map[string]any{})
	assert.True(t, res.IsError)
}

func TestQuoteTool_UnknownVariant(t *testing.T) {
	res := callTool(t, "costflow_quote", map[string]any{"cost": "10", "freight": "fr0"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "no matching stage function")
}

func TestDiscountTool(t *testing.T) {
	res := callTool(t, "costflow_discount", map[string]any{"cost": "100"})
	require.False(t, res.IsError, text(t, res))
	assert.Contains(t, text(t, res), `"discount": "3.3333333333333333"`)
}

func TestVariantsTool(t *testing.T) {
	res := callTool(t, "costflow_variants", nil)
	require.False(t, res.IsError)

	var variants []struct {
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &variants))
	assert.Len(t, variants, 5)
}
