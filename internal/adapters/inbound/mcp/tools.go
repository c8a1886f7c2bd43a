package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/costflow/costflow/internal/adapters/outbound/config"
	"github.com/costflow/costflow/internal/adapters/outbound/gitinfo"
	"github.com/costflow/costflow/internal/application"
	"github.com/costflow/costflow/internal/domain"
)

// registerTools registers all costflow MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string, logger zerolog.Logger) {
	// 1. costflow_quote
	s.AddTool(
		mcplib.NewTool("costflow_quote",
			mcplib.WithDescription("Compute the adjusted cost of an order using the project's pipeline configuration. Returns the quote as JSON."),
			mcplib.WithString("cost",
				mcplib.Required(),
				mcplib.Description("Order cost as a decimal string, e.g. 2000 or 149.90"),
			),
			mcplib.WithString("date", mcplib.Description("Order date in RFC 3339 (default: now)")),
			mcplib.WithString("customer", mcplib.Description("Customer reference")),
			mcplib.WithString("invoice", mcplib.Description("Override the invoice variant (inv1-inv5)")),
			mcplib.WithString("shipping", mcplib.Description("Override the shipping variant (sh1-sh3)")),
			mcplib.WithString("freight", mcplib.Description("Override the freight variant (fr1-fr6)")),
			mcplib.WithString("availability", mcplib.Description("Override the availability variant (av1-av4)")),
			mcplib.WithString("shipping_date", mcplib.Description("Override the shipping date variant (sd1-sd5)")),
		),
		handleQuote(projectPath, logger),
	)

	// 2. costflow_discount
	s.AddTool(
		mcplib.NewTool("costflow_discount",
			mcplib.WithDescription("Evaluate the discount for an order and explain which catalog rules were averaged"),
			mcplib.WithString("cost",
				mcplib.Required(),
				mcplib.Description("Order cost as a decimal string"),
			),
			mcplib.WithString("date", mcplib.Description("Order date in RFC 3339 (default: now)")),
		),
		handleDiscount(),
	)

	// 3. costflow_variants
	s.AddTool(
		mcplib.NewTool("costflow_variants",
			mcplib.WithDescription("List the registered variants of every pipeline stage category"),
		),
		handleVariants(),
	)
}

func orderRequest(request mcplib.CallToolRequest) (application.OrderRequest, error) {
	cost, err := request.RequireString("cost")
	if err != nil {
		return application.OrderRequest{}, err
	}
	date := request.GetString("date", "")
	if date == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}
	return application.OrderRequest{
		CustomerID: request.GetString("customer", ""),
		Cost:       cost,
		Date:       date,
	}, nil
}

func handleQuote(projectPath string, logger zerolog.Logger) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		req, err := orderRequest(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		overrides := domain.ProcessConfiguration{
			Invoice:      domain.InvoiceVariant(request.GetString("invoice", "")),
			Shipping:     domain.ShippingVariant(request.GetString("shipping", "")),
			Freight:      domain.FreightVariant(request.GetString("freight", "")),
			Availability: domain.AvailabilityVariant(request.GetString("availability", "")),
			ShippingDate: domain.ShippingDateVariant(request.GetString("shipping_date", "")),
		}

		svc := application.NewQuoteService(config.New(), gitinfo.New(), logger)
		quote, err := svc.Quote(projectPath, req, overrides)
		if err != nil {
			return errorResult(fmt.Sprintf("quote failed: %v", err)), nil
		}
		return jsonResult(quote)
	}
}

func handleDiscount() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		req, err := orderRequest(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		results, err := application.NewDiscountService(nil).Evaluate(req)
		if err != nil {
			return errorResult(fmt.Sprintf("discount failed: %v", err)), nil
		}
		return jsonResult(results[0])
	}
}

func handleVariants() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(application.Variants())
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
