package tui

import (
	"fmt"
	"strings"

	"github.com/costflow/costflow/internal/domain"
	"github.com/costflow/costflow/internal/domain/discount"
)

// RenderDiscount shows which rules qualified and which were averaged.
func RenderDiscount(order domain.Order, b discount.Breakdown) string {
	var sb strings.Builder

	header := titleStyle.Render("Discount") + "  " + costStyle.Render(b.Discount.StringFixed(4))
	sb.WriteString(boxStyle.Render(header + "\n" + dimStyle.Render("order "+order.ID)))
	sb.WriteString("\n\n")

	for _, r := range b.Rules {
		var mark, amount string
		switch {
		case r.Selected:
			mark = passStyle.Render("✓")
			amount = r.Amount.String()
		case r.Qualified:
			mark = warnStyle.Render("·")
			amount = dimStyle.Render(r.Amount.String())
		default:
			mark = failStyle.Render("✗")
			amount = faintStyle.Render("n/a")
		}
		fmt.Fprintf(&sb, "  %s %s %s\n", mark, labelStyle.Render(padRight(r.Name, 16)), amount)
	}

	sb.WriteString("\n")
	sb.WriteString("  " + dimStyle.Render(fmt.Sprintf("mean of the %d smallest qualifying amounts", discount.RequiredRules)))
	sb.WriteString("\n\n")
	return sb.String()
}
