package tui

import (
	"fmt"
	"strings"

	"github.com/costflow/costflow/internal/domain/stages"
)

// RenderVariants lists the registered variants per stage category.
func RenderVariants(categories []stages.CategoryVariants) string {
	var b strings.Builder
	b.WriteString("\n")
	for i, cv := range categories {
		b.WriteString("  " + titleStyle.Render(categoryLabel(cv.Category)) + "\n")
		for _, v := range cv.Variants {
			fmt.Fprintf(&b, "    %s %s\n", labelStyle.Render(padRight(v.Choice, 6)), dimStyle.Render(humanize(v.Name)))
		}
		if i < len(categories)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}
