package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/costflow/costflow/internal/domain"
	"github.com/fatih/camelcase"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	costStyle     = lipgloss.NewStyle().Bold(true).Foreground(success)
	mondayStyle   = lipgloss.NewStyle().Bold(true).Foreground(warning)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderQuote formats a quote for terminal output.
func RenderQuote(q *domain.Quote) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("costflow")
	subtitle := dimStyle.Render("Adjusted Cost")
	total := costStyle.Render(q.Adjustment.Cost.StringFixed(2))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + total))
	b.WriteString("\n\n")

	// ── Order ──
	b.WriteString("  " + titleStyle.Render("Order") + "\n")
	renderRow(&b, "id", q.Order.ID)
	if q.Order.CustomerID != "" {
		renderRow(&b, "customer", q.Order.CustomerID)
	}
	renderRow(&b, "date", q.Order.Date.Format(time.RFC3339))
	renderRow(&b, "cost", q.Order.Cost.StringFixed(2))
	renderRow(&b, "discount", q.Order.Discount.StringFixed(2))
	b.WriteString("\n")

	// ── Stages ──
	b.WriteString("  " + titleStyle.Render("Stages") + "\n")
	for _, s := range q.Adjustment.Stages {
		renderRow(&b, categoryLabel(s.Category), s.Variant)
	}
	b.WriteString("\n")

	// ── Result ──
	b.WriteString("  " + titleStyle.Render("Result") + "\n")
	renderRow(&b, "freight", q.Adjustment.Freight.Cost.StringFixed(2))
	shipDate := q.Adjustment.ShippingDate.Date.Format(time.RFC3339)
	day := q.Adjustment.Weekday.String()
	if q.Adjustment.Weekday == time.Monday {
		day = mondayStyle.Render(day)
	}
	renderRow(&b, "shipping date", shipDate+"  "+day)
	renderRow(&b, "surcharge", "+"+q.Adjustment.Surcharge.StringFixed(2))
	renderRow(&b, "adjusted cost", costStyle.Render(q.Adjustment.Cost.StringFixed(2)))

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n")
	if q.ConfigRevision != "" {
		b.WriteString("  " + dimStyle.Render("config @ "+shortHash(q.ConfigRevision)) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func renderRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "    %s %s\n", labelStyle.Render(padRight(label, 16)), value)
}

// categoryLabel turns "shipping_date" into "Shipping Date".
func categoryLabel(c domain.Category) string {
	return humanize(strings.ReplaceAll(string(c), "_", " "))
}

// humanize splits identifiers such as "FreightCost3" into "Freight Cost 3"
// and capitalises the first letter of each word.
func humanize(name string) string {
	var words []string
	for _, field := range strings.Fields(name) {
		for _, w := range camelcase.Split(field) {
			if w == "" {
				continue
			}
			words = append(words, strings.ToUpper(w[:1])+w[1:])
		}
	}
	return strings.Join(words, " ")
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
