package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"easybudget/internal/snowball"
)

var (
	colorBorder = lipgloss.Color("#282726")
	colorText   = lipgloss.Color("#FFFCF0")
	colorAccent = lipgloss.Color("#3AA99F")
	colorDim    = lipgloss.Color("#575653")
	colorGreen  = lipgloss.Color("#879A39")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(colorText)
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// RenderTitle renders a centered title in a rounded box.
func RenderTitle(title string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(titleStyle.Render(title))
}

// RenderPlans renders one row per plan in payoff order plus a total row.
func RenderPlans(plans []snowball.Plan, summary snowball.Summary) string {
	headers := []string{"#", "Debt", "Balance", "Min/mo", "Months", "Total paid"}
	rows := make([][]string, 0, len(plans))
	for i, p := range plans {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			p.Debt.Name,
			p.Debt.Balance.StringFixed(2),
			p.Debt.MinimumPayment.StringFixed(2),
			strconv.Itoa(p.MonthsToPayOff),
			p.TotalPaid.StringFixed(2),
		})
	}
	total := []string{"", "TOTAL", "", "", strconv.Itoa(summary.LongestPayoffMonths), summary.TotalPaid.StringFixed(2)}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range append(rows, total) {
		for i, cell := range row {
			if n := lipgloss.Width(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder
	border := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < len(widths)-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}
	line := func(cells []string, style lipgloss.Style) {
		b.WriteString(dimStyle.Render("│"))
		for i, w := range widths {
			// Text columns are left-aligned, amounts right-aligned.
			format := " %*s "
			if i == 1 {
				format = " %-*s "
			}
			b.WriteString(style.Render(fmt.Sprintf(format, w, cells[i])))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	border("╭", "┬", "╮")
	line(headers, headerStyle)
	border("├", "┼", "┤")
	for _, row := range rows {
		line(row, valueStyle)
	}
	border("├", "┼", "┤")
	line(total, totalStyle)
	border("╰", "┴", "╯")
	return b.String()
}
