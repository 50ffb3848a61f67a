package notifier

import (
	"fmt"
	"html"
	"strings"

	"Warren/internal/model"
)

// FormatReport formats a report as an HTML Telegram message.
func FormatReport(r model.Report) string {
	var b strings.Builder

	icon := "🟢"
	if r.Recommendation != model.Buy {
		icon = "🔴"
	}
	b.WriteString(fmt.Sprintf("%s <b>%s</b>: %s\n\n", icon, html.EscapeString(r.Symbol), html.EscapeString(string(r.Recommendation))))
	b.WriteString(fmt.Sprintf("Current: %.2f\n", r.History.Current))
	b.WriteString(fmt.Sprintf("3-month range: %.2f - %.2f\n", r.History.Low, r.History.High))
	b.WriteString(fmt.Sprintf("Position: %.2f%%\n", r.Position))
	if !r.GeneratedAt.IsZero() {
		b.WriteString(fmt.Sprintf("\n<i>%s</i>", r.GeneratedAt.Format("2006-01-02 15:04 MST")))
	}
	return b.String()
}

// FormatError formats a failed report run.
func FormatError(symbol string, err error) string {
	return fmt.Sprintf("❌ <b>%s</b>: %s", html.EscapeString(symbol), html.EscapeString(err.Error()))
}
