package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		if !strings.HasSuffix(data, "\n") {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+c: keluar"))

	return b.String()
}

// fitText truncates v to max display cells, counting wide runes correctly.
// Newlines are flattened so one note always occupies one row.
func fitText(v string, max int) string {
	v = strings.Join(strings.Fields(v), " ")
	if max <= 0 || runewidth.StringWidth(v) <= max {
		return v
	}
	if max <= 3 {
		return runewidth.Truncate(v, max, "")
	}
	return runewidth.Truncate(v, max, "...")
}
