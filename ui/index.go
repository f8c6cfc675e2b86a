package ui

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"

	"gridiron/internal/analysis"
)

// indexOverview is the static top of the service overview page, written in
// Markdown and rendered to HTML once at startup
const indexOverview = `# Gridiron

In-memory analytics over one season of college football team statistics.

## Endpoints

- [GET /api/stats](/api/stats) - dataset dimensions, column list and descriptive statistics
- [GET /health](/health) - liveness probe
`

// renderIndexPage renders the overview plus one line per scatter route
func renderIndexPage() []byte {
	var doc strings.Builder
	doc.WriteString(indexOverview)
	doc.WriteString("\n## Scatter charts\n\n")
	for _, pairing := range analysis.Pairings {
		route := plotRoute(pairing)
		fmt.Fprintf(&doc, "- [GET %s](%s) - %s\n", route, route, pairing.Title)
	}

	body := markdown.ToHTML([]byte(doc.String()), nil, nil)

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html>\n<head><title>Gridiron</title></head>\n<body>\n")
	page.Write(body)
	page.WriteString("</body>\n</html>\n")
	return []byte(page.String())
}
