package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// RenderTable draws the first limit records as a bordered terminal table.
func RenderTable(records []models.Record, limit int) string {
	p := NewPreview(records, limit)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(models.Columns...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, rec := range p.Records {
		t.Row(rec.Values()...)
	}

	var b strings.Builder
	b.WriteString(t.Render())
	if footer := p.Footer(); footer != "" {
		b.WriteString("\n")
		b.WriteString(footerStyle.Render(footer))
	}
	b.WriteString("\n")
	return b.String()
}
