package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Table renders columns and rows in the effective mode: a styled table in
// text mode, a pipe table in markdown mode. JSON callers encode structs
// directly instead.
func (r *Renderer) Table(columns []string, rows [][]string) {
	if len(rows) == 0 {
		r.Println("(0 rows)")
		return
	}

	switch r.EffectiveMode() {
	case ModeMarkdown:
		r.markdownTable(columns, rows)
	default:
		r.prettyTable(columns, rows)
	}
}

func (r *Renderer) prettyTable(columns []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, cell := range row {
			tr[i] = cell
		}
		t.AppendRow(tr)
	}

	t.Render()
	r.Printf("(%d rows)\n", len(rows))
}

func (r *Renderer) markdownTable(columns []string, rows [][]string) {
	r.Println(fmt.Sprintf("| %s |", strings.Join(columns, " | ")))

	seps := make([]string, len(columns))
	for i := range seps {
		seps[i] = "---"
	}
	r.Println(fmt.Sprintf("| %s |", strings.Join(seps, " | ")))

	for _, row := range rows {
		r.Println(fmt.Sprintf("| %s |", strings.Join(row, " | ")))
	}
}
