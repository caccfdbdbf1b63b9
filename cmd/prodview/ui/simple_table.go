package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align controls cell alignment within a SimpleTable column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// SimpleTable renders static tabular data for non-interactive output
// (the fetch command). Numeric columns are right-aligned.
type SimpleTable struct {
	Title   string
	Headers []string
	Aligns  []Align
	Rows    [][]string
}

// NewSimpleTable creates a table with the given title and headers.
// All columns default to left alignment.
func NewSimpleTable(title string, headers ...string) *SimpleTable {
	return &SimpleTable{
		Title:   title,
		Headers: headers,
		Aligns:  make([]Align, len(headers)),
		Rows:    make([][]string, 0),
	}
}

// AlignColumn sets the alignment of one column.
func (t *SimpleTable) AlignColumn(i int, a Align) *SimpleTable {
	if i >= 0 && i < len(t.Aligns) {
		t.Aligns[i] = a
	}
	return t
}

// AddRow appends a row to the table.
func (t *SimpleTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the table using the provided styles.
func (t *SimpleTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return styles.Muted.Render("no records") + "\n"
	}

	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	// Column widths from the widest cell, headers included.
	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	sepStyle := styles.Muted

	align := func(i int) lipgloss.Position {
		if i < len(t.Aligns) && t.Aligns[i] == AlignRight {
			return lipgloss.Right
		}
		return lipgloss.Left
	}

	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(colWidths[i] + 2).Align(align(i)).Render(h))
		if i < len(t.Headers)-1 {
			sb.WriteString(sepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(t.Headers) - 1
	for _, w := range colWidths {
		totalWidth += w + 2
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("-", totalWidth)) + "\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				sb.WriteString(rowStyle.Width(colWidths[i] + 2).Align(align(i)).Render(cell))
				if i < len(row)-1 {
					sb.WriteString(sepStyle.Render("|"))
				}
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
