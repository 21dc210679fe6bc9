package menu

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/microjournal/mjmenu/internal/ansi"
)

// cell renders one grid entry, e.g. "M - Markdown" with a colored key.
func cell(e Entry) string {
	return ansi.Pipe(fmt.Sprintf("%s%c|23 - ", e.KeyColor, unicode.ToUpper(e.Key))) + ansi.Pipe(e.Label)
}

// gridLines lays out the table rows. Every cell is padded to the visible
// width of the widest cell in its column and cells are joined by one
// space, so full rows share one width and stay aligned once centered.
func (t *Table) gridLines() []string {
	var colWidth []int
	cells := make([][]string, len(t.rows))
	for i, row := range t.rows {
		for j, k := range row {
			c := cell(t.entry(k))
			cells[i] = append(cells[i], c)
			if j >= len(colWidth) {
				colWidth = append(colWidth, 0)
			}
			if w := ansi.VisibleLength(c); w > colWidth[j] {
				colWidth[j] = w
			}
		}
	}

	lines := make([]string, 0, len(cells))
	for _, row := range cells {
		padded := make([]string, len(row))
		for j, c := range row {
			padded[j] = ansi.PadVisible(c, colWidth[j], ' ')
		}
		lines = append(lines, strings.Join(padded, " "))
	}
	return lines
}

// RenderFrame returns one full menu frame for a terminal width columns
// wide: clear screen, banner, entry grid and prompt. Every line is
// centered on its visible width.
func RenderFrame(t *Table, width int) string {
	var b strings.Builder
	b.WriteString(ansi.ClearScreen())
	b.WriteString("\n")
	for _, line := range Banner {
		b.WriteString(ansi.Center(ansi.Pipe(line), width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, line := range t.gridLines() {
		b.WriteString(ansi.Center(line, width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(ansi.Center(ansi.Pipe(Prompt), width))
	return b.String()
}

// centered writes each line centered for width, followed by a newline.
func centered(width int, lines ...string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(ansi.Center(ansi.Pipe(line), width))
		b.WriteString("\n")
	}
	return b.String()
}
