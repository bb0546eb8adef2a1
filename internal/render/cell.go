// Package render draws the browser screen into a cell buffer and
// serializes it to a styled string. Every write is clipped against the
// buffer bounds, so drawing code never has to reason about the terminal
// edge.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one screen position: a rune plus its display attributes. A zero
// rune marks the shadow column of a preceding double-width rune and is
// skipped during serialization.
type Cell struct {
	Rune    rune
	Color   Color
	Bold    bool
	Reverse bool
}

// Buffer is a fixed-size grid of cells.
type Buffer struct {
	width  int
	height int
	cells  [][]Cell
}

// NewBuffer returns a buffer filled with spaces. Non-positive dimensions
// yield an empty buffer that silently swallows all writes.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{width: width, height: height}
	b.cells = make([][]Cell, height)
	for y := range b.cells {
		row := make([]Cell, width)
		for x := range row {
			row[x].Rune = ' '
		}
		b.cells[y] = row
	}
	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in rows.
func (b *Buffer) Height() int { return b.height }

// SetCell writes one rune. Writes outside the buffer are dropped. A
// double-width rune that would straddle the right edge is dropped whole.
func (b *Buffer) SetCell(x, y int, r rune, c Color, bold, reverse bool) {
	if y < 0 || y >= b.height || x < 0 || x >= b.width {
		return
	}
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return
	}
	if w == 2 {
		if x+1 >= b.width {
			return
		}
		b.cells[y][x] = Cell{Rune: r, Color: c, Bold: bold, Reverse: reverse}
		b.cells[y][x+1] = Cell{Color: c, Bold: bold, Reverse: reverse}
		return
	}
	b.cells[y][x] = Cell{Rune: r, Color: c, Bold: bold, Reverse: reverse}
}

// SetText writes a string starting at (x, y), clipping at maxX (exclusive)
// and at the buffer edge. Returns the column after the last rune written.
func (b *Buffer) SetText(x, y, maxX int, text string, c Color, bold, reverse bool) int {
	if maxX > b.width {
		maxX = b.width
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		b.SetCell(x, y, r, c, bold, reverse)
		x += w
	}
	return x
}

// FillRow overwrites a whole row with one rune and attribute set.
func (b *Buffer) FillRow(y int, r rune, c Color, bold, reverse bool) {
	if y < 0 || y >= b.height {
		return
	}
	step := runewidth.RuneWidth(r)
	if step < 1 {
		return
	}
	for x := 0; x < b.width; x += step {
		b.SetCell(x, y, r, c, bold, reverse)
	}
}

// String serializes the buffer, joining rows with newlines. With colors
// enabled, maximal runs of identically-attributed cells are wrapped in one
// style each to keep escape sequences sparse.
func (b *Buffer) String(colors bool) string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		b.writeRow(&sb, y, colors)
	}
	return sb.String()
}

func (b *Buffer) writeRow(sb *strings.Builder, y int, colors bool) {
	row := b.cells[y]
	if !colors {
		for _, cell := range row {
			if cell.Rune == 0 {
				continue
			}
			sb.WriteRune(cell.Rune)
		}
		return
	}

	var run strings.Builder
	var cur Cell
	flush := func() {
		if run.Len() == 0 {
			return
		}
		text := run.String()
		if cur.Color == ColorDefault && !cur.Bold && !cur.Reverse {
			sb.WriteString(text)
		} else {
			sb.WriteString(styleFor(cur.Color, cur.Bold, cur.Reverse).Render(text))
		}
		run.Reset()
	}
	for x, cell := range row {
		if cell.Rune == 0 {
			continue
		}
		if x == 0 || cell.Color != cur.Color || cell.Bold != cur.Bold || cell.Reverse != cur.Reverse {
			flush()
			cur = cell
		}
		run.WriteRune(cell.Rune)
	}
	flush()
}
