package render

import "github.com/mattn/go-runewidth"

// Pane describes one bordered region of the screen.
type Pane struct {
	X       int
	Y       int
	Width   int
	Height  int
	Title   string
	Focused bool
}

// Draw paints the pane border and its content lines into the buffer. The
// focused pane gets a bold cyan border. Content is inset two columns from
// each vertical border and clipped both horizontally and vertically, so a
// view that hands over too many or too-long lines cannot corrupt its
// neighbors.
func (p Pane) Draw(b *Buffer, lines []Line) {
	if p.Width < 2 || p.Height < 2 {
		return
	}

	borderColor := ColorDefault
	if p.Focused {
		borderColor = ColorCyan
	}
	bold := p.Focused

	right := p.X + p.Width - 1
	bottom := p.Y + p.Height - 1

	b.SetCell(p.X, p.Y, '┌', borderColor, bold, false)
	b.SetCell(right, p.Y, '┐', borderColor, bold, false)
	b.SetCell(p.X, bottom, '└', borderColor, bold, false)
	b.SetCell(right, bottom, '┘', borderColor, bold, false)
	for x := p.X + 1; x < right; x++ {
		b.SetCell(x, p.Y, '─', borderColor, bold, false)
		b.SetCell(x, bottom, '─', borderColor, bold, false)
	}
	for y := p.Y + 1; y < bottom; y++ {
		b.SetCell(p.X, y, '│', borderColor, bold, false)
		b.SetCell(right, y, '│', borderColor, bold, false)
	}

	p.drawTitle(b, borderColor, bold)

	contentX := p.X + 2
	contentWidth := p.Width - 4
	if contentWidth <= 0 {
		return
	}
	maxX := contentX + contentWidth
	for i, line := range lines {
		y := p.Y + 1 + i
		if y >= bottom {
			break
		}
		x := contentX
		for _, run := range line.Runs {
			if x >= maxX {
				break
			}
			x = b.SetText(x, y, maxX, run.Text, run.Color, false, false)
		}
	}
}

// drawTitle centers " Title " on the top border when it fits; otherwise
// the border stays plain.
func (p Pane) drawTitle(b *Buffer, c Color, bold bool) {
	if p.Title == "" {
		return
	}
	title := " " + p.Title + " "
	w := runewidth.StringWidth(title)
	if w > p.Width-2 {
		return
	}
	x := p.X + (p.Width-w)/2
	b.SetText(x, p.Y, p.X+p.Width-1, title, c, bold, false)
}

// DrawStatusBar paints a full-width reverse-video row, padding the text
// with spaces to the right edge.
func DrawStatusBar(b *Buffer, y int, text string) {
	b.FillRow(y, ' ', ColorDefault, false, true)
	b.SetText(0, y, b.Width(), text, ColorDefault, false, true)
}
