package views

import (
	"triptych/internal/render"
	"triptych/internal/textwidth"
	"triptych/internal/viewport"
)

// Details is the read-only commit-details pane: git-show-shaped text,
// wrapped and colorized, scrolled by lines rather than items.
type Details struct {
	raw    []string
	scroll viewport.LineScroll

	cacheWidth int
	cacheLines []render.Line
}

// NewDetails builds an empty pane.
func NewDetails() *Details {
	return &Details{}
}

// SetDetails replaces the text and scrolls back to the top.
func (d *Details) SetDetails(lines []string) {
	d.raw = lines
	d.scroll.Reset()
	d.cacheLines = nil
}

// ScrollUp moves toward the top.
func (d *Details) ScrollUp(lines int) { d.scroll.ScrollUp(lines) }

// ScrollDown moves toward the bottom. Needs the pane height to know where
// the bottom is, so callers pass the height they last rendered at.
func (d *Details) ScrollDown(lines, height int) {
	d.scroll.ScrollDown(lines, height)
}

// Render produces up to height content lines at the given width.
func (d *Details) Render(width, height int) []render.Line {
	wrapped := d.wrappedLines(width)
	d.scroll.Total = len(wrapped)

	start, end := d.scroll.Visible(height)
	out := make([]render.Line, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, wrapped[i])
	}
	return out
}

// wrappedLines wraps and colorizes the raw text, cached per width. A
// wrapped continuation keeps the color of its source line.
func (d *Details) wrappedLines(width int) []render.Line {
	if width == d.cacheWidth && d.cacheLines != nil {
		return d.cacheLines
	}
	if width < 1 {
		width = 1
	}

	var out []render.Line
	for _, line := range render.ColorizeDetails(d.raw) {
		text := line.Text()
		if textwidth.Measure(text) <= width {
			out = append(out, line)
			continue
		}
		// Diff-stat rows keep their run structure and get clipped by the
		// pane; prose lines wrap in the line's own color.
		if len(line.Runs) > 1 {
			out = append(out, line)
			continue
		}
		color := render.ColorDefault
		if len(line.Runs) == 1 {
			color = line.Runs[0].Color
		}
		for _, w := range textwidth.Wrap(text, width) {
			out = append(out, render.Colored(render.Run{Text: w, Color: color}))
		}
	}
	d.cacheWidth = width
	d.cacheLines = out
	return out
}
