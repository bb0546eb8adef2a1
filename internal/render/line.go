package render

// Run is a span of text drawn with one color. Bold and reverse are pane
// concerns and stay out of content runs.
type Run struct {
	Text  string
	Color Color
}

// Line is one row of pane content: an ordered run list. Views build lines;
// the pane drawer clips and places them.
type Line struct {
	Runs []Run
}

// Plain returns a single-run default-colored line.
func Plain(text string) Line {
	return Line{Runs: []Run{{Text: text}}}
}

// Colored returns a line from explicit runs.
func Colored(runs ...Run) Line {
	return Line{Runs: runs}
}

// Text returns the line's concatenated text without attributes.
func (l Line) Text() string {
	var out string
	for _, r := range l.Runs {
		out += r.Text
	}
	return out
}
