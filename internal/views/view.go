// Package views builds the content lines for each browser pane. A view
// owns its items, cursor, and scroll state, and renders to a run list the
// pane drawer can clip; it never draws borders or touches the buffer.
package views

import (
	"fmt"

	"triptych/internal/render"
)

// minSubjectWidth is the narrowest column a commit subject may start in on
// its metadata line. Below that the subject moves to its own lines.
const minSubjectWidth = 10

// footer builds the "(cursor/count)" position indicator shown on the last
// content row of a scrolling pane.
func footer(cursor, count int) render.Line {
	if count == 0 {
		return render.Plain("(0/0)")
	}
	return render.Colored(render.Run{
		Text:  fmt.Sprintf("(%d/%d)", cursor+1, count),
		Color: render.ColorBlue,
	})
}

// visualBanner marks an in-progress visual range.
func visualBanner() render.Line {
	return render.Colored(render.Run{Text: "-- VISUAL --", Color: render.ColorYellow})
}

// pad returns n spaces.
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
