package views

import (
	"path"

	"triptych/internal/item"
	"triptych/internal/render"
	"triptych/internal/textwidth"
	"triptych/internal/viewport"
)

// Logs is the narrow session-log column. Every entry takes two rows:
// provider and date, then the file name indented beneath.
type Logs struct {
	entries    []item.LogEntry
	vp         viewport.Viewport
	dateFormat string
}

// NewLogs builds the column.
func NewLogs(entries []item.LogEntry, dateFormat string) *Logs {
	return &Logs{entries: entries, dateFormat: dateFormat}
}

// Count returns the number of log entries.
func (l *Logs) Count() int { return len(l.entries) }

// Cursor returns the cursor index.
func (l *Logs) Cursor() int { return l.vp.Cursor }

// Current returns the entry under the cursor.
func (l *Logs) Current() (item.LogEntry, bool) {
	if l.vp.Cursor < 0 || l.vp.Cursor >= len(l.entries) {
		return item.LogEntry{}, false
	}
	return l.entries[l.vp.Cursor], true
}

// MoveCursor moves by delta, clamped.
func (l *Logs) MoveCursor(delta int) {
	l.vp.Move(delta, len(l.entries))
}

// JumpStart puts the cursor on the first entry.
func (l *Logs) JumpStart() { l.vp.ResetToStart() }

// JumpEnd puts the cursor on the last entry.
func (l *Logs) JumpEnd() {
	if n := len(l.entries); n > 0 {
		l.vp.Cursor = n - 1
	}
}

// Render produces up to height content lines at the given width, footer
// last.
func (l *Logs) Render(width, height int) []render.Line {
	if height <= 0 {
		return nil
	}

	listHeight := height - 1
	heights := make([]int, len(l.entries))
	for i := range heights {
		heights[i] = 2
	}

	_, start, end := l.vp.Recompute(listHeight, heights)
	var out []render.Line
	for i := start; i < end && len(out) < listHeight; i++ {
		for _, line := range l.entryLines(i, width) {
			if len(out) == listHeight {
				break
			}
			out = append(out, line)
		}
	}
	for len(out) < listHeight {
		out = append(out, render.Line{})
	}
	return append(out, footer(l.vp.Cursor, len(l.entries)))
}

func (l *Logs) entryLines(i, width int) []render.Line {
	e := l.entries[i]
	cursor := "  "
	if i == l.vp.Cursor {
		cursor = "▶ "
	}

	head := textwidth.Truncate(e.Provider+" "+e.Modified.Format(l.dateFormat), width-2, "..")
	name := textwidth.Truncate(path.Base(e.URI), width-4, "..")
	return []render.Line{
		render.Colored(
			render.Run{Text: cursor},
			render.Run{Text: head, Color: render.ColorCyan},
		),
		render.Colored(
			render.Run{Text: pad(4) + name, Color: render.ColorBlue},
		),
	}
}
