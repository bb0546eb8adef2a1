package views

import (
	"triptych/internal/item"
	"triptych/internal/render"
	"triptych/internal/selection"
	"triptych/internal/textwidth"
	"triptych/internal/viewport"
)

// Messages is the chat column: a cursor-driven list of variable-height
// messages, anchored to the newest message when a conversation loads.
type Messages struct {
	msgs        []item.Message
	vp          viewport.Viewport
	sel         *selection.Controller
	selectable  bool
	dateFormat  string
	tailPending bool

	cacheWidth int
	cacheLines [][]render.Line
}

// NewMessages builds the column. selectable turns on checkboxes and
// visual mode.
func NewMessages(selectable bool, dateFormat string) *Messages {
	return &Messages{
		sel:        selection.New(),
		selectable: selectable,
		dateFormat: dateFormat,
	}
}

// SetMessages replaces the conversation and re-anchors to its tail.
func (m *Messages) SetMessages(msgs []item.Message) {
	m.msgs = msgs
	m.sel.ClearAll()
	m.vp.ResetToStart()
	m.cacheLines = nil
	m.tailPending = len(msgs) > 0
}

// Count returns the number of messages.
func (m *Messages) Count() int { return len(m.msgs) }

// Cursor returns the cursor index.
func (m *Messages) Cursor() int { return m.vp.Cursor }

// MoveCursor moves by delta, clamped. Any explicit movement overrides a
// pending tail anchor.
func (m *Messages) MoveCursor(delta int) {
	m.tailPending = false
	m.vp.Move(delta, len(m.msgs))
}

// JumpStart puts the cursor on the first message.
func (m *Messages) JumpStart() {
	m.tailPending = false
	m.vp.ResetToStart()
}

// JumpEnd puts the cursor on the last message.
func (m *Messages) JumpEnd() {
	m.tailPending = false
	if n := len(m.msgs); n > 0 {
		m.vp.Cursor = n - 1
	}
}

// Toggle flips selection of the cursor row.
func (m *Messages) Toggle() {
	if m.selectable && len(m.msgs) > 0 {
		m.sel.Toggle(m.vp.Cursor)
	}
}

// ToggleVisual enters visual mode or confirms the pending range.
func (m *Messages) ToggleVisual() {
	if m.selectable {
		m.sel.ToggleVisual(m.vp.Cursor, len(m.msgs))
	}
}

// CancelVisual leaves visual mode without committing.
func (m *Messages) CancelVisual() {
	m.sel.ExitVisual(false, m.vp.Cursor, len(m.msgs))
}

// VisualMode reports whether a range is being built.
func (m *Messages) VisualMode() bool { return m.sel.VisualMode() }

// SelectAll selects every message.
func (m *Messages) SelectAll() {
	if m.selectable {
		m.sel.SelectAll(len(m.msgs))
	}
}

// ClearSelection drops every selected row.
func (m *Messages) ClearSelection() { m.sel.ClearAll() }

// SelectedIndices returns the selected message indices in order.
func (m *Messages) SelectedIndices() []int { return m.sel.Indices() }

// Selected returns the selected messages in conversation order.
func (m *Messages) Selected() []item.Message {
	var out []item.Message
	for _, i := range m.sel.Indices() {
		if i < len(m.msgs) {
			out = append(out, m.msgs[i])
		}
	}
	return out
}

// Render produces up to height content lines at the given width. The last
// row is the position footer, or the visual-mode banner while a range is
// open.
func (m *Messages) Render(width, height int) []render.Line {
	if height <= 0 {
		return nil
	}

	listHeight := height - 1 // footer row
	perItem := m.itemLines(width)
	heights := make([]int, len(perItem))
	for i, ls := range perItem {
		heights[i] = len(ls)
	}

	if m.tailPending {
		m.vp.ResetToEnd(listHeight, heights)
		m.tailPending = false
	}

	_, start, end := m.vp.Recompute(listHeight, heights)
	var out []render.Line
	for i := start; i < end && len(out) < listHeight; i++ {
		for _, l := range m.decorate(perItem[i], i) {
			if len(out) == listHeight {
				break
			}
			out = append(out, l)
		}
	}
	for len(out) < listHeight {
		out = append(out, render.Line{})
	}

	if m.sel.VisualMode() {
		out = append(out, visualBanner())
	} else {
		out = append(out, footer(m.vp.Cursor, len(m.msgs)))
	}
	return out
}

// itemLines wraps every message at the current width: one header line,
// the content indented four columns, and a blank separator on all but the
// last message.
func (m *Messages) itemLines(width int) [][]render.Line {
	if width == m.cacheWidth && m.cacheLines != nil {
		return m.cacheLines
	}

	contentWidth := width - 6
	if contentWidth < minSubjectWidth {
		contentWidth = minSubjectWidth
	}

	out := make([][]render.Line, len(m.msgs))
	for i, msg := range m.msgs {
		var lines []render.Line
		lines = append(lines, render.Line{}) // header filled in decorate
		for _, w := range textwidth.Wrap(msg.Content, contentWidth) {
			lines = append(lines, render.Plain(pad(4)+w))
		}
		if i < len(m.msgs)-1 {
			lines = append(lines, render.Line{})
		}
		out[i] = lines
	}
	m.cacheWidth = width
	m.cacheLines = out
	return out
}

func roleColor(r item.Role) render.Color {
	switch r {
	case item.RoleUser:
		return render.ColorCyan
	case item.RoleAssistant:
		return render.ColorGreen
	default:
		return render.ColorRed
	}
}

// decorate fills in the header row for one message: cursor arrow,
// optional checkbox, role, and timestamp.
func (m *Messages) decorate(lines []render.Line, i int) []render.Line {
	cursor := "  "
	if i == m.vp.Cursor {
		cursor = "▶ "
	}

	runs := []render.Run{{Text: cursor}}
	if m.selectable {
		box := "[ ] "
		if m.sel.IsSelected(i, m.vp.Cursor) {
			box = "[x] "
		}
		runs = append(runs, render.Run{Text: box, Color: render.ColorMagenta})
	}
	msg := m.msgs[i]
	runs = append(runs,
		render.Run{Text: string(msg.Role), Color: roleColor(msg.Role)},
		render.Run{Text: " " + msg.Time.Format(m.dateFormat) + ":", Color: render.ColorYellow},
	)

	out := make([]render.Line, len(lines))
	copy(out, lines)
	out[0] = render.Line{Runs: runs}
	return out
}
