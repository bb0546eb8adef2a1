package views

import (
	"triptych/internal/item"
	"triptych/internal/render"
	"triptych/internal/textwidth"
	"triptych/internal/viewport"
)

// Chat is the read-only transcript pane shown next to commit details. It
// has no cursor; the whole transcript scrolls by lines.
type Chat struct {
	msgs   []item.Message
	scroll viewport.LineScroll

	dateFormat string
	cacheWidth int
	cacheLines []render.Line
}

// NewChat builds an empty pane.
func NewChat(dateFormat string) *Chat {
	return &Chat{dateFormat: dateFormat}
}

// SetMessages replaces the transcript and scrolls back to the top. nil
// means the commit has no chat attached.
func (c *Chat) SetMessages(msgs []item.Message) {
	c.msgs = msgs
	c.scroll.Reset()
	c.cacheLines = nil
}

// Empty reports whether there is no transcript to show.
func (c *Chat) Empty() bool { return len(c.msgs) == 0 }

// ScrollUp moves toward the top.
func (c *Chat) ScrollUp(lines int) { c.scroll.ScrollUp(lines) }

// ScrollDown moves toward the bottom.
func (c *Chat) ScrollDown(lines, height int) {
	c.scroll.ScrollDown(lines, height)
}

// Render produces up to height content lines at the given width.
func (c *Chat) Render(width, height int) []render.Line {
	if len(c.msgs) == 0 {
		return []render.Line{render.Colored(render.Run{
			Text:  "No chat for this commit",
			Color: render.ColorBlue,
		})}
	}

	lines := c.transcript(width)
	c.scroll.Total = len(lines)
	start, end := c.scroll.Visible(height)
	return lines[start:end]
}

func (c *Chat) transcript(width int) []render.Line {
	if width == c.cacheWidth && c.cacheLines != nil {
		return c.cacheLines
	}

	contentWidth := width - 6
	if contentWidth < minSubjectWidth {
		contentWidth = minSubjectWidth
	}

	var out []render.Line
	for i, msg := range c.msgs {
		if i > 0 {
			out = append(out, render.Line{})
		}
		out = append(out, render.Colored(
			render.Run{Text: string(msg.Role), Color: roleColor(msg.Role)},
			render.Run{Text: " " + msg.Time.Format(c.dateFormat) + ":", Color: render.ColorYellow},
		))
		for _, w := range textwidth.Wrap(msg.Content, contentWidth) {
			out = append(out, render.Plain(pad(4)+w))
		}
	}
	c.cacheWidth = width
	c.cacheLines = out
	return out
}
