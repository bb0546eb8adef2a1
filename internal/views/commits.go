package views

import (
	"strings"

	"triptych/internal/item"
	"triptych/internal/render"
	"triptych/internal/selection"
	"triptych/internal/textwidth"
	"triptych/internal/viewport"
)

// Commits is the commit column. With selection enabled each row carries a
// checkbox; otherwise a bullet marks commits that already have a chat
// attached.
type Commits struct {
	commits    []item.Commit
	vp         viewport.Viewport
	sel        *selection.Controller
	selectable bool
	dateFormat string

	cacheWidth int
	cacheLines [][]render.Line
}

// NewCommits builds the column. selectable turns on checkboxes and visual
// mode; the read-only screen passes false.
func NewCommits(commits []item.Commit, selectable bool, dateFormat string) *Commits {
	return &Commits{
		commits:    commits,
		sel:        selection.New(),
		selectable: selectable,
		dateFormat: dateFormat,
	}
}

// Count returns the number of commits.
func (c *Commits) Count() int { return len(c.commits) }

// Cursor returns the cursor index.
func (c *Commits) Cursor() int { return c.vp.Cursor }

// Current returns the commit under the cursor.
func (c *Commits) Current() (item.Commit, bool) {
	if c.vp.Cursor < 0 || c.vp.Cursor >= len(c.commits) {
		return item.Commit{}, false
	}
	return c.commits[c.vp.Cursor], true
}

// MoveCursor moves by delta, clamped to the list.
func (c *Commits) MoveCursor(delta int) {
	c.vp.Move(delta, len(c.commits))
}

// JumpStart puts the cursor on the first commit.
func (c *Commits) JumpStart() { c.vp.ResetToStart() }

// JumpEnd puts the cursor on the last commit; the next render scrolls it
// into view.
func (c *Commits) JumpEnd() {
	if n := len(c.commits); n > 0 {
		c.vp.Cursor = n - 1
	}
}

// Toggle flips selection of the cursor row.
func (c *Commits) Toggle() {
	if c.selectable && len(c.commits) > 0 {
		c.sel.Toggle(c.vp.Cursor)
	}
}

// ToggleVisual enters visual mode or confirms the pending range.
func (c *Commits) ToggleVisual() {
	if c.selectable {
		c.sel.ToggleVisual(c.vp.Cursor, len(c.commits))
	}
}

// CancelVisual leaves visual mode without committing.
func (c *Commits) CancelVisual() {
	c.sel.ExitVisual(false, c.vp.Cursor, len(c.commits))
}

// VisualMode reports whether a range is being built.
func (c *Commits) VisualMode() bool { return c.sel.VisualMode() }

// SelectAll selects every commit.
func (c *Commits) SelectAll() {
	if c.selectable {
		c.sel.SelectAll(len(c.commits))
	}
}

// ClearSelection drops every selected row.
func (c *Commits) ClearSelection() { c.sel.ClearAll() }

// SelectedSHAs returns the full hashes of the selected commits in list
// order.
func (c *Commits) SelectedSHAs() []string {
	var out []string
	for _, i := range c.sel.Indices() {
		if i < len(c.commits) {
			out = append(out, c.commits[i].FullSHA)
		}
	}
	return out
}

// Render produces up to height content lines at the given width.
func (c *Commits) Render(width, height int) []render.Line {
	perItem := c.itemLines(width)
	heights := make([]int, len(perItem))
	for i, ls := range perItem {
		heights[i] = len(ls)
	}

	_, start, end := c.vp.Recompute(height, heights)
	var out []render.Line
	for i := start; i < end; i++ {
		lines := c.decorate(perItem[i], i)
		for _, l := range lines {
			if len(out) == height {
				return out
			}
			out = append(out, l)
		}
	}
	return out
}

// itemLines builds (and caches, per width) the undecorated lines of every
// commit. The first two columns are left blank for the cursor and marker,
// which change without the text changing.
func (c *Commits) itemLines(width int) [][]render.Line {
	if width == c.cacheWidth && c.cacheLines != nil {
		return c.cacheLines
	}

	prefix := c.prefixWidth()
	out := make([][]render.Line, len(c.commits))
	for i, cm := range c.commits {
		out[i] = c.buildLines(cm, width, prefix)
	}
	c.cacheWidth = width
	c.cacheLines = out
	return out
}

func (c *Commits) prefixWidth() int {
	if c.selectable {
		return 6 // ">[x]* "
	}
	return 3 // ">• "
}

// buildLines lays out one commit: metadata first, then the subject either
// on the same line or wrapped below it when the column is too narrow to
// leave the subject a readable start.
func (c *Commits) buildLines(cm item.Commit, width, prefix int) []render.Line {
	avail := width - prefix
	if avail < 1 {
		avail = 1
	}

	date := cm.Time.Format(c.dateFormat)
	if textwidth.Measure(date) > avail {
		date = textwidth.Truncate(date, avail, "..")
	}
	author := cm.Author
	authorAvail := avail - textwidth.Measure(date) - 1
	if textwidth.Measure(author) > authorAvail {
		author = textwidth.Truncate(author, authorAvail, "..")
	}

	metaRuns := []render.Run{
		{Text: date, Color: render.ColorYellow},
	}
	metaWidth := textwidth.Measure(date)
	if author != "" {
		metaRuns = append(metaRuns, render.Run{Text: " " + author, Color: render.ColorCyan})
		metaWidth += 1 + textwidth.Measure(author)
	}

	subjectStart := metaWidth + 1
	if avail-subjectStart >= minSubjectWidth {
		// Subject starts on the metadata line; whatever does not fit wraps
		// onto continuation lines under the prefix.
		first, rest := splitSubject(cm.Subject, avail-subjectStart)
		lines := []render.Line{{Runs: append(metaRuns, render.Run{Text: " " + first})}}
		if rest != "" {
			for _, w := range textwidth.Wrap(rest, avail) {
				lines = append(lines, render.Plain(w))
			}
		}
		return lines
	}

	lines := []render.Line{{Runs: metaRuns}}
	for _, w := range textwidth.Wrap(cm.Subject, avail) {
		lines = append(lines, render.Plain(w))
	}
	return lines
}

// splitSubject returns the leading words of subject that fit in width
// columns, and the remainder. A first word wider than the line is
// hard-split so the metadata row always carries a fragment.
func splitSubject(subject string, width int) (string, string) {
	words := strings.Fields(subject)
	if len(words) == 0 {
		return "", ""
	}

	used, n := 0, 0
	for _, w := range words {
		ww := textwidth.Measure(w)
		if n > 0 {
			ww++
		}
		if used+ww > width {
			break
		}
		used += ww
		n++
	}
	if n == 0 {
		parts := textwidth.Wrap(words[0], width)
		head := parts[0]
		tail := words[0][len(head):]
		return head, strings.Join(append([]string{tail}, words[1:]...), " ")
	}
	return strings.Join(words[:n], " "), strings.Join(words[n:], " ")
}

// decorate prepends the cursor and marker columns to a commit's cached
// lines. Continuation lines get matching indentation.
func (c *Commits) decorate(lines []render.Line, i int) []render.Line {
	cursor := " "
	if i == c.vp.Cursor {
		cursor = ">"
	}

	var marker string
	var markerColor render.Color
	if c.selectable {
		box := "[ ]"
		if c.sel.IsSelected(i, c.vp.Cursor) {
			box = "[x]"
		}
		note := " "
		if c.commits[i].HasNote {
			note = "*"
		}
		marker = box + note + " "
		markerColor = render.ColorMagenta
	} else {
		marker = "  "
		if c.commits[i].HasNote {
			marker = "• "
		}
		markerColor = render.ColorGreen
	}

	out := make([]render.Line, len(lines))
	for j, l := range lines {
		if j == 0 {
			runs := []render.Run{
				{Text: cursor},
				{Text: marker, Color: markerColor},
			}
			out[j] = render.Line{Runs: append(runs, l.Runs...)}
			continue
		}
		out[j] = render.Line{Runs: append([]render.Run{{Text: pad(1 + textwidth.Measure(marker))}}, l.Runs...)}
	}
	return out
}
