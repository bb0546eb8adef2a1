// Package selection implements discrete and visual-range selection over an
// ordered index space. The controller never looks at item content; indices
// are its whole world.
package selection

import "sort"

// Controller holds the selected set and the transient visual-mode anchor.
// The anchor exists exactly while visual mode is active.
type Controller struct {
	selected    map[int]struct{}
	visualMode  bool
	visualStart int
}

// New returns an empty controller.
func New() *Controller {
	return &Controller{selected: make(map[int]struct{})}
}

// VisualMode reports whether a visual range is being built.
func (c *Controller) VisualMode() bool {
	return c.visualMode
}

// VisualRange returns the inclusive range between anchor and cursor, or
// ok=false outside visual mode.
func (c *Controller) VisualRange(cursor int) (lo, hi int, ok bool) {
	if !c.visualMode {
		return 0, 0, false
	}
	lo, hi = c.visualStart, cursor
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// IsSelected reports whether index is selected outright or covered by the
// pending visual range.
func (c *Controller) IsSelected(index, cursor int) bool {
	if _, ok := c.selected[index]; ok {
		return true
	}
	if lo, hi, ok := c.VisualRange(cursor); ok && lo <= index && index <= hi {
		return true
	}
	return false
}

// Toggle flips membership of index. An active visual range is cancelled
// without committing; single toggles and range edits never mix.
func (c *Controller) Toggle(index int) bool {
	c.cancelVisual()
	if _, ok := c.selected[index]; ok {
		delete(c.selected, index)
	} else {
		c.selected[index] = struct{}{}
	}
	return true
}

// EnterVisual anchors a visual range at cursor. No-op if already active.
func (c *Controller) EnterVisual(cursor int) {
	if c.visualMode {
		return
	}
	c.visualMode = true
	c.visualStart = cursor
}

// ExitVisual leaves visual mode. When confirm is true the pending range is
// added to the selected set, bounded by count. Reports whether the
// selection changed.
func (c *Controller) ExitVisual(confirm bool, cursor, count int) bool {
	changed := false
	if c.visualMode && confirm {
		lo, hi, _ := c.VisualRange(cursor)
		for i := lo; i <= hi; i++ {
			if i >= 0 && i < count {
				c.selected[i] = struct{}{}
			}
		}
		changed = true
	}
	c.cancelVisual()
	return changed
}

// ToggleVisual enters visual mode, or confirms and leaves it when active.
func (c *Controller) ToggleVisual(cursor, count int) bool {
	if !c.visualMode {
		c.EnterVisual(cursor)
		return false
	}
	return c.ExitVisual(true, cursor, count)
}

// ClearAll empties the selection and cancels visual mode. Reports whether
// anything was selected.
func (c *Controller) ClearAll() bool {
	had := len(c.selected) > 0
	c.selected = make(map[int]struct{})
	c.cancelVisual()
	return had
}

// SelectAll selects indices 0..count-1 and cancels visual mode. Reports
// whether the selection grew.
func (c *Controller) SelectAll(count int) bool {
	before := len(c.selected)
	for i := 0; i < count; i++ {
		c.selected[i] = struct{}{}
	}
	c.cancelVisual()
	return len(c.selected) != before
}

// Indices returns the selected indices in ascending order.
func (c *Controller) Indices() []int {
	out := make([]int, 0, len(c.selected))
	for i := range c.selected {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Count returns the number of explicitly selected indices.
func (c *Controller) Count() int {
	return len(c.selected)
}

func (c *Controller) cancelVisual() {
	c.visualMode = false
	c.visualStart = 0
}
