// Package viewport maps a cursor position and variable per-item heights to
// the range of items that fits a pane, adjusting scroll position only when
// the cursor would otherwise leave the visible range.
package viewport

// Viewport tracks the scroll offset and cursor for one list pane. Items are
// addressed purely by index; heights are supplied per recompute so callers
// can re-wrap content at the current pane width first.
type Viewport struct {
	Offset int // index of the first visible item
	Cursor int // index of the active item
}

// Move shifts the cursor by delta, clamped to [0, count-1]. With no items
// the cursor stays at zero.
func (v *Viewport) Move(delta, count int) {
	if count <= 0 {
		v.Cursor = 0
		return
	}
	v.Cursor += delta
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	if v.Cursor > count-1 {
		v.Cursor = count - 1
	}
}

// ResetToStart positions the viewport at the first item.
func (v *Viewport) ResetToStart() {
	v.Offset = 0
	v.Cursor = 0
}

// ResetToEnd positions the cursor on the last item with the tail of the
// list visible, for conversation-style lists that grow at the bottom.
func (v *Viewport) ResetToEnd(height int, heights []int) {
	n := len(heights)
	if n == 0 {
		v.Offset, v.Cursor = 0, 0
		return
	}
	v.Cursor = n - 1
	v.Offset = startIncluding(v.Cursor, heights, height)
}

// Recompute applies minimal adjustment and returns the visible range as
// (count, start, end). end is exclusive. The scroll offset moves only when
// the cursor is outside the current range; a cursor item at least as tall
// as the viewport is shown alone. Every input yields a deterministic
// result; an empty list yields (0, 0, 0).
func (v *Viewport) Recompute(height int, heights []int) (int, int, int) {
	n := len(heights)
	if n == 0 {
		v.Offset, v.Cursor = 0, 0
		return 0, 0, 0
	}
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	if v.Cursor > n-1 {
		v.Cursor = n - 1
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if v.Offset > n-1 {
		v.Offset = n - 1
	}

	if height > 0 && heights[v.Cursor] >= height {
		v.Offset = v.Cursor
		return 1, v.Cursor, v.Cursor + 1
	}

	end := endFitting(v.Offset, heights, height)
	if v.Cursor < v.Offset {
		v.Offset = v.Cursor
	} else if v.Cursor >= end {
		v.Offset = startIncluding(v.Cursor, heights, height)
	}

	end = endFitting(v.Offset, heights, height)
	return end - v.Offset, v.Offset, end
}

// endFitting greedily accumulates item heights from start and returns the
// exclusive end index of the items that fit in height rows.
func endFitting(start int, heights []int, height int) int {
	used := 0
	end := start
	for i := start; i < len(heights); i++ {
		if used+heights[i] > height {
			break
		}
		used += heights[i]
		end = i + 1
	}
	return end
}

// startIncluding walks backward from cursor while one more earlier item
// still fits, returning the earliest start that keeps the cursor visible.
func startIncluding(cursor int, heights []int, height int) int {
	if cursor >= len(heights) {
		return cursor
	}
	start := cursor
	used := heights[cursor]
	for start > 0 && used+heights[start-1] <= height {
		start--
		used += heights[start]
	}
	return start
}
