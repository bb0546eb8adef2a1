package viewport

// LineScroll is the cursor-less companion to Viewport, used by read-only
// panes that scroll pre-rendered lines (commit details, chat transcripts).
type LineScroll struct {
	Offset int // first visible line
	Total  int // number of content lines
}

// ScrollUp moves toward the top. Reports whether the offset changed.
func (s *LineScroll) ScrollUp(lines int) bool {
	if s.Offset <= 0 {
		return false
	}
	s.Offset -= lines
	if s.Offset < 0 {
		s.Offset = 0
	}
	return true
}

// ScrollDown moves toward the bottom, keeping the last line reachable but
// never scrolling past it. Reports whether the offset changed.
func (s *LineScroll) ScrollDown(lines, height int) bool {
	max := s.Total - height
	if max < 0 {
		max = 0
	}
	if s.Offset >= max {
		return false
	}
	s.Offset += lines
	if s.Offset > max {
		s.Offset = max
	}
	return true
}

// Visible returns the [start, end) line range for a pane of the given
// content height, clamping the offset into range first.
func (s *LineScroll) Visible(height int) (int, int) {
	if height < 0 {
		height = 0
	}
	max := s.Total - height
	if max < 0 {
		max = 0
	}
	if s.Offset > max {
		s.Offset = max
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
	end := s.Offset + height
	if end > s.Total {
		end = s.Total
	}
	return s.Offset, end
}

// Reset returns to the top.
func (s *LineScroll) Reset() {
	s.Offset = 0
}
