package pager

// DefaultPageLines is how far PageUp and PageDown move.
const DefaultPageLines = 10

// Scroll tracks the first visible line of one pane. Every update clamps
// the offset into [0, max(0, total-height)], so a pane can never scroll
// past the point where the last line leaves the top of the window; a
// document shorter than the viewport pins the offset at 0. Operations
// never fail, out-of-range requests clamp silently.
type Scroll struct {
	offset int
	height int
	total  int
	page   int
}

// NewScroll creates a scroll state for a pane over total display lines
// with the given viewport height.
func NewScroll(total, height int) *Scroll {
	s := &Scroll{total: total, page: DefaultPageLines}
	s.Resize(height)
	return s
}

// Offset returns the current first visible line.
func (s *Scroll) Offset() int { return s.offset }

// Height returns the viewport height.
func (s *Scroll) Height() int { return s.height }

// Total returns the total number of display lines.
func (s *Scroll) Total() int { return s.total }

// SetPageLines overrides the PageUp/PageDown distance.
func (s *Scroll) SetPageLines(n int) {
	if n > 0 {
		s.page = n
	}
}

// SetOffset jumps to an absolute offset, clamped.
func (s *Scroll) SetOffset(offset int) {
	s.offset = offset
	s.clamp()
}

// By moves the offset by delta lines, clamped.
func (s *Scroll) By(delta int) {
	s.offset += delta
	s.clamp()
}

// Page moves the offset by one page in the given direction (negative is
// up, positive is down), clamped.
func (s *Scroll) Page(direction int) {
	if direction < 0 {
		s.By(-s.page)
		return
	}
	s.By(s.page)
}

// Home moves to the top of the document.
func (s *Scroll) Home() {
	s.offset = 0
}

// End moves to the lowest offset that still fills the viewport.
func (s *Scroll) End() {
	s.offset = s.maxOffset()
}

// Resize updates the viewport height, re-clamping the offset. Heights
// below 1 are treated as 1.
func (s *Scroll) Resize(height int) {
	if height < 1 {
		height = 1
	}
	s.height = height
	s.clamp()
}

// Percent returns how far through the document the bottom of the
// viewport is, 0-100, for the position indicator.
func (s *Scroll) Percent() int {
	max := s.maxOffset()
	if max == 0 {
		return 100
	}
	return s.offset * 100 / max
}

func (s *Scroll) maxOffset() int {
	max := s.total - s.height
	if max < 0 {
		return 0
	}
	return max
}

func (s *Scroll) clamp() {
	if s.offset > s.maxOffset() {
		s.offset = s.maxOffset()
	}
	if s.offset < 0 {
		s.offset = 0
	}
}
