// Package cursor tracks a selection position and scroll offset for list views.
package cursor

// Cursor holds a selection position and the scroll offset needed to keep it
// on screen. List length and viewport height are parameters on every method
// because both change with the terminal size.
type Cursor struct {
	pos    int // selected index
	offset int // first visible index
	margin int // rows kept visible above/below the selection while scrolling
}

// New returns a cursor at the top of the list with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected index.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the first visible index.
func (c Cursor) Offset() int {
	return c.offset
}

// Move shifts the selection by delta, clamped to the list bounds, and scrolls
// to keep it visible. No-op on an empty list.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

// JumpStart selects the first item and resets the scroll.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.offset = 0
}

// JumpEnd selects the last item and scrolls it into view.
func (c *Cursor) JumpEnd(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = listLen - 1
	c.ensureVisible(listLen, height)
}

// EnsureVisible scrolls so the selection is on screen. Call it after setting
// the position directly with SetPos.
func (c *Cursor) EnsureVisible(listLen, height int) {
	c.ensureVisible(listLen, height)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}

	if c.pos < c.offset+c.margin {
		c.offset = max(c.pos-c.margin, 0)
	}

	if c.pos >= c.offset+height-c.margin {
		c.offset = c.pos - height + c.margin + 1
	}

	maxOffset := max(listLen-height, 0)
	c.offset = clamp(c.offset, maxOffset)
}

// ClampToBounds pulls the selection back into range after the list shrank.
// Returns true if the position changed.
func (c *Cursor) ClampToBounds(listLen int) bool {
	if listLen == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.pos = 0
		c.offset = 0
		return changed
	}

	oldPos := c.pos
	c.pos = clamp(c.pos, listLen-1)
	return c.pos != oldPos
}

// VisibleRange returns the visible index window [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = c.offset
	end = min(c.offset+height, listLen)
	return start, end
}

// SetPos sets the selection without bounds checking or scrolling. Callers
// seeding an initial selection should follow up with EnsureVisible.
func (c *Cursor) SetPos(pos int) {
	c.pos = pos
}

// HandleKey applies the shared list navigation keys and reports whether the
// key was one of them: j/down, k/up, g/home, G/end, ctrl+d and ctrl+u for
// half pages.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
		return true
	case "k", "up":
		c.Move(-1, listLen, height)
		return true
	case "g", "home":
		c.JumpStart()
		return true
	case "G", "end":
		c.JumpEnd(listLen, height)
		return true
	case "ctrl+d":
		c.Move(height/2, listLen, height)
		return true
	case "ctrl+u":
		c.Move(-height/2, listLen, height)
		return true
	}
	return false
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
