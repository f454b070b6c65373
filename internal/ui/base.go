package ui

// Base carries the size and focus bookkeeping every component needs. Embed
// it in a component model to get the standard accessors.
type Base struct {
	width, height int
	focused       bool
}

// SetFocused marks the component focused or not.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize records the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// ListHeight returns the rows left for list content after chrome overhead.
func (b Base) ListHeight(overhead int) int {
	return b.height - overhead
}
