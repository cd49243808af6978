package views

// ensureVisible returns the viewport offset that keeps index inside a window
// of height rows over total rows, moving as little as possible.
func ensureVisible(index, offset, height, total int) int {
	if height <= 0 || total <= height {
		return 0
	}
	if index < 0 || index >= total {
		return clampOffset(offset, height, total)
	}

	// If the item is above the viewport, scroll up
	if index < offset {
		offset = index
	}
	// If it is below, scroll down just far enough
	if index >= offset+height {
		offset = index - height + 1
	}
	return clampOffset(offset, height, total)
}

// clampOffset keeps the window inside the list after it shrinks
func clampOffset(offset, height, total int) int {
	maxOffset := total - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
