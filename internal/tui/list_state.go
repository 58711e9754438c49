package tui

// listState is the cursor/viewport pair for one visible list. idx is 1-based
// and stays within [1, n] for a non-empty list; it is 0 only when the list is
// empty. off is the 0-based index of the first visible row.
type listState struct {
	idx int
	off int
}

// clamp re-establishes the cursor invariant after the underlying list changed.
func (l *listState) clamp(n int) {
	if n <= 0 {
		l.idx = 0
		l.off = 0
		return
	}
	if l.idx < 1 {
		l.idx = 1
	}
	if l.idx > n {
		l.idx = n
	}
	if l.off < 0 {
		l.off = 0
	}
	if l.off > l.idx-1 {
		l.off = l.idx - 1
	}
}

// move shifts the cursor by delta, clamped to the list bounds. A move on the
// empty cursor enters the list at the first row; the delta only applies once a
// row is already selected.
func (l *listState) move(delta, n int) {
	if n <= 0 {
		l.idx = 0
		l.off = 0
		return
	}
	if l.idx == 0 {
		l.idx = 1
		l.clamp(n)
		return
	}
	l.idx += delta
	l.clamp(n)
}

// scrollTo adjusts the viewport offset so the cursor row is visible within
// height rows.
func (l *listState) scrollTo(height int) {
	if height <= 0 || l.idx == 0 {
		return
	}
	if l.idx-1 < l.off {
		l.off = l.idx - 1
	}
	if l.idx-1 >= l.off+height {
		l.off = l.idx - height
	}
}

func (l *listState) reset() {
	l.idx = 0
	l.off = 0
}
