package srtp

// replayWindow tracks the highest accepted 48-bit packet index and a
// 64-bit bitmask of which of the 64 indices at or below it have already
// been seen. It never rejects based on index alone beyond the window
// boundary below.
type replayWindow struct {
	index uint64
	mask  uint64
	set   bool
}

// check reports whether guessedIndex may still be accepted: it has not
// already been seen, and it is not so far behind the stored index that
// the window can no longer represent it. It does not mutate the window;
// callers must call update only after the packet also authenticates.
func (w *replayWindow) check(guessedIndex uint64) bool {
	if !w.set {
		return true
	}
	delta := int64(guessedIndex) - int64(w.index)
	if delta > 0 {
		return true
	}
	neg := -delta
	if neg >= 64 {
		return false
	}
	return w.mask&(uint64(1)<<uint(neg)) == 0
}

// update commits guessedIndex into the window. It must only be called
// after the packet at guessedIndex has passed authentication.
func (w *replayWindow) update(guessedIndex uint64) {
	if !w.set {
		w.index = guessedIndex
		w.mask = 1
		w.set = true
		return
	}
	delta := int64(guessedIndex) - int64(w.index)
	if delta > 0 {
		if delta >= 64 {
			w.mask = 1
		} else {
			w.mask = (w.mask << uint(delta)) | 1
		}
		w.index = guessedIndex
		return
	}
	w.mask |= uint64(1) << uint(-delta)
}
