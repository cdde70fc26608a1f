package wmf

// dcState is the part of the device context that SaveDC snapshots.
// Handles are object table indices; -1 means nothing is selected.
type dcState struct {
	pen, brush, font int
	penWidth         int16

	pos Point

	textColor Color
	bkColor   Color
	bkOpaque  bool
	textAlign uint16
	fillRule  FillRule
}

func defaultDCState() dcState {
	return dcState{
		pen:       -1,
		brush:     -1,
		font:      -1,
		penWidth:  1,
		textColor: Black,
		bkColor:   White,
		fillRule:  FillEvenOdd,
	}
}

// saveStack holds the snapshots pushed by SaveDC.
type saveStack struct {
	levels []dcState
}

// Depth returns the number of saved states.
func (s *saveStack) Depth() int {
	return len(s.levels)
}

func (s *saveStack) push(st dcState) {
	s.levels = append(s.levels, st)
}

// restore resolves a RestoreDC argument. A negative n pops -n levels;
// a positive n restores the state saved at depth n and discards
// everything above it; zero is treated as -1. It returns the number of
// levels removed, or ok=false when the stack cannot satisfy n, in which
// case it is left unchanged.
func (s *saveStack) restore(n int) (st dcState, popped int, ok bool) {
	depth := len(s.levels)
	var target int // stack length after the restore
	switch {
	case n == 0:
		target = depth - 1
	case n < 0:
		target = depth + n
	default:
		target = n - 1
	}
	if target < 0 || target >= depth {
		return dcState{}, 0, false
	}
	st = s.levels[target]
	s.levels = s.levels[:target]
	return st, depth - target, true
}
