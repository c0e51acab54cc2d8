package editor

// Selection is the active cursor position or range within a document
// body. Start and End are body offsets; a collapsed selection has
// Start == End.
type Selection struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Cursor returns a collapsed selection at offset.
func Cursor(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// Collapsed reports whether the selection is a single cursor.
func (s Selection) Collapsed() bool {
	return s.Start == s.End
}

// normalize orders the bounds so Start <= End.
func (s Selection) normalize() Selection {
	if s.End < s.Start {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

// Snapshot is an immutable copy of an insertion point taken at a moment in
// time, decoupled from subsequent cursor movement. Asynchronous work holds
// a Snapshot across its suspension point and applies its result through
// Session.ApplyAt, which reconciles the offset against the current body
// by clamping.
type Snapshot struct {
	Offset   int
	Revision uint64
}
