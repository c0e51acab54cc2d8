package editor

import "sync"

// ChangeFunc receives the serialized document after every mutation.
type ChangeFunc func(data []byte)

// Mutation is a structural edit applied at a reconciled offset.
type Mutation func(doc *Document, offset int)

// InsertEmbed returns a mutation that inserts an embed node.
func InsertEmbed(url string, kind EmbedKind) Mutation {
	return func(doc *Document, offset int) {
		doc.InsertEmbed(offset, url, kind)
	}
}

// Session binds a document to user intent: it owns the active selection,
// serializes all mutations, and notifies the host on every change. A
// closed session silently absorbs mutations, so work that completes after
// teardown is a no-op rather than an error.
type Session struct {
	mu       sync.Mutex
	doc      *Document
	sel      *Selection
	onChange ChangeFunc
	closed   bool

	notifyMu   sync.Mutex
	notifyCond *sync.Cond
	nextSeq    uint64
	doneSeq    uint64
}

// NewSession creates a session over an initial document (nil means empty).
// onChange may be nil when the host does not track changes.
func NewSession(initial *Document, onChange ChangeFunc) *Session {
	if initial == nil {
		initial = NewDocument()
	}
	s := &Session{doc: initial, onChange: onChange}
	s.notifyCond = sync.NewCond(&s.notifyMu)
	return s
}

// Selection returns the live selection; ok is false when the editor has
// no focus.
func (s *Session) Selection() (Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sel == nil {
		return Selection{}, false
	}
	return *s.sel, true
}

// SetSelection activates a selection, clamping it to the body bounds.
func (s *Session) SetSelection(sel Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	sel = sel.normalize()
	sel.Start = s.doc.Clamp(sel.Start)
	sel.End = s.doc.Clamp(sel.End)
	s.sel = &sel
}

// ClearSelection drops editor focus.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = nil
}

// CaptureSelection returns an immutable snapshot of the current insertion
// point. Without an active selection it defaults to end-of-document, so
// asynchronous inserts are never blocked by a missing cursor.
func (s *Session) CaptureSelection() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	offset := s.doc.Len()
	if s.sel != nil {
		offset = s.sel.normalize().Start
	}
	return Snapshot{Offset: offset, Revision: s.doc.Revision()}
}

// InsertText inserts text at the live selection (end-of-document when
// unfocused) and advances the cursor past the inserted content.
func (s *Session) InsertText(text string, marks ...Mark) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	offset := s.doc.Len()
	if s.sel != nil {
		offset = s.sel.normalize().Start
	}
	offset = s.doc.Clamp(offset)
	s.doc.InsertText(offset, text, marks...)
	cursor := Cursor(offset + len([]rune(text)))
	s.sel = &cursor
	s.unlockAndNotify(s.serialize())
}

// InsertEmbed inserts an embed node at the live selection (end-of-document
// when unfocused) and advances the cursor past it.
func (s *Session) InsertEmbed(url string, kind EmbedKind) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	offset := s.doc.Len()
	if s.sel != nil {
		offset = s.sel.normalize().Start
	}
	offset = s.doc.Clamp(offset)
	s.doc.InsertEmbed(offset, url, kind)
	cursor := Cursor(offset + 1)
	s.sel = &cursor
	s.unlockAndNotify(s.serialize())
}

// ApplyMark applies an inline mark over the current range selection.
func (s *Session) ApplyMark(mark Mark) {
	s.mu.Lock()
	if s.closed || s.sel == nil || s.sel.Collapsed() {
		s.mu.Unlock()
		return
	}
	sel := s.sel.normalize()
	s.doc.ApplyMark(sel.Start, sel.End, mark)
	s.unlockAndNotify(s.serialize())
}

// ApplyAt applies a mutation at the position described by a snapshot taken
// earlier, clamping the offset against the current body. Returns false
// when the session is closed and the mutation was absorbed.
func (s *Session) ApplyAt(snap Snapshot, m Mutation) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	offset := s.doc.Clamp(snap.Offset)
	before := s.doc.Len()
	m(s.doc, offset)
	grown := s.doc.Len() - before
	if s.sel != nil && s.sel.Start >= offset && grown > 0 {
		sel := Selection{Start: s.sel.Start + grown, End: s.sel.End + grown}
		s.sel = &sel
	}
	s.unlockAndNotify(s.serialize())
	return true
}

// Serialize returns the current serialized document.
func (s *Session) Serialize() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Serialize()
}

// Nodes returns a copy of the current body.
func (s *Session) Nodes() []Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Nodes()
}

// Len returns the current number of body positions.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Len()
}

// Revision returns the document change counter.
func (s *Session) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Revision()
}

// Close tears the session down. Mutations arriving afterwards are
// discarded without error.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.sel = nil
}

// Closed reports whether the session has been torn down.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// serialize must be called with the lock held.
func (s *Session) serialize() []byte {
	if s.onChange == nil {
		return nil
	}
	data, err := s.doc.Serialize()
	if err != nil {
		return nil
	}
	return data
}

// unlockAndNotify releases the session lock and delivers the change
// notification. A delivery ticket is drawn while the session lock is
// still held and deliveries run strictly in ticket order, so the last
// payload the host receives always reflects the last applied mutation.
// No lock is held while the callback runs.
func (s *Session) unlockAndNotify(data []byte) {
	if s.onChange == nil || data == nil {
		s.mu.Unlock()
		return
	}
	seq := s.nextSeq
	s.nextSeq++
	s.mu.Unlock()

	s.notifyMu.Lock()
	for s.doneSeq != seq {
		s.notifyCond.Wait()
	}
	s.notifyMu.Unlock()

	s.onChange(data)

	s.notifyMu.Lock()
	s.doneSeq++
	s.notifyCond.Broadcast()
	s.notifyMu.Unlock()
}
