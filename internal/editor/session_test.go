package editor

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_CaptureDefaultsToEndOfDocument(t *testing.T) {
	sess := NewSession(NewDocument(Text("abc")), nil)

	_, ok := sess.Selection()
	require.False(t, ok)

	snap := sess.CaptureSelection()
	assert.Equal(t, 3, snap.Offset)
}

func TestSession_CaptureUsesSelectionStart(t *testing.T) {
	sess := NewSession(NewDocument(Text("abcdef")), nil)
	sess.SetSelection(Selection{Start: 4, End: 2})

	snap := sess.CaptureSelection()
	assert.Equal(t, 2, snap.Offset)
}

func TestSession_SetSelectionClamps(t *testing.T) {
	sess := NewSession(NewDocument(Text("ab")), nil)
	sess.SetSelection(Cursor(99))

	sel, ok := sess.Selection()
	require.True(t, ok)
	assert.Equal(t, 2, sel.Start)
}

func TestSession_InsertTextAdvancesCursor(t *testing.T) {
	sess := NewSession(nil, nil)
	sess.SetSelection(Cursor(0))
	sess.InsertText("Hello ")

	sel, ok := sess.Selection()
	require.True(t, ok)
	assert.True(t, sel.Collapsed())
	assert.Equal(t, 6, sel.Start)
}

func TestSession_InsertTextWithoutFocusAppends(t *testing.T) {
	sess := NewSession(NewDocument(Text("ab")), nil)
	sess.InsertText("cd")

	nodes := sess.Nodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, "abcd", nodes[0].Text)
}

func TestSession_InsertEmbedAtSelectionAdvancesCursor(t *testing.T) {
	sess := NewSession(NewDocument(Text("ab")), nil)
	sess.SetSelection(Cursor(1))
	sess.InsertEmbed("https://store/x.png", EmbedImage)

	nodes := sess.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, NodeEmbed, nodes[1].Type)

	sel, ok := sess.Selection()
	require.True(t, ok)
	assert.Equal(t, 2, sel.Start)
}

func TestSession_ApplyAtClampsStaleSnapshot(t *testing.T) {
	// A snapshot taken against a longer document clamps to the current
	// end instead of failing.
	sess := NewSession(NewDocument(Text("ab")), nil)

	snap := Snapshot{Offset: 6}
	applied := sess.ApplyAt(snap, InsertEmbed("https://store/x.png", EmbedImage))
	require.True(t, applied)

	nodes := sess.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, NodeEmbed, nodes[1].Type)
}

func TestSession_ApplyAtShiftsLiveCursorForward(t *testing.T) {
	sess := NewSession(nil, nil)
	sess.SetSelection(Cursor(0))
	sess.InsertText("Hello ")

	snap := Snapshot{Offset: 0}
	sess.ApplyAt(snap, InsertEmbed("https://store/x.png", EmbedImage))

	sel, ok := sess.Selection()
	require.True(t, ok)
	assert.Equal(t, 7, sel.Start)
}

func TestSession_OnChangeReceivesSerializedDocument(t *testing.T) {
	var changes [][]byte
	sess := NewSession(nil, func(data []byte) {
		changes = append(changes, data)
	})

	sess.InsertText("hi")
	sess.ApplyAt(Snapshot{Offset: 0}, InsertEmbed("https://store/x.png", EmbedImage))

	require.Len(t, changes, 2)
	assert.JSONEq(t, `[{"type":"text","text":"hi"}]`, string(changes[0]))
	assert.Contains(t, string(changes[1]), `"type":"embed"`)
}

func TestSession_ChangeNotificationsArriveInMutationOrder(t *testing.T) {
	// Stall the first mutation's callback while a second mutation is
	// applied concurrently. The second delivery must wait its turn, so
	// the last payload the host sees matches the final document.
	entered := make(chan struct{})
	release := make(chan struct{})
	payloads := make(chan string, 2)
	var once sync.Once

	sess := NewSession(nil, func(data []byte) {
		once.Do(func() {
			close(entered)
			<-release
		})
		payloads <- string(data)
	})

	firstDone := make(chan struct{})
	go func() {
		sess.InsertText("A")
		close(firstDone)
	}()
	<-entered

	secondDone := make(chan struct{})
	go func() {
		sess.ApplyAt(Snapshot{Offset: 1}, InsertEmbed("https://store/x.png", EmbedImage))
		close(secondDone)
	}()

	// The second mutation lands in the document while the first
	// delivery is still stalled.
	require.Eventually(t, func() bool { return sess.Len() == 2 }, time.Second, time.Millisecond)

	close(release)
	<-firstDone
	<-secondDone

	first := <-payloads
	last := <-payloads
	assert.JSONEq(t, `[{"type":"text","text":"A"}]`, first)

	final, err := sess.Serialize()
	require.NoError(t, err)
	assert.JSONEq(t, string(final), last)
}

func TestSession_ClosedSessionAbsorbsMutations(t *testing.T) {
	var changes int
	sess := NewSession(NewDocument(Text("ab")), func([]byte) { changes++ })
	sess.Close()

	require.True(t, sess.Closed())

	applied := sess.ApplyAt(Snapshot{Offset: 0}, InsertEmbed("https://store/x.png", EmbedImage))
	assert.False(t, applied)

	sess.InsertText("cd")
	sess.SetSelection(Cursor(0))

	_, ok := sess.Selection()
	assert.False(t, ok)
	assert.Equal(t, 0, changes)

	nodes := sess.Nodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, "ab", nodes[0].Text)
}

func TestSession_ApplyMarkOverRange(t *testing.T) {
	sess := NewSession(NewDocument(Text("abcd")), nil)
	sess.SetSelection(Selection{Start: 1, End: 3})
	sess.ApplyMark(MarkBold)

	nodes := sess.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, []Mark{MarkBold}, nodes[1].Marks)
}
