// Package editor implements the rich-text authoring core: the content
// document model, selection tracking, the editor session, and the upload
// orchestrator that embeds media asynchronously.
package editor

import "encoding/json"

// Mark is an inline formatting mark on a text run.
type Mark string

const (
	MarkBold      Mark = "bold"
	MarkItalic    Mark = "italic"
	MarkUnderline Mark = "underline"
	MarkCode      Mark = "code"
)

// EmbedKind classifies an embedded media asset.
type EmbedKind string

const (
	EmbedImage EmbedKind = "image"
	EmbedVideo EmbedKind = "video"
	EmbedFile  EmbedKind = "file"
)

// NodeType discriminates document nodes.
type NodeType string

const (
	NodeText  NodeType = "text"
	NodeEmbed NodeType = "embed"
)

// Node is a single element of the document body: a text run with inline
// marks, or an embed referencing an external media asset by URL.
type Node struct {
	Type  NodeType  `json:"type"`
	Text  string    `json:"text,omitempty"`
	Marks []Mark    `json:"marks,omitempty"`
	URL   string    `json:"url,omitempty"`
	Kind  EmbedKind `json:"kind,omitempty"`
}

// length returns the node's contribution to document offsets: one position
// per rune for text runs, a single position for an embed.
func (n Node) length() int {
	if n.Type == NodeEmbed {
		return 1
	}
	return len([]rune(n.Text))
}

// Text creates a text run node.
func Text(text string, marks ...Mark) Node {
	return Node{Type: NodeText, Text: text, Marks: marks}
}

// Embed creates an embed node. Embeds only ever carry a resolved absolute
// URL; there is no pending state.
func Embed(url string, kind EmbedKind) Node {
	return Node{Type: NodeEmbed, URL: url, Kind: kind}
}

// Document is the authoritative rich-text content: an ordered node
// sequence plus a change counter bumped on every mutation. It is not safe
// for concurrent use; the Session serializes access to it.
type Document struct {
	nodes    []Node
	revision uint64
}

// NewDocument creates a document from an initial node sequence.
func NewDocument(nodes ...Node) *Document {
	d := &Document{}
	d.nodes = append(d.nodes, nodes...)
	return d
}

// ParseDocument restores a document from its serialized form.
func ParseDocument(data []byte) (*Document, error) {
	var nodes []Node
	if len(data) > 0 {
		if err := json.Unmarshal(data, &nodes); err != nil {
			return nil, err
		}
	}
	return NewDocument(nodes...), nil
}

// Len returns the number of offset positions in the body.
func (d *Document) Len() int {
	total := 0
	for _, n := range d.nodes {
		total += n.length()
	}
	return total
}

// Revision returns the change counter.
func (d *Document) Revision() uint64 {
	return d.revision
}

// Nodes returns a copy of the body.
func (d *Document) Nodes() []Node {
	out := make([]Node, len(d.nodes))
	copy(out, d.nodes)
	return out
}

// Serialize returns the JSON form of the body. An empty document
// serializes as an empty array, not null.
func (d *Document) Serialize() ([]byte, error) {
	if len(d.nodes) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(d.nodes)
}

// Clamp adjusts an offset to the nearest valid position in the current
// body. Inserts never fail on a stale offset; they land at the boundary.
func (d *Document) Clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if l := d.Len(); offset > l {
		return l
	}
	return offset
}

// locate maps an offset to (node index, offset within node). An offset at
// a node boundary maps to the earlier node's end when that node is a text
// run, so typing extends the run it follows.
func (d *Document) locate(offset int) (int, int) {
	pos := 0
	for i, n := range d.nodes {
		l := n.length()
		if offset <= pos+l {
			return i, offset - pos
		}
		pos += l
	}
	return len(d.nodes), 0
}

// InsertText inserts a text run at offset, clamping out-of-bounds offsets.
func (d *Document) InsertText(offset int, text string, marks ...Mark) {
	if text == "" {
		return
	}
	offset = d.Clamp(offset)
	i, inner := d.locate(offset)
	defer func() { d.revision++ }()

	if i >= len(d.nodes) {
		d.nodes = append(d.nodes, Text(text, marks...))
		return
	}

	n := d.nodes[i]
	if n.Type == NodeEmbed {
		at := i
		if inner >= 1 {
			at = i + 1
		}
		d.spliceNode(at, Text(text, marks...))
		return
	}

	if sameMarks(n.Marks, marks) {
		r := []rune(n.Text)
		d.nodes[i].Text = string(r[:inner]) + text + string(r[inner:])
		return
	}

	at := d.splitText(i, inner)
	d.spliceNode(at, Text(text, marks...))
}

// InsertEmbed inserts an embed node at offset, clamping out-of-bounds
// offsets. url must be a resolved absolute URL.
func (d *Document) InsertEmbed(offset int, url string, kind EmbedKind) {
	offset = d.Clamp(offset)
	i, inner := d.locate(offset)
	defer func() { d.revision++ }()

	if i >= len(d.nodes) {
		d.nodes = append(d.nodes, Embed(url, kind))
		return
	}

	n := d.nodes[i]
	if n.Type == NodeEmbed {
		at := i
		if inner >= 1 {
			at = i + 1
		}
		d.spliceNode(at, Embed(url, kind))
		return
	}

	at := d.splitText(i, inner)
	d.spliceNode(at, Embed(url, kind))
}

// ApplyMark adds an inline mark to every text run between start and end,
// splitting runs at the boundaries. Embeds in the range are untouched.
func (d *Document) ApplyMark(start, end int, mark Mark) {
	start = d.Clamp(start)
	end = d.Clamp(end)
	if end < start {
		start, end = end, start
	}
	if start == end {
		return
	}

	from := d.boundary(start)
	to := d.boundary(end)
	for i := from; i < to && i < len(d.nodes); i++ {
		if d.nodes[i].Type != NodeText {
			continue
		}
		if !hasMark(d.nodes[i].Marks, mark) {
			marks := append([]Mark(nil), d.nodes[i].Marks...)
			d.nodes[i].Marks = append(marks, mark)
		}
	}
	d.revision++
}

// RemoveNode removes the node at index if it exists.
func (d *Document) RemoveNode(index int) {
	if index < 0 || index >= len(d.nodes) {
		return
	}
	d.nodes = append(d.nodes[:index], d.nodes[index+1:]...)
	d.revision++
}

// boundary ensures a node boundary exists at offset and returns the index
// of the node that starts there.
func (d *Document) boundary(offset int) int {
	i, inner := d.locate(offset)
	if i >= len(d.nodes) {
		return len(d.nodes)
	}
	n := d.nodes[i]
	if n.Type == NodeEmbed {
		if inner >= 1 {
			return i + 1
		}
		return i
	}
	return d.splitText(i, inner)
}

// splitText splits the text node at index i at rune position inner and
// returns the index where new content should be inserted.
func (d *Document) splitText(i, inner int) int {
	r := []rune(d.nodes[i].Text)
	if inner <= 0 {
		return i
	}
	if inner >= len(r) {
		return i + 1
	}
	left := d.nodes[i]
	left.Text = string(r[:inner])
	left.Marks = append([]Mark(nil), d.nodes[i].Marks...)
	right := d.nodes[i]
	right.Text = string(r[inner:])
	right.Marks = append([]Mark(nil), d.nodes[i].Marks...)

	d.nodes[i] = left
	d.spliceNode(i+1, right)
	return i + 1
}

func (d *Document) spliceNode(at int, n Node) {
	d.nodes = append(d.nodes, Node{})
	copy(d.nodes[at+1:], d.nodes[at:])
	d.nodes[at] = n
}

func sameMarks(a, b []Mark) bool {
	if len(a) != len(b) {
		return false
	}
	for _, m := range a {
		if !hasMark(b, m) {
			return false
		}
	}
	return true
}

func hasMark(marks []Mark, mark Mark) bool {
	for _, m := range marks {
		if m == mark {
			return true
		}
	}
	return false
}
