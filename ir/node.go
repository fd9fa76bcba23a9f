package ir

import (
	"fmt"
	"slices"
	"strings"
)

type Document struct {
	Nodes []*Node
	// Trailer is set when the text ends with a newline.
	Trailer bool
	// BOM is set when the text starts with a UTF-8 byte order mark.
	// The mark is not part of any node.
	BOM bool
	// CRLF is set when the first line of the text ends in "\r\n".
	// Raw text keeps its "\r", so nodes added to such a document
	// should be converted with Node.ToCRLF.
	CRLF bool
}

type Node struct {
	Type Type
	// Raw is the text of a non-block node without its newline.
	Raw   string
	Block *Block
}

type Block struct {
	Kind    string
	Name    string
	Header  string
	Members []*Member
	Close   string
	// Inline is set for blocks opened and closed on the header line.
	Inline bool
}

type Member struct {
	Type MemberType
	// Raw is the text of the member; it contains newlines when the
	// member spans several lines.
	Raw string
	// Name is the field name, enum value, assignment key or block
	// attribute name.
	Name  string
	Field *Field
}

func NewComment(raw string) *Node {
	return &Node{Type: CommentType, Raw: raw}
}

func NewBlank() *Node {
	return &Node{Type: BlankType}
}

func NewText(raw string) *Node {
	return &Node{Type: TextType, Raw: raw}
}

func NewBlock(b *Block) *Node {
	return &Node{Type: BlockType, Block: b}
}

func (n *Node) String() string {
	switch n.Type {
	case BlockType:
		return fmt.Sprintf("%s %s", n.Block.Kind, n.Block.Name)
	default:
		return fmt.Sprintf("%s %q", n.Type, n.Raw)
	}
}

// Blocks returns the blocks of the document in order.
func (d *Document) Blocks() []*Block {
	var res []*Block
	for _, n := range d.Nodes {
		if n.Type == BlockType {
			res = append(res, n.Block)
		}
	}
	return res
}

// Block returns the first block with the given name and kind.  An
// empty kind matches any kind.
func (d *Document) Block(kind, name string) *Block {
	for _, n := range d.Nodes {
		if n.Type != BlockType {
			continue
		}
		if n.Block.Name != name {
			continue
		}
		if kind != "" && n.Block.Kind != kind {
			continue
		}
		return n.Block
	}
	return nil
}

func (d *Document) Declares(kind, name string) bool {
	return d.Block(kind, name) != nil
}

func (d *Document) Index(n *Node) int {
	return slices.Index(d.Nodes, n)
}

// InsertBefore inserts nodes before the node at index i.  An index
// equal to len(d.Nodes) appends.
func (d *Document) InsertBefore(i int, nodes ...*Node) error {
	if i < 0 || i > len(d.Nodes) {
		return fmt.Errorf("%w: node index %d out of range [0, %d]", ErrNoSuchNode, i, len(d.Nodes))
	}
	d.Nodes = slices.Insert(d.Nodes, i, nodes...)
	return nil
}

func (d *Document) Clone() *Document {
	res := &Document{
		Nodes:   make([]*Node, len(d.Nodes)),
		Trailer: d.Trailer,
		BOM:     d.BOM,
		CRLF:    d.CRLF,
	}
	for i, n := range d.Nodes {
		res.Nodes[i] = n.Clone()
	}
	return res
}

func (n *Node) Clone() *Node {
	res := *n
	if n.Block != nil {
		res.Block = n.Block.Clone()
	}
	return &res
}

func (b *Block) Clone() *Block {
	res := *b
	res.Members = make([]*Member, len(b.Members))
	for i, m := range b.Members {
		res.Members[i] = m.Clone()
	}
	return &res
}

func (m *Member) Clone() *Member {
	res := *m
	if m.Field != nil {
		f := *m.Field
		f.Attrs = slices.Clone(m.Field.Attrs)
		res.Field = &f
	}
	return &res
}

// ToCRLF ends every line of n with "\r".
func (n *Node) ToCRLF() {
	if n.Block == nil {
		n.Raw = crlf(n.Raw)
		return
	}
	n.Block.Header = crlf(n.Block.Header)
	if n.Block.Inline {
		return
	}
	n.Block.Close = crlf(n.Block.Close)
	for _, m := range n.Block.Members {
		m.ToCRLF()
	}
}

// ToCRLF ends every line of m with "\r".
func (m *Member) ToCRLF() {
	m.Raw = crlf(m.Raw)
}

func crlf(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if !strings.HasSuffix(l, "\r") {
			lines[i] = l + "\r"
		}
	}
	return strings.Join(lines, "\n")
}

// Field returns the field member with the given name.
func (b *Block) Field(name string) *Member {
	for _, m := range b.Members {
		if m.Type == FieldMember && m.Name == name {
			return m
		}
	}
	return nil
}

func (b *Block) Fields() []*Member {
	var res []*Member
	for _, m := range b.Members {
		if m.Type == FieldMember {
			res = append(res, m)
		}
	}
	return res
}

func (b *Block) IndexOf(m *Member) int {
	return slices.Index(b.Members, m)
}

// InsertMemberAfter inserts members after the member at index i.  An
// index of -1 inserts at the start of the block.
func (b *Block) InsertMemberAfter(i int, ms ...*Member) error {
	if b.Inline {
		return fmt.Errorf("%w: cannot insert into %s", ErrInline, b.Path())
	}
	if i < -1 || i >= len(b.Members) {
		return fmt.Errorf("%w: member index %d out of range in %s", ErrNoSuchNode, i, b.Path())
	}
	b.Members = slices.Insert(b.Members, i+1, ms...)
	return nil
}
