package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRelationName(t *testing.T) {
	tests := []struct {
		args string
		want string
	}{
		{`"ProducerCombos"`, "ProducerCombos"},
		{`"OrderBumpProduct", fields: [productId], references: [id], onDelete: Cascade`, "OrderBumpProduct"},
		{`fields: [userId], references: [id], name: "Owner"`, "Owner"},
		{`name: "Owner", fields: [userId]`, "Owner"},
		{`fields: [userId], references: [id]`, ""},
		{`fields: [a], map: "x"`, ""},
		{``, ""},
	}
	for _, tc := range tests {
		if got := RelationName(tc.args); got != tc.want {
			t.Errorf("RelationName(%q) = %q, want %q", tc.args, got, tc.want)
		}
	}
}

func TestFieldAccessors(t *testing.T) {
	f := &Field{
		Name: "producer",
		Type: FieldType{Name: "User"},
		Attrs: []Attribute{
			{Name: "relation", Args: `"ProducerOrderBumps", fields: [producerId]`, HasArgs: true},
			{Name: "db.Text"},
		},
		Comment: "// the owner",
	}
	if got := f.Relation(); got != "ProducerOrderBumps" {
		t.Errorf("relation: %q", got)
	}
	if diff := cmp.Diff([]string{"relation", "db.Text"}, f.AttrNames()); diff != "" {
		t.Errorf("attr names (-want +got):\n%s", diff)
	}
	if got := f.Attrs[1].String(); got != "@db.Text" {
		t.Errorf("attr string: %q", got)
	}
	if got := f.CommentText(); got != "the owner" {
		t.Errorf("comment: %q", got)
	}
	if f.Attr("map") != nil {
		t.Errorf("unexpected map attr")
	}
}

func TestFieldTypeString(t *testing.T) {
	tests := []struct {
		ft   FieldType
		want string
	}{
		{FieldType{Name: "Combo", List: true}, "Combo[]"},
		{FieldType{Name: "String", Optional: true}, "String?"},
		{FieldType{Name: "Int"}, "Int"},
		{FieldType{Name: "Unsupported", Unsupported: true, Optional: true, Raw: `Unsupported("circle")?`}, `Unsupported("circle")?`},
	}
	for _, tc := range tests {
		if got := tc.ft.String(); got != tc.want {
			t.Errorf("got %q want %q", got, tc.want)
		}
	}
}

func testDoc() *Document {
	user := &Block{
		Kind:   ModelKind,
		Name:   "User",
		Header: "model User {",
		Close:  "}",
		Members: []*Member{
			{Type: FieldMember, Name: "id", Raw: "  id String @id", Field: &Field{Name: "id", Type: FieldType{Name: "String"}}},
			{Type: FieldMember, Name: "combos", Raw: "  combos Combo[]", Field: &Field{Name: "combos", Type: FieldType{Name: "Combo", List: true}}},
		},
	}
	return &Document{
		Nodes: []*Node{
			NewComment("// header"),
			NewBlank(),
			NewBlock(user),
			NewBlock(&Block{Kind: EnumKind, Name: "Role", Header: "enum Role {}", Inline: true}),
		},
		Trailer: true,
	}
}

func TestDocumentLookup(t *testing.T) {
	doc := testDoc()
	if b := doc.Block(ModelKind, "User"); b == nil || b.Name != "User" {
		t.Fatalf("model User not found")
	}
	if doc.Declares(EnumKind, "User") {
		t.Errorf("enum User should not be declared")
	}
	if !doc.Declares("", "Role") {
		t.Errorf("Role should be declared")
	}
	if n := len(doc.Blocks()); n != 2 {
		t.Errorf("blocks: %d", n)
	}
	user := doc.Block(ModelKind, "User")
	if m := user.Field("combos"); m == nil || user.IndexOf(m) != 1 {
		t.Errorf("combos lookup")
	}
	if got := user.MemberPath(user.Field("combos")); got != "model.User.combos" {
		t.Errorf("member path %q", got)
	}
}

func TestInsert(t *testing.T) {
	doc := testDoc()
	user := doc.Block(ModelKind, "User")
	m := &Member{Type: FieldMember, Name: "orderBumps", Raw: "  orderBumps OrderBump[]"}
	if err := user.InsertMemberAfter(1, m); err != nil {
		t.Fatal(err)
	}
	if user.IndexOf(m) != 2 {
		t.Errorf("inserted at %d", user.IndexOf(m))
	}
	if err := user.InsertMemberAfter(7, m); !errors.Is(err, ErrNoSuchNode) {
		t.Errorf("expected ErrNoSuchNode, got %v", err)
	}
	role := doc.Block(EnumKind, "Role")
	if err := role.InsertMemberAfter(-1, m); !errors.Is(err, ErrInline) {
		t.Errorf("expected ErrInline, got %v", err)
	}
	c := NewComment("// inserted")
	if err := doc.InsertBefore(2, c); err != nil {
		t.Fatal(err)
	}
	if doc.Index(c) != 2 || doc.Nodes[3].Type != BlockType {
		t.Errorf("bad insertion order")
	}
	if err := doc.InsertBefore(len(doc.Nodes)+1, c); !errors.Is(err, ErrNoSuchNode) {
		t.Errorf("expected ErrNoSuchNode, got %v", err)
	}
}

func TestClone(t *testing.T) {
	doc := testDoc()
	cl := doc.Clone()
	user := cl.Block(ModelKind, "User")
	user.Field("combos").Field.Name = "changed"
	if err := user.InsertMemberAfter(-1, &Member{Type: BlankMember}); err != nil {
		t.Fatal(err)
	}
	orig := doc.Block(ModelKind, "User")
	if orig.Field("combos").Field.Name != "combos" {
		t.Errorf("clone shares fields")
	}
	if len(orig.Members) != 2 {
		t.Errorf("clone shares members")
	}
}

func TestToCRLF(t *testing.T) {
	n := NewBlock(&Block{
		Kind:   ModelKind,
		Name:   "A",
		Header: "model A {",
		Members: []*Member{
			{Type: FieldMember, Raw: "  id Int @id", Name: "id"},
			{Type: BlockAttrMember, Raw: "  @@index([\n    id\r\n  ])", Name: "index"},
			{Type: BlankMember},
		},
		Close: "}",
	})
	n.ToCRLF()
	var got []string
	for _, m := range n.Block.Members {
		got = append(got, m.Raw)
	}
	want := []string{"  id Int @id\r", "  @@index([\r\n    id\r\n  ])\r", "\r"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("members (-want +got):\n%s", diff)
	}
	if n.Block.Header != "model A {\r" || n.Block.Close != "}\r" || n.Raw != "" {
		t.Errorf("block lines %q %q %q", n.Block.Header, n.Block.Close, n.Raw)
	}
	c := NewComment("// x\r")
	c.ToCRLF()
	if c.Raw != "// x\r" {
		t.Errorf("comment %q", c.Raw)
	}
}
