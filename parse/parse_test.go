package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pslkit/psl/ir"
	"github.com/pslkit/psl/token"
)

const sample = `// header comment
datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}

generator client {
  provider = "prisma-client-js"
}

enum Role {
  USER
  PRODUCER // sells things
  ADMIN    @map("admin")
}

model User {
  id          String   @id @default(uuid())
  email       String   @unique
  role        Role     @default(USER)
  bio         String?  @db.Text
  combos      Combo[]      @relation("ProducerCombos")
  tags        String[] @default([])
  location    Unsupported("point")?

  @@index([email, role], map: "user_email_role")
  @@map("users")
}

model Empty {}
`

func TestParseStructure(t *testing.T) {
	doc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	if !doc.Trailer {
		t.Errorf("expected trailer")
	}
	var types []ir.Type
	for _, n := range doc.Nodes {
		types = append(types, n.Type)
	}
	want := []ir.Type{
		ir.CommentType,
		ir.BlockType, ir.BlankType,
		ir.BlockType, ir.BlankType,
		ir.BlockType, ir.BlankType,
		ir.BlockType, ir.BlankType,
		ir.BlockType,
	}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Fatalf("node types (-want +got):\n%s", diff)
	}
	ds := doc.Block(ir.DatasourceKind, "db")
	if ds == nil || len(ds.Members) != 2 || ds.Members[1].Type != ir.AssignMember || ds.Members[1].Name != "url" {
		t.Errorf("datasource: %+v", ds)
	}
	role := doc.Block(ir.EnumKind, "Role")
	var values []string
	for _, m := range role.Members {
		if m.Type == ir.ValueMember {
			values = append(values, m.Name)
		}
	}
	if diff := cmp.Diff([]string{"USER", "PRODUCER", "ADMIN"}, values); diff != "" {
		t.Errorf("enum values (-want +got):\n%s", diff)
	}
	empty := doc.Block(ir.ModelKind, "Empty")
	if empty == nil || !empty.Inline {
		t.Errorf("expected inline Empty model")
	}
}

func TestParseFields(t *testing.T) {
	doc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	user := doc.Block(ir.ModelKind, "User")
	if user == nil {
		t.Fatal("no User model")
	}
	type fieldSummary struct {
		Name     string
		Type     string
		Attrs    []string
		Relation string
	}
	var got []fieldSummary
	for _, m := range user.Fields() {
		got = append(got, fieldSummary{
			Name:     m.Field.Name,
			Type:     m.Field.Type.String(),
			Attrs:    m.Field.AttrNames(),
			Relation: m.Field.Relation(),
		})
	}
	want := []fieldSummary{
		{Name: "id", Type: "String", Attrs: []string{"id", "default"}},
		{Name: "email", Type: "String", Attrs: []string{"unique"}},
		{Name: "role", Type: "Role", Attrs: []string{"default"}},
		{Name: "bio", Type: "String?", Attrs: []string{"db.Text"}},
		{Name: "combos", Type: "Combo[]", Attrs: []string{"relation"}, Relation: "ProducerCombos"},
		{Name: "tags", Type: "String[]", Attrs: []string{"default"}},
		{Name: "location", Type: `Unsupported("point")?`, Attrs: []string{}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	if a := user.Field("id").Field.Attr("default"); a == nil || a.Args != "uuid()" {
		t.Errorf("default args: %+v", a)
	}
	var blockAttrs []string
	for _, m := range user.Members {
		if m.Type == ir.BlockAttrMember {
			blockAttrs = append(blockAttrs, m.Name)
		}
	}
	if diff := cmp.Diff([]string{"index", "map"}, blockAttrs); diff != "" {
		t.Errorf("block attrs (-want +got):\n%s", diff)
	}
}

func TestParseMultiline(t *testing.T) {
	src := "model A {\n  id Int @id\n  @@index([\n    id,\n  ])\n}"
	doc, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Trailer {
		t.Errorf("unexpected trailer")
	}
	a := doc.Block(ir.ModelKind, "A")
	if len(a.Members) != 2 {
		t.Fatalf("members: %d", len(a.Members))
	}
	if got := a.Members[1].Raw; got != "  @@index([\n    id,\n  ])" {
		t.Errorf("raw: %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
		line int
	}{
		{in: "model A {\n  id Int\n", want: ErrUnterminatedBlock, line: 0},
		{in: "model A {\n}\n}\n", want: ErrUnmatchedClose, line: 2},
		{in: "hello world\n", want: ErrUnexpectedLine, line: 0},
		{in: "model A {\n  id\n}\n", want: ErrBadField, line: 1},
		{in: "model A {\n  id Int @default(\n}\n", want: ErrUnbalanced, line: 1},
		{in: "model A {\n  id Int # c\n}\n", want: token.ErrUnexpected, line: 1},
		{in: "datasource db {\n  provider\n}\n", want: ErrUnexpectedLine, line: 1},
	}
	for _, tc := range tests {
		_, err := Parse([]byte(tc.in))
		if !errors.Is(err, tc.want) {
			t.Errorf("%q: got %v want %v", tc.in, err, tc.want)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: expected ErrParse", tc.in)
		}
		var pe *ParseErr
		if !errors.As(err, &pe) {
			t.Errorf("%q: expected *ParseErr, got %T", tc.in, err)
			continue
		}
		if pe.Line != tc.line {
			t.Errorf("%q: line %d want %d", tc.in, pe.Line, tc.line)
		}
	}
}

func TestParseLenient(t *testing.T) {
	src := "hello # world\nmodel A {\n  id Int # c\n  name String\n}\n}\n"
	doc, err := Parse([]byte(src), Lenient())
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Nodes) != 3 {
		t.Fatalf("nodes: %d", len(doc.Nodes))
	}
	if doc.Nodes[0].Type != ir.TextType || doc.Nodes[2].Type != ir.TextType {
		t.Errorf("expected text nodes, got %s and %s", doc.Nodes[0].Type, doc.Nodes[2].Type)
	}
	a := doc.Block(ir.ModelKind, "A")
	if a.Members[0].Type != ir.TextMember || a.Members[1].Type != ir.FieldMember {
		t.Errorf("members: %s %s", a.Members[0].Type, a.Members[1].Type)
	}
}

func TestParseLineEnds(t *testing.T) {
	tests := []struct {
		in        string
		bom, crlf bool
	}{
		{"model A {\n  id Int\n}\n", false, false},
		{"\ufeffmodel A {\n  id Int\n}\n", true, false},
		{"model A {\r\n  id Int\r\n}\r\n", false, true},
		{"\ufeff// x\r\nmodel A {\r\n  id Int\r\n}", true, true},
		{"\ufeff", true, false},
	}
	for _, tc := range tests {
		doc, err := Parse([]byte(tc.in))
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if doc.BOM != tc.bom || doc.CRLF != tc.crlf {
			t.Errorf("%q: bom=%t crlf=%t", tc.in, doc.BOM, doc.CRLF)
		}
		if a := doc.Block(ir.ModelKind, "A"); a != nil && a.Field("id") == nil {
			t.Errorf("%q: no field id", tc.in)
		}
	}
}

func TestParseLenientUnterminated(t *testing.T) {
	src := "model A {\n  id Int\n"
	doc, err := Parse([]byte(src), Lenient())
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range doc.Nodes {
		if n.Type != ir.TextType {
			t.Errorf("expected only text nodes, got %s", n)
		}
	}
}

func TestParseMember(t *testing.T) {
	m, err := ParseMember(ir.ModelKind, `  orderBumps              OrderBump[] @relation("ProducerOrderBumps")`)
	if err != nil {
		t.Fatal(err)
	}
	if m.Type != ir.FieldMember || m.Name != "orderBumps" {
		t.Fatalf("member: %+v", m)
	}
	if got := m.Field.Type.String(); got != "OrderBump[]" {
		t.Errorf("type: %q", got)
	}
	if got := m.Field.Relation(); got != "ProducerOrderBumps" {
		t.Errorf("relation: %q", got)
	}
	if _, err := ParseMember(ir.ModelKind, "  a Int\n  b Int"); !errors.Is(err, ErrUnexpectedLine) {
		t.Errorf("expected ErrUnexpectedLine, got %v", err)
	}
	m, err = ParseMember(ir.EnumKind, "  CATEGORY        // Mostrar para produtos de categoria X")
	if err != nil {
		t.Fatal(err)
	}
	if m.Type != ir.ValueMember || m.Name != "CATEGORY" {
		t.Errorf("enum member: %+v", m)
	}
}
