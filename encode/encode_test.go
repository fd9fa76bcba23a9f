package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pslkit/psl/ir"
	"github.com/pslkit/psl/parse"
)

var roundTrips = []string{
	"",
	"\n",
	"\n\n",
	"// only a comment",
	"model A {\n  id Int @id\n}",
	"model A {\n  id Int @id\n}\n",
	"model A {\r\n  id Int @id\r\n}\r\n",
	"  // indented comment  \n\nmodel   A   {   // trailing\n\n\n  id    Int     @id   // x\n} // end\n\n\n",
	"enum E {\n  A\n  B // b\n}\nmodel M {}\n",
	"model A {\n  @@index([\n    id,\n  ])\n}\n",
	"datasource db {\n  provider = \"postgresql\"\n  url      = env(\"DATABASE_URL\")\n}\n",
	"\ufeff",
	"\ufeffmodel A {\r\n  id Int @id\r\n}\r\n",
}

func TestRoundTrip(t *testing.T) {
	for _, in := range roundTrips {
		doc, err := parse.Parse([]byte(in))
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		buf := bytes.NewBuffer(nil)
		if err := Encode(doc, buf); err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if got := buf.String(); got != in {
			t.Errorf("round trip mismatch:\nin:  %q\nout: %q", in, got)
		}
	}
}

func TestRoundTripLenient(t *testing.T) {
	in := "# not prisma\nmodel A {\n  id Int # nor this\n}\n}\n"
	doc, err := parse.Parse([]byte(in), parse.Lenient())
	if err != nil {
		t.Fatal(err)
	}
	if got := MustString(doc); got != in {
		t.Errorf("round trip mismatch:\nin:  %q\nout: %q", in, got)
	}
}

func TestEncodeInserted(t *testing.T) {
	doc, err := parse.Parse([]byte("model A {\n  id Int\n}\n"))
	if err != nil {
		t.Fatal(err)
	}
	a := doc.Block(ir.ModelKind, "A")
	if err := a.InsertMemberAfter(0, &ir.Member{Type: ir.FieldMember, Name: "b", Raw: "  b String"}); err != nil {
		t.Fatal(err)
	}
	if err := doc.InsertBefore(0, ir.NewComment("// top"), ir.NewBlank()); err != nil {
		t.Fatal(err)
	}
	got, err := EncodeString(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := "// top\n\nmodel A {\n  id Int\n  b String\n}\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	got, err = EncodeString(doc, EncodeTrailer(false))
	if err != nil {
		t.Fatal(err)
	}
	if got != strings.TrimSuffix(want, "\n") {
		t.Errorf("without trailer: got %q", got)
	}
}

func TestEncodeColors(t *testing.T) {
	in := "// c\nmodel A {\n  id Int[] @id @db.Text // x\n}\n"
	doc, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			CommentColor: func(s string, _ ...any) string { return "<c>" + s + "</c>" },
			KeywordColor: func(s string, _ ...any) string { return "<k>" + s + "</k>" },
			NameColor:    func(s string, _ ...any) string { return "<n>" + s + "</n>" },
			TypeColor:    func(s string, _ ...any) string { return "<t>" + s + "</t>" },
			AttrColor:    func(s string, _ ...any) string { return "<a>" + s + "</a>" },
		},
	}
	got, err := EncodeString(doc, EncodeColors(colors))
	if err != nil {
		t.Fatal(err)
	}
	want := "<c>// c</c>\n" +
		"<k>model</k> <n>A</n> {\n" +
		"  <n>id</n> <t>Int</t><t>[</t><t>]</t> <a>@</a><a>id</a> <a>@</a><a>db</a><a>.</a><a>Text</a> <c>// x</c>\n" +
		"}\n"
	if got != want {
		t.Errorf("colors:\ngot  %q\nwant %q", got, want)
	}
}
