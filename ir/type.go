package ir

import "slices"

type Type int

const (
	BlankType Type = iota
	CommentType
	TextType
	BlockType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		BlankType:   "Blank",
		CommentType: "Comment",
		TextType:    "Text",
		BlockType:   "Block",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

type MemberType int

const (
	BlankMember MemberType = iota
	CommentMember
	FieldMember
	BlockAttrMember
	ValueMember
	AssignMember
	TextMember
)

func (t MemberType) String() string {
	s, ok := map[MemberType]string{
		BlankMember:     "Blank",
		CommentMember:   "Comment",
		FieldMember:     "Field",
		BlockAttrMember: "BlockAttr",
		ValueMember:     "Value",
		AssignMember:    "Assign",
		TextMember:      "Text",
	}[t]
	if ok {
		return s
	}
	return "<unknown member type>"
}

// Block kinds.
const (
	ModelKind      = "model"
	EnumKind       = "enum"
	TypeKind       = "type"
	ViewKind       = "view"
	DatasourceKind = "datasource"
	GeneratorKind  = "generator"
)

func BlockKinds() []string {
	return []string{ModelKind, EnumKind, TypeKind, ViewKind, DatasourceKind, GeneratorKind}
}

func IsBlockKind(s string) bool {
	return slices.Contains(BlockKinds(), s)
}
