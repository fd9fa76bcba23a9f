package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	KeywordColor
	NameColor
	TypeColor
	AttrColor
	StringColor
	NumberColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[CommentColor] = color.BlueString
	colors.Map[KeywordColor] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[NameColor] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[TypeColor] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[AttrColor] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[StringColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[NumberColor] = color.RGB(198, 198, 46).SprintfFunc()
	colors.Map[ValueColor] = color.CyanString
	colors.Map[SepColor] = color.RGB(196, 128, 128).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
