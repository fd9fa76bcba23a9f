package plan

import "embed"

const BuiltinName = "order-bump"

//go:embed orderbump/plan.yaml orderbump/section.prisma
var builtinFS embed.FS

// Builtin returns the embedded order-bump plan.
func Builtin(opts ...LoadOption) (*Plan, error) {
	return Load(builtinFS, "orderbump/plan.yaml", opts...)
}
