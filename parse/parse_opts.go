package parse

type parseOpts struct {
	lenient bool
}

type ParseOption func(*parseOpts)

// Lenient causes lines which cannot be parsed to be kept as text nodes
// or text members instead of failing the parse.
func Lenient() ParseOption {
	return func(o *parseOpts) { o.lenient = true }
}
