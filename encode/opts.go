package encode

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeTrailer overrides whether a trailing newline is written.
func EncodeTrailer(v bool) EncodeOption {
	return func(es *EncState) { es.trailer = &v }
}
