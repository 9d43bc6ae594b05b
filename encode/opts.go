package encode

type EncodeOption func(*EncState)

// Indent pretty-prints with n spaces per level; 0 keeps the canonical
// compact form.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
