package encode

type EncodeOption func(*EncState)

func EncodeFormat(f Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeColors colors text output.  It has no effect on other formats.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeOffsets includes token offsets in text output.
func EncodeOffsets(v bool) EncodeOption {
	return func(es *EncState) { es.offsets = v }
}
