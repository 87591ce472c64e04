package input

// Printable range bounds for piped bytes
const (
	controlShift = 32  // Control characters are moved up into the printable range
	delByte      = 127 // DEL is replaced by '~'
)

// Normalize maps a raw input byte to a drawable glyph
// The byte is read as signed: negatives are negated, then values below 32
// are shifted by 32 and DEL becomes 126
// -128 has no positive counterpart and comes out as 0x80
func Normalize(b byte) byte {
	v := int(int8(b))
	if v < 0 {
		v = -v
	}
	if v < controlShift {
		v += controlShift
	}
	if v == delByte {
		v = delByte - 1
	}
	return byte(v)
}

// NormalizeSlice normalizes p in place
func NormalizeSlice(p []byte) {
	for i, b := range p {
		p[i] = Normalize(b)
	}
}
