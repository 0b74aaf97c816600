package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Palette used by the jumper renderers.
const (
	ColorDefault Color = iota
	ColorPlayer
	ColorPlatform
	ColorHUD
	ColorOverlay
	ColorButton
	ColorDim
)

// Hex returns the 24-bit color for c, or an empty string for the terminal default.
func (c Color) Hex() string {
	switch c {
	case ColorPlayer:
		return "#10B981" // emerald
	case ColorPlatform:
		return "#E5E7EB"
	case ColorHUD:
		return "#F9FAFB"
	case ColorOverlay:
		return "#C4B5FD"
	case ColorButton:
		return "#34D399"
	case ColorDim:
		return "#6366F1"
	default:
		return ""
	}
}

// RGBA returns the color as 8-bit channels. The default color maps to opaque white.
func (c Color) RGBA() (r, g, b, a uint8) {
	hex := c.Hex()
	if len(hex) != 7 {
		return 0xff, 0xff, 0xff, 0xff
	}
	return hexByte(hex[1:3]), hexByte(hex[3:5]), hexByte(hex[5:7]), 0xff
}

func hexByte(s string) uint8 {
	var v uint8
	for i := 0; i < len(s); i++ {
		v <<= 4
		switch ch := s[i]; {
		case ch >= '0' && ch <= '9':
			v |= ch - '0'
		case ch >= 'a' && ch <= 'f':
			v |= ch - 'a' + 10
		case ch >= 'A' && ch <= 'F':
			v |= ch - 'A' + 10
		}
	}
	return v
}
