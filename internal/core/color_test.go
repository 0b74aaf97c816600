package core

import "testing"

func TestColorRGBA(t *testing.T) {
	r, g, b, a := ColorPlayer.RGBA()
	if r != 0x10 || g != 0xB9 || b != 0x81 || a != 0xff {
		t.Errorf("ColorPlayer.RGBA() = (%#x, %#x, %#x, %#x), expected emerald", r, g, b, a)
	}

	r, g, b, a = ColorDefault.RGBA()
	if r != 0xff || g != 0xff || b != 0xff || a != 0xff {
		t.Error("ColorDefault should map to opaque white")
	}
	if ColorDefault.Hex() != "" {
		t.Error("ColorDefault should have no hex value")
	}
}
