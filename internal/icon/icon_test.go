package icon

import "testing"

func TestRender_Size(t *testing.T) {
	for _, size := range []int{16, 32, 64} {
		img := Render(size, false)
		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("Render(%d): got %dx%d", size, b.Dx(), b.Dy())
		}
	}
}

func TestRender_DefaultSizeOnBadInput(t *testing.T) {
	img := Render(0, false)
	if img.Bounds().Dx() != 64 {
		t.Errorf("Render(0) should fall back to 64, got %d", img.Bounds().Dx())
	}
}

func TestRender_VariantsDiffer(t *testing.T) {
	idle := Render(32, false)
	active := Render(32, true)

	same := true
	for i := range idle.Pix {
		if idle.Pix[i] != active.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("idle and active variants should render differently")
	}
}

func TestBGRA(t *testing.T) {
	img := Render(16, true)
	data := BGRA(img)

	if len(data) != 16*16*4 {
		t.Fatalf("BGRA length: got %d, want %d", len(data), 16*16*4)
	}

	// Spot-check channel order against a pixel inside the head circle.
	c := img.RGBAAt(10, 6)
	off := (6*16 + 10) * 4
	if data[off] != c.B || data[off+1] != c.G || data[off+2] != c.R || data[off+3] != c.A {
		t.Error("BGRA channel order wrong")
	}
}
