// Package icon renders the tray icon programmatically, so the binary
// carries no image assets.
package icon

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// base is the master render size. The glyph is drawn once at this
// resolution and scaled down to whatever the system metrics ask for.
const base = 64

var (
	idleFill   = color.RGBA{0x6e, 0x6e, 0x6e, 0xff}
	activeFill = color.RGBA{0xd8, 0x47, 0x3b, 0xff}
	stemColor  = color.RGBA{0x30, 0x30, 0x30, 0xff}
)

// Render draws the pushpin glyph at the requested pixel size. active
// selects the highlighted variant shown while any window is pinned.
func Render(size int, active bool) *image.RGBA {
	if size <= 0 {
		size = base
	}

	src := drawGlyph(active)
	if size == base {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// drawGlyph paints a pin head with a stem running to the bottom-left
// corner, the usual pushpin silhouette.
func drawGlyph(active bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, base, base))

	fill := idleFill
	if active {
		fill = activeFill
	}

	// Stem: a thick diagonal from the head down to the corner.
	for t := 0; t < base; t++ {
		x := base/2 - t*base/2/base
		y := base/2 + t*base/2/base
		setThick(img, x, y, 3, stemColor)
	}

	// Head: filled circle in the upper-right quadrant.
	const (
		cx, cy = base * 5 / 8, base * 3 / 8
		r      = base / 4
	)
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img
}

func setThick(img *image.RGBA, x, y, w int, c color.RGBA) {
	for dy := -w / 2; dy <= w/2; dy++ {
		for dx := -w / 2; dx <= w/2; dx++ {
			img.SetRGBA(x+dx, y+dy, c)
		}
	}
}

// BGRA returns the image as top-down 32-bit BGRA pixel data, the layout
// CreateBitmap expects for the icon's color plane.
func BGRA(img *image.RGBA) []byte {
	b := img.Bounds()
	out := make([]byte, b.Dx()*b.Dy()*4)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			out[i+0] = c.B
			out[i+1] = c.G
			out[i+2] = c.R
			out[i+3] = c.A
			i += 4
		}
	}
	return out
}
