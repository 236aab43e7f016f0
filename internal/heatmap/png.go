package heatmap

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/wesen/vents/pkg/grid"
)

// MaxScale bounds the pixels per cell of Image.
const MaxScale = 64

// CellColor maps a count to its pixel colour. Counts above two fade from
// the overlap colour toward the hot colour as they approach peak.
func CellColor[T grid.Number](v, peak T) color.RGBA {
	switch {
	case v <= 0:
		return rgba(colorBG)
	case v == 1:
		return rgba(colorSingle)
	case v == 2 || peak <= 2:
		return rgba(colorOverlap)
	}
	t := float64(v-2) / float64(peak-2)
	return lerp(rgba(colorOverlap), rgba(colorHot), t)
}

// Image renders g with one scale by scale block per cell.
func Image[T grid.Number](g *grid.Grid[T], scale int) (*image.RGBA, error) {
	if scale < 1 || scale > MaxScale {
		return nil, fmt.Errorf("scale %d outside 1..%d", scale, MaxScale)
	}
	src := image.NewRGBA(image.Rect(0, 0, g.LenX(), g.LenY()))
	peak := g.Max()
	for p, v := range g.Cells() {
		src.SetRGBA(p.X, p.Y, CellColor(v, peak))
	}
	if scale == 1 {
		return src, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, g.LenX()*scale, g.LenY()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// WritePNG encodes Image(g, scale) to w.
func WritePNG[T grid.Number](w io.Writer, g *grid.Grid[T], scale int) error {
	img, err := Image(g, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	t = min(max(t, 0), 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
