package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"Inkwell/internal/stroke"
)

// Rasterize renders a whole SVG document into an RGBA image of the
// requested size. The committed layer of the board goes through here,
// so what the screen shows is exactly what an export would contain.
func Rasterize(svgData []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rasterize: invalid size %dx%d", width, height)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	icon.SetTarget(0, 0, float64(width), float64(height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)
	return img, nil
}

// FillRing paints a closed outline ring directly onto img. The ring is
// traced as the same quadratic chain the path codec emits, so the live
// preview and the committed render agree on shape.
func FillRing(img *image.RGBA, ring []stroke.Point, fill color.Color) {
	if len(ring) < 3 {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(fill)
	trace(filler, ring)
	filler.Draw()
}

// StrokeRing draws only the boundary of the ring, for brushes that
// carry a contrasting outline around the filled body.
func StrokeRing(img *image.RGBA, ring []stroke.Point, col color.Color, width float32) {
	if len(ring) < 3 || width <= 0 {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	stroker := rasterx.NewStroker(w, h, scanner)
	stroker.SetStroke(fixed.Int26_6(width*64), 0,
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip)
	stroker.SetColor(col)
	trace(stroker, ring)
	stroker.Draw()
}

// trace feeds the ring to the rasterizer as quadratics through the
// midpoints of consecutive vertices, wrapping back to the start. A
// segment whose control point lands on one of its endpoints is
// straight and goes in as a line; the stroker's curvature math
// divides by the control-point offset and cannot take those.
func trace(adder rasterx.Adder, ring []stroke.Point) {
	cur := fixedPoint(ring[0])
	adder.Start(cur)
	for i, p := range ring {
		next := ring[(i+1)%len(ring)]
		mid := fixedPoint(stroke.Point{X: (p.X + next.X) / 2, Y: (p.Y + next.Y) / 2})
		ctrl := fixedPoint(p)
		switch {
		case ctrl == cur && mid == cur:
			continue
		case ctrl == cur || ctrl == mid:
			adder.Line(mid)
		default:
			adder.QuadBezier(ctrl, mid)
		}
		cur = mid
	}
	adder.Stop(true)
}

func fixedPoint(p stroke.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(p.X), float64(p.Y))
}
