package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Inkwell/internal/stroke"
)

const squareDoc = `<?xml version="1.0" standalone="no"?>
<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64" viewBox="0 0 64 64">
  <path d="M 2 2 Q 2 2 32 2 62 2 62 32 62 62 32 62 2 62 2 32 Z" fill="#ff0000" fill-opacity="1"/>
</svg>`

func TestRasterizeDocument(t *testing.T) {
	img, err := Rasterize([]byte(squareDoc), 64, 64)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
	assert.NotZero(t, img.RGBAAt(32, 32).A, "shape interior should be painted")
}

func TestRasterizeRejectsGarbage(t *testing.T) {
	_, err := Rasterize([]byte("<svg"), 8, 8)
	assert.Error(t, err)

	_, err = Rasterize([]byte(squareDoc), 0, 10)
	assert.Error(t, err)
}

func diskRing(cx, cy, r float32, steps int) []stroke.Point {
	ring := make([]stroke.Point, steps)
	for i := range ring {
		t := 2 * math32.Pi * float32(i) / float32(steps)
		ring[i] = stroke.Point{X: cx + r*math32.Cos(t), Y: cy + r*math32.Sin(t)}
	}
	return ring
}

func TestFillRingPaintsInterior(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	FillRing(img, diskRing(32, 32, 20, 24), color.NRGBA{R: 0xe0, G: 0x31, B: 0x31, A: 0xff})

	assert.NotZero(t, img.RGBAAt(32, 32).A, "disk center should be filled")
	assert.Zero(t, img.RGBAAt(1, 1).A, "far corner should stay empty")
}

func TestFillRingIgnoresDegenerateRings(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	FillRing(img, nil, color.Black)
	FillRing(img, diskRing(8, 8, 4, 24)[:2], color.Black)

	assert.Equal(t, image.NewRGBA(image.Rect(0, 0, 16, 16)).Pix, img.Pix)
}

func TestStrokeRingPaintsBoundaryOnly(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	StrokeRing(img, diskRing(32, 32, 20, 24), color.NRGBA{A: 0xff}, 3)

	assert.NotZero(t, img.RGBAAt(32, 12).A, "ring boundary should be painted")
	assert.Zero(t, img.RGBAAt(32, 32).A, "disk center should stay empty")
	assert.Zero(t, img.RGBAAt(1, 1).A)
}

func TestStrokeRingToleratesDegenerateControlPoints(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	red := color.NRGBA{R: 0xe0, G: 0x31, B: 0x31, A: 0xff}

	// The chain always opens with its control point on the pen, and cap
	// fans can repeat a vertex at the seam. Both must stroke cleanly.
	triangle := []stroke.Point{{X: 8, Y: 8}, {X: 56, Y: 12}, {X: 30, Y: 56}}
	require.NotPanics(t, func() { StrokeRing(img, triangle, red, 2) })
	assert.NotZero(t, img.RGBAAt(8, 8).A, "outline should pass through the first vertex")

	seam := []stroke.Point{{X: 8, Y: 8}, {X: 56, Y: 12}, {X: 56, Y: 12}, {X: 30, Y: 56}}
	require.NotPanics(t, func() { StrokeRing(img, seam, red, 2) })

	ring := stroke.Outline([]stroke.Sample{
		{X: 12, Y: 32, Pressure: 0.5},
		{X: 32, Y: 32, Pressure: 0.5},
		{X: 52, Y: 32, Pressure: 0.5},
	}, stroke.Options{Size: 8})
	require.NotEmpty(t, ring)
	require.NotPanics(t, func() { StrokeRing(img, ring, red, 2) })
}
