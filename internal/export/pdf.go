package export

import (
	"io"
	"log"

	"github.com/jung-kurt/gofpdf"

	"Inkwell/internal/state"
	"Inkwell/internal/svg"
)

// A4 portrait in the units gofpdf was opened with.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	pageMargin = 10.0
)

// RenderPDF draws every committed stroke as a filled polygon on a
// single A4 page, scaled to fit inside the margins. An empty board
// still produces a valid one-page document.
func RenderPDF(w io.Writer, strokes []state.Stroke) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	minX, minY, scale, ok := fit(strokes)
	if ok {
		for _, st := range strokes {
			if len(st.Points) < 3 {
				continue
			}
			pts := make([]gofpdf.PointType, len(st.Points))
			for i, p := range st.Points {
				pts[i] = gofpdf.PointType{
					X: pageMargin + float64(p.X-minX)*scale,
					Y: pageMargin + float64(p.Y-minY)*scale,
				}
			}
			c := svg.ParseHexColor(st.Color)
			pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
			pdf.SetAlpha(float64(st.Opacity), "Normal")
			pdf.Polygon(pts, "F")
		}
		pdf.SetAlpha(1, "Normal")
	}

	log.Printf("[EXPORT] rendering %d stroke(s) to PDF", len(strokes))
	return pdf.Output(w)
}

// fit computes the translation and uniform scale that place the whole
// drawing inside the page margins. Strokes are never scaled up, only
// down, so small drawings keep their on-screen proportions.
func fit(strokes []state.Stroke) (minX, minY float32, scale float64, ok bool) {
	var maxX, maxY float32
	for _, st := range strokes {
		for _, p := range st.Points {
			if !ok {
				minX, maxX = p.X, p.X
				minY, maxY = p.Y, p.Y
				ok = true
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	if !ok {
		return 0, 0, 0, false
	}
	scale = 1
	if w := float64(maxX - minX); w > 0 {
		if s := (pageWidth - 2*pageMargin) / w; s < scale {
			scale = s
		}
	}
	if h := float64(maxY - minY); h > 0 {
		if s := (pageHeight - 2*pageMargin) / h; s < scale {
			scale = s
		}
	}
	return minX, minY, scale, true
}
