package ui

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"Inkwell/internal/render"
	"Inkwell/internal/state"
	"Inkwell/internal/stroke"
	"Inkwell/internal/svg"
)

// Board is the drawing surface. Input lands here on the UI thread and
// goes straight into the store; painting happens in the renderer below
// with one raster layer for committed strokes and one for the live
// preview, so finished strokes are not re-rasterized on every drag.
type Board struct {
	widget.BaseWidget
	store    *state.Store
	drawing  bool
	erasing  bool
	OnChange func()
}

var _ fyne.Widget = (*Board)(nil)
var _ fyne.Draggable = (*Board)(nil)
var _ desktop.Mouseable = (*Board)(nil)

func NewBoard(store *state.Store) *Board {
	b := &Board{store: store}
	b.ExtendBaseWidget(b)
	return b
}

func (b *Board) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if b.store.Tools().Active() == state.ToolEraser {
		b.erasing = true
		b.eraseAt(e.Position)
		return
	}
	b.drawing = true
	b.store.Begin(sampleAt(e.Position))
	b.changed()
}

func (b *Board) Dragged(e *fyne.DragEvent) {
	switch {
	case b.erasing:
		b.eraseAt(e.Position)
	case b.drawing:
		b.store.Extend(sampleAt(e.Position))
		b.changed()
	}
}

func (b *Board) DragEnd() {}

func (b *Board) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if b.drawing {
		b.drawing = false
		b.store.Commit()
		b.changed()
	}
	b.erasing = false
}

func (b *Board) MouseIn(*desktop.MouseEvent)    {}
func (b *Board) MouseOut()                      {}
func (b *Board) MouseMoved(*desktop.MouseEvent) {}

func (b *Board) eraseAt(pos fyne.Position) {
	radius := b.store.Tools().Eraser().Size / 2
	if b.store.Erase(stroke.Point{X: pos.X, Y: pos.Y}, radius) > 0 {
		b.changed()
	}
}

// Mouse input carries no pressure axis, so every sample gets the
// neutral midpoint and thinning leaves the width alone.
func sampleAt(pos fyne.Position) stroke.Sample {
	return stroke.Sample{X: pos.X, Y: pos.Y, Pressure: 0.5}
}

func (b *Board) changed() {
	b.Refresh()
	if b.OnChange != nil {
		b.OnChange()
	}
}

func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.committed = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	r.committed.FillMode = canvas.ImageFillStretch
	r.preview = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	r.preview.FillMode = canvas.ImageFillStretch
	return r
}

type boardRenderer struct {
	board      *Board
	background *canvas.Rectangle
	committed  *canvas.Image
	preview    *canvas.Image

	size    fyne.Size
	overlay *image.RGBA
	version uint64
	valid   bool
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.committed, r.preview}
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.committed.Resize(size)
	r.preview.Resize(size)
	if size != r.size {
		r.size = size
		r.valid = false
		r.Refresh()
	}
}

func (r *boardRenderer) MinSize() fyne.Size { return fyne.NewSize(300, 300) }

func (r *boardRenderer) Destroy() {}

func (r *boardRenderer) Refresh() {
	w, h := int(r.size.Width), int(r.size.Height)
	if w <= 0 || h <= 0 {
		return
	}
	if !r.valid || r.version != r.board.store.Version() {
		r.renderCommitted(w, h)
		r.version = r.board.store.Version()
		r.valid = true
	}
	r.renderPreview(w, h)
}

// renderCommitted rasterizes the store's document at viewport size.
// The screen therefore shows exactly what an SVG export contains.
func (r *boardRenderer) renderCommitted(w, h int) {
	doc := r.board.store.Document(float32(w), float32(h))
	data, err := doc.Render()
	var img *image.RGBA
	if err == nil {
		img, err = render.Rasterize(data, w, h)
	}
	if err != nil {
		log.Printf("[UI] committed layer render failed: %v", err)
		img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	r.committed.Image = img
	r.committed.Refresh()
}

func (r *boardRenderer) renderPreview(w, h int) {
	if r.overlay == nil || r.overlay.Bounds().Dx() != w || r.overlay.Bounds().Dy() != h {
		r.overlay = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		draw.Draw(r.overlay, r.overlay.Bounds(), image.Transparent, image.Point{}, draw.Src)
	}
	if pv, ok := r.board.store.Preview(); ok {
		fill := svg.ParseHexColor(pv.Color)
		fill.A = uint8(pv.Opacity * 255)
		render.FillRing(r.overlay, pv.Ring, fill)
		if pv.OutlineWidth > 0 {
			render.StrokeRing(r.overlay, pv.Ring, svg.ParseHexColor(pv.OutlineColor), pv.OutlineWidth)
		}
	}
	r.preview.Image = r.overlay
	r.preview.Refresh()
}
