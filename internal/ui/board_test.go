package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Inkwell/internal/state"
	"Inkwell/internal/stroke"
)

func primaryAt(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func dragTo(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestBoardGestureCommitsStroke(t *testing.T) {
	test.NewApp()
	store := state.NewStore()
	b := NewBoard(store)
	changes := 0
	b.OnChange = func() { changes++ }

	b.MouseDown(primaryAt(10, 10))
	b.Dragged(dragTo(60, 10))
	b.Dragged(dragTo(120, 40))
	b.MouseUp(primaryAt(120, 40))

	assert.Equal(t, 1, store.Len())
	assert.Positive(t, changes)
	_, live := store.Preview()
	assert.False(t, live, "gesture ended, nothing should stay buffered")
}

func TestBoardIgnoresSecondaryButton(t *testing.T) {
	test.NewApp()
	store := state.NewStore()
	b := NewBoard(store)

	ev := primaryAt(10, 10)
	ev.Button = desktop.MouseButtonSecondary
	b.MouseDown(ev)

	_, live := store.Preview()
	assert.False(t, live)
	b.MouseUp(ev)
	assert.Zero(t, store.Len())
}

func TestBoardDragWithoutPressDoesNothing(t *testing.T) {
	test.NewApp()
	store := state.NewStore()
	b := NewBoard(store)

	b.Dragged(dragTo(50, 50))
	_, live := store.Preview()
	assert.False(t, live)
	assert.Zero(t, store.Len())
}

func TestBoardEraserRemovesStrokeUnderCursor(t *testing.T) {
	test.NewApp()
	store := state.NewStore()
	b := NewBoard(store)

	store.Begin(stroke.Sample{X: 10, Y: 10, Pressure: 0.5})
	store.Extend(stroke.Sample{X: 60, Y: 10, Pressure: 0.5})
	store.Commit()
	require.Equal(t, 1, store.Len())

	store.Tools().SetActive(state.ToolEraser)
	b.MouseDown(primaryAt(10, 10))
	b.MouseUp(primaryAt(10, 10))

	assert.Zero(t, store.Len())
	// The eraser gesture must not have opened a stroke of its own.
	b.MouseDown(primaryAt(200, 200))
	b.MouseUp(primaryAt(200, 200))
	assert.Zero(t, store.Len())
}

func TestBoardRendererRasterizesAtViewportSize(t *testing.T) {
	test.NewApp()
	store := state.NewStore()
	b := NewBoard(store)

	store.Begin(stroke.Sample{X: 5, Y: 5, Pressure: 0.5})
	store.Extend(stroke.Sample{X: 40, Y: 30, Pressure: 0.5})
	store.Commit()

	r := b.CreateRenderer().(*boardRenderer)
	r.Layout(fyne.NewSize(64, 48))

	img := r.committed.Image
	require.NotNil(t, img)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}
