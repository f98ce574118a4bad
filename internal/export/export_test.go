package export

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Inkwell/internal/state"
	"Inkwell/internal/stroke"
	"Inkwell/internal/svg"
)

func TestFilenamePattern(t *testing.T) {
	name := Filename(time.UnixMilli(1724236800123))
	assert.Equal(t, "drawing-1724236800123.svg", name)
	assert.Regexp(t, regexp.MustCompile(`^drawing-\d+\.svg$`), Filename(time.Now()))
}

func TestWriteSVGEmitsExportBytes(t *testing.T) {
	doc := &svg.Document{
		Width:  400,
		Height: 300,
		Paths: []svg.Path{
			{D: "M 1 2 Q 1 2 3 4 Z", Fill: "#1d1d1d", FillOpacity: 1},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, doc))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml version=\"1.0\" standalone=\"no\"?>\r\n<svg "), "got %q", out)
	assert.Contains(t, out, "M 1 2 Q 1 2 3 4 Z")
}

func squareStroke(x, y, side float32) state.Stroke {
	return state.Stroke{
		ID: "s1",
		Points: []stroke.Sample{
			{X: x, Y: y, Pressure: 0.5},
			{X: x + side, Y: y, Pressure: 0.5},
			{X: x + side, Y: y + side, Pressure: 0.5},
			{X: x, Y: y + side, Pressure: 0.5},
		},
		Color:   "#e03131",
		Opacity: 0.8,
	}
}

func TestRenderPDFWritesDocument(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPDF(&buf, []state.Stroke{squareStroke(10, 10, 200)})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output should start with a PDF header")
}

func TestRenderPDFEmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPDF(&buf, nil)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
