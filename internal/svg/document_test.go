package svg

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtractsStyles(t *testing.T) {
	data := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="400" height="300">
  <path d="M0 0 L10 10" fill="#ff0000" fill-opacity="0.5" stroke="#00ff00" stroke-width="2"/>
  <path d="M5 5 L6 6" fill="none"/>
</svg>`)
	doc, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, float32(400), doc.Width)
	assert.Equal(t, float32(300), doc.Height)
	require.Len(t, doc.Paths, 2)

	assert.Equal(t, "#ff0000", doc.Paths[0].Fill)
	assert.Equal(t, float32(0.5), doc.Paths[0].FillOpacity)
	assert.Equal(t, "#00ff00", doc.Paths[0].Stroke)
	assert.Equal(t, float32(2), doc.Paths[0].StrokeWidth)

	// "none" and missing attributes collapse to the legacy defaults.
	assert.Equal(t, "#000000", doc.Paths[1].Fill)
	assert.Equal(t, float32(1), doc.Paths[1].FillOpacity)
	assert.Equal(t, "#000000", doc.Paths[1].Stroke)
	assert.Equal(t, float32(0), doc.Paths[1].StrokeWidth)
}

func TestParseSkipsNestedAndEmptyPaths(t *testing.T) {
	data := []byte(`<svg xmlns="http://www.w3.org/2000/svg">
  <g><path d="M0 0 L1 1"/></g>
  <path d=""/>
  <path/>
</svg>`)
	doc, err := Parse(data)
	require.NoError(t, err)
	assert.Empty(t, doc.Paths)
}

func TestParseRejectsNonSVG(t *testing.T) {
	_, err := Parse([]byte("not xml at all"))
	assert.Error(t, err)

	_, err = Parse([]byte("<html><body></body></html>"))
	assert.Error(t, err)
}

func TestParseToleratesMissingSize(t *testing.T) {
	doc, err := Parse([]byte(`<svg xmlns="http://www.w3.org/2000/svg" width="100%"><path d="M0 0"/></svg>`))
	require.NoError(t, err)
	assert.Zero(t, doc.Width)
	require.Len(t, doc.Paths, 1)
}

func TestRenderHeaderAndNamespace(t *testing.T) {
	doc := &Document{Width: 800, Height: 600, Paths: []Path{{
		D: "M 0 0 Q 0 0 5 0 Z", Fill: "#1d1d1d", FillOpacity: 1, Stroke: "#000000",
	}}}
	data, err := doc.Render()
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text,
		"<?xml version=\"1.0\" standalone=\"no\"?>\r\n<svg xmlns=\"http://www.w3.org/2000/svg\""),
		"got %q", text)
	assert.Contains(t, text, `viewBox="0 0 800 600"`)
	assert.Contains(t, text, `fill="#1d1d1d"`)
	assert.Contains(t, text, `fill-opacity="1"`)
}

func TestRenderParseRoundTrip(t *testing.T) {
	doc := &Document{Width: 640, Height: 480, Paths: []Path{
		{D: "M 0 0 Q 0 0 5 0 Z", Fill: "#e03131", FillOpacity: 0.45, Stroke: "#000000", StrokeWidth: 1.5},
		{D: "M 9 9 Q 9 9 9 9 Z", Fill: "#4263eb", FillOpacity: 1, Stroke: "#000000", StrokeWidth: 0},
	}}
	data, err := doc.Render()
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, doc.Width, back.Width)
	assert.Equal(t, doc.Height, back.Height)
	assert.Equal(t, doc.Paths, back.Paths)
}

func TestParseHexColor(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, ParseHexColor("#ff0000"))
	assert.Equal(t, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}, ParseHexColor("#112233"))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, ParseHexColor("#fff"))

	black := color.NRGBA{A: 0xff}
	assert.Equal(t, black, ParseHexColor(""))
	assert.Equal(t, black, ParseHexColor("red"))
	assert.Equal(t, black, ParseHexColor("#12345"))
	assert.Equal(t, black, ParseHexColor("#zzzzzz"))
}
