package svg

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Path is one <path> element of a drawing: its geometry plus the style
// attributes the board round-trips.
type Path struct {
	D           string
	Fill        string
	FillOpacity float32
	Stroke      string
	StrokeWidth float32
}

// Document is a flat view of an SVG file: its size and its top-level
// paths. That is everything the board reads and everything it writes.
type Document struct {
	Width, Height float32
	Paths         []Path
}

// xmlHeader goes byte for byte in front of every exported drawing,
// CRLF included.
const xmlHeader = "<?xml version=\"1.0\" standalone=\"no\"?>\r\n"

const namespace = "http://www.w3.org/2000/svg"

type svgIn struct {
	XMLName xml.Name `xml:"svg"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	Paths   []pathIn `xml:"path"`
}

type pathIn struct {
	D           string `xml:"d,attr"`
	Fill        string `xml:"fill,attr"`
	FillOpacity string `xml:"fill-opacity,attr"`
	Stroke      string `xml:"stroke,attr"`
	StrokeWidth string `xml:"stroke-width,attr"`
}

// Parse reads an SVG document and keeps every direct <path> child that
// carries path data. A document without any is fine and comes back
// empty; anything whose root is not an svg element is an error.
func Parse(data []byte) (*Document, error) {
	var in svgIn
	if err := xml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("svg: parse document: %w", err)
	}
	doc := &Document{
		Width:  attrNum(in.Width, 0),
		Height: attrNum(in.Height, 0),
	}
	for _, p := range in.Paths {
		if p.D == "" {
			continue
		}
		doc.Paths = append(doc.Paths, Path{
			D:           p.D,
			Fill:        attrColor(p.Fill),
			FillOpacity: attrNum(p.FillOpacity, 1),
			Stroke:      attrColor(p.Stroke),
			StrokeWidth: attrNum(p.StrokeWidth, 0),
		})
	}
	return doc, nil
}

// attrColor resolves a color attribute. A missing value and the
// literal "none" both come back black: "none" really means
// transparent, but the board has always painted such imports black and
// files saved by older builds rely on rendering the way they used to.
func attrColor(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || v == "none" {
		return "#000000"
	}
	return v
}

func attrNum(v string, fallback float32) float32 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 32)
	if err != nil {
		return fallback
	}
	return float32(f)
}

type svgOut struct {
	XMLName xml.Name  `xml:"svg"`
	Xmlns   string    `xml:"xmlns,attr"`
	Width   string    `xml:"width,attr,omitempty"`
	Height  string    `xml:"height,attr,omitempty"`
	ViewBox string    `xml:"viewBox,attr,omitempty"`
	Paths   []pathOut `xml:"path"`
}

type pathOut struct {
	D           string `xml:"d,attr"`
	Fill        string `xml:"fill,attr"`
	FillOpacity string `xml:"fill-opacity,attr"`
	Stroke      string `xml:"stroke,attr"`
	StrokeWidth string `xml:"stroke-width,attr"`
}

// Render serializes the document the way the exporter has always
// written drawings: the standalone XML prolog, then one <path> per
// stroke under a root that carries the SVG namespace explicitly.
func (d *Document) Render() ([]byte, error) {
	out := svgOut{Xmlns: namespace}
	if d.Width > 0 && d.Height > 0 {
		w, h := num(d.Width), num(d.Height)
		out.Width, out.Height = w, h
		out.ViewBox = "0 0 " + w + " " + h
	}
	for _, p := range d.Paths {
		out.Paths = append(out.Paths, pathOut{
			D:           p.D,
			Fill:        p.Fill,
			FillOpacity: num(p.FillOpacity),
			Stroke:      p.Stroke,
			StrokeWidth: num(p.StrokeWidth),
		})
	}
	body, err := xml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("svg: render document: %w", err)
	}
	return append([]byte(xmlHeader), body...), nil
}
