package export

import (
	"fmt"
	"io"
	"time"

	"Inkwell/internal/svg"
)

// Filename builds the default save name from a timestamp, so repeated
// exports never collide.
func Filename(t time.Time) string {
	return fmt.Sprintf("drawing-%d.svg", t.UnixMilli())
}

// WriteSVG renders the document and writes it out in one shot.
func WriteSVG(w io.Writer, doc *svg.Document) error {
	data, err := doc.Render()
	if err != nil {
		return fmt.Errorf("render svg: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
