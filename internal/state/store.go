package state

import (
	"log"

	"github.com/google/uuid"

	"Inkwell/internal/stroke"
	"Inkwell/internal/svg"
)

// Store is the board's model: the committed strokes, the undo/redo
// stacks over them, and the one stroke currently being drawn. It is
// confined to the UI event thread; background work hands fully
// materialized data back to that thread before anything here is
// touched, so there is no locking.
type Store struct {
	tools   *Toolbox
	strokes []Stroke
	redo    []Stroke
	live    *liveStroke
	version uint64
}

type liveStroke struct {
	samples []stroke.Sample
	opts    stroke.Options
	ring    []stroke.Point
	path    string
	color   string
	opacity float32
	outline OutlineConfig
}

func NewStore() *Store {
	return &Store{tools: NewToolbox()}
}

func (s *Store) Tools() *Toolbox { return s.tools }

// Version changes whenever the committed layer does, so renderers can
// cache its rasterization. The in-progress preview never bumps it.
func (s *Store) Version() uint64 { return s.version }

// Strokes returns the committed strokes in commit order.
func (s *Store) Strokes() []Stroke {
	out := make([]Stroke, len(s.strokes))
	copy(out, s.strokes)
	return out
}

func (s *Store) Len() int      { return len(s.strokes) }
func (s *Store) CanUndo() bool { return len(s.strokes) > 0 }
func (s *Store) CanRedo() bool { return len(s.redo) > 0 }

// Begin opens a new in-progress stroke at p, snapshotting the active
// brush so a mid-gesture config change cannot shear the stroke. A
// buffer already in progress is discarded: pointer input is serial,
// so a second begin means the previous gesture never ended cleanly.
// Beginning a stroke invalidates the redo stack.
func (s *Store) Begin(p stroke.Sample) {
	s.redo = s.redo[:0]
	cfg, ok := s.tools.ActiveBrush()
	if !ok {
		s.live = nil
		return
	}
	opts, err := cfg.Options()
	if err != nil {
		log.Printf("[STORE] begin: invalid brush config: %v", err)
		s.live = nil
		return
	}
	s.live = &liveStroke{
		samples: []stroke.Sample{p},
		opts:    opts,
		color:   cfg.Color,
		opacity: cfg.Opacity,
		outline: cfg.Outline,
	}
	s.recompute()
}

// Extend appends one sample to the in-progress stroke and rebuilds the
// preview from the full buffer. Called at pointer-move rate.
func (s *Store) Extend(p stroke.Sample) {
	if s.live == nil {
		return
	}
	s.live.samples = append(s.live.samples, p)
	s.recompute()
}

func (s *Store) recompute() {
	s.live.ring = stroke.Outline(s.live.samples, s.live.opts)
	s.live.path = svg.Encode(s.live.ring)
}

// Preview returns the in-progress stroke, if any.
func (s *Store) Preview() (Preview, bool) {
	if s.live == nil {
		return Preview{}, false
	}
	return Preview{
		Ring:         s.live.ring,
		Path:         s.live.path,
		Color:        s.live.color,
		Opacity:      s.live.opacity,
		OutlineColor: s.live.outline.Color,
		OutlineWidth: s.live.outline.Width,
	}, true
}

// Commit freezes the in-progress stroke onto the committed stack. With
// nothing buffered it is a no-op.
func (s *Store) Commit() {
	if s.live == nil || len(s.live.samples) == 0 {
		s.live = nil
		return
	}
	st := Stroke{
		ID:           uuid.NewString(),
		Points:       ringSamples(s.live.ring),
		Path:         s.live.path,
		Color:        s.live.color,
		Opacity:      s.live.opacity,
		OutlineColor: s.live.outline.Color,
		OutlineWidth: s.live.outline.Width,
	}
	s.strokes = append(s.strokes, st)
	s.redo = s.redo[:0]
	s.live = nil
	s.version++
	log.Printf("[STORE] committed stroke %s (%d outline points)", st.ID, len(st.Points))
}

// ringSamples freezes outline vertices as the stroke's hit-test
// points. Width is already baked into the ring, so the stored samples
// carry the neutral pressure.
func ringSamples(ring []stroke.Point) []stroke.Sample {
	pts := make([]stroke.Sample, len(ring))
	for i, p := range ring {
		pts[i] = stroke.Sample{X: p.X, Y: p.Y, Pressure: 0.5}
	}
	return pts
}

// Undo moves the most recent stroke onto the redo stack. Empty board:
// no-op.
func (s *Store) Undo() {
	if len(s.strokes) == 0 {
		return
	}
	last := s.strokes[len(s.strokes)-1]
	s.strokes = s.strokes[:len(s.strokes)-1]
	s.redo = append(s.redo, last)
	s.version++
}

// Redo restores the most recently undone stroke. Empty redo stack:
// no-op.
func (s *Store) Redo() {
	if len(s.redo) == 0 {
		return
	}
	last := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.strokes = append(s.strokes, last)
	s.version++
}

// Erase removes, in one pass, every stroke with at least one retained
// point strictly closer than radius to p, and reports how many went.
// The test runs against the stored points rather than the rendered
// ribbon: dense strokes can be removed by a near miss and sparse ones
// can survive a direct hit, the accepted price of erasing at
// pointer-move rate.
func (s *Store) Erase(p stroke.Point, radius float32) int {
	if radius <= 0 {
		return 0
	}
	r2 := radius * radius
	kept := s.strokes[:0]
	removed := 0
	for _, st := range s.strokes {
		if strokeHit(st, p, r2) {
			removed++
			continue
		}
		kept = append(kept, st)
	}
	s.strokes = kept
	if removed > 0 {
		s.version++
		log.Printf("[STORE] erased %d stroke(s)", removed)
	}
	return removed
}

func strokeHit(st Stroke, p stroke.Point, r2 float32) bool {
	for _, q := range st.Points {
		dx, dy := q.X-p.X, q.Y-p.Y
		if dx*dx+dy*dy < r2 {
			return true
		}
	}
	return false
}

// Clear empties the board and both history stacks.
func (s *Store) Clear() {
	changed := len(s.strokes) > 0
	s.strokes = nil
	s.redo = nil
	if changed {
		s.version++
	}
}

// ImportDocument appends one stroke per path of an already-parsed
// document and reports how many arrived. Parsing happened before
// anything here mutates, so a failed import never leaves a
// half-applied store behind. Imports invalidate the redo stack just
// as new strokes do.
func (s *Store) ImportDocument(doc *svg.Document) int {
	s.redo = s.redo[:0]
	for _, p := range doc.Paths {
		s.strokes = append(s.strokes, Stroke{
			ID:           uuid.NewString(),
			Points:       svg.DecodePoints(p.D),
			Path:         p.D,
			Color:        p.Fill,
			Opacity:      p.FillOpacity,
			OutlineColor: p.Stroke,
			OutlineWidth: p.StrokeWidth,
		})
	}
	n := len(doc.Paths)
	if n > 0 {
		s.version++
		log.Printf("[STORE] imported %d stroke(s)", n)
	}
	return n
}

// Document bundles the committed strokes into an exportable document
// of the given canvas size.
func (s *Store) Document(width, height float32) *svg.Document {
	doc := &svg.Document{Width: width, Height: height}
	for _, st := range s.strokes {
		doc.Paths = append(doc.Paths, svg.Path{
			D:           st.Path,
			Fill:        st.Color,
			FillOpacity: st.Opacity,
			Stroke:      st.OutlineColor,
			StrokeWidth: st.OutlineWidth,
		})
	}
	return doc
}
