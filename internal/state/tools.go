package state

import (
	"fmt"

	"Inkwell/internal/easing"
	"Inkwell/internal/stroke"
)

// ToolKind selects one of the four tool slots.
type ToolKind int

const (
	ToolPenA ToolKind = iota
	ToolPenB
	ToolHighlighter
	ToolEraser
)

func (k ToolKind) String() string {
	switch k {
	case ToolPenA:
		return "pen A"
	case ToolPenB:
		return "pen B"
	case ToolHighlighter:
		return "highlighter"
	case ToolEraser:
		return "eraser"
	}
	return fmt.Sprintf("tool(%d)", int(k))
}

// TaperConfig names its easing instead of holding the function so
// configs stay plain comparable data; resolution happens during
// validation.
type TaperConfig struct {
	Taper  float32
	Easing string
}

// OutlineConfig is the optional secondary stroke drawn around the
// filled ribbon. Width 0 disables it.
type OutlineConfig struct {
	Color string
	Width float32
}

// BrushConfig is the full configuration of one pen or highlighter
// slot.
type BrushConfig struct {
	Color      string
	Opacity    float32
	Size       float32
	Thinning   float32
	Streamline float32
	Smoothing  float32
	Easing     string
	Start      TaperConfig
	End        TaperConfig
	Outline    OutlineConfig
}

// EraserConfig is the whole configuration of the eraser slot.
type EraserConfig struct {
	Size float32
}

// Shape defaults shared by every brush slot.
const (
	defaultThinning    = 0.5
	defaultStreamline  = 0.5
	defaultSmoothing   = 0.5
	defaultEasing      = "linear"
	defaultStartTaper  = 40
	defaultStartEasing = "easeOutQuad"
	defaultEndEasing   = "easeOutCubic"
)

// defaultBrush returns the built-in configuration for a brush slot.
// Color, size and opacity are fixed per slot; the shape parameters are
// the same everywhere.
func defaultBrush(kind ToolKind) BrushConfig {
	c := BrushConfig{
		Opacity:    1,
		Size:       8,
		Thinning:   defaultThinning,
		Streamline: defaultStreamline,
		Smoothing:  defaultSmoothing,
		Easing:     defaultEasing,
		Start:      TaperConfig{Taper: defaultStartTaper, Easing: defaultStartEasing},
		End:        TaperConfig{Taper: 0, Easing: defaultEndEasing},
		Outline:    OutlineConfig{Color: "#000000", Width: 0},
	}
	switch kind {
	case ToolPenA:
		c.Color = "#1d1d1d"
	case ToolPenB:
		c.Color = "#4263eb"
	case ToolHighlighter:
		c.Color = "#ffd43b"
		c.Size = 24
		c.Opacity = 0.45
	}
	return c
}

func defaultEraser() EraserConfig { return EraserConfig{Size: 24} }

// Toolbox holds the four tool slots and which one is active. Slots
// only ever contain validated configurations: setters reject bad
// values and leave the previous config in place.
type Toolbox struct {
	active  ToolKind
	brushes map[ToolKind]BrushConfig
	eraser  EraserConfig
}

func NewToolbox() *Toolbox {
	return &Toolbox{
		active: ToolPenA,
		brushes: map[ToolKind]BrushConfig{
			ToolPenA:        defaultBrush(ToolPenA),
			ToolPenB:        defaultBrush(ToolPenB),
			ToolHighlighter: defaultBrush(ToolHighlighter),
		},
		eraser: defaultEraser(),
	}
}

func (t *Toolbox) Active() ToolKind        { return t.active }
func (t *Toolbox) SetActive(kind ToolKind) { t.active = kind }

// Brush returns the configuration of a pen or highlighter slot. The
// second result is false for the eraser, which is not a brush.
func (t *Toolbox) Brush(kind ToolKind) (BrushConfig, bool) {
	c, ok := t.brushes[kind]
	return c, ok
}

// ActiveBrush returns the active slot's brush, or false when the
// eraser is selected.
func (t *Toolbox) ActiveBrush() (BrushConfig, bool) {
	return t.Brush(t.active)
}

func (t *Toolbox) Eraser() EraserConfig { return t.eraser }

// SetBrush replaces a brush slot after validating the new config.
func (t *Toolbox) SetBrush(kind ToolKind, c BrushConfig) error {
	if _, ok := t.brushes[kind]; !ok {
		return fmt.Errorf("tools: %v is not a brush slot", kind)
	}
	if err := c.validate(); err != nil {
		return fmt.Errorf("tools: %v: %w", kind, err)
	}
	t.brushes[kind] = c
	return nil
}

func (t *Toolbox) SetEraser(c EraserConfig) error {
	if c.Size <= 0 {
		return fmt.Errorf("tools: eraser size must be positive, got %v", c.Size)
	}
	t.eraser = c
	return nil
}

// Reset restores one slot to its built-in default.
func (t *Toolbox) Reset(kind ToolKind) {
	if kind == ToolEraser {
		t.eraser = defaultEraser()
		return
	}
	if _, ok := t.brushes[kind]; ok {
		t.brushes[kind] = defaultBrush(kind)
	}
}

func (c BrushConfig) validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %v", c.Size)
	}
	if c.Opacity < 0 || c.Opacity > 1 {
		return fmt.Errorf("opacity must be within [0,1], got %v", c.Opacity)
	}
	if c.Thinning < -1 || c.Thinning > 1 {
		return fmt.Errorf("thinning must be within [-1,1], got %v", c.Thinning)
	}
	if c.Streamline < 0 || c.Streamline > 1 {
		return fmt.Errorf("streamline must be within [0,1], got %v", c.Streamline)
	}
	if c.Smoothing < 0 || c.Smoothing > 1 {
		return fmt.Errorf("smoothing must be within [0,1], got %v", c.Smoothing)
	}
	if c.Start.Taper < 0 || c.End.Taper < 0 {
		return fmt.Errorf("taper distances must not be negative")
	}
	if c.Outline.Width < 0 {
		return fmt.Errorf("outline width must not be negative, got %v", c.Outline.Width)
	}
	for _, name := range []string{c.Easing, c.Start.Easing, c.End.Easing} {
		if _, err := easing.Resolve(name); err != nil {
			return err
		}
	}
	return nil
}

// Options resolves the easing names into the geometry options the
// outline builder consumes. Slots only hold validated configs, so a
// resolution failure here means the config skipped validation.
func (c BrushConfig) Options() (stroke.Options, error) {
	main, err := easing.Resolve(c.Easing)
	if err != nil {
		return stroke.Options{}, err
	}
	start, err := easing.Resolve(c.Start.Easing)
	if err != nil {
		return stroke.Options{}, err
	}
	end, err := easing.Resolve(c.End.Easing)
	if err != nil {
		return stroke.Options{}, err
	}
	return stroke.Options{
		Size:       c.Size,
		Thinning:   c.Thinning,
		Streamline: c.Streamline,
		Smoothing:  c.Smoothing,
		Easing:     main,
		Start:      stroke.Taper{Distance: c.Start.Taper, Easing: start},
		End:        stroke.Taper{Distance: c.End.Taper, Easing: end},
	}, nil
}
