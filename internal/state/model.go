package state

import "Inkwell/internal/stroke"

// Stroke is one committed mark on the board. Nothing in it changes
// after commit: Points and Path describe the same frozen geometry,
// with the erase hit test walking Points while renderers consume Path.
type Stroke struct {
	ID           string
	Points       []stroke.Sample
	Path         string
	Color        string
	Opacity      float32
	OutlineColor string
	OutlineWidth float32
}

// Preview is the in-progress stroke as a renderer wants it: the live
// ring for direct rasterization plus the style it will commit with.
type Preview struct {
	Ring         []stroke.Point
	Path         string
	Color        string
	Opacity      float32
	OutlineColor string
	OutlineWidth float32
}
