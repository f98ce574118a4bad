package easing

import (
	"fmt"
	"sort"

	"github.com/fogleman/ease"
)

// curves is the fixed catalog of named shaping functions on [0,1].
// It is built once and never mutated afterwards, so lookups are safe
// from anywhere without locking. Only the monotonic families are
// registered; the bouncy ones (elastic/back/bounce) would make stroke
// widths oscillate.
var curves = map[string]ease.Function{
	"linear":          ease.Linear,
	"easeInQuad":      ease.InQuad,
	"easeOutQuad":     ease.OutQuad,
	"easeInOutQuad":   ease.InOutQuad,
	"easeInCubic":     ease.InCubic,
	"easeOutCubic":    ease.OutCubic,
	"easeInOutCubic":  ease.InOutCubic,
	"easeInQuart":     ease.InQuart,
	"easeOutQuart":    ease.OutQuart,
	"easeInOutQuart":  ease.InOutQuart,
	"easeInQuint":     ease.InQuint,
	"easeOutQuint":    ease.OutQuint,
	"easeInOutQuint":  ease.InOutQuint,
	"easeInSine":      ease.InSine,
	"easeOutSine":     ease.OutSine,
	"easeInOutSine":   ease.InOutSine,
	"easeInExpo":      ease.InExpo,
	"easeOutExpo":     ease.OutExpo,
	"easeInOutExpo":   ease.InOutExpo,
	"easeInCirc":      ease.InCirc,
	"easeOutCirc":     ease.OutCirc,
	"easeInOutCirc":   ease.InOutCirc,
}

var names []string

func init() {
	names = make([]string, 0, len(curves))
	for n := range curves {
		names = append(names, n)
	}
	sort.Strings(names)
}

// Resolve looks up a curve by name. An unknown name is a configuration
// error; callers must surface it when the name is set, never mid-stroke.
func Resolve(name string) (ease.Function, error) {
	fn, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("easing: unknown curve %q", name)
	}
	return fn, nil
}

// Names returns the catalog names in sorted order, for select widgets.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
