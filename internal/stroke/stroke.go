package stroke

import (
	"github.com/chewxy/math32"
	"github.com/fogleman/ease"
)

// Sample is one raw pointer event: a canvas position plus the pen
// pressure in [0,1]. Devices that report no pressure use 0.5.
type Sample struct {
	X, Y     float32
	Pressure float32
}

// Point is a vertex of a computed outline ring.
type Point struct {
	X, Y float32
}

// Taper narrows the ribbon to a tip over Distance arc-length units
// from one end of the stroke. Distance 0 disables it.
type Taper struct {
	Distance float32
	Easing   ease.Function
}

// Options shape a stroke outline. The easing fields hold already
// resolved functions: looking up names is a configuration-time concern
// and never happens mid-stroke. Nil easings fall back to linear.
type Options struct {
	Size       float32 // brush diameter
	Thinning   float32 // how strongly pressure changes the width
	Streamline float32 // input damping, 0 keeps the raw centerline
	Smoothing  float32 // outline decimation, 0 keeps every vertex
	Easing     ease.Function
	Start, End Taper
}

const (
	fanSteps  = 13 // vertices per cap or corner fan
	diskSteps = 16 // vertices of the dot fallback
)

// Outline converts an ordered sample sequence into a closed polygon
// approximating a variable-width ribbon around the samples'
// centerline. The same input always yields the same ring, and any
// non-empty input with a positive size yields at least three
// vertices. Empty input or a non-positive size yields nil.
func Outline(samples []Sample, opts Options) []Point {
	if len(samples) == 0 || opts.Size <= 0 {
		return nil
	}
	opts.Easing = orLinear(opts.Easing)
	opts.Start.Easing = orLinear(opts.Start.Easing)
	opts.End.Easing = orLinear(opts.End.Easing)

	pts := streamline(samples, opts.Streamline)

	// Arc length from the start to each centerline point.
	run := make([]float32, len(pts))
	var total float32
	for i := 1; i < len(pts); i++ {
		total += dist(pts[i-1].point(), pts[i].point())
		run[i] = total
	}

	// Taps and strokes shorter than the brush itself render as dots.
	if len(pts) == 1 || total <= opts.Size {
		return disk(pts[0], opts)
	}

	// Unit direction of the segment leaving each point; the last point
	// reuses the direction of the segment arriving at it.
	dirs := make([]Point, len(pts))
	for i := 0; i+1 < len(pts); i++ {
		dirs[i] = norm(sub(pts[i+1].point(), pts[i].point()))
	}
	last := len(pts) - 1
	dirs[last] = dirs[last-1]

	minGap := opts.Size * clamp01(opts.Smoothing)

	var left, right []Point
	var pl, pr Point

	for i, s := range pts {
		p := s.point()
		r := radius(opts, s.Pressure)
		if d := opts.Start.Distance; d > 0 && run[i] < d {
			r *= eval(opts.Start.Easing, run[i]/d)
		}
		if d := opts.End.Distance; d > 0 && total-run[i] < d {
			r *= eval(opts.End.Easing, (total-run[i])/d)
		}

		// A turn sharper than a right angle would fold the ribbon over
		// itself, so sweep both edges around the corner instead of
		// offsetting through it.
		if i > 0 && i < last && dot(dirs[i-1], dirs[i]) < 0 {
			off := mul(perp(dirs[i-1]), r)
			for step := 0; step <= fanSteps; step++ {
				a := math32.Pi * float32(step) / fanSteps
				pl = rotate(add(p, off), p, a)
				left = append(left, pl)
				pr = rotate(sub(p, off), p, -a)
				right = append(right, pr)
			}
			continue
		}

		// Blend the offset direction toward the incoming segment so
		// gentle joins stay rounded. Endpoints offset perpendicular to
		// their single adjacent segment.
		dir := dirs[i]
		if i == last {
			dir = dirs[i-1]
		} else if i > 0 {
			dir = lerp(dirs[i], dirs[i-1], clamp01(dot(dirs[i-1], dirs[i])))
		}
		off := mul(perp(dir), r)

		if tl := add(p, off); i <= 1 || i == last || dist(pl, tl) > minGap {
			left = append(left, tl)
			pl = tl
		}
		if tr := sub(p, off); i <= 1 || i == last || dist(pr, tr) > minGap {
			right = append(right, tr)
			pr = tr
		}
	}

	// Assemble the ring: down the left edge, around the end, back along
	// the right edge, around the start. A tapered end has already
	// collapsed onto the centerline tip, so only untapered ends need a
	// semicircular cap.
	ring := make([]Point, 0, len(left)+len(right)+2*fanSteps)
	ring = append(ring, left...)
	if opts.End.Distance <= 0 {
		tip := pts[last].point()
		from := left[len(left)-1]
		for step := 1; step <= fanSteps; step++ {
			ring = append(ring, rotate(from, tip, math32.Pi*float32(step)/fanSteps))
		}
	}
	for i := len(right) - 1; i >= 0; i-- {
		ring = append(ring, right[i])
	}
	if opts.Start.Distance <= 0 {
		tip := pts[0].point()
		from := right[0]
		for step := 1; step <= fanSteps; step++ {
			ring = append(ring, rotate(from, tip, math32.Pi*float32(step)/fanSteps))
		}
	}

	if len(ring) < 3 {
		return disk(pts[0], opts)
	}
	return ring
}

// streamline damps pointer jitter by pulling every sample toward its
// already-smoothed predecessor. The first sample never moves, and
// samples that collapse onto their predecessor are dropped so the rest
// of the pipeline always sees distinct neighbours.
func streamline(in []Sample, amount float32) []Sample {
	t := 0.15 + 0.85*(1-clamp01(amount))
	out := make([]Sample, 1, len(in))
	out[0] = in[0]
	for _, s := range in[1:] {
		prev := out[len(out)-1]
		s.X = prev.X + (s.X-prev.X)*t
		s.Y = prev.Y + (s.Y-prev.Y)*t
		if s.X == prev.X && s.Y == prev.Y {
			continue
		}
		out = append(out, s)
	}
	return out
}

// radius maps pressure to the ribbon half-width. Thinning 0 ignores
// pressure entirely and always yields half the brush size; otherwise
// pressure is remapped through the easing curve before scaling.
func radius(opts Options, pressure float32) float32 {
	if opts.Thinning == 0 {
		return opts.Size / 2
	}
	t := 0.5 - opts.Thinning*(0.5-clamp01(pressure))
	return opts.Size * eval(opts.Easing, clamp01(t))
}

// disk is the fallback ring for taps and near-zero-length strokes: a
// small polygon approximating a dot of the brush's width.
func disk(s Sample, opts Options) []Point {
	c := s.point()
	r := radius(opts, s.Pressure)
	ring := make([]Point, 0, diskSteps)
	for i := 0; i < diskSteps; i++ {
		a := 2 * math32.Pi * float32(i) / diskSteps
		ring = append(ring, Point{c.X + r*math32.Cos(a), c.Y + r*math32.Sin(a)})
	}
	return ring
}

func eval(fn ease.Function, t float32) float32 {
	return float32(fn(float64(t)))
}

func orLinear(fn ease.Function) ease.Function {
	if fn == nil {
		return ease.Linear
	}
	return fn
}
