package svg

import (
	"regexp"
	"strconv"
	"strings"

	"Inkwell/internal/stroke"
)

// Encode serializes an outline ring as SVG path data: a moveto to the
// first vertex, then one quadratic segment per vertex whose control
// point is the vertex itself and whose endpoint is the midpoint to the
// next vertex, wrapping around the ring, closed with Z. Running the
// polygon through midpoints rounds its corners off without any curve
// fitting; consumers fill the closed path rather than stroking it.
func Encode(ring []stroke.Point) string {
	if len(ring) == 0 {
		return ""
	}
	tokens := make([]string, 0, 4*len(ring)+5)
	tokens = append(tokens, "M", num(ring[0].X), num(ring[0].Y), "Q")
	for i, p := range ring {
		n := ring[(i+1)%len(ring)]
		tokens = append(tokens,
			num(p.X), num(p.Y),
			num((p.X+n.X)/2), num((p.Y+n.Y)/2),
		)
	}
	tokens = append(tokens, "Z")
	return strings.Join(tokens, " ")
}

// num renders a coordinate with the fewest digits that survive a round
// trip through float32.
func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

var number = regexp.MustCompile(`-?\d*\.?\d+`)

// DecodePoints approximates a point cloud from arbitrary path data by
// pairing numeric tokens in textual order and ignoring the commands
// around them. Relative commands and packed arc flags come out wrong
// on purpose: the cloud only has to be good enough for proximity
// erasing of imported art, and a smarter extraction would silently
// change which strokes an erase near imported content removes. An odd
// trailing number is dropped; every point carries pressure 0.5.
func DecodePoints(d string) []stroke.Sample {
	nums := number.FindAllString(d, -1)
	pts := make([]stroke.Sample, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		x, _ := strconv.ParseFloat(nums[i], 32)
		y, _ := strconv.ParseFloat(nums[i+1], 32)
		pts = append(pts, stroke.Sample{X: float32(x), Y: float32(y), Pressure: 0.5})
	}
	return pts
}
