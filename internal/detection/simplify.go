package detection

import "math"

// Simplify reduces a contour to its corner vertices using the
// Douglas-Peucker algorithm.
//
// The classic formulation is recursive: approximate the polyline by the
// segment between its endpoints, find the intermediate point farthest from
// that segment, and if it deviates more than epsilon, split there and
// recurse on both halves. This implementation keeps the exact same
// split-and-keep semantics but drives it with an explicit stack of index
// ranges and a keep flag per point, so a many-thousand-point contour can
// never overflow the call stack.
//
// Parameters:
//   - c: Contour to simplify. Not modified.
//   - epsilon: Maximum allowed deviation in pixels. The pipeline derives it
//     from the contour perimeter (see Config.SimplifyEpsilonFraction) so
//     the same shape simplifies to the same corners at any scale.
//
// Returns a new contour containing the kept points in their original
// order. Both endpoints are always kept; a contour with fewer than three
// points is returned as a copy unchanged. Simplifying an already simplified
// polyline with the same epsilon returns it unchanged.
func Simplify(c Contour, epsilon float64) Contour {
	if len(c) < 3 {
		return append(Contour(nil), c...)
	}

	keep := make([]bool, len(c))
	keep[0] = true
	keep[len(c)-1] = true

	type span struct{ lo, hi int }
	stack := []span{{0, len(c) - 1}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Farthest intermediate point from the chord lo..hi.
		maxDist := 0.0
		maxIdx := -1
		for i := s.lo + 1; i < s.hi; i++ {
			d := perpendicularDistance(c[i], c[s.lo], c[s.hi])
			if d > maxDist {
				maxDist = d
				maxIdx = i
			}
		}

		if maxDist > epsilon {
			keep[maxIdx] = true
			stack = append(stack, span{s.lo, maxIdx}, span{maxIdx, s.hi})
		}
	}

	out := make(Contour, 0, len(c))
	for i, p := range c {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// perpendicularDistance returns the distance from p to the segment a-b.
//
// The point is projected onto the infinite line through a and b, the
// projection parameter is clamped to the segment, and the distance to the
// clamped projection is returned. A zero-length segment degenerates to the
// plain distance from p to a.
func perpendicularDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return pointDistance(p, a)
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lengthSq
	t = math.Max(0, math.Min(1, t))

	closest := Point{X: a.X + t*dx, Y: a.Y + t*dy}
	return pointDistance(p, closest)
}
