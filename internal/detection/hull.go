package detection

import "sort"

// ConvexHull computes the convex hull of a point set using Andrew's
// monotone chain algorithm.
//
// Points are sorted by (X, Y), then a lower and an upper chain are built in
// one sweep each: a candidate point pops previous chain points for as long
// as the turn through them is not strictly counterclockwise (cross product
// <= 0), so collinear points never survive into the hull. The two chains
// concatenate, dropping each chain's final point to avoid repeating the
// endpoints.
//
// The hull is returned in counterclockwise order in standard math
// orientation; with screen coordinates (y down) that reads as clockwise.
// Input slices with three or fewer points are already their own hull and
// are returned as a copy, unsorted and unfiltered.
//
// The input slice is not modified. Runs in O(n log n), dominated by the
// sort.
func ConvexHull(pts []Point) []Point {
	n := len(pts)
	if n <= 3 {
		return append([]Point(nil), pts...)
	}

	sorted := append([]Point(nil), pts...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	hull := make([]Point, 0, 2*n)

	// Lower chain: left to right.
	for _, p := range sorted {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Upper chain: right to left, appended after the lower one.
	base := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= base && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// The last point of each chain is the first point of the other.
	return hull[:len(hull)-1]
}

// cross returns the z component of (a-o) x (b-o). Positive means the turn
// o->a->b is counterclockwise in standard math orientation.
func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
