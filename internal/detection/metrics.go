package detection

import "math"

// Bounds is an axis-aligned bounding box in pixel coordinates.
//
// (X1, Y1) is the top-left corner and (X2, Y2) the bottom-right, both
// inclusive: the box spans the extreme coordinates of the points it was
// computed from.
type Bounds struct {
	X1 float64 `json:"x1"` // Left edge
	Y1 float64 `json:"y1"` // Top edge
	X2 float64 `json:"x2"` // Right edge
	Y2 float64 `json:"y2"` // Bottom edge
}

// Width returns the horizontal extent of the box.
func (b Bounds) Width() float64 { return b.X2 - b.X1 }

// Height returns the vertical extent of the box.
func (b Bounds) Height() float64 { return b.Y2 - b.Y1 }

// Metrics summarizes the geometry of one contour.
//
// Metrics are always derived from a contour with [ComputeMetrics], never
// stored independently, so they cannot drift out of sync with the points.
type Metrics struct {
	// Area is the enclosed area in square pixels (shoelace formula).
	Area float64 `json:"area"`

	// Perimeter is the closed outline length in pixels.
	Perimeter float64 `json:"perimeter"`

	// Bounds is the axis-aligned bounding box of the contour.
	Bounds Bounds `json:"bounds"`

	// Center is the mean of the contour points. For the dense, evenly
	// spaced points a boundary trace produces this approximates the
	// centroid well; it is not an exact polygon centroid.
	Center Point `json:"center"`
}

// ComputeMetrics derives area, perimeter, bounds, and center for a contour.
//
// The contour is treated as a closed polygon: the last point connects back
// to the first for both the shoelace area sum and the perimeter. The area
// is the absolute value of the signed shoelace sum halved, so winding
// direction does not matter.
//
// An empty contour yields all-zero metrics.
func ComputeMetrics(c Contour) Metrics {
	if len(c) == 0 {
		return Metrics{}
	}

	var signed float64
	var perimeter float64
	minX, minY := c[0].X, c[0].Y
	maxX, maxY := c[0].X, c[0].Y
	var sumX, sumY float64

	for i, p := range c {
		next := c[(i+1)%len(c)]

		signed += p.X*next.Y - next.X*p.Y
		perimeter += pointDistance(p, next)

		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
		sumX += p.X
		sumY += p.Y
	}

	n := float64(len(c))
	return Metrics{
		Area:      math.Abs(signed) / 2,
		Perimeter: perimeter,
		Bounds:    Bounds{X1: minX, Y1: minY, X2: maxX, Y2: maxY},
		Center:    Point{X: sumX / n, Y: sumY / n},
	}
}

// pointDistance returns the Euclidean distance between two points.
func pointDistance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// polygonArea returns the unsigned shoelace area of a closed polygon.
func polygonArea(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var signed float64
	for i, p := range pts {
		next := pts[(i+1)%len(pts)]
		signed += p.X*next.Y - next.X*p.Y
	}
	return math.Abs(signed) / 2
}
