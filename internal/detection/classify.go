package detection

import "math"

// ShapeType labels a classified contour.
type ShapeType string

// The shape classes the pipeline can assign.
const (
	ShapeCircle    ShapeType = "circle"
	ShapeTriangle  ShapeType = "triangle"
	ShapeRectangle ShapeType = "rectangle"
	ShapePentagon  ShapeType = "pentagon"
	ShapeStar      ShapeType = "star"
)

// Shape is a classified detection result.
//
// Shapes are produced only by the classifier and never modified afterwards.
type Shape struct {
	// Type is the assigned shape class.
	Type ShapeType `json:"type"`

	// Confidence indicates classification quality (0.0 to 1.0). Circles
	// carry their measured circularity (capped at 0.99); polygon classes
	// carry the fixed confidence of the rule that matched.
	Confidence float64 `json:"confidence"`

	// Bounds is the axis-aligned bounding box of the source contour.
	Bounds Bounds `json:"bounds"`

	// Center is the center of the source contour.
	Center Point `json:"center"`

	// Area is the enclosed area of the source contour in square pixels.
	Area float64 `json:"area"`
}

// classRule maps a corrected vertex count plus a solidity band to a shape
// class. Rules are evaluated in order and the first match wins, so a rule
// with only a lower solidity bound is implicitly capped by the rules above
// it. Open bounds are expressed as infinities; the comparison is strict on
// both sides.
type classRule struct {
	vertices    int
	minSolidity float64
	maxSolidity float64
	shape       ShapeType
	confidence  float64
}

// classRules is the polygon decision table. The geometry code never changes
// when classes are added or retuned; only this table does.
//
// Solidity separates convex polygons (near 1) from concave ones: a
// five-pointed star simplifies to its 5 outer tips (or all 10 corners when
// the epsilon is tight) yet fills only about half its hull, which is what
// the two star rows capture.
var classRules = []classRule{
	{vertices: 3, minSolidity: 0.90, maxSolidity: math.Inf(1), shape: ShapeTriangle, confidence: 0.90},
	{vertices: 4, minSolidity: 0.90, maxSolidity: math.Inf(1), shape: ShapeRectangle, confidence: 0.92},
	{vertices: 5, minSolidity: 0.80, maxSolidity: math.Inf(1), shape: ShapePentagon, confidence: 0.88},
	{vertices: 5, minSolidity: 0.30, maxSolidity: math.Inf(1), shape: ShapeStar, confidence: 0.82},
	{vertices: 10, minSolidity: math.Inf(-1), maxSolidity: 0.80, shape: ShapeStar, confidence: 0.82},
}

// classifyContour assigns a shape class to one contour, or reports that it
// should be discarded as noise.
//
// The checks run in a fixed order with early exit:
//
//  1. Circularity 4π·area/perimeter². A value near 1 means the outline
//     encloses its area as efficiently as a circle; above the configured
//     threshold the contour is a circle and no corner analysis runs. The
//     confidence is the circularity itself, capped at 0.99.
//  2. Solidity area/hullArea, computed against the hull of the full traced
//     contour rather than the simplified polygon, so concavities between
//     simplified corners still count. A degenerate hull rejects the
//     contour.
//  3. Corrected vertex count: when the simplified polyline's first and
//     last vertices nearly coincide they are one corner counted twice, so
//     the count drops by one.
//  4. Aspect ratio max(w/h, h/w) of the bounding box. Elongated outlines
//     (lines, text strokes) reject before the polygon table can mistake
//     them for thin rectangles.
//  5. The classRules table, first match wins.
//
// Returns the classified shape and true, or a zero Shape and false when the
// contour matches nothing.
func classifyContour(c Contour, simplified Contour, m Metrics, cfg *Config) (Shape, bool) {
	circularity := 4 * math.Pi * m.Area / (m.Perimeter * m.Perimeter)
	if circularity > cfg.CircularityThreshold {
		return Shape{
			Type:       ShapeCircle,
			Confidence: math.Min(circularity, 0.99),
			Bounds:     m.Bounds,
			Center:     m.Center,
			Area:       m.Area,
		}, true
	}

	hullArea := polygonArea(ConvexHull(c))
	if hullArea == 0 {
		return Shape{}, false
	}
	solidity := m.Area / hullArea

	vertices := len(simplified)
	if vertices >= 2 && pointDistance(simplified[0], simplified[vertices-1]) < cfg.ClosedLoopTolerance {
		vertices--
	}

	aspect := math.Max(m.Bounds.Width()/m.Bounds.Height(), m.Bounds.Height()/m.Bounds.Width())
	if aspect > cfg.AspectRatioRejectAbove {
		return Shape{}, false
	}

	for _, r := range classRules {
		if vertices == r.vertices && solidity > r.minSolidity && solidity < r.maxSolidity {
			return Shape{
				Type:       r.shape,
				Confidence: r.confidence,
				Bounds:     m.Bounds,
				Center:     m.Center,
				Area:       m.Area,
			}, true
		}
	}

	return Shape{}, false
}
