package detection

import (
	"image"
	"image/color"
	"math"
	"sort"
	"testing"
)

// newWhiteBuffer returns an RGBA buffer of the given size filled with
// opaque white.
func newWhiteBuffer(width, height int) []uint8 {
	pix := make([]uint8, width*height*4)
	for i := range pix {
		pix[i] = 255
	}
	return pix
}

// setBlack paints one pixel opaque black.
func setBlack(pix []uint8, width, x, y int) {
	i := (y*width + x) * 4
	pix[i] = 0
	pix[i+1] = 0
	pix[i+2] = 0
}

// fillRect paints a filled black rectangle, corners inclusive.
func fillRect(pix []uint8, width, x1, y1, x2, y2 int) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			setBlack(pix, width, x, y)
		}
	}
}

// fillCircle paints a filled black disk.
func fillCircle(pix []uint8, width, cx, cy, r int) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx := x - cx
			dy := y - cy
			if dx*dx+dy*dy <= r*r {
				setBlack(pix, width, x, y)
			}
		}
	}
}

// fillPolygon paints a filled black polygon using even-odd scanline
// filling.
func fillPolygon(pix []uint8, width int, poly []Point) {
	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(math.Ceil(minY)); y <= int(math.Floor(maxY)); y++ {
		fy := float64(y)
		var xs []float64
		for i := range poly {
			a := poly[i]
			b := poly[(i+1)%len(poly)]
			if (a.Y <= fy && b.Y > fy) || (b.Y <= fy && a.Y > fy) {
				t := (fy - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		sort.Float64s(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			for x := int(math.Ceil(xs[k])); x <= int(math.Floor(xs[k+1])); x++ {
				setBlack(pix, width, x, y)
			}
		}
	}
}

func TestDetect_FilledCircle(t *testing.T) {
	const r = 70
	pix := newWhiteBuffer(160, 160)
	fillCircle(pix, 160, 80, 80, r)

	result := Detect(pix, 160, 160, nil)

	if result.Count != 1 {
		t.Fatalf("got %d shapes, want 1: %+v", result.Count, result.Shapes)
	}
	shape := result.Shapes[0]
	if shape.Type != ShapeCircle {
		t.Fatalf("got %s, want circle", shape.Type)
	}
	if shape.Confidence < 0.80 {
		t.Errorf("confidence = %v, want >= 0.80", shape.Confidence)
	}

	// The traced outline sits one pixel outside the ink, so the measured
	// area runs slightly high but must stay within 5%.
	ideal := math.Pi * r * r
	if diff := math.Abs(shape.Area-ideal) / ideal; diff > 0.05 {
		t.Errorf("area %v deviates %.1f%% from πr² = %v", shape.Area, diff*100, ideal)
	}
	if math.Abs(shape.Center.X-80) > 2 || math.Abs(shape.Center.Y-80) > 2 {
		t.Errorf("center = %+v, want near (80, 80)", shape.Center)
	}
	if result.TruncatedContours != 0 {
		t.Errorf("truncated contours = %d, want 0", result.TruncatedContours)
	}
}

func TestDetect_FilledRectangle(t *testing.T) {
	pix := newWhiteBuffer(160, 112)
	fillRect(pix, 160, 20, 20, 139, 91)

	result := Detect(pix, 160, 112, nil)

	if result.Count != 1 {
		t.Fatalf("got %d shapes, want 1: %+v", result.Count, result.Shapes)
	}
	shape := result.Shapes[0]
	if shape.Type != ShapeRectangle {
		t.Fatalf("got %s, want rectangle", shape.Type)
	}
	if shape.Confidence != 0.92 {
		t.Errorf("confidence = %v, want 0.92", shape.Confidence)
	}
	if math.Abs(shape.Center.X-79.5) > 2 || math.Abs(shape.Center.Y-55.5) > 2 {
		t.Errorf("center = %+v, want near (79.5, 55.5)", shape.Center)
	}
	if result.ImageWidth != 160 || result.ImageHeight != 112 {
		t.Errorf("image dims = %dx%d, want 160x112", result.ImageWidth, result.ImageHeight)
	}
}

func TestDetect_FilledTriangle(t *testing.T) {
	pix := newWhiteBuffer(160, 120)
	fillPolygon(pix, 160, []Point{{30, 100}, {130, 100}, {80, 30}})

	result := Detect(pix, 160, 120, nil)

	if result.Count != 1 {
		t.Fatalf("got %d shapes, want 1: %+v", result.Count, result.Shapes)
	}
	if result.Shapes[0].Type != ShapeTriangle {
		t.Fatalf("got %s, want triangle", result.Shapes[0].Type)
	}
}

func TestDetect_FilledStar(t *testing.T) {
	pix := newWhiteBuffer(160, 160)
	fillPolygon(pix, 160, starPoints(80, 80, 60, 28))

	result := Detect(pix, 160, 160, nil)

	if result.Count != 1 {
		t.Fatalf("got %d shapes, want 1: %+v", result.Count, result.Shapes)
	}
	shape := result.Shapes[0]
	if shape.Type != ShapeStar {
		t.Fatalf("got %s, want star", shape.Type)
	}
	if shape.Confidence != 0.82 {
		t.Errorf("confidence = %v, want 0.82", shape.Confidence)
	}
}

func TestDetect_TextStrokesYieldNothing(t *testing.T) {
	// Underlines, bars, and specks: everything an edge detector loves and
	// a shape classifier must refuse.
	pix := newWhiteBuffer(120, 120)
	fillRect(pix, 120, 10, 20, 70, 21)   // horizontal stroke
	fillRect(pix, 120, 10, 40, 90, 41)   // longer stroke
	fillRect(pix, 120, 20, 60, 21, 100)  // vertical stroke
	fillRect(pix, 120, 100, 15, 102, 17) // speck
	fillRect(pix, 120, 50, 70, 52, 72)   // speck

	result := Detect(pix, 120, 120, nil)

	if result.Count != 0 {
		t.Errorf("got %d shapes from stroke noise, want 0: %+v", result.Count, result.Shapes)
	}
}

func TestDetect_ConcentricOutlinesCollapse(t *testing.T) {
	// Two nested square outlines around the same center. Every traced
	// ring shares that center, so only the largest survives.
	pix := newWhiteBuffer(140, 140)
	fillRect(pix, 140, 20, 20, 119, 21)   // outer top
	fillRect(pix, 140, 20, 118, 119, 119) // outer bottom
	fillRect(pix, 140, 20, 20, 21, 119)   // outer left
	fillRect(pix, 140, 118, 20, 119, 119) // outer right
	fillRect(pix, 140, 45, 45, 94, 46)    // inner top
	fillRect(pix, 140, 45, 93, 94, 94)    // inner bottom
	fillRect(pix, 140, 45, 45, 46, 94)    // inner left
	fillRect(pix, 140, 93, 45, 94, 94)    // inner right

	result := Detect(pix, 140, 140, nil)

	if result.Count != 1 {
		t.Fatalf("got %d shapes, want 1: %+v", result.Count, result.Shapes)
	}
	shape := result.Shapes[0]
	if shape.Type != ShapeRectangle {
		t.Fatalf("got %s, want rectangle", shape.Type)
	}
	// The survivor must be the outer outline, not the inner one.
	if shape.Bounds.Width() < 90 {
		t.Errorf("kept the smaller outline: bounds %+v", shape.Bounds)
	}
}

func TestDetect_EmptyImage(t *testing.T) {
	pix := newWhiteBuffer(100, 100)

	result := Detect(pix, 100, 100, nil)

	if result.Count != 0 || len(result.Shapes) != 0 {
		t.Errorf("blank image should yield no shapes, got %+v", result.Shapes)
	}
	if result.ImageWidth != 100 || result.ImageHeight != 100 {
		t.Errorf("image dims = %dx%d, want 100x100", result.ImageWidth, result.ImageHeight)
	}
}

func TestDetectImage_MatchesBufferDetect(t *testing.T) {
	pix := newWhiteBuffer(160, 112)
	fillRect(pix, 160, 20, 20, 139, 91)

	img := image.NewRGBA(image.Rect(0, 0, 160, 112))
	for y := 0; y < 112; y++ {
		for x := 0; x < 160; x++ {
			i := (y*160 + x) * 4
			img.Set(x, y, color.RGBA{pix[i], pix[i+1], pix[i+2], pix[i+3]})
		}
	}

	fromBuffer := Detect(pix, 160, 112, nil)
	fromImage := DetectImage(img, nil)

	if fromImage.Count != fromBuffer.Count {
		t.Fatalf("image path found %d shapes, buffer path %d", fromImage.Count, fromBuffer.Count)
	}
	for i := range fromBuffer.Shapes {
		if fromImage.Shapes[i].Type != fromBuffer.Shapes[i].Type {
			t.Errorf("shape %d: image path %s, buffer path %s",
				i, fromImage.Shapes[i].Type, fromBuffer.Shapes[i].Type)
		}
	}
}

// TestRectangleContourGeometry pins down the intermediate geometry the
// rectangle classification relies on: four corrected corners and a nearly
// solid hull.
func TestRectangleContourGeometry(t *testing.T) {
	pix := newWhiteBuffer(160, 112)
	fillRect(pix, 160, 20, 20, 139, 91)
	cfg := DefaultConfig()

	grid := Grayscale(pix, 160, 112)
	edges := DetectEdges(grid, cfg.EdgeThreshold)
	contours, _ := TraceContours(edges, cfg.MinContourLength)
	if len(contours) == 0 {
		t.Fatal("no contours traced")
	}

	// Largest contour is the outer ring one pixel outside the ink.
	largest := contours[0]
	largestArea := ComputeMetrics(largest).Area
	for _, c := range contours[1:] {
		if a := ComputeMetrics(c).Area; a > largestArea {
			largest, largestArea = c, a
		}
	}

	m := ComputeMetrics(largest)
	if m.Area != 121*73 {
		t.Errorf("ring area = %v, want %v", m.Area, 121*73)
	}

	solidity := m.Area / polygonArea(ConvexHull(largest))
	if solidity <= 0.95 {
		t.Errorf("solidity = %v, want > 0.95", solidity)
	}

	simplified := Simplify(largest, cfg.SimplifyEpsilonFraction*m.Perimeter)
	vertices := len(simplified)
	if pointDistance(simplified[0], simplified[vertices-1]) < cfg.ClosedLoopTolerance {
		vertices--
	}
	if vertices != 4 {
		t.Errorf("corrected vertex count = %d, want 4 (simplified: %v)", vertices, simplified)
	}
}

// TestStarContourGeometry checks the solidity band that makes a traced
// star classify as one.
func TestStarContourGeometry(t *testing.T) {
	pix := newWhiteBuffer(160, 160)
	fillPolygon(pix, 160, starPoints(80, 80, 60, 28))
	cfg := DefaultConfig()

	grid := Grayscale(pix, 160, 160)
	edges := DetectEdges(grid, cfg.EdgeThreshold)
	contours, _ := TraceContours(edges, cfg.MinContourLength)
	if len(contours) == 0 {
		t.Fatal("no contours traced")
	}

	largest := contours[0]
	largestArea := ComputeMetrics(largest).Area
	for _, c := range contours[1:] {
		if a := ComputeMetrics(c).Area; a > largestArea {
			largest, largestArea = c, a
		}
	}

	m := ComputeMetrics(largest)
	solidity := m.Area / polygonArea(ConvexHull(largest))
	if solidity <= 0.3 || solidity >= 0.8 {
		t.Errorf("star solidity = %v, want strictly inside (0.3, 0.8)", solidity)
	}
}
