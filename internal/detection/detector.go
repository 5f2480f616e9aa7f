package detection

import "image"

// Result contains all shapes detected in one image.
type Result struct {
	// Shapes is the list of classified shapes in contour discovery order.
	Shapes []Shape `json:"shapes"`

	// Count is the number of shapes detected.
	Count int `json:"count"`

	// ImageWidth is the width of the analyzed image in pixels.
	ImageWidth int `json:"image_width"`

	// ImageHeight is the height of the analyzed image in pixels.
	ImageHeight int `json:"image_height"`

	// TruncatedContours counts boundary walks that hit the internal step
	// cap and were cut short. Zero on healthy input; a nonzero value is
	// worth logging because it usually means the image is texture or
	// noise rather than discrete shapes.
	TruncatedContours int `json:"truncated_contours,omitempty"`
}

// Detect runs the full shape detection pipeline on a raw RGBA pixel buffer.
//
// The buffer is interleaved RGBA, four bytes per pixel, row-major;
// len(pix) must be width*height*4 (shorter buffers panic on index, a
// caller error). This matches the raw frame layout of most decoders and
// canvas APIs, so frames can be analyzed without constructing an
// image.Image first.
//
// Parameters:
//   - pix: Interleaved RGBA pixels.
//   - width, height: Buffer dimensions in pixels.
//   - cfg: Pipeline tuning. nil or zero fields fall back to
//     [DefaultConfig] values.
//
// Returns every classified shape in contour discovery order. Detect never
// fails: an image with no detectable shapes yields an empty Shapes slice.
//
// # Pipeline
//
//  1. Grayscale conversion (BT.601)
//  2. Sobel edge detection at cfg.EdgeThreshold
//  3. Moore neighborhood contour tracing, keeping contours longer than
//     cfg.MinContourLength
//  4. Area and duplicate filtering per cfg
//  5. Per contour: metrics, Douglas-Peucker simplification at
//     cfg.SimplifyEpsilonFraction of the perimeter, and classification
//
// # Performance
//
// Grayscale and edge detection are O(width*height); tracing visits each
// edge pixel once. Classification cost is dominated by the hull sort,
// O(k log k) per contour of k points. A few hundred by a few hundred
// pixel diagram detects in single-digit milliseconds.
func Detect(pix []uint8, width, height int, cfg *Config) *Result {
	return detectGrid(Grayscale(pix, width, height), cfg)
}

// DetectImage runs the detection pipeline on a decoded image. It is
// equivalent to converting the image to grayscale and running [Detect]
// with the same configuration.
func DetectImage(img image.Image, cfg *Config) *Result {
	return detectGrid(GrayscaleImage(img), cfg)
}

// detectGrid runs every stage after grayscale conversion.
func detectGrid(g *Grid, cfg *Config) *Result {
	cfg = cfg.WithDefaults()

	edges := DetectEdges(g, cfg.EdgeThreshold)
	contours, truncated := TraceContours(edges, cfg.MinContourLength)
	contours = FilterContours(contours, cfg)

	shapes := make([]Shape, 0, len(contours))
	for _, c := range contours {
		m := ComputeMetrics(c)
		simplified := Simplify(c, cfg.SimplifyEpsilonFraction*m.Perimeter)
		if shape, ok := classifyContour(c, simplified, m, cfg); ok {
			shapes = append(shapes, shape)
		}
	}

	return &Result{
		Shapes:            shapes,
		Count:             len(shapes),
		ImageWidth:        g.Width,
		ImageHeight:       g.Height,
		TruncatedContours: truncated,
	}
}
