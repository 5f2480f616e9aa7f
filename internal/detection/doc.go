// Package detection implements a from-scratch shape detection pipeline for
// raster images.
//
// The pipeline takes a decoded image (or a raw RGBA pixel buffer), finds the
// outlines of high-contrast regions, and classifies each outline as one of a
// small set of geometric shapes: circles, triangles, rectangles, pentagons,
// and five-pointed stars. No external vision library is used; every stage is
// implemented directly on pixel and point slices.
//
// # Pipeline
//
// [Detect] runs eight stages in a fixed order, each feeding the next:
//
//  1. Grayscale conversion: RGBA intensities collapse to a single luminance
//     channel (ITU-R BT.601 weights).
//  2. Edge detection: a 3x3 Sobel operator marks pixels whose gradient
//     magnitude exceeds a threshold.
//  3. Contour tracing: Moore neighborhood boundary following walks the edge
//     pixels into ordered closed outlines.
//  4. Metrics: each contour gets an area (shoelace formula), perimeter,
//     bounding box, and center.
//  5. Filtering: small contours are dropped and concentric duplicates
//     (double-stroked outlines) collapse to the largest.
//  6. Simplification: Douglas-Peucker reduces each contour to its corner
//     vertices.
//  7. Convex hull: Andrew's monotone chain over the full contour, used to
//     measure how convex the outline is.
//  8. Classification: circularity, solidity, and corner count decide the
//     shape label and a confidence score.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// Contour points carry float64 coordinates. The tracer emits whole-pixel
// positions; downstream geometry (centers, distances) is fractional.
//
// # Determinism and Errors
//
// Every stage is a total function over well-formed inputs: the same pixels
// and configuration always produce the same shapes, and no stage returns an
// error. Degenerate inputs (empty images, dead-end contours, walks that hit
// the step cap) produce empty or partial results instead of failures; the
// step-cap count is reported on [Result] so callers can log it. Malformed
// pixel buffers are a caller error and may panic on index.
//
// # Tuning
//
// All thresholds live in [Config]. Zero fields fall back to the defaults in
// [DefaultConfig], so callers override only what they need. The decision
// table mapping corner counts and solidity to shape labels is data, not
// code; see classRules in classify.go.
//
// # Limitations
//
// The pipeline expects clean, high-contrast input such as diagrams, scanned
// symbols, or rendered test fixtures:
//   - Only closed, convex-ish, single-part outlines classify; open strokes,
//     text, and very elongated regions are rejected as noise.
//   - No sub-pixel accuracy: everything is measured on the traced pixel
//     outline.
//   - Rotated shapes classify fine, but bounding boxes stay axis-aligned.
package detection
