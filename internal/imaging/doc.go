// Package imaging provides the image plumbing around the detection pipeline.
//
// This package handles everything that touches files or rendered output so
// the detection core can stay a pure pixel-to-shapes transform: loading and
// caching source images, optional preprocessing (downscale, denoise), and
// rendering detection results back onto the source image.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Supported Formats
//
// PNG, JPEG, and GIF decode via the standard library; BMP and TIFF via
// golang.org/x/image. Annotated output is always encoded as PNG.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Preprocessing and
// annotation are stateless and never modify their input image.
//
// # Performance Considerations
//
// For repeated operations on the same image, use ImageCache to avoid
// redundant disk reads. Large images may consume significant memory when
// cached. Consider using Evict() or Clear() to manage memory for
// long-running processes.
package imaging
