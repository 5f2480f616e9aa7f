package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/lvrreddy-3122005/shape-detector-solution/internal/detection"
)

func testShapes() []detection.Shape {
	return []detection.Shape{
		{
			Type:       detection.ShapeRectangle,
			Confidence: 0.92,
			Bounds:     detection.Bounds{X1: 10, Y1: 10, X2: 50, Y2: 40},
			Center:     detection.Point{X: 30, Y: 25},
			Area:       1200,
		},
		{
			Type:       detection.ShapeCircle,
			Confidence: 0.95,
			Bounds:     detection.Bounds{X1: 60, Y1: 20, X2: 90, Y2: 50},
			Center:     detection.Point{X: 75, Y: 35},
			Area:       700,
		},
	}
}

func TestAnnotate_ResultMetadata(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 60))
	shapes := testShapes()

	result, err := Annotate(img, shapes)
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}

	if result.Width != 100 || result.Height != 60 {
		t.Errorf("result dimensions %dx%d, want 100x60", result.Width, result.Height)
	}
	if result.ShapeCount != 2 {
		t.Errorf("ShapeCount = %d, want 2", result.ShapeCount)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType = %q, want image/png", result.MimeType)
	}
}

func TestAnnotate_Base64DecodesToPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 60))

	result, err := Annotate(img, testShapes())
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("result is not valid base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("result is not valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 100 || decoded.Bounds().Dy() != 60 {
		t.Errorf("decoded PNG is %dx%d, want 100x60",
			decoded.Bounds().Dx(), decoded.Bounds().Dy())
	}
}

func TestRenderAnnotations_DrawsBoxInClassColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 60))
	shapes := testShapes()

	result := renderAnnotations(img, shapes)

	want := classColor(detection.ShapeRectangle)
	// A corner of the first shape's bounding box must carry its class color.
	got := result.RGBAAt(50, 40)
	if got != want {
		t.Errorf("box corner color = %v, want %v", got, want)
	}
}

func TestRenderAnnotations_DoesNotModifyInput(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 60))
	renderAnnotations(img, testShapes())

	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("input image modified at byte %d", i)
		}
	}
}

func TestRenderAnnotations_ShapeOutsideImageClipped(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	shapes := []detection.Shape{{
		Type:   detection.ShapeCircle,
		Bounds: detection.Bounds{X1: -10, Y1: -10, X2: 50, Y2: 50},
		Center: detection.Point{X: 40, Y: 40},
	}}

	// Must not panic; off-image pixels are skipped.
	renderAnnotations(img, shapes)
}

func TestClassColor_DistinctPerClass(t *testing.T) {
	classes := []detection.ShapeType{
		detection.ShapeCircle,
		detection.ShapeTriangle,
		detection.ShapeRectangle,
		detection.ShapePentagon,
		detection.ShapeStar,
	}
	seen := make(map[color.RGBA]detection.ShapeType)
	for _, cls := range classes {
		c := classColor(cls)
		if prev, dup := seen[c]; dup {
			t.Errorf("classes %s and %s share color %v", prev, cls, c)
		}
		seen[c] = cls
	}
}

func TestSaveAnnotated(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 60))
	path := filepath.Join(t.TempDir(), "annotated.png")

	if err := SaveAnnotated(img, testShapes(), path); err != nil {
		t.Fatalf("SaveAnnotated failed: %v", err)
	}

	cache := NewImageCache()
	loaded, err := cache.Load(path)
	if err != nil {
		t.Fatalf("failed to reload annotated image: %v", err)
	}
	if loaded.Bounds().Dx() != 100 || loaded.Bounds().Dy() != 60 {
		t.Errorf("reloaded image is %dx%d, want 100x60",
			loaded.Bounds().Dx(), loaded.Bounds().Dy())
	}
}

func TestSaveAnnotated_UnknownExtension(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	path := filepath.Join(t.TempDir(), "annotated.xyz")

	if err := SaveAnnotated(img, nil, path); err == nil {
		t.Error("SaveAnnotated should fail for an unsupported extension")
	}
}
