// Package score evaluates the detection pipeline against a ground-truth
// corpus.
//
// A corpus is a YAML file listing images and the shapes each one is known
// to contain. Evaluation runs the detector over every image, matches
// detections to expectations by type and center distance, and aggregates
// precision, recall, and F1 per image and per shape class. A report can be
// rendered as an HTML chart for visual comparison between tuning runs.
package score

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultCenterTolerance is the match radius in pixels used when an
// expected shape does not specify its own tolerance.
const DefaultCenterTolerance = 20.0

// ExpectedShape is one ground-truth shape in a corpus image.
type ExpectedShape struct {
	// Type is the expected shape class: circle, triangle, rectangle,
	// pentagon, or star.
	Type string `yaml:"type"`

	// CenterX, CenterY locate the shape's center in pixels.
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`

	// Tolerance is the maximum center distance for a detection to count
	// as this shape. Zero means DefaultCenterTolerance.
	Tolerance float64 `yaml:"tolerance,omitempty"`
}

// ImageTruth lists the expected shapes for one corpus image.
type ImageTruth struct {
	// Image is the image file path, relative to the corpus file.
	Image string `yaml:"image"`

	// Shapes are the ground-truth shapes. An empty list is valid and
	// asserts the image contains no detectable shapes.
	Shapes []ExpectedShape `yaml:"shapes"`
}

// Corpus is a parsed ground-truth file.
type Corpus struct {
	// Images are the evaluation entries in file order.
	Images []ImageTruth `yaml:"images"`

	// BaseDir is the directory of the corpus file; image paths resolve
	// against it. Set by LoadCorpus, not by the YAML.
	BaseDir string `yaml:"-"`
}

// LoadCorpus reads and parses a ground-truth YAML file. Relative image
// paths in the corpus resolve against the file's directory.
func LoadCorpus(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}

	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse corpus YAML: %w", err)
	}
	if len(c.Images) == 0 {
		return nil, fmt.Errorf("corpus %s lists no images", path)
	}

	c.BaseDir = filepath.Dir(path)
	for i := range c.Images {
		for j := range c.Images[i].Shapes {
			if c.Images[i].Shapes[j].Tolerance == 0 {
				c.Images[i].Shapes[j].Tolerance = DefaultCenterTolerance
			}
		}
	}

	return &c, nil
}

// ImagePath resolves the path of one corpus entry against BaseDir.
// Absolute paths are returned unchanged.
func (c *Corpus) ImagePath(entry ImageTruth) string {
	if filepath.IsAbs(entry.Image) {
		return entry.Image
	}
	return filepath.Join(c.BaseDir, entry.Image)
}
