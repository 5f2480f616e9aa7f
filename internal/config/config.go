// Package config loads optional configuration files and overlays them on
// the built-in detection defaults.
//
// Configuration is a YAML file with two sections, detection tunables and
// preprocessing options, every field optional:
//
//	detection:
//	  edge_threshold: 110
//	  min_contour_area: 80
//	preprocess:
//	  max_dimension: 1024
//	  blur_radius: 1.5
//
// Fields omitted from the file keep their defaults, so partial configs are
// safe. The detection core never reads files itself; the CLI and server
// load a File here and pass the resulting detection.Config down.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lvrreddy-3122005/shape-detector-solution/internal/detection"
	"github.com/lvrreddy-3122005/shape-detector-solution/internal/imaging"
)

// maxFileSize bounds a config file read (1MB). Real configs are a few
// hundred bytes; anything larger is a mistake.
const maxFileSize = 1 * 1024 * 1024

// Detection mirrors detection.Config with pointer fields so a YAML file
// can distinguish "not set" from an explicit zero.
type Detection struct {
	EdgeThreshold            *float64 `yaml:"edge_threshold,omitempty"`
	MinContourLength         *int     `yaml:"min_contour_length,omitempty"`
	MinContourArea           *float64 `yaml:"min_contour_area,omitempty"`
	DuplicateCenterTolerance *float64 `yaml:"duplicate_center_tolerance,omitempty"`
	SimplifyEpsilonFraction  *float64 `yaml:"simplify_epsilon_fraction,omitempty"`
	ClosedLoopTolerance      *float64 `yaml:"closed_loop_tolerance,omitempty"`
	AspectRatioRejectAbove   *float64 `yaml:"aspect_ratio_reject_above,omitempty"`
	CircularityThreshold     *float64 `yaml:"circularity_threshold,omitempty"`
}

// Preprocess mirrors imaging.PreprocessOptions with pointer fields.
type Preprocess struct {
	MaxDimension *int     `yaml:"max_dimension,omitempty"`
	BlurRadius   *float64 `yaml:"blur_radius,omitempty"`
}

// File is the root of a configuration file. The zero value applies no
// overrides at all.
type File struct {
	Detection  Detection  `yaml:"detection"`
	Preprocess Preprocess `yaml:"preprocess"`
}

// Load reads and parses a YAML configuration file.
//
// The file must have a .yaml or .yml extension and stay under 1MB. Fields
// absent from the file are left nil, so the result can be applied as a
// partial overlay.
func Load(path string) (*File, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &f, nil
}

// DetectionConfig returns the detection defaults with this file's
// overrides applied. A nil receiver yields pure defaults.
func (f *File) DetectionConfig() *detection.Config {
	cfg := detection.DefaultConfig()
	if f == nil {
		return cfg
	}

	d := f.Detection
	if d.EdgeThreshold != nil {
		cfg.EdgeThreshold = *d.EdgeThreshold
	}
	if d.MinContourLength != nil {
		cfg.MinContourLength = *d.MinContourLength
	}
	if d.MinContourArea != nil {
		cfg.MinContourArea = *d.MinContourArea
	}
	if d.DuplicateCenterTolerance != nil {
		cfg.DuplicateCenterTolerance = *d.DuplicateCenterTolerance
	}
	if d.SimplifyEpsilonFraction != nil {
		cfg.SimplifyEpsilonFraction = *d.SimplifyEpsilonFraction
	}
	if d.ClosedLoopTolerance != nil {
		cfg.ClosedLoopTolerance = *d.ClosedLoopTolerance
	}
	if d.AspectRatioRejectAbove != nil {
		cfg.AspectRatioRejectAbove = *d.AspectRatioRejectAbove
	}
	if d.CircularityThreshold != nil {
		cfg.CircularityThreshold = *d.CircularityThreshold
	}
	return cfg
}

// PreprocessOptions returns the preprocessing options from this file.
// Unset fields stay at their zero value, which disables the step. A nil
// receiver disables everything.
func (f *File) PreprocessOptions() imaging.PreprocessOptions {
	var opts imaging.PreprocessOptions
	if f == nil {
		return opts
	}
	if f.Preprocess.MaxDimension != nil {
		opts.MaxDimension = *f.Preprocess.MaxDimension
	}
	if f.Preprocess.BlurRadius != nil {
		opts.BlurRadius = *f.Preprocess.BlurRadius
	}
	return opts
}
