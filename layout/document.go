// Package layout describes ui trees in TOML or YAML documents and builds them.
package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a layout document.
type Format int

const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

var ErrUnknownFormat = errors.New("layout: unknown document format")

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Document is a window, a canvas and the tree of elements inside it.
type Document struct {
	Window   Window        `toml:"window" yaml:"window"`
	Canvas   CanvasOptions `toml:"canvas" yaml:"canvas"`
	Elements []Node        `toml:"elements" yaml:"elements"`
}

type Window struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
}

type CanvasOptions struct {
	ReferenceResolution float32 `toml:"reference_resolution" yaml:"reference_resolution"`
	// Debug starts with debug outlines shown.
	Debug bool `toml:"debug" yaml:"debug"`
	// Background is the clear color of the back buffer.
	Background string `toml:"background" yaml:"background"`
}

// Metric is the document form of ui.Metric. Both pairs default to zero.
type Metric struct {
	Ratio []float32 `toml:"ratio" yaml:"ratio"`
	Unit  []float32 `toml:"unit" yaml:"unit"`
}

// Node describes one element and its children.
type Node struct {
	// Kind is element, label or sprite. Empty means element.
	Kind string `toml:"kind" yaml:"kind"`
	Name string `toml:"name" yaml:"name"`

	Position Metric `toml:"position" yaml:"position"`
	Size     Metric `toml:"size" yaml:"size"`
	// Pivot is a pivot position name or a pair of ratios.
	Pivot any    `toml:"pivot" yaml:"pivot"`
	Mode  string `toml:"mode" yaml:"mode"`

	EdgeColor string `toml:"edge_color" yaml:"edge_color"`
	FillColor string `toml:"fill_color" yaml:"fill_color"`

	// Label fields.
	Text  string  `toml:"text" yaml:"text"`
	Scale float32 `toml:"scale" yaml:"scale"`
	Color string  `toml:"color" yaml:"color"`

	// Sprite fields.
	Image    string  `toml:"image" yaml:"image"`
	Frame    []int   `toml:"frame" yaml:"frame"`
	FPS      float32 `toml:"fps" yaml:"fps"`
	FillMode string  `toml:"fill_mode" yaml:"fill_mode"`

	Children []Node `toml:"children" yaml:"children"`
}

// Defaults for fields a document leaves out.
const (
	DefaultTitle               = "anchor"
	DefaultWidth               = 1280
	DefaultHeight              = 720
	DefaultReferenceResolution = 1080
)

func (d *Document) applyDefaults() {
	if d.Window.Title == "" {
		d.Window.Title = DefaultTitle
	}
	if d.Window.Width <= 0 {
		d.Window.Width = DefaultWidth
	}
	if d.Window.Height <= 0 {
		d.Window.Height = DefaultHeight
	}
	if d.Canvas.ReferenceResolution == 0 {
		d.Canvas.ReferenceResolution = DefaultReferenceResolution
	}
}

// Parse decodes a document.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding toml failed: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding yaml failed: %w", err)
		}
	default:
		return nil, fmt.Errorf("%v: %w", format, ErrUnknownFormat)
	}
	doc.applyDefaults()
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s failed: %w", path, err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	Logger().Info("layout: loaded", "path", path, "elements", len(doc.Elements))
	return doc, nil
}
