// Package reference loads the pre-labeled gesture recordings a classifier votes against.
package reference

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/go-sod/gesture/internal/geom"
	"github.com/go-sod/gesture/internal/gesture"
	"github.com/go-sod/gesture/internal/predictor"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Set is a named reference set with the gesture names of its classes.
type Set struct {
	Name     string
	Gestures gesture.List
	Points   []predictor.LabeledPoint
}

// Classes is the number of classes the set needs: enough for every name and every point.
func (s *Set) Classes() int {
	n := len(s.Gestures)
	for _, p := range s.Points {
		if p.ClassIndex+1 > n {
			n = p.ClassIndex + 1
		}
	}
	return n
}

type pointDoc struct {
	X     float64 `json:"x" yaml:"x" toml:"x"`
	Y     float64 `json:"y" yaml:"y" toml:"y"`
	Z     float64 `json:"z" yaml:"z" toml:"z"`
	Class int     `json:"class" yaml:"class" toml:"class"`
}

// document is the on-disk shape. Classes groups raw samples by class index,
// which is how the recording UI hands them over.
type document struct {
	Name     string        `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Gestures []string      `json:"gestures,omitempty" yaml:"gestures,omitempty" toml:"gestures,omitempty"`
	Points   []pointDoc    `json:"points,omitempty" yaml:"points,omitempty" toml:"points,omitempty"`
	Classes  [][][]float64 `json:"classes,omitempty" yaml:"classes,omitempty" toml:"classes,omitempty"`
}

func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported reference file extension %q", filepath.Ext(path))
	}
}

// LoadFile reads a reference set, picking the decoder from the file extension.
func LoadFile(path string) (*Set, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open reference file: %w", err)
	}
	defer f.Close()

	set, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	if set.Name == "" {
		set.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return set, nil
}

func Decode(r io.Reader, format Format) (*Set, error) {
	var doc document
	switch format {
	case FormatJSON:
		d := json.NewDecoder(r)
		d.DisallowUnknownFields()
		if err := d.Decode(&doc); err != nil {
			return nil, fmt.Errorf("json decode: %w", err)
		}
	case FormatYAML:
		d := yaml.NewDecoder(r)
		d.KnownFields(true)
		if err := d.Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("yaml decode: %w", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("toml decode: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("toml decode: unknown key %s", undecoded[0])
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return doc.set()
}

func Encode(w io.Writer, format Format, set *Set) error {
	doc := document{Name: set.Name, Gestures: set.Gestures, Points: make([]pointDoc, len(set.Points))}
	for i, p := range set.Points {
		doc.Points[i] = pointDoc{X: p.Point.X, Y: p.Point.Y, Z: p.Point.Z, Class: p.ClassIndex}
	}
	switch format {
	case FormatJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(doc)
	case FormatYAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(doc); err != nil {
			return err
		}
		return e.Close()
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func (d document) set() (*Set, error) {
	set := &Set{Name: d.Name, Gestures: d.Gestures}
	for i, p := range d.Points {
		if p.Class < 0 {
			return nil, fmt.Errorf("point %d has negative class %d", i, p.Class)
		}
		lp := predictor.NewLabeledPoint(p.X, p.Y, p.Z, p.Class)
		if !lp.Point.Finite() {
			return nil, fmt.Errorf("point %d: %w", i, geom.ErrMalformedSample)
		}
		set.Points = append(set.Points, lp)
	}
	for class, samples := range d.Classes {
		for i, readings := range samples {
			point, err := geom.FromSample(readings)
			if err != nil {
				return nil, fmt.Errorf("class %d sample %d: %w", class, i, err)
			}
			set.Points = append(set.Points, predictor.LabeledPoint{Point: point, ClassIndex: class})
		}
	}
	return set, nil
}
