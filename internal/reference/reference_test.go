package reference

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sod/gesture/internal/geom"
	"github.com/go-sod/gesture/internal/gesture"
	"github.com/go-sod/gesture/internal/predictor"
)

const yamlDoc = `
gestures: [shake, still]
points:
  - {x: 1.0, y: 2.0, z: 3.0, class: 0}
  - {x: -1.0, y: 0.5, z: 0.0, class: 1}
`

const jsonDoc = `{
  "gestures": ["shake", "still"],
  "points": [
    {"x": 1.0, "y": 2.0, "z": 3.0, "class": 0},
    {"x": -1.0, "y": 0.5, "z": 0.0, "class": 1}
  ]
}`

const tomlDoc = `
gestures = ["shake", "still"]

[[points]]
x = 1.0
y = 2.0
z = 3.0
class = 0

[[points]]
x = -1.0
y = 0.5
z = 0.0
class = 1
`

func expectedSet() []predictor.LabeledPoint {
	return []predictor.LabeledPoint{
		predictor.NewLabeledPoint(1, 2, 3, 0),
		predictor.NewLabeledPoint(-1, 0.5, 0, 1),
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		format Format
		doc    string
	}{
		{name: "json", format: FormatJSON, doc: jsonDoc},
		{name: "yaml", format: FormatYAML, doc: yamlDoc},
		{name: "toml", format: FormatTOML, doc: tomlDoc},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			set, err := Decode(strings.NewReader(test.doc), test.format)
			require.NoError(t, err)
			assert.Equal(t, gesture.List{"shake", "still"}, set.Gestures)
			assert.Equal(t, expectedSet(), set.Points)
			assert.Equal(t, 2, set.Classes())
		})
	}
}

func TestDecode_GroupedClasses(t *testing.T) {
	t.Parallel()
	doc := `
classes:
  - [[0.0, 0.0, 0.0], [0.5, 0.5]]
  - [[9.0, 9.0, 9.0, 4.0]]
  - []
  - [[1.0, 1.0, 1.0]]
`
	set, err := Decode(strings.NewReader(doc), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []predictor.LabeledPoint{
		predictor.NewLabeledPoint(0, 0, 0, 0),
		predictor.NewLabeledPoint(0.5, 0.5, 0, 0),
		predictor.NewLabeledPoint(9, 9, 9, 1),
		predictor.NewLabeledPoint(1, 1, 1, 3),
	}, set.Points)
	assert.Equal(t, 4, set.Classes())
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		format Format
		doc    string
		target error
	}{
		{name: "short_sample", format: FormatYAML, doc: "classes:\n  - [[1.0]]\n", target: geom.ErrMalformedSample},
		{
			name:   "nan_point",
			format: FormatYAML,
			doc:    "points:\n  - {x: .nan, y: 0, z: 0, class: 1}\n",
			target: geom.ErrMalformedSample,
		},
		{
			name:   "inf_point",
			format: FormatYAML,
			doc:    "points:\n  - {x: 0, y: -.inf, z: 0, class: 0}\n",
			target: geom.ErrMalformedSample,
		},
		{name: "nan_grouped_sample", format: FormatYAML, doc: "classes:\n  - [[0.0, .nan, 1.0]]\n", target: geom.ErrMalformedSample},
		{name: "negative_class", format: FormatJSON, doc: `{"points": [{"x": 1, "y": 1, "z": 1, "class": -2}]}`},
		{name: "unknown_json_field", format: FormatJSON, doc: `{"labels": []}`},
		{name: "unknown_yaml_field", format: FormatYAML, doc: "labels: []\n"},
		{name: "unknown_toml_key", format: FormatTOML, doc: "labels = []\n"},
		{name: "unknown_format", format: Format("xml"), doc: "<points/>"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(strings.NewReader(test.doc), test.format)
			require.Error(t, err)
			if test.target != nil {
				assert.ErrorIs(t, err, test.target)
			}
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()
	set := &Set{Name: "wrist", Gestures: gesture.List{"shake", "still"}, Points: expectedSet()}
	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, format, set), format)
		got, err := Decode(&buf, format)
		require.NoError(t, err, format)
		assert.Equal(t, set, got, format)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "wrist.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0600))

	set, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "wrist", set.Name)
	assert.Equal(t, expectedSet(), set.Points)

	_, err = LoadFile(filepath.Join(dir, "wrist.csv"))
	assert.Error(t, err)
	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestSet_Classes(t *testing.T) {
	t.Parallel()
	set := Set{Gestures: gesture.List{"a"}, Points: []predictor.LabeledPoint{predictor.NewLabeledPoint(0, 0, 0, 4)}}
	assert.Equal(t, 5, set.Classes())
	set = Set{Gestures: gesture.List{"a", "b", "c"}}
	assert.Equal(t, 3, set.Classes())
}
