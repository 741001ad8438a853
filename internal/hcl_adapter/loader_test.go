package hcl_adapter_test

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/geotransform/internal/config"
	"github.com/vk/geotransform/internal/hcl_adapter"
	"github.com/vk/geotransform/internal/testutil"
)

const validJSON = `{
  "set":  { "epsg": { "from": 4301, "to": 6668 }, "label": "name" },
  "load": { "coordinates": [
    { "lng": [139.691750, 141.346806], "lat": [35.689472, 43.064611] },
    { "lng": [127.680917], "lat": [26.212389] }
  ] },
  "save": { "transform": { "path": "$TMP/out", "base_name": "result_{BASE_NAME}.tsv" } },
  "comment": "unknown keys are ignored"
}`

func load(t *testing.T, files map[string]string, name string) (*config.Model, string, error) {
	t.Helper()
	dir := testutil.WriteFiles(t, files)
	m, err := hcl_adapter.NewLoader().Load(context.Background(), filepath.Join(dir, name))
	return m, dir, err
}

func TestLoad_JSON(t *testing.T) {
	// --- Arrange & Act ---
	m, dir, err := load(t, map[string]string{
		"conf.json":  validJSON,
		"out/.keep": "",
	}, "conf.json")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "conf.json"), m.Source)
	require.Equal(t, &config.Settings{FromEPSG: 4301, ToEPSG: 6668, Label: "name"}, m.Settings)

	want := []*config.Batch{
		{Lng: []float64{139.691750, 141.346806}, Lat: []float64{35.689472, 43.064611}},
		{Lng: []float64{127.680917}, Lat: []float64{26.212389}},
	}
	if diff := cmp.Diff(want, m.Loadings.Coordinates); diff != "" {
		t.Errorf("coordinates mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, filepath.Join(dir, "out", "result_{BASE_NAME}.tsv"), m.Savings.BaseName)
}

func TestLoad_NativeHCL(t *testing.T) {
	doc := `
set {
  epsg {
    from = 6668
    to   = 4301
  }
}
load {
  coordinates = [
    { lng = [139.69175], lat = [35.689472] },
  ]
}
save {
  transform {
    path      = "$TMP"
    base_name = "out_{BASE_NAME}.tsv"
  }
}
`
	m, _, err := load(t, map[string]string{"conf.hcl": doc}, "conf.hcl")

	require.NoError(t, err)
	require.Equal(t, 6668, m.Settings.FromEPSG)
	require.Equal(t, 4301, m.Settings.ToEPSG)
	require.Empty(t, m.Settings.Label)
	require.Len(t, m.Loadings.Coordinates, 1)
	require.Equal(t, 1, m.Loadings.Coordinates[0].Len())
}

func TestLoad_EmptyCoordinates(t *testing.T) {
	doc := `{
  "set":  { "epsg": { "from": 4326, "to": 6668 } },
  "load": { "coordinates": [] },
  "save": { "transform": { "path": "$TMP", "base_name": "x" } }
}`
	m, _, err := load(t, map[string]string{"conf.json": doc}, "conf.json")

	require.NoError(t, err)
	require.Empty(t, m.Loadings.Coordinates)
}

func TestLoad_MissingArgument(t *testing.T) {
	_, err := hcl_adapter.NewLoader().Load(context.Background(), "")
	require.ErrorIs(t, err, config.ErrMissingArgument)
}

func TestLoad_DocumentNotFound(t *testing.T) {
	_, err := hcl_adapter.NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "none.json"))

	var nf *config.NotFoundError
	require.ErrorAs(t, err, &nf)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, _, err := load(t, map[string]string{"conf.json": `{"set": `}, "conf.json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_MissingKeys(t *testing.T) {
	const set = `"set": { "epsg": { "from": 4301, "to": 6668 } }`
	const loadSec = `"load": { "coordinates": [ { "lng": [1], "lat": [2] } ] }`
	const save = `"save": { "transform": { "path": "$TMP", "base_name": "x" } }`

	tests := []struct {
		name    string
		doc     string
		wantKey string
	}{
		{name: "set section", doc: `{` + loadSec + `,` + save + `}`, wantKey: "set"},
		{name: "load section", doc: `{` + set + `,` + save + `}`, wantKey: "load"},
		{name: "save section", doc: `{` + set + `,` + loadSec + `}`, wantKey: "save"},
		{name: "epsg", doc: `{"set": {},` + loadSec + `,` + save + `}`, wantKey: "epsg"},
		{name: "from", doc: `{"set": {"epsg": {"to": 6668}},` + loadSec + `,` + save + `}`, wantKey: "from"},
		{name: "to", doc: `{"set": {"epsg": {"from": 4301}},` + loadSec + `,` + save + `}`, wantKey: "to"},
		{name: "coordinates", doc: `{` + set + `,"load": {},` + save + `}`, wantKey: "coordinates"},
		{name: "lng", doc: `{` + set + `,"load": {"coordinates": [{"lat": [1]}]},` + save + `}`, wantKey: "lng"},
		{name: "lat", doc: `{` + set + `,"load": {"coordinates": [{"lng": [1]}]},` + save + `}`, wantKey: "lat"},
		{name: "transform", doc: `{` + set + `,` + loadSec + `,"save": {}}`, wantKey: "transform"},
		{name: "path", doc: `{` + set + `,` + loadSec + `,"save": {"transform": {"base_name": "x"}}}`, wantKey: "path"},
		{name: "base_name", doc: `{` + set + `,` + loadSec + `,"save": {"transform": {"path": "$TMP"}}}`, wantKey: "base_name"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := load(t, map[string]string{"conf.json": tc.doc}, "conf.json")

			var mk *config.MissingKeyError
			require.ErrorAs(t, err, &mk)
			require.Equal(t, tc.wantKey, mk.Key)
		})
	}
}

func TestLoad_LengthMismatch(t *testing.T) {
	doc := `{
  "set":  { "epsg": { "from": 4301, "to": 6668 } },
  "load": { "coordinates": [
    { "lng": [1, 2], "lat": [1, 2] },
    { "lng": [1, 2, 3], "lat": [1, 2] }
  ] },
  "save": { "transform": { "path": "$TMP", "base_name": "x" } }
}`
	_, _, err := load(t, map[string]string{"conf.json": doc}, "conf.json")

	var lm *config.LengthMismatchError
	require.ErrorAs(t, err, &lm)
	require.Equal(t, 2, lm.Index)
	require.Equal(t, 3, lm.Lng)
	require.Equal(t, 2, lm.Lat)
}

func TestLoad_SaveDirectoryNotFound(t *testing.T) {
	doc := `{
  "set":  { "epsg": { "from": 4301, "to": 6668 } },
  "load": { "coordinates": [] },
  "save": { "transform": { "path": "$TMP/missing", "base_name": "x" } }
}`
	_, _, err := load(t, map[string]string{"conf.json": doc}, "conf.json")

	var nf *config.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestLoad_WrongTypes(t *testing.T) {
	tests := map[string]string{
		"from is a string": `{"set": {"epsg": {"from": "tokyo", "to": 6668}}, "load": {"coordinates": []}, "save": {"transform": {"path": "$TMP", "base_name": "x"}}}`,
		"lng holds text":   `{"set": {"epsg": {"from": 4301, "to": 6668}}, "load": {"coordinates": [{"lng": ["a"], "lat": [1]}]}, "save": {"transform": {"path": "$TMP", "base_name": "x"}}}`,
		"batch not object": `{"set": {"epsg": {"from": 4301, "to": 6668}}, "load": {"coordinates": [[1, 2]]}, "save": {"transform": {"path": "$TMP", "base_name": "x"}}}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := load(t, map[string]string{"conf.json": doc}, "conf.json")
			require.Error(t, err)
		})
	}
}

func TestLoad_CoordinatesMustBeSequence(t *testing.T) {
	doc := `{"set": {"epsg": {"from": 4301, "to": 6668}}, "load": {"coordinates": {"b": {"lng": [1], "lat": [2]}, "a": {"lng": [3], "lat": [4]}}}, "save": {"transform": {"path": "$TMP", "base_name": "x"}}}`

	m, _, err := load(t, map[string]string{"conf.json": doc}, "conf.json")

	require.Nil(t, m)
	require.ErrorContains(t, err, "expected a sequence of objects")
}

func TestLoad_DocumentIsDirectory(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"conf.json/.keep": ""})

	_, err := hcl_adapter.NewLoader().Load(context.Background(), filepath.Join(dir, "conf.json"))

	var nf *config.NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, filepath.Join(dir, "conf.json"), nf.Path)
}

func TestLoad_DuplicateSections(t *testing.T) {
	const set = `"set": { "epsg": { "from": 4301, "to": 6668 } }`
	const loadSec = `"load": { "coordinates": [ { "lng": [1], "lat": [2] } ] }`
	const save = `"save": { "transform": { "path": "$TMP", "base_name": "x" } }`

	tests := []struct {
		name    string
		doc     string
		wantKey string
	}{
		{name: "set", doc: `{"set": [{"epsg": {"from": 4301, "to": 6668}}, {"epsg": {"from": 4326, "to": 6668}}],` + loadSec + `,` + save + `}`, wantKey: "set"},
		{name: "epsg", doc: `{"set": {"epsg": [{"from": 4301, "to": 6668}, {"from": 4326, "to": 6668}]},` + loadSec + `,` + save + `}`, wantKey: "epsg"},
		{name: "transform", doc: `{` + set + `,` + loadSec + `,"save": {"transform": [{"path": "$TMP", "base_name": "x"}, {"path": "$TMP", "base_name": "y"}]}}`, wantKey: "transform"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := load(t, map[string]string{"conf.json": tc.doc}, "conf.json")

			var dk *config.DuplicateKeyError
			require.ErrorAs(t, err, &dk)
			require.Equal(t, tc.wantKey, dk.Key)
			require.Equal(t, 2, dk.Count)
		})
	}
}
