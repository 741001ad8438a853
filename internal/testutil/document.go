package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Batch is one coordinate batch of a test document.
type Batch struct {
	Lng []float64 `json:"lng"`
	Lat []float64 `json:"lat"`
}

// Document describes a configuration document in the shape the loader
// expects. OutDir defaults to TmpToken.
type Document struct {
	From     int
	To       int
	Label    string
	Batches  []Batch
	OutDir   string
	BaseName string
}

// JSON renders the document.
func (d Document) JSON(t *testing.T) string {
	t.Helper()

	set := map[string]any{"epsg": map[string]int{"from": d.From, "to": d.To}}
	if d.Label != "" {
		set["label"] = d.Label
	}
	outDir := d.OutDir
	if outDir == "" {
		outDir = TmpToken
	}
	batches := d.Batches
	if batches == nil {
		batches = []Batch{}
	}
	doc := map[string]any{
		"set":  set,
		"load": map[string]any{"coordinates": batches},
		"save": map[string]any{"transform": map[string]string{"path": outDir, "base_name": d.BaseName}},
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	return string(data)
}
