package config

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewBatch_LengthMismatch(t *testing.T) {
	_, err := NewBatch(2, []float64{1, 2, 3}, []float64{1, 2})

	var lenErr *LengthMismatchError
	require.ErrorAs(t, err, &lenErr)
	require.Equal(t, 2, lenErr.Index)
	require.Equal(t, 3, lenErr.Lng)
	require.Equal(t, 2, lenErr.Lat)
}

func TestNewBatch_SingleValue(t *testing.T) {
	b, err := NewBatch(1, []float64{139.69175}, []float64{35.689472})
	require.NoError(t, err)
	require.Equal(t, 1, b.Len())
}

func TestNotFoundError_IsNotExist(t *testing.T) {
	err := error(&NotFoundError{Path: "/nope"})
	require.True(t, errors.Is(err, fs.ErrNotExist))
	require.Equal(t, "not found: /nope", err.Error())
}

func TestMissingKeyError_NamesKey(t *testing.T) {
	err := &MissingKeyError{Key: "base_name"}
	require.Contains(t, err.Error(), "base_name")
}

func TestWalk_ListsEveryLeaf(t *testing.T) {
	// --- Arrange ---
	m := &Model{
		Settings: &Settings{FromEPSG: 4301, ToEPSG: 6668, Label: "code"},
		Loadings: &Loadings{Coordinates: []*Batch{
			{Lng: []float64{139.5}, Lat: []float64{35.5}},
		}},
		Savings: &Savings{BaseName: "/out/result_{BASE_NAME}.tsv"},
	}

	// --- Act ---
	entries := m.Walk()

	// --- Assert ---
	want := []Entry{
		{Key: "setting", Value: "{3}"},
		{Key: "setting -> from_epsg", Value: "4301"},
		{Key: "setting -> to_epsg", Value: "6668"},
		{Key: "setting -> label", Value: "code"},
		{Key: "loads", Value: "{1}"},
		{Key: "loads -> coordinates", Value: "{1}"},
		{Key: "loads -> coordinates -> 1", Value: "{2}"},
		{Key: "loads -> coordinates -> 1 -> lng", Value: "[139.5]"},
		{Key: "loads -> coordinates -> 1 -> lat", Value: "[35.5]"},
		{Key: "saves", Value: "{1}"},
		{Key: "saves -> basename", Value: "/out/result_{BASE_NAME}.tsv"},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("Walk() mismatch (-want +got):\n%s", diff)
	}
}

func TestFprint_AlignsKeys(t *testing.T) {
	m := &Model{Savings: &Savings{BaseName: "out.tsv"}}
	buf := &bytes.Buffer{}

	require.NoError(t, Fprint(buf, m))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "saves -> basename"+strings.Repeat(" ", 40-len("saves -> basename"))+": out.tsv", lines[1])
}
