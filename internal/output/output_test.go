package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	require.Equal(t, "/out/result_3.tsv", FileName("/out/result_{BASE_NAME}.tsv", 3))
	require.Equal(t, "/out/3_3.tsv", FileName("/out/{BASE_NAME}_{BASE_NAME}.tsv", 3))

	// Without the token every batch resolves to the same static name.
	require.Equal(t, "/out/result.tsv", FileName("/out/result.tsv", 1))
	require.Equal(t, "/out/result.tsv", FileName("/out/result.tsv", 2))
	require.False(t, HasToken("/out/result.tsv"))
	require.True(t, HasToken("{BASE_NAME}.tsv"))
}

func TestEncode_SinglePair(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Encode(buf, Header{From: "EPSG:4301", To: "EPSG:6668"}, Rows{
		Lng: []float64{139.69175}, Lat: []float64{35.689472},
		X: []float64{139.6885}, Y: []float64{35.6927},
	})
	require.NoError(t, err)

	want := "EPSG:4301\t\tEPSG:6668\t\n" +
		"lat\tlng\tlat\tlng\n" +
		"35.689472\t139.691750\t35.692700\t139.688500\n"
	require.Equal(t, want, buf.String())
}

func TestEncode_LengthMismatch(t *testing.T) {
	err := Encode(&bytes.Buffer{}, Header{}, Rows{
		Lng: []float64{1}, Lat: []float64{1}, X: []float64{1}, Y: nil,
	})
	require.Error(t, err)
}

func TestWriteFile_Overwrites(t *testing.T) {
	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "out.tsv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the output\n\n\n\n\n"), 0o644))
	rows := Rows{Lng: []float64{1}, Lat: []float64{2}, X: []float64{3}, Y: []float64{4}}

	// --- Act ---
	err := WriteFile(path, Header{From: "A", To: "B"}, rows)

	// --- Assert ---
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "A\t\tB\t\nlat\tlng\tlat\tlng\n2.000000\t1.000000\t4.000000\t3.000000\n", string(got))
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.tsv"), Header{}, Rows{})
	require.Error(t, err)
}
