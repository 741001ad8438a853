// Package output names and writes the per-batch result files.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Token is substituted with the 1-based batch index in a filename template.
const Token = "{BASE_NAME}"

// FileName substitutes index for every Token in template. A template
// without the token is returned unchanged, so every batch maps to the same
// file and each one overwrites the previous.
func FileName(template string, index int) string {
	return strings.ReplaceAll(template, Token, strconv.Itoa(index))
}

// HasToken reports whether template contains Token.
func HasToken(template string) bool {
	return strings.Contains(template, Token)
}

// Header holds the CRS labels written on the first line of a batch file.
type Header struct {
	From string
	To   string
}

// Rows is one batch of source and transformed coordinates. All four slices
// have the same length.
type Rows struct {
	Lng, Lat []float64
	X, Y     []float64
}

// Encode writes the two header lines followed by one tab-separated line per
// coordinate pair: source lat, source lng, transformed lat, transformed lng.
func Encode(w io.Writer, h Header, r Rows) error {
	n := len(r.Lng)
	if len(r.Lat) != n || len(r.X) != n || len(r.Y) != n {
		return fmt.Errorf("rows differ in length: lng=%d lat=%d x=%d y=%d", n, len(r.Lat), len(r.X), len(r.Y))
	}

	if _, err := fmt.Fprintf(w, "%s\t\t%s\t\n", h.From, h.To); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "lat\tlng\tlat\tlng\n"); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(w, "%.6f\t%.6f\t%.6f\t%.6f\n", r.Lat[i], r.Lng[i], r.Y[i], r.X[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile encodes a batch into path, truncating any existing file.
func WriteFile(path string, h Header, r Rows) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Encode(bw, h, r); err != nil {
		return err
	}
	return bw.Flush()
}
