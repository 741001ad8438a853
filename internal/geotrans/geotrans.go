package geotrans

import (
	"errors"
	"fmt"

	"github.com/vk/geotransform/internal/proj"
)

var (
	// ErrCRS wraps every failure to resolve a CRS or build the operation
	// between two of them. The message of the underlying PROJ error follows.
	ErrCRS = errors.New("crs resolution failed")
	// ErrLengthMismatch is returned by Transform for slices of different length.
	ErrLengthMismatch = errors.New("lng and lat differ in length")
)

// Transformer reprojects coordinates from one EPSG CRS to another.
type Transformer struct {
	ctx       *proj.Context
	op        *proj.PJ
	from      int
	to        int
	fromLabel string
	toLabel   string
}

type options struct {
	label string
	table map[int]string
}

// Option configures a Transformer.
type Option func(*options)

// WithLabel selects the label strategy by name.
func WithLabel(name string) Option {
	return func(o *options) { o.label = name }
}

// WithTable sets the metadata lookup table used by label strategies. A nil
// table disables lookups.
func WithTable(table map[int]string) Option {
	return func(o *options) { o.table = table }
}

// New resolves both EPSG codes and builds the operation between them.
// Coordinates are always longitude first.
func New(from, to int, opts ...Option) (*Transformer, error) {
	o := options{label: DefaultLabel, table: Known}
	for _, opt := range opts {
		opt(&o)
	}
	labeler, err := LookupLabeler(o.label)
	if err != nil {
		return nil, err
	}

	ctx := proj.NewContext()
	t := &Transformer{ctx: ctx, from: from, to: to}

	if t.fromLabel, err = label(ctx, from, labeler, o.table); err != nil {
		ctx.Close()
		return nil, err
	}
	if t.toLabel, err = label(ctx, to, labeler, o.table); err != nil {
		ctx.Close()
		return nil, err
	}

	t.op, err = ctx.CreateCRSToCRS(epsg(from), epsg(to))
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("%w: %s -> %s: %w", ErrCRS, epsg(from), epsg(to), err)
	}
	return t, nil
}

func epsg(code int) string {
	return fmt.Sprintf("EPSG:%d", code)
}

func label(ctx *proj.Context, code int, labeler Labeler, table map[int]string) (string, error) {
	crs, err := ctx.Create(epsg(code))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrCRS, epsg(code), err)
	}
	defer crs.Close()

	l, err := labeler(crs, code, table)
	if err != nil {
		return "", fmt.Errorf("failed to label %s: %w", epsg(code), err)
	}
	return l, nil
}

// Transform reprojects parallel longitude and latitude slices and returns
// the transformed longitudes and latitudes. A single coordinate is a pair
// of one-element slices.
func (t *Transformer) Transform(lng, lat []float64) ([]float64, []float64, error) {
	if len(lng) != len(lat) {
		return nil, nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(lng), len(lat))
	}
	x, y, err := t.op.TransSlice(proj.Fwd, lng, lat)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to transform %s -> %s: %w", epsg(t.from), epsg(t.to), err)
	}
	return x, y, nil
}

// Labels returns the header labels of the source and target CRS.
func (t *Transformer) Labels() (from, to string) {
	return t.fromLabel, t.toLabel
}

// Close releases the PROJ objects held by the transformer.
func (t *Transformer) Close() {
	t.ctx.Close()
}
