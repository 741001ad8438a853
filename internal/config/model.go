package config

// Model is the unified, format-agnostic representation of a configuration
// document. It is populated once at startup and never mutated afterwards.
type Model struct {
	// Source is the path of the document the model was loaded from.
	Source   string
	Settings *Settings
	Loadings *Loadings
	Savings  *Savings
}

// Section enumerates the top-level sections of a configuration document.
type Section string

const (
	SectionSet  Section = "set"
	SectionLoad Section = "load"
	SectionSave Section = "save"
)

// Sections lists every section in population order.
var Sections = []Section{SectionSet, SectionLoad, SectionSave}

// Settings holds the `set` section.
type Settings struct {
	FromEPSG int
	ToEPSG   int
	// Label names the strategy used to render CRS labels in output headers.
	// Empty means the default strategy.
	Label string
}

// Loadings holds the `load` section.
type Loadings struct {
	Coordinates []*Batch
}

// Batch is one longitude/latitude array pair, processed and written as a
// single output file.
type Batch struct {
	Lng []float64
	Lat []float64
}

// NewBatch returns a batch for the given arrays. index is the 1-based batch
// position and is only used for error reporting.
func NewBatch(index int, lng, lat []float64) (*Batch, error) {
	if len(lng) != len(lat) {
		return nil, &LengthMismatchError{Index: index, Lng: len(lng), Lat: len(lat)}
	}
	return &Batch{Lng: lng, Lat: lat}, nil
}

// Len returns the number of coordinate pairs in the batch.
func (b *Batch) Len() int {
	return len(b.Lng)
}

// Savings holds the `save` section.
type Savings struct {
	// BaseName is the verified output directory joined with the filename
	// template. The template may contain the `{BASE_NAME}` token.
	BaseName string
}

// FileRef is a path-bearing descriptor found in the configuration document.
// Exactly one of File, Pattern or BaseName is meaningful, depending on which
// resolution is applied to it.
type FileRef struct {
	Path     string
	File     string
	Pattern  string
	BaseName string
}
