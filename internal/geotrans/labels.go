package geotrans

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/vk/geotransform/internal/proj"
)

// Labeler renders the header label of a CRS. crs is the resolved PROJ
// object for code, table is the metadata lookup table configured on the
// transformer and may be nil.
type Labeler func(crs *proj.PJ, code int, table map[int]string) (string, error)

// DefaultLabel is the strategy used when none is configured.
const DefaultLabel = "code"

var labelers = map[string]Labeler{}

// RegisterLabeler registers a label strategy under name.
func RegisterLabeler(name string, l Labeler) {
	if _, exists := labelers[name]; exists {
		panic(fmt.Sprintf("label strategy with name '%s' already registered", name))
	}
	slog.Debug("Registering label strategy.", "name", name)
	labelers[name] = l
}

// LookupLabeler returns the strategy registered under name. An empty name
// selects DefaultLabel.
func LookupLabeler(name string) (Labeler, error) {
	if name == "" {
		name = DefaultLabel
	}
	l, ok := labelers[name]
	if !ok {
		return nil, fmt.Errorf("unknown label strategy '%s', expected one of %v", name, LabelStrategies())
	}
	return l, nil
}

// LabelStrategies returns the registered strategy names, sorted.
func LabelStrategies() []string {
	names := make([]string, 0, len(labelers))
	for name := range labelers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterLabeler("code", codeLabel)
	RegisterLabeler("name", nameLabel)
	RegisterLabeler("reverse", reverseLabel)
}

// codeLabel renders "EPSG:<code>".
func codeLabel(_ *proj.PJ, code int, _ map[int]string) (string, error) {
	return fmt.Sprintf("EPSG:%d", code), nil
}

// nameLabel looks the code up in the table, falling back to the name PROJ
// reports for the CRS.
func nameLabel(crs *proj.PJ, code int, table map[int]string) (string, error) {
	if name, ok := table[code]; ok {
		return name, nil
	}
	return crs.Name()
}

// reverseLabel asks PROJ for the identifier of the resolved CRS and parses it
// back into a code, then renders "AUTH:CODE" followed by the table name when
// the code is known.
func reverseLabel(crs *proj.PJ, code int, table map[int]string) (string, error) {
	auth, id, err := crs.ID()
	if err != nil {
		return "", err
	}
	if auth == "" || id == "" {
		return fmt.Sprintf("EPSG:%d", code), nil
	}
	parsed, err := strconv.Atoi(id)
	if err != nil {
		return auth + ":" + id, nil
	}
	if name, ok := table[parsed]; ok {
		return fmt.Sprintf("%s:%d %s", auth, parsed, name), nil
	}
	return fmt.Sprintf("%s:%d", auth, parsed), nil
}
