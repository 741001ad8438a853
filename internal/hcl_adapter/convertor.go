package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/vk/geotransform/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeAttr evaluates a literal attribute into target.
func decodeAttr(attr *hcl.Attribute, target any) error {
	if diags := gohcl.DecodeExpression(attr.Expr, nil, target); diags.HasErrors() {
		return diags
	}
	return nil
}

// singleBlock returns the only block of the given type, a MissingKeyError if
// there is none, or a DuplicateKeyError if there are several.
func singleBlock(blocks hcl.Blocks, key string) (*hcl.Block, error) {
	switch len(blocks) {
	case 0:
		return nil, &config.MissingKeyError{Key: key}
	case 1:
		return blocks[0], nil
	default:
		return nil, &config.DuplicateKeyError{Key: key, Count: len(blocks)}
	}
}

// requireAttr decodes the named attribute, or reports it as a missing key.
func requireAttr(attrs hcl.Attributes, name string, target any) error {
	attr, ok := attrs[name]
	if !ok {
		return &config.MissingKeyError{Key: name}
	}
	return decodeAttr(attr, target)
}

var fileRefSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "path"},
		{Name: "file"},
		{Name: "pattern"},
		{Name: "base_name"},
	},
}

// decodeFileRef reads whichever descriptor keys are present. Which ones are
// required is decided by the fsutil resolution applied to the result.
func decodeFileRef(body hcl.Body) (config.FileRef, error) {
	var ref config.FileRef
	content, _, diags := body.PartialContent(fileRefSchema)
	if diags.HasErrors() {
		return ref, diags
	}
	fields := map[string]*string{
		"path":      &ref.Path,
		"file":      &ref.File,
		"pattern":   &ref.Pattern,
		"base_name": &ref.BaseName,
	}
	for name, target := range fields {
		if attr, ok := content.Attributes[name]; ok {
			if err := decodeAttr(attr, target); err != nil {
				return ref, err
			}
		}
	}
	return ref, nil
}

var numberList = cty.List(cty.Number)

// toFloats converts a tuple or list of numbers into a Go slice.
func toFloats(val cty.Value, key string) ([]float64, error) {
	if val.IsNull() {
		return nil, &config.MissingKeyError{Key: key}
	}
	list, err := convert.Convert(val, numberList)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	out := []float64{}
	if err := gocty.FromCtyValue(list, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return out, nil
}

// toBatches converts the `coordinates` value, a sequence of objects with
// `lng` and `lat` arrays, into batches. Batch indexes are 1-based.
func toBatches(val cty.Value) ([]*config.Batch, error) {
	ty := val.Type()
	if val.IsNull() || !(ty.IsTupleType() || ty.IsListType()) {
		return nil, fmt.Errorf("coordinates: expected a sequence of objects, got %s", ty.FriendlyName())
	}

	batches := make([]*config.Batch, 0, val.LengthInt())
	index := 0
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		index++

		ty := elem.Type()
		if !ty.IsObjectType() && !ty.IsMapType() {
			return nil, fmt.Errorf("coordinates[%d]: expected an object, got %s", index, ty.FriendlyName())
		}
		lng, err := elemAttr(elem, "lng")
		if err != nil {
			return nil, err
		}
		lat, err := elemAttr(elem, "lat")
		if err != nil {
			return nil, err
		}
		b, err := config.NewBatch(index, lng, lat)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, nil
}

func elemAttr(elem cty.Value, key string) ([]float64, error) {
	ty := elem.Type()
	if ty.IsObjectType() {
		if !ty.HasAttribute(key) {
			return nil, &config.MissingKeyError{Key: key}
		}
		return toFloats(elem.GetAttr(key), key)
	}
	k := cty.StringVal(key)
	if !elem.HasIndex(k).True() {
		return nil, &config.MissingKeyError{Key: key}
	}
	return toFloats(elem.Index(k), key)
}
