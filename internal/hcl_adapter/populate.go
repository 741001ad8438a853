package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/geotransform/internal/config"
	"github.com/vk/geotransform/internal/ctxlog"
	"github.com/vk/geotransform/internal/fsutil"
)

// populate decodes the body of one section into the model.
func populate(ctx context.Context, section config.Section, body hcl.Body, model *config.Model) error {
	var err error
	switch section {
	case config.SectionSet:
		model.Settings, err = populateSettings(body)
	case config.SectionLoad:
		model.Loadings, err = populateLoadings(ctx, body)
	case config.SectionSave:
		model.Savings, err = populateSavings(body)
	default:
		err = fmt.Errorf("unknown config section '%s'", section)
	}
	return err
}

var settingsSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: "label"}},
	Blocks:     []hcl.BlockHeaderSchema{{Type: "epsg"}},
}

var epsgSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: "from"}, {Name: "to"}},
}

func populateSettings(body hcl.Body) (*config.Settings, error) {
	content, _, diags := body.PartialContent(settingsSchema)
	if diags.HasErrors() {
		return nil, diags
	}
	s := &config.Settings{}
	if attr, ok := content.Attributes["label"]; ok {
		if err := decodeAttr(attr, &s.Label); err != nil {
			return nil, err
		}
	}

	block, err := singleBlock(content.Blocks.OfType("epsg"), "epsg")
	if err != nil {
		return nil, err
	}
	epsg, _, diags := block.Body.PartialContent(epsgSchema)
	if diags.HasErrors() {
		return nil, diags
	}
	if err := requireAttr(epsg.Attributes, "from", &s.FromEPSG); err != nil {
		return nil, err
	}
	if err := requireAttr(epsg.Attributes, "to", &s.ToEPSG); err != nil {
		return nil, err
	}
	return s, nil
}

var loadingsSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: "coordinates"}},
}

func populateLoadings(ctx context.Context, body hcl.Body) (*config.Loadings, error) {
	content, _, diags := body.PartialContent(loadingsSchema)
	if diags.HasErrors() {
		return nil, diags
	}
	attr, ok := content.Attributes["coordinates"]
	if !ok {
		return nil, &config.MissingKeyError{Key: "coordinates"}
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	batches, err := toBatches(val)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Coordinate batches decoded.", "count", len(batches))
	return &config.Loadings{Coordinates: batches}, nil
}

var savingsSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "transform"}},
}

func populateSavings(body hcl.Body) (*config.Savings, error) {
	content, _, diags := body.PartialContent(savingsSchema)
	if diags.HasErrors() {
		return nil, diags
	}
	block, err := singleBlock(content.Blocks.OfType("transform"), "transform")
	if err != nil {
		return nil, err
	}
	ref, err := decodeFileRef(block.Body)
	if err != nil {
		return nil, err
	}
	base, err := fsutil.Base(ref)
	if err != nil {
		return nil, err
	}
	return &config.Savings{BaseName: base}, nil
}
