package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/geotransform/internal/config"
	"github.com/vk/geotransform/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// rootSchema lists the top-level sections. Anything else in the document is
// ignored.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: string(config.SectionSet)},
		{Type: string(config.SectionLoad)},
		{Type: string(config.SectionSave)},
	},
}

// Load parses the document at path and populates every section of the model
// in order. The first failure aborts loading.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	if path == "" {
		return nil, config.ErrMissingArgument
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &config.NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("error accessing config file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, &config.NotFoundError{Path: path}
	}
	logger.Debug("HCL loader started.", "path", path)

	body, err := l.parse(path)
	if err != nil {
		return nil, err
	}

	content, _, diags := body.PartialContent(rootSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	model := &config.Model{Source: path}
	for _, section := range config.Sections {
		block, err := singleBlock(content.Blocks.OfType(string(section)), string(section))
		if err != nil {
			return nil, err
		}
		if err := populate(ctx, section, block.Body, model); err != nil {
			return nil, fmt.Errorf("section '%s': %w", section, err)
		}
		logger.Debug("Config section populated.", "section", section)
	}

	logger.Debug("HCL loading complete.",
		"from_epsg", model.Settings.FromEPSG,
		"to_epsg", model.Settings.ToEPSG,
		"batches", len(model.Loadings.Coordinates),
	)
	return model, nil
}

// parse picks the syntax from the file extension: native HCL for .hcl,
// JSON for everything else.
func (l *Loader) parse(path string) (hcl.Body, error) {
	parser := hclparse.NewParser()

	var file *hcl.File
	var diags hcl.Diagnostics
	if filepath.Ext(path) == ".hcl" {
		file, diags = parser.ParseHCLFile(path)
	} else {
		file, diags = parser.ParseJSONFile(path)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	return file.Body, nil
}
