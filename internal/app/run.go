package app

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/geotransform/internal/config"
	"github.com/vk/geotransform/internal/ctxlog"
	"github.com/vk/geotransform/internal/geotrans"
	"github.com/vk/geotransform/internal/output"
)

// Run loads the configuration document and transforms every batch in order,
// writing one file per batch. The first error aborts the remaining batches.
func (a *App) Run(ctx context.Context) error {
	start := time.Now()
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Info("Loading configuration file.", "path", a.config.ConfigPath)
	model, err := a.loader.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.model = model

	if a.config.PrintConfig {
		return config.Fprint(a.outW, model)
	}

	set := model.Settings
	a.logger.Info("Transforming coordinates.", "from_epsg", set.FromEPSG, "to_epsg", set.ToEPSG)
	tr, err := geotrans.New(set.FromEPSG, set.ToEPSG, geotrans.WithLabel(set.Label))
	if err != nil {
		return fmt.Errorf("failed to create transformer: %w", err)
	}
	defer tr.Close()

	batches := model.Loadings.Coordinates
	template := model.Savings.BaseName
	if !output.HasToken(template) && len(batches) > 1 {
		a.logger.Warn("Output template has no batch token, every batch overwrites the same file.",
			"template", template, "token", output.Token, "batches", len(batches))
	}

	for i, batch := range batches {
		if err := runBatch(ctx, tr, template, i+1, batch); err != nil {
			return fmt.Errorf("batch %d: %w", i+1, err)
		}
	}

	a.logger.Info("Run finished.", "batches", len(batches), "elapsed", time.Since(start))
	return nil
}
