package app

import (
	"context"
	"fmt"

	"github.com/vk/geotransform/internal/config"
	"github.com/vk/geotransform/internal/ctxlog"
	"github.com/vk/geotransform/internal/geotrans"
	"github.com/vk/geotransform/internal/output"
)

// runBatch transforms one batch and writes it to the file named by template
// with index substituted.
func runBatch(ctx context.Context, tr *geotrans.Transformer, template string, index int, batch *config.Batch) error {
	path := output.FileName(template, index)
	_, logger := ctxlog.With(ctx, "batch", index, "path", path)

	x, y, err := tr.Transform(batch.Lng, batch.Lat)
	if err != nil {
		return err
	}
	if len(x) != batch.Len() || len(y) != batch.Len() {
		return fmt.Errorf("transformer returned %d/%d values for %d coordinates", len(x), len(y), batch.Len())
	}

	from, to := tr.Labels()
	rows := output.Rows{Lng: batch.Lng, Lat: batch.Lat, X: x, Y: y}
	if err := output.WriteFile(path, output.Header{From: from, To: to}, rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("Batch written.", "rows", batch.Len())
	return nil
}
