// Package pipeline implements the per-partition cleaning and
// feature-derivation pass applied to raw taxi trip rows before training:
// normalize -> outlier filter -> derive. The pass is a pure function of its
// input partition; re-running it on the same partition yields bit-identical
// output, so an external scheduler may retry partitions freely.
package pipeline

import "github.com/jengzang/fares-backend-go/internal/models"

// RawRecord is one row as read from source storage, header name -> cell
// text, with no type interpretation applied yet.
type RawRecord map[string]string

// Result carries the surviving feature rows of one partition together with
// row accounting.
type Result struct {
	Records []models.FeatureRecord
	Stats   models.PipelineStats
}

// Run pushes one partition through the three stages. Partitions are
// independent; callers may run any number of partitions concurrently.
func Run(batch []RawRecord, cfg Config) Result {
	cleaned := NormalizeBatch(batch, cfg.Aliases)
	kept := FilterOutliers(cleaned, cfg.Bounds)
	records := DeriveBatch(kept)

	return Result{
		Records: records,
		Stats: models.PipelineStats{
			RowsIn:      int64(len(batch)),
			RowsKept:    int64(len(kept)),
			RowsDropped: int64(len(batch) - len(kept)),
		},
	}
}
