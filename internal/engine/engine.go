// internal/engine/engine.go
package engine

import (
	"context"
	"time"

	"groupscholar-intake/internal/common/logger"
	"groupscholar-intake/internal/common/metrics"
	"groupscholar-intake/internal/engine/aggregate"
	"groupscholar-intake/internal/engine/classify"
	"groupscholar-intake/internal/engine/normalize"
	"groupscholar-intake/internal/engine/score"
	"groupscholar-intake/internal/engine/validate"
	"groupscholar-intake/internal/models"
)

// Result is one batch run: every normalized record plus the rollups.
type Result struct {
	Applications []models.NormalizedApplication
	Summary      models.Summary
	Scorecard    models.Scorecard
}

// Engine runs the full pipeline: normalize, dedupe, validate, classify,
// score, aggregate. It holds no state between batches; concurrent batches
// through separate engines are independent by construction.
type Engine struct {
	normalizer *normalize.Normalizer
	classifier *classify.Classifier
	scorer     *score.Scorer
	logger     logger.Logger
}

// New builds an engine for one reference date and weight table. The weights
// must already be validated.
func New(reference time.Time, weights score.Weights, log logger.Logger) *Engine {
	return &Engine{
		normalizer: normalize.New(reference),
		classifier: classify.New(reference),
		scorer:     score.New(weights),
		logger:     log.WithFields(map[string]interface{}{"component": "engine"}),
	}
}

// Process runs one batch. Per-record problems never fail the batch; they
// surface as flags on the records and counts on the summary.
func (e *Engine) Process(ctx context.Context, rows []models.RawRecord) (*Result, error) {
	start := time.Now()

	apps := make([]models.NormalizedApplication, len(rows))
	observations := make([]normalize.Observations, len(rows))
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		apps[i], observations[i] = e.normalizer.Record(row)
	}

	validate.Apply(apps, observations)

	for i := range apps {
		e.classifier.Classify(&apps[i], rows[i]["submission_time"])
		e.scorer.Score(&apps[i])
	}

	summary := aggregate.Build(apps)
	scorecard := aggregate.BuildScorecard(summary)

	metrics.BatchesProcessed.Inc()
	metrics.RecordsNormalized.Add(float64(len(apps)))
	for severity, count := range summary.FlagSeverityCounts {
		if severity == string(models.SeverityClean) || count == 0 {
			continue
		}
		metrics.RecordsFlagged.WithLabelValues(severity).Add(float64(count))
	}
	metrics.BatchDuration.Observe(time.Since(start).Seconds())

	e.logger.Info("batch processed", map[string]interface{}{
		"total":   summary.TotalRows,
		"flagged": summary.FlaggedApplications,
		"clean":   summary.CleanApplications,
		"elapsed": time.Since(start).String(),
	})

	return &Result{
		Applications: apps,
		Summary:      summary,
		Scorecard:    scorecard,
	}, nil
}
