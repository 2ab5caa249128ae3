// cmd/intake-normalizer/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"groupscholar-intake/internal/common/config"
	"groupscholar-intake/internal/common/database"
	stderrors "groupscholar-intake/internal/common/errors"
	"groupscholar-intake/internal/common/logger"
	"groupscholar-intake/internal/engine"
	"groupscholar-intake/internal/engine/score"
	"groupscholar-intake/internal/export"
	"groupscholar-intake/internal/ingest"
)

func main() {
	var (
		inputPath     = flag.String("input", "", "Path to intake CSV file (required)")
		outPath       = flag.String("out", "", "Path to write normalized JSON (required)")
		reportPath    = flag.String("report", "", "Path to write summary report (required)")
		issuesPath    = flag.String("issues", "", "Optional path to write flagged applications CSV")
		followUpPath  = flag.String("followup", "", "Optional path to write follow-up queue CSV")
		scorecardPath = flag.String("scorecard", "", "Optional path to write scorecard JSON")
		summaryPath   = flag.String("summary", "", "Optional path to write summary JSON")
		configPath    = flag.String("config", "", "Optional path to a config file")
		referenceStr  = flag.String("reference", "", "Reference date YYYY-MM-DD (default: config or today)")
		useDB         = flag.Bool("db", false, "Also export normalized data to Postgres")
		dbURL         = flag.String("db-url", "", "Optional database URL override")
		batchLabel    = flag.String("batch-label", "", "Optional label for the ingestion batch")
		metricsAddr   = flag.String("metrics-addr", "", "Optional address to serve Prometheus metrics")
	)
	flag.Parse()

	if *inputPath == "" || *outPath == "" || *reportPath == "" {
		fmt.Fprintln(os.Stderr, "usage: intake-normalizer --input FILE --out FILE --report FILE [options]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)

	reference, err := resolveReference(*referenceStr, cfg)
	if err != nil {
		log.Error("invalid reference date", map[string]interface{}{"error": err})
		os.Exit(1)
	}

	weights := score.DefaultWeights().Merge(cfg.Scoring.DataQuality, cfg.Scoring.Readiness)
	if err := weights.Validate(); err != nil {
		log.Error("invalid scoring weights", map[string]interface{}{"error": err})
		os.Exit(1)
	}

	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, log)
	}

	rows, err := ingest.ReadFile(*inputPath)
	if err != nil {
		log.Error("failed to read input", map[string]interface{}{"path": *inputPath, "error": err})
		os.Exit(1)
	}

	ctx := context.Background()
	eng := engine.New(reference, weights, log)
	result, err := eng.Process(ctx, rows)
	if err != nil {
		log.Error("batch processing failed", map[string]interface{}{"error": err})
		os.Exit(1)
	}

	if err := export.WriteApplications(result.Applications, *outPath); err != nil {
		exitOnExportError(log, "applications", err)
	}
	if err := export.WriteReport(result.Summary, *reportPath); err != nil {
		exitOnExportError(log, "report", err)
	}
	if *issuesPath != "" {
		if err := export.WriteIssues(result.Applications, *issuesPath); err != nil {
			exitOnExportError(log, "issues", err)
		}
	}
	if *followUpPath != "" {
		if err := export.WriteFollowUpQueue(result.Applications, *followUpPath); err != nil {
			exitOnExportError(log, "followup", err)
		}
	}
	if *scorecardPath != "" {
		if err := export.WriteScorecard(result.Scorecard, *scorecardPath); err != nil {
			exitOnExportError(log, "scorecard", err)
		}
	}
	if *summaryPath != "" {
		if err := export.WriteSummary(result.Summary, *summaryPath); err != nil {
			exitOnExportError(log, "summary", err)
		}
	}

	fmt.Printf("Normalized %d applications across %d programs.\n",
		result.Summary.TotalRows, len(result.Summary.ProgramCounts))

	if *useDB {
		if *dbURL != "" {
			cfg.Database.Postgres.URL = *dbURL
		}
		batchID, err := exportToDB(ctx, cfg, log, result, *batchLabel)
		if err != nil {
			log.Error("database export failed", map[string]interface{}{"error": err})
			os.Exit(1)
		}
		fmt.Printf("Exported batch %s to Postgres.\n", batchID)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func resolveReference(value string, cfg *config.Config) (time.Time, error) {
	if value != "" {
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			return time.Time{}, stderrors.NewInvalidReferenceDateError(value)
		}
		return parsed, nil
	}
	return cfg.ReferenceDate()
}

func exportToDB(ctx context.Context, cfg *config.Config, log logger.Logger, result *engine.Result, batchLabel string) (string, error) {
	client, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		return "", err
	}
	defer client.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		return "", stderrors.NewDatabaseConnectionFailedError(err)
	}

	exporter := export.NewPostgresExporter(client.GetDB(), log)
	if err := exporter.EnsureSchema(ctx); err != nil {
		return "", err
	}
	batchID, err := exporter.ExportBatch(ctx, result.Applications, result.Summary, batchLabel)
	if err != nil {
		return "", err
	}
	return batchID.String(), nil
}

func exitOnExportError(log logger.Logger, target string, err error) {
	log.Error("failed to write output", map[string]interface{}{"target": target, "error": err})
	os.Exit(1)
}

func serveMetrics(addr string, log logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Warn("metrics server stopped", map[string]interface{}{"error": err})
	}
}
