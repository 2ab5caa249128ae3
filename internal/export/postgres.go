// internal/export/postgres.go
package export

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/lib/pq"

	stderrors "groupscholar-intake/internal/common/errors"
	"groupscholar-intake/internal/common/logger"
	"groupscholar-intake/internal/common/metrics"
	"groupscholar-intake/internal/models"
)

const schemaSQL = `
CREATE SCHEMA IF NOT EXISTS intake_normalizer;

CREATE TABLE IF NOT EXISTS intake_normalizer.batches (
    batch_id UUID PRIMARY KEY,
    batch_label TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    total_rows INTEGER NOT NULL,
    flagged_applications INTEGER NOT NULL,
    clean_applications INTEGER NOT NULL,
    flagged_rate DOUBLE PRECISION NOT NULL,
    first_gen INTEGER NOT NULL,
    first_gen_rate DOUBLE PRECISION NOT NULL,
    data_quality_avg DOUBLE PRECISION,
    readiness_avg DOUBLE PRECISION,
    submission_start TEXT,
    submission_end TEXT,
    summary JSONB NOT NULL
);

CREATE TABLE IF NOT EXISTS intake_normalizer.applications (
    id BIGSERIAL PRIMARY KEY,
    batch_id UUID NOT NULL REFERENCES intake_normalizer.batches(batch_id),
    applicant_id TEXT,
    name TEXT,
    email TEXT,
    phone TEXT,
    phone_normalized TEXT,
    phone_country TEXT,
    contact_channel TEXT,
    email_domain_category TEXT,
    program TEXT,
    school_type TEXT,
    referral_source TEXT,
    gpa DOUBLE PRECISION,
    income_bracket TEXT,
    citizenship_status TEXT,
    submission_date TEXT,
    submission_age_days INTEGER,
    submission_age_bucket TEXT,
    submission_recency TEXT,
    submission_weekday TEXT,
    submission_time_of_day TEXT,
    graduation_year INTEGER,
    graduation_year_bucket TEXT,
    first_gen BOOLEAN NOT NULL,
    eligibility_notes TEXT,
    note_tags TEXT[],
    flags TEXT[],
    flag_severity TEXT,
    review_status TEXT,
    review_priority TEXT,
    data_quality_score INTEGER NOT NULL,
    data_quality_tier TEXT,
    readiness_score INTEGER NOT NULL,
    readiness_bucket TEXT
);

CREATE INDEX IF NOT EXISTS idx_applications_batch
    ON intake_normalizer.applications(batch_id);
`

const insertBatchSQL = `
INSERT INTO intake_normalizer.batches (
    batch_id, batch_label, total_rows, flagged_applications,
    clean_applications, flagged_rate, first_gen, first_gen_rate,
    data_quality_avg, readiness_avg, submission_start, submission_end, summary
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

const insertApplicationSQL = `
INSERT INTO intake_normalizer.applications (
    batch_id, applicant_id, name, email, phone, phone_normalized,
    phone_country, contact_channel, email_domain_category, program,
    school_type, referral_source, gpa, income_bracket, citizenship_status,
    submission_date, submission_age_days, submission_age_bucket,
    submission_recency, submission_weekday, submission_time_of_day,
    graduation_year, graduation_year_bucket, first_gen, eligibility_notes,
    note_tags, flags, flag_severity, review_status, review_priority,
    data_quality_score, data_quality_tier, readiness_score, readiness_bucket
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
          $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28,
          $29, $30, $31, $32, $33, $34)`

// PostgresExporter mirrors one batch into the relational store: one batch
// row holding the summary, one row per application.
type PostgresExporter struct {
	db     *sql.DB
	logger logger.Logger
}

func NewPostgresExporter(db *sql.DB, log logger.Logger) *PostgresExporter {
	return &PostgresExporter{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "postgres-exporter"}),
	}
}

// EnsureSchema creates the export schema and tables when absent.
func (e *PostgresExporter) EnsureSchema(ctx context.Context) error {
	if _, err := e.db.ExecContext(ctx, schemaSQL); err != nil {
		return stderrors.NewSchemaInitFailedError(err)
	}
	return nil
}

// ExportBatch inserts the summary and all applications in one transaction
// and returns the generated batch id.
func (e *PostgresExporter) ExportBatch(
	ctx context.Context,
	apps []models.NormalizedApplication,
	summary models.Summary,
	batchLabel string,
) (uuid.UUID, error) {
	batchID := uuid.New()

	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return uuid.Nil, stderrors.NewDBExportFailedError(err)
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		metrics.ExportFailures.WithLabelValues("postgres").Inc()
		return uuid.Nil, stderrors.NewDBExportFailedError(err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insertBatchSQL,
		batchID,
		nullIfEmpty(batchLabel),
		summary.TotalRows,
		summary.FlaggedApplications,
		summary.CleanApplications,
		summary.FlaggedRate,
		summary.FirstGen,
		summary.FirstGenRate,
		summary.DataQualityAvg,
		summary.ReadinessAvg,
		nullIfEmpty(summary.SubmissionStart),
		nullIfEmpty(summary.SubmissionEnd),
		summaryJSON,
	)
	if err != nil {
		metrics.ExportFailures.WithLabelValues("postgres").Inc()
		return uuid.Nil, stderrors.NewDBExportFailedError(err)
	}

	for i := range apps {
		app := &apps[i]
		_, err = tx.ExecContext(ctx, insertApplicationSQL,
			batchID,
			app.ApplicantID,
			app.Name,
			app.Email,
			app.Phone,
			app.PhoneNormalized,
			app.PhoneCountry,
			app.ContactChannel,
			app.EmailDomainCategory,
			app.Program,
			app.SchoolType,
			app.ReferralSource,
			app.GPA,
			app.IncomeBracket,
			app.CitizenshipStatus,
			nullIfEmpty(app.SubmissionDate),
			app.SubmissionAgeDays,
			app.SubmissionAgeBucket,
			app.SubmissionRecency,
			app.SubmissionWeekday,
			app.SubmissionTimeOfDay,
			app.GraduationYear,
			app.GraduationYearBucket,
			app.FirstGen,
			app.EligibilityNotes,
			pq.Array(app.NoteTags),
			pq.Array(app.Flags),
			app.FlagSeverity,
			app.ReviewStatus,
			app.ReviewPriority,
			app.DataQualityScore,
			app.DataQualityTier,
			app.ReadinessScore,
			app.ReadinessBucket,
		)
		if err != nil {
			metrics.ExportFailures.WithLabelValues("postgres").Inc()
			return uuid.Nil, stderrors.NewDBExportFailedError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		metrics.ExportFailures.WithLabelValues("postgres").Inc()
		return uuid.Nil, stderrors.NewDBExportFailedError(err)
	}

	e.logger.Info("batch exported", map[string]interface{}{
		"batchId":      batchID.String(),
		"applications": len(apps),
	})

	return batchID, nil
}

func nullIfEmpty(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
