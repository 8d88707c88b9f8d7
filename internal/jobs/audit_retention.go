// Package jobs defines River Queue job types for background maintenance.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/auditlog"
	"lattice-cms.io/lattice/internal/pkg/logger"
)

// DefaultAuditRetention is the retention baseline for audit records.
const DefaultAuditRetention = 180 * 24 * time.Hour

// AuditRetentionArgs is a periodic maintenance job that prunes audit records
// past the configured retention window.
type AuditRetentionArgs struct{}

// Kind returns the job kind identifier for periodic audit pruning.
func (AuditRetentionArgs) Kind() string { return "audit_retention" }

// InsertOpts ensures at most one pruning job is enqueued within the same day.
func (AuditRetentionArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// AuditRetentionWorker deletes audit records older than the configured
// retention duration.
type AuditRetentionWorker struct {
	river.WorkerDefaults[AuditRetentionArgs]
	entClient *ent.Client
	retention time.Duration
}

// NewAuditRetentionWorker creates a retention worker. Non-positive retention
// falls back to the 180-day default.
func NewAuditRetentionWorker(entClient *ent.Client, retention time.Duration) *AuditRetentionWorker {
	if retention <= 0 {
		retention = DefaultAuditRetention
	}
	return &AuditRetentionWorker{
		entClient: entClient,
		retention: retention,
	}
}

// Work removes expired audit rows.
func (w *AuditRetentionWorker) Work(ctx context.Context, _ *river.Job[AuditRetentionArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("audit retention worker is not initialized")
	}

	cutoff := time.Now().UTC().Add(-w.retention)
	deleted, err := w.entClient.AuditLog.Delete().
		Where(auditlog.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete expired audit records before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	logger.Info("audit retention completed",
		zap.Int("deleted_rows", deleted),
		zap.String("cutoff", cutoff.Format(time.RFC3339)),
		zap.Duration("retention", w.retention),
	)
	return nil
}
