package jobs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/internal/pkg/logger"
	"lattice-cms.io/lattice/internal/testutil"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

func seedAuditRow(t *testing.T, client *ent.Client, id string, createdAt time.Time) {
	t.Helper()
	_, err := client.AuditLog.Create().
		SetID(id).
		SetAction("property_set.create").
		SetResourceType("property_set").
		SetResourceID("ps-seed").
		SetActor("tester").
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
}

func TestAuditRetentionPrunesExpiredRows(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_retention")
	ctx := context.Background()

	now := time.Now().UTC()
	seedAuditRow(t, client, "audit-old-1", now.Add(-40*24*time.Hour))
	seedAuditRow(t, client, "audit-old-2", now.Add(-31*24*time.Hour))
	seedAuditRow(t, client, "audit-fresh", now.Add(-time.Hour))

	worker := NewAuditRetentionWorker(client, 30*24*time.Hour)
	require.NoError(t, worker.Work(ctx, nil))

	remaining, err := client.AuditLog.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, "audit-fresh", remaining[0].ID)
}

func TestAuditRetentionKeepsRowsInsideWindow(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "audit_retention_keep")
	ctx := context.Background()

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		seedAuditRow(t, client, fmt.Sprintf("audit-%d", i), now.Add(-time.Duration(i)*24*time.Hour))
	}

	worker := NewAuditRetentionWorker(client, 30*24*time.Hour)
	require.NoError(t, worker.Work(ctx, nil))

	count, err := client.AuditLog.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestAuditRetentionDefaultsOnNonPositiveWindow(t *testing.T) {
	worker := NewAuditRetentionWorker(nil, 0)
	require.Equal(t, DefaultAuditRetention, worker.retention)

	require.Error(t, worker.Work(context.Background(), nil))
}
