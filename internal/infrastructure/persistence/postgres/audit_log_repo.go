package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bibbank/onboarding/internal/domain/model"
)

// AuditLogRepo implements port.AuditLogRepository. The table is insert-only;
// there is no update or delete path by design of the interface.
type AuditLogRepo struct {
	pool *pgxpool.Pool
}

// NewAuditLogRepo creates a new repository backed by PostgreSQL.
func NewAuditLogRepo(pool *pgxpool.Pool) *AuditLogRepo {
	return &AuditLogRepo{pool: pool}
}

// Append inserts a new audit entry.
func (r *AuditLogRepo) Append(ctx context.Context, entry model.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (
			id, tenant_id, action, actor_id, actor_name,
			details, related_application_id, occurred_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.TenantID, entry.Action,
		entry.ActorID, entry.ActorName, entry.Details,
		nullable(entry.RelatedApplicationID), entry.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

// List retrieves a tenant's audit trail in insertion order.
func (r *AuditLogRepo) List(ctx context.Context, tenantID string) ([]model.AuditLogEntry, error) {
	query := `
		SELECT id, tenant_id, action, actor_id, actor_name,
		       details, related_application_id, occurred_at
		FROM audit_log
		WHERE tenant_id = $1
		ORDER BY occurred_at ASC, id ASC
	`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var result []model.AuditLogEntry
	for rows.Next() {
		var (
			entry                model.AuditLogEntry
			relatedApplicationID *string
		)
		err := rows.Scan(
			&entry.ID, &entry.TenantID, &entry.Action,
			&entry.ActorID, &entry.ActorName, &entry.Details,
			&relatedApplicationID, &entry.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entry.RelatedApplicationID = deref(relatedApplicationID)
		result = append(result, entry)
	}
	return result, rows.Err()
}
