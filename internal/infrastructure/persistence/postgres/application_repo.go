package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/port"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
)

// ErrApplicationNotFound is returned when no application matches the lookup.
var ErrApplicationNotFound = errors.New("application not found")

// ApplicationRepo implements port.ApplicationRepository. The collected draft
// and the assessment reasons are stored as JSONB.
type ApplicationRepo struct {
	pool *pgxpool.Pool
}

// NewApplicationRepo creates a new repository backed by PostgreSQL.
func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

// Save persists an application (upsert by ID with optimistic locking). The
// immutable columns are written once; conflicts only touch review state.
func (r *ApplicationRepo) Save(ctx context.Context, app model.Application) error {
	fields, err := json.Marshal(app.Fields())
	if err != nil {
		return fmt.Errorf("marshal draft fields: %w", err)
	}
	reasons, err := json.Marshal(app.Assessment().Reasons)
	if err != nil {
		return fmt.Errorf("marshal assessment reasons: %w", err)
	}

	query := `
		INSERT INTO applications (
			id, tenant_id, applicant_id, applicant_name, applicant_email,
			product, fields, assessment_score, assessment_category,
			assessment_reasons, status, reviewed_by, reviewed_at,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		ON CONFLICT (id) DO UPDATE SET
			status      = EXCLUDED.status,
			reviewed_by = EXCLUDED.reviewed_by,
			reviewed_at = EXCLUDED.reviewed_at,
			version     = applications.version + 1,
			updated_at  = EXCLUDED.updated_at
		WHERE applications.version = $14
	`
	tag, err := r.pool.Exec(ctx, query,
		app.ID(), app.TenantID(), app.ApplicantID(),
		app.ApplicantName(), app.ApplicantEmail(),
		app.Product().String(), fields,
		app.Assessment().Score, app.Assessment().Category, reasons,
		app.Status().String(), nullable(app.ReviewedBy()), app.ReviewedAt(),
		app.Version(), app.CreatedAt(), app.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on application")
	}
	return nil
}

// FindByID retrieves a single application.
func (r *ApplicationRepo) FindByID(ctx context.Context, tenantID, id string) (model.Application, error) {
	query := selectApplication + ` WHERE tenant_id = $1 AND id = $2`
	row := r.pool.QueryRow(ctx, query, tenantID, id)

	app, err := scanApplication(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Application{}, ErrApplicationNotFound
	}
	return app, err
}

// List retrieves a tenant's applications, newest first, with optional
// status and product filters.
func (r *ApplicationRepo) List(ctx context.Context, tenantID string, filter port.ApplicationFilter) ([]model.Application, error) {
	var (
		conds = []string{"tenant_id = $1"}
		args  = []any{tenantID}
	)
	if filter.Status != nil {
		args = append(args, filter.Status.String())
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Product != nil {
		args = append(args, filter.Product.String())
		conds = append(conds, fmt.Sprintf("product = $%d", len(args)))
	}

	query := selectApplication + ` WHERE ` + strings.Join(conds, " AND ") + ` ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	var result []model.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}

// Delete removes an application. The audit trail is kept in its own table
// and is never touched here.
func (r *ApplicationRepo) Delete(ctx context.Context, tenantID, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM applications WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// scan helpers
// ---------------------------------------------------------------------------

const selectApplication = `
	SELECT id, tenant_id, applicant_id, applicant_name, applicant_email,
	       product, fields, assessment_score, assessment_category,
	       assessment_reasons, status, reviewed_by, reviewed_at,
	       version, created_at, updated_at
	FROM applications`

type scannable interface {
	Scan(dest ...any) error
}

func scanApplication(s scannable) (model.Application, error) {
	var (
		id, tenantID, applicantID      string
		applicantName, applicantEmail  string
		productStr                     string
		fieldsRaw, reasonsRaw          []byte
		assessmentScore                int
		assessmentCategory, statusStr  string
		reviewedBy                     *string
		reviewedAt                     *time.Time
		version                        int
		createdAt, updatedAt           time.Time
	)

	err := s.Scan(
		&id, &tenantID, &applicantID, &applicantName, &applicantEmail,
		&productStr, &fieldsRaw, &assessmentScore, &assessmentCategory,
		&reasonsRaw, &statusStr, &reviewedBy, &reviewedAt,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Application{}, err
		}
		return model.Application{}, fmt.Errorf("scan application: %w", err)
	}

	product, err := valueobject.NewProduct(productStr)
	if err != nil {
		return model.Application{}, fmt.Errorf("parse product: %w", err)
	}
	status, err := valueobject.NewApplicationStatus(statusStr)
	if err != nil {
		return model.Application{}, fmt.Errorf("parse status: %w", err)
	}

	var fields model.Draft
	if err := json.Unmarshal(fieldsRaw, &fields); err != nil {
		return model.Application{}, fmt.Errorf("unmarshal draft fields: %w", err)
	}
	var reasons []string
	if len(reasonsRaw) > 0 {
		if err := json.Unmarshal(reasonsRaw, &reasons); err != nil {
			return model.Application{}, fmt.Errorf("unmarshal assessment reasons: %w", err)
		}
	}

	return model.ReconstructApplication(
		id, tenantID, applicantID, applicantName, applicantEmail,
		product, fields,
		model.Assessment{Score: assessmentScore, Category: assessmentCategory, Reasons: reasons},
		status, deref(reviewedBy), reviewedAt,
		version, createdAt, updatedAt,
	), nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
