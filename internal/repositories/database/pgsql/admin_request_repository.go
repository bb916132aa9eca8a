package pgsql

import (
	"context"

	"github.com/SscSPs/officeflow/internal/apperrors"
	"github.com/SscSPs/officeflow/internal/core/domain"
	portsrepo "github.com/SscSPs/officeflow/internal/core/ports/repositories"
	"github.com/SscSPs/officeflow/internal/models"
	"github.com/SscSPs/officeflow/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAdminRequestRepository struct {
	BaseRepository
}

func newPgxAdminRequestRepository(pool *pgxpool.Pool) portsrepo.AdminRequestRepositoryWithTx {
	return &PgxAdminRequestRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AdminRequestRepositoryWithTx = (*PgxAdminRequestRepository)(nil)

const adminRequestSelectQuery = `
SELECT
	a.admin_request_id, a.user_id, a.user_name, a.user_email, a.company_id,
	a.status, a.created_at, a.approved_at, a.rejected_at
FROM admin_requests a
`

func (r *PgxAdminRequestRepository) getAdminRequests(ctx context.Context, filterQuery string, args ...any) ([]domain.AdminRequest, error) {
	rows, err := r.Pool.Query(ctx, adminRequestSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query admin requests", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AdminRequest])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect admin request rows", err)
	}
	return mapping.ToDomainAdminRequestSlice(ms), nil
}

func (r *PgxAdminRequestRepository) getAdminRequest(ctx context.Context, filterQuery string, args ...any) (*domain.AdminRequest, error) {
	list, err := r.getAdminRequests(ctx, filterQuery, args...)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperrors.NewNotFoundError("Admin request not found")
	}
	return &list[0], nil
}

func (r *PgxAdminRequestRepository) SaveAdminRequest(ctx context.Context, request domain.AdminRequest) error {
	m := mapping.ToModelAdminRequest(request)
	query := `
		INSERT INTO admin_requests (admin_request_id, user_id, user_name, user_email, company_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query, m.AdminRequestID, m.UserID, m.UserName, m.UserEmail, m.CompanyID, m.Status, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "admin_requests_one_pending_per_user") {
			return apperrors.NewConflictError("You already have a pending admin request")
		}
		return apperrors.NewAppError(500, "failed to save admin request "+m.AdminRequestID, err)
	}
	return nil
}

func (r *PgxAdminRequestRepository) FindAdminRequestByID(ctx context.Context, adminRequestID string) (*domain.AdminRequest, error) {
	return r.getAdminRequest(ctx, `WHERE a.admin_request_id = $1`, adminRequestID)
}

func (r *PgxAdminRequestRepository) FindAdminRequests(ctx context.Context, companyID string, status domain.AdminRequestStatus) ([]domain.AdminRequest, error) {
	return r.getAdminRequests(ctx, `WHERE a.company_id = $1 AND a.status = $2`, companyID, string(status))
}

func (r *PgxAdminRequestRepository) FindPendingAdminRequestByUser(ctx context.Context, userID string) (*domain.AdminRequest, error) {
	return r.getAdminRequest(ctx, `WHERE a.user_id = $1 AND a.status = $2 LIMIT 1`, userID, string(domain.AdminRequestPending))
}

func (r *PgxAdminRequestRepository) DecideAdminRequestInTx(ctx context.Context, tx pgx.Tx, request domain.AdminRequest) error {
	query := `
		UPDATE admin_requests
		SET status = $2, approved_at = $3, rejected_at = $4
		WHERE admin_request_id = $1 AND status = 'pending';
	`
	cmdTag, err := tx.Exec(ctx, query, request.AdminRequestID, string(request.Status), request.ApprovedAt, request.RejectedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to decide admin request "+request.AdminRequestID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewInvalidStateError("Admin request is not pending")
	}
	return nil
}
