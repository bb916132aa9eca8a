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

type PgxRequestRepository struct {
	BaseRepository
}

func newPgxRequestRepository(pool *pgxpool.Pool) portsrepo.RequestRepositoryWithTx {
	return &PgxRequestRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RequestRepositoryWithTx = (*PgxRequestRepository)(nil)

const requestSelectQuery = `
SELECT
	r.request_id, r.user_id, r.user_name, r.user_email, r.company_id,
	r.title, r.description, r.category, r.type, r.priority, r.status,
	r.assigned_to, r.deduct, r.leave_start, r.leave_end, r.leave_days, r.leave_type,
	r.date_submitted, r.last_updated, r.approved_at, r.rejected_at, r.decided_by
FROM requests r
`

func (r *PgxRequestRepository) getRequests(ctx context.Context, q querier, filterQuery string, args ...any) ([]domain.Request, error) {
	rows, err := q.Query(ctx, requestSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query requests", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Request])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect request rows", err)
	}
	return mapping.ToDomainRequestSlice(ms), nil
}

func (r *PgxRequestRepository) getRequest(ctx context.Context, q querier, filterQuery string, args ...any) (*domain.Request, error) {
	requests, err := r.getRequests(ctx, q, filterQuery, args...)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, apperrors.NewNotFoundError("Request not found")
	}
	return &requests[0], nil
}

func (r *PgxRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.Request, error) {
	return r.getRequest(ctx, r.Pool, `WHERE r.request_id = $1`, requestID)
}

func (r *PgxRequestRepository) FindRequestByIDForUpdate(ctx context.Context, tx pgx.Tx, requestID string) (*domain.Request, error) {
	return r.getRequest(ctx, tx, `WHERE r.request_id = $1 FOR UPDATE`, requestID)
}

func (r *PgxRequestRepository) FindRequests(ctx context.Context, rf portsrepo.RequestFilter) ([]domain.Request, error) {
	var f filter
	f.eqIfSet("r.company_id", rf.CompanyID)
	f.eqIfSet("r.user_id", rf.UserID)
	f.eqIfSet("r.status", string(rf.Status))
	f.eqIfSet("r.assigned_to", rf.AssignedTo)
	return r.getRequests(ctx, r.Pool, f.where(), f.args...)
}

func (r *PgxRequestRepository) SaveRequest(ctx context.Context, request domain.Request) error {
	m := mapping.ToModelRequest(request)
	query := `
		INSERT INTO requests (
			request_id, user_id, user_name, user_email, company_id,
			title, description, category, type, priority, status,
			assigned_to, deduct, leave_start, leave_end, leave_days, leave_type,
			date_submitted, last_updated
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RequestID, m.UserID, m.UserName, m.UserEmail, m.CompanyID,
		m.Title, m.Description, m.Category, m.Type, m.Priority, m.Status,
		m.AssignedTo, m.Deduct, m.LeaveStart, m.LeaveEnd, m.LeaveDays, m.LeaveType,
		m.DateSubmitted, m.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.NewConflictError("request " + m.RequestID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save request "+m.RequestID, err)
	}
	return nil
}

// TransitionRequestInTx is a compare-and-swap on status; a concurrent decision
// leaves zero rows affected.
func (r *PgxRequestRepository) TransitionRequestInTx(ctx context.Context, tx pgx.Tx, request domain.Request, from domain.RequestStatus) error {
	m := mapping.ToModelRequest(request)
	query := `
		UPDATE requests
		SET status = $3, last_updated = $4, approved_at = $5, rejected_at = $6, decided_by = $7
		WHERE request_id = $1 AND status = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.RequestID, string(from), m.Status, m.LastUpdated, m.ApprovedAt, m.RejectedAt, m.DecidedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to transition request "+m.RequestID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewInvalidStateError("Request is not pending")
	}
	return nil
}
