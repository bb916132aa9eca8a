package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/officeflow/internal/apperrors"
	"github.com/SscSPs/officeflow/internal/core/domain"
	portsrepo "github.com/SscSPs/officeflow/internal/core/ports/repositories"
	"github.com/SscSPs/officeflow/internal/models"
	"github.com/SscSPs/officeflow/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userSelectQuery = `
SELECT
	u.user_id, u.email, u.full_name, u.role, u.department, u.job_title, u.company_id,
	u.annual_balance, u.sick_balance, u.personal_balance, u.emergency_balance,
	u.created_at, u.last_updated_at
FROM users u
`

func (r *PgxUserRepository) getUsers(ctx context.Context, q querier, filterQuery string, args ...any) ([]domain.User, error) {
	rows, err := q.Query(ctx, userSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect user rows", err)
	}
	return mapping.ToDomainUserSlice(ms), nil
}

func (r *PgxUserRepository) getUser(ctx context.Context, q querier, filterQuery string, args ...any) (*domain.User, error) {
	users, err := r.getUsers(ctx, q, filterQuery, args...)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return &users[0], nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, r.Pool, `WHERE u.user_id = $1`, userID)
}

func (r *PgxUserRepository) FindUserByIDForUpdate(ctx context.Context, tx pgx.Tx, userID string) (*domain.User, error) {
	return r.getUser(ctx, tx, `WHERE u.user_id = $1 FOR UPDATE`, userID)
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, uf portsrepo.UserFilter) ([]domain.User, error) {
	var f filter
	f.eqIfSet("u.company_id", uf.CompanyID)
	f.eqIfSet("u.role", string(uf.Role))
	f.eqIfSet("u.department", uf.Department)
	return r.getUsers(ctx, r.Pool, f.where()+f.limit(uf.Limit), f.args...)
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return r.saveUser(ctx, r.Pool, user)
}

func (r *PgxUserRepository) SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.User) error {
	return r.saveUser(ctx, tx, user)
}

func (r *PgxUserRepository) saveUser(ctx context.Context, q querier, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (
			user_id, email, full_name, role, department, job_title, company_id,
			annual_balance, sick_balance, personal_balance, emergency_balance,
			created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := q.Exec(ctx, query,
		m.UserID, m.Email, m.FullName, m.Role, m.Department, m.JobTitle, m.CompanyID,
		m.AnnualBalance, m.SickBalance, m.PersonalBalance, m.EmergencyBalance,
		m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return apperrors.NewConflictError("Email already exists")
		}
		if isUniqueViolation(err, "") {
			return apperrors.NewConflictError("User already registered")
		}
		if isForeignKeyViolation(err) {
			return apperrors.NewValidationFailedError("company " + m.CompanyID + " does not exist")
		}
		return apperrors.NewAppError(500, "failed to save user "+m.UserID, err)
	}
	return nil
}

func (r *PgxUserRepository) updateProfile(ctx context.Context, q querier, user domain.User) error {
	query := `
		UPDATE users
		SET full_name = $2, role = $3, department = $4, job_title = $5, last_updated_at = $6
		WHERE user_id = $1;
	`
	cmdTag, err := q.Exec(ctx, query,
		user.UserID, user.FullName, string(user.Role), user.Department, user.JobTitle, user.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update user "+user.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + user.UserID + " not found for update")
	}
	return nil
}

func (r *PgxUserRepository) UpdateUserProfile(ctx context.Context, user domain.User) error {
	return r.updateProfile(ctx, r.Pool, user)
}

func (r *PgxUserRepository) UpdateUserProfileInTx(ctx context.Context, tx pgx.Tx, user domain.User) error {
	return r.updateProfile(ctx, tx, user)
}

func (r *PgxUserRepository) UpdateLeaveBalanceInTx(ctx context.Context, tx pgx.Tx, userID string, balance domain.LeaveBalance, updatedAt time.Time) error {
	query := `
		UPDATE users
		SET annual_balance = $2, sick_balance = $3, personal_balance = $4, emergency_balance = $5,
		    last_updated_at = $6
		WHERE user_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, userID,
		balance.Annual, balance.Sick, balance.Personal, balance.Emergency, updatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update leave balance of user "+userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + userID + " not found for balance update")
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete user "+userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + userID + " not found for delete")
	}
	return nil
}
