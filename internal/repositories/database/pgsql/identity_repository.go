package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/officeflow/internal/apperrors"
	"github.com/SscSPs/officeflow/internal/core/domain"
	portsrepo "github.com/SscSPs/officeflow/internal/core/ports/repositories"
	"github.com/SscSPs/officeflow/internal/models"
	"github.com/SscSPs/officeflow/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxIdentityRepository struct {
	BaseRepository
}

func newPgxIdentityRepository(pool *pgxpool.Pool) portsrepo.IdentityRepositoryFacade {
	return &PgxIdentityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.IdentityRepositoryFacade = (*PgxIdentityRepository)(nil)

func (r *PgxIdentityRepository) findOne(ctx context.Context, where string, arg any) (*domain.Identity, error) {
	query := `SELECT uid, email, password_hash, display_name, provider, created_at FROM identities ` + where
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query identities", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Identity])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("identity not found")
		}
		return nil, apperrors.NewAppError(500, "failed to collect identity row", err)
	}
	identity := mapping.ToDomainIdentity(m)
	return &identity, nil
}

func (r *PgxIdentityRepository) FindIdentityByUID(ctx context.Context, uid string) (*domain.Identity, error) {
	return r.findOne(ctx, `WHERE uid = $1`, uid)
}

// FindIdentityByEmail matches case-insensitively; emails are stored lower-cased.
func (r *PgxIdentityRepository) FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	return r.findOne(ctx, `WHERE email = lower($1)`, email)
}

func (r *PgxIdentityRepository) SaveIdentity(ctx context.Context, identity domain.Identity) error {
	m := mapping.ToModelIdentity(identity)
	query := `
		INSERT INTO identities (uid, email, password_hash, display_name, provider, created_at)
		VALUES ($1, lower($2), $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.UID, m.Email, m.PasswordHash, m.DisplayName, m.Provider, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "identities_email_key") {
			return apperrors.NewConflictError("Email already exists")
		}
		return apperrors.NewAppError(500, "failed to save identity "+m.UID, err)
	}
	return nil
}

func (r *PgxIdentityRepository) DeleteIdentity(ctx context.Context, uid string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM identities WHERE uid = $1;`, uid)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete identity "+uid, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("identity " + uid + " not found for delete")
	}
	return nil
}
