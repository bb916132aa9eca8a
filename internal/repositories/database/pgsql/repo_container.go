package pgsql

import (
	portsrepo "github.com/SscSPs/officeflow/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres-backed repository to one pool, so
// a transaction begun on one repository can be passed to another.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:      newPgxCompanyRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		RequestRepo:      newPgxRequestRepository(dbPool),
		AdminRequestRepo: newPgxAdminRequestRepository(dbPool),
		IdentityRepo:     newPgxIdentityRepository(dbPool),
	}
}
