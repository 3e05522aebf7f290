package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/lesnaszkolka/ino-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the concrete pgx repositories for injection
// into the service container.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EventRepo:  newPgxEventRepository(dbPool),
		ResultRepo: newPgxResultRepository(dbPool),
		UserRepo:   newPgxUserRepository(dbPool),
	}
}
