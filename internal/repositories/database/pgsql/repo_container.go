package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/freightops/freight_broker_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LoadRepo:       newPgxLoadRepository(dbPool),
		CustomerRepo:   newPgxCustomerRepository(dbPool),
		CarrierRepo:    newPgxCarrierRepository(dbPool),
		UserRepo:       newPgxUserRepository(dbPool),
		ReceivableRepo: newPgxReceivableRepository(dbPool),
		PayableRepo:    newPgxPayableRepository(dbPool),
		HistoryRepo:    newPgxHistoryRepository(dbPool),
	}
}
