package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/mecmec98/billingrestapi/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:   newPgxLedgerRepository(dbPool),
		ReceiptRepo:  newPgxReceiptRepository(dbPool),
		MachineRepo:  newPgxMachineRepository(dbPool),
		ConsumerRepo: newPgxConsumerRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
	}
}
