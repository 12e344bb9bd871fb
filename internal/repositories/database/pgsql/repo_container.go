package pgsql

import (
	portsrepo "github.com/finacct/accounting_reports_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates a repository provider backed by a pgx
// connection pool.
func NewRepositoryProvider(db *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Ledger:   newLedgerRepository(db),
		Accounts: newAccountRepository(db),
		Fiscal:   newFiscalRepository(db),
	}
}
