package repositories

// RepositoryProvider bundles the repositories the service layer needs.
type RepositoryProvider struct {
	Ledger   LedgerRepository
	Accounts ChartOfAccountsRepository
	Fiscal   FiscalCalendarRepository
}
