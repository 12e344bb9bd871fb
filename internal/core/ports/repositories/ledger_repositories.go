package repositories

import (
	"context"
	"time"

	"github.com/finacct/accounting_reports_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ActivityQuery parameterizes a ledger aggregation. From and To are
// inclusive date bounds; a nil From means "from the beginning of the
// ledger". AccountTypes narrows the aggregation; nil means all types.
// Journal dates are day-granular, so "strictly before" windows are
// expressed as To = day before the boundary.
type ActivityQuery struct {
	TenantID     string
	CompanyID    string
	From         *time.Time
	To           time.Time
	AccountTypes []domain.AccountType
}

// LedgerRepository defines read-only aggregation queries over posted
// journal lines. Implementations must exclude DRAFT and VOIDED journals
// unconditionally and never mutate ledger data.
type LedgerRepository interface {
	// GetAccountActivity aggregates debit/credit totals per account for the
	// query window. Accounts with no posted lines in the window are absent
	// from the result map.
	GetAccountActivity(ctx context.Context, query ActivityQuery) (map[string]domain.AccountActivity, error)

	// GetBalanceWindows aggregates two windows in one query keyed by
	// account: opening (all posted activity strictly before fiscalYearStart)
	// and period (fiscalYearStart through asOf, inclusive).
	GetBalanceWindows(ctx context.Context, tenantID, companyID string, fiscalYearStart, asOf time.Time) (opening, period map[string]domain.AccountActivity, err error)

	// GetCashBalances returns the cumulative net debit balance of
	// CASH/CASH_EQUIVALENTS category accounts strictly before periodStart
	// (beginning) and through periodEnd inclusive (ending).
	GetCashBalances(ctx context.Context, tenantID, companyID string, periodStart, periodEnd time.Time) (beginning, ending decimal.Decimal, err error)
}

// AccountFilter narrows a chart-of-accounts listing.
type AccountFilter struct {
	AccountTypes    []domain.AccountType
	IncludeInactive bool
}

// ChartOfAccountsRepository provides read-only access to the chart of
// accounts hierarchy. The chart is reference data owned elsewhere.
type ChartOfAccountsRepository interface {
	// ListAccounts returns the filtered chart of accounts for a company,
	// ordered by account number.
	ListAccounts(ctx context.Context, tenantID, companyID string, filter AccountFilter) ([]domain.Account, error)
}

// FiscalCalendarRepository resolves fiscal year boundaries.
type FiscalCalendarRepository interface {
	// GetFiscalYearStart returns the start date of the fiscal year
	// containing asOf. Returns apperrors.ErrNotFound when no calendar
	// record covers the date; callers default to January 1.
	GetFiscalYearStart(ctx context.Context, tenantID, companyID string, asOf time.Time) (time.Time, error)
}
