package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/finacct/accounting_reports_app/internal/core/domain"
	portsrepo "github.com/finacct/accounting_reports_app/internal/core/ports/repositories"
	"github.com/finacct/accounting_reports_app/internal/utils/accounting"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ledgerRepository implements the LedgerRepository interface
type ledgerRepository struct {
	BaseRepository
}

// newLedgerRepository creates a new ledger repository
func newLedgerRepository(db *pgxpool.Pool) portsrepo.LedgerRepository {
	return &ledgerRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetAccountActivity aggregates posted debit/credit totals per account for
// the query window.
func (r *ledgerRepository) GetAccountActivity(ctx context.Context, query portsrepo.ActivityQuery) (map[string]domain.AccountActivity, error) {
	sql := `
		SELECT
			l.account_id,
			a.normal_balance,
			SUM(CASE WHEN l.side = 'DEBIT' THEN l.amount ELSE 0 END) AS total_debits,
			SUM(CASE WHEN l.side = 'CREDIT' THEN l.amount ELSE 0 END) AS total_credits
		FROM journal_lines l
		JOIN journals j ON l.journal_id = j.journal_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE j.tenant_id = $1
			AND j.company_id = $2
			AND j.status = 'POSTED'
			AND j.journal_date <= $3
	`
	args := []any{query.TenantID, query.CompanyID, query.To}

	if query.From != nil {
		args = append(args, *query.From)
		sql += fmt.Sprintf(" AND j.journal_date >= $%d", len(args))
	}
	if len(query.AccountTypes) > 0 {
		types := make([]string, 0, len(query.AccountTypes))
		for _, t := range query.AccountTypes {
			types = append(types, string(t))
		}
		args = append(args, types)
		sql += fmt.Sprintf(" AND a.account_type = ANY($%d)", len(args))
	}
	sql += " GROUP BY l.account_id, a.normal_balance"

	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying account activity: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.AccountActivity)
	for rows.Next() {
		var accountID, normalBalance string
		var debits, credits decimal.Decimal
		if err := rows.Scan(&accountID, &normalBalance, &debits, &credits); err != nil {
			return nil, fmt.Errorf("error scanning account activity row: %w", err)
		}
		result[accountID] = domain.AccountActivity{
			AccountID:    accountID,
			TotalDebits:  debits,
			TotalCredits: credits,
			NetActivity:  accounting.NetActivity(debits, credits, domain.NormalBalance(normalBalance)),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account activity rows: %w", err)
	}

	return result, nil
}

// GetBalanceWindows aggregates the opening window (strictly before
// fiscalYearStart) and the period window (fiscalYearStart through asOf) in
// one query keyed by account.
func (r *ledgerRepository) GetBalanceWindows(ctx context.Context, tenantID, companyID string, fiscalYearStart, asOf time.Time) (map[string]domain.AccountActivity, map[string]domain.AccountActivity, error) {
	sql := `
		SELECT
			l.account_id,
			a.normal_balance,
			SUM(CASE WHEN j.journal_date < $3 AND l.side = 'DEBIT' THEN l.amount ELSE 0 END) AS opening_debits,
			SUM(CASE WHEN j.journal_date < $3 AND l.side = 'CREDIT' THEN l.amount ELSE 0 END) AS opening_credits,
			SUM(CASE WHEN j.journal_date >= $3 AND l.side = 'DEBIT' THEN l.amount ELSE 0 END) AS period_debits,
			SUM(CASE WHEN j.journal_date >= $3 AND l.side = 'CREDIT' THEN l.amount ELSE 0 END) AS period_credits
		FROM journal_lines l
		JOIN journals j ON l.journal_id = j.journal_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE j.tenant_id = $1
			AND j.company_id = $2
			AND j.status = 'POSTED'
			AND j.journal_date <= $4
		GROUP BY l.account_id, a.normal_balance
	`

	rows, err := r.Pool.Query(ctx, sql, tenantID, companyID, fiscalYearStart, asOf)
	if err != nil {
		return nil, nil, fmt.Errorf("error querying balance windows: %w", err)
	}
	defer rows.Close()

	opening := make(map[string]domain.AccountActivity)
	period := make(map[string]domain.AccountActivity)
	for rows.Next() {
		var accountID, normalBalance string
		var openingDebits, openingCredits, periodDebits, periodCredits decimal.Decimal
		if err := rows.Scan(&accountID, &normalBalance, &openingDebits, &openingCredits, &periodDebits, &periodCredits); err != nil {
			return nil, nil, fmt.Errorf("error scanning balance window row: %w", err)
		}
		normal := domain.NormalBalance(normalBalance)
		opening[accountID] = domain.AccountActivity{
			AccountID:    accountID,
			TotalDebits:  openingDebits,
			TotalCredits: openingCredits,
			NetActivity:  accounting.NetActivity(openingDebits, openingCredits, normal),
		}
		period[accountID] = domain.AccountActivity{
			AccountID:    accountID,
			TotalDebits:  periodDebits,
			TotalCredits: periodCredits,
			NetActivity:  accounting.NetActivity(periodDebits, periodCredits, normal),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating balance window rows: %w", err)
	}

	return opening, period, nil
}

// GetCashBalances returns the cumulative net debit balance of cash-category
// accounts strictly before periodStart and through periodEnd inclusive.
func (r *ledgerRepository) GetCashBalances(ctx context.Context, tenantID, companyID string, periodStart, periodEnd time.Time) (decimal.Decimal, decimal.Decimal, error) {
	sql := `
		SELECT
			COALESCE(SUM(CASE WHEN j.journal_date < $3 THEN
				CASE WHEN l.side = 'DEBIT' THEN l.amount ELSE -l.amount END
			ELSE 0 END), 0) AS beginning_cash,
			COALESCE(SUM(CASE WHEN l.side = 'DEBIT' THEN l.amount ELSE -l.amount END), 0) AS ending_cash
		FROM journal_lines l
		JOIN journals j ON l.journal_id = j.journal_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE j.tenant_id = $1
			AND j.company_id = $2
			AND j.status = 'POSTED'
			AND j.journal_date <= $4
			AND a.category IN ('CASH', 'CASH_EQUIVALENTS')
	`

	var beginning, ending decimal.Decimal
	if err := r.Pool.QueryRow(ctx, sql, tenantID, companyID, periodStart, periodEnd).Scan(&beginning, &ending); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("error querying cash balances: %w", err)
	}

	return beginning, ending, nil
}
