package pgsql

import (
	"context"
	"fmt"

	"github.com/finacct/accounting_reports_app/internal/core/domain"
	portsrepo "github.com/finacct/accounting_reports_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// accountRepository implements the ChartOfAccountsRepository interface
type accountRepository struct {
	BaseRepository
}

// newAccountRepository creates a new chart-of-accounts repository
func newAccountRepository(db *pgxpool.Pool) portsrepo.ChartOfAccountsRepository {
	return &accountRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// ListAccounts returns the filtered chart of accounts for a company,
// ordered by account number.
func (r *accountRepository) ListAccounts(ctx context.Context, tenantID, companyID string, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	sql := `
		SELECT
			account_id,
			tenant_id,
			company_id,
			account_number,
			name,
			account_type,
			category,
			normal_balance,
			level,
			COALESCE(parent_account_id, '') AS parent_account_id,
			is_header,
			is_active,
			created_at,
			created_by,
			last_updated_at,
			last_updated_by
		FROM accounts
		WHERE tenant_id = $1
			AND company_id = $2
	`
	args := []any{tenantID, companyID}

	if !filter.IncludeInactive {
		sql += " AND is_active = TRUE"
	}
	if len(filter.AccountTypes) > 0 {
		types := make([]string, 0, len(filter.AccountTypes))
		for _, t := range filter.AccountTypes {
			types = append(types, string(t))
		}
		args = append(args, types)
		sql += fmt.Sprintf(" AND account_type = ANY($%d)", len(args))
	}
	sql += " ORDER BY account_number"

	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying chart of accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		var accountType, category, normalBalance string
		if err := rows.Scan(
			&account.AccountID,
			&account.TenantID,
			&account.CompanyID,
			&account.AccountNumber,
			&account.Name,
			&accountType,
			&category,
			&normalBalance,
			&account.Level,
			&account.ParentAccountID,
			&account.IsHeader,
			&account.IsActive,
			&account.CreatedAt,
			&account.CreatedBy,
			&account.LastUpdatedAt,
			&account.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning account row: %w", err)
		}
		account.AccountType = domain.AccountType(accountType)
		account.Category = domain.AccountCategory(category)
		account.NormalBalance = domain.NormalBalance(normalBalance)
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	if len(accounts) == 0 {
		return []domain.Account{}, nil
	}
	return accounts, nil
}
