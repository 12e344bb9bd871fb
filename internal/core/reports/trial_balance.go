package reports

import (
	"sort"
	"time"

	"github.com/finacct/accounting_reports_app/internal/core/domain"
	"github.com/finacct/accounting_reports_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// TrialBalanceInput carries everything the trial balance builder needs.
// OpeningActivity aggregates all posted activity strictly before the fiscal
// year start; PeriodActivity aggregates from fiscal year start through the
// as-of date. Accounts absent from either map get a zero snapshot.
type TrialBalanceInput struct {
	TenantID              string
	CompanyID             string
	AsOfDate              time.Time
	FiscalYearStart       time.Time
	Accounts              []domain.Account
	OpeningActivity       map[string]domain.AccountActivity
	PeriodActivity        map[string]domain.AccountActivity
	IncludePeriodActivity bool
	IncludeZeroBalances   bool
}

// BuildTrialBalance produces the canonical per-account opening/period/closing
// balance snapshot every other report reads. Pure function of its input.
func BuildTrialBalance(in TrialBalanceInput) *domain.TrialBalanceResult {
	result := &domain.TrialBalanceResult{
		TenantID:        in.TenantID,
		CompanyID:       in.CompanyID,
		AsOfDate:        in.AsOfDate,
		FiscalYearStart: in.FiscalYearStart,
		TotalDebits:     decimal.Zero,
		TotalCredits:    decimal.Zero,
		TotalsByType:    make(map[domain.AccountType]decimal.Decimal),
	}

	for _, account := range in.Accounts {
		if account.IsHeader {
			// Postings land on leaf accounts only; header rows would double
			// count their children.
			continue
		}

		opening := in.OpeningActivity[account.AccountID]
		period := in.PeriodActivity[account.AccountID]

		hasActivity := !opening.TotalDebits.IsZero() || !opening.TotalCredits.IsZero() ||
			!period.TotalDebits.IsZero() || !period.TotalCredits.IsZero()
		if !hasActivity && !in.IncludeZeroBalances {
			continue
		}

		snapshot := buildSnapshot(account, opening, period, in.IncludePeriodActivity)

		result.Rows = append(result.Rows, domain.TrialBalanceRow{
			Account:  account,
			Snapshot: snapshot,
		})

		// Raw cumulative debit/credit columns through the as-of date.
		result.TotalDebits = result.TotalDebits.Add(opening.TotalDebits).Add(period.TotalDebits)
		result.TotalCredits = result.TotalCredits.Add(opening.TotalCredits).Add(period.TotalCredits)

		typeTotal := result.TotalsByType[account.AccountType]
		result.TotalsByType[account.AccountType] = typeTotal.Add(snapshot.ClosingBalance)
	}

	sort.Slice(result.Rows, func(i, j int) bool {
		return result.Rows[i].Account.AccountNumber < result.Rows[j].Account.AccountNumber
	})

	result.NetIncome = result.TotalsByType[domain.Revenue].Sub(result.TotalsByType[domain.Expense])
	result.IsBalanced = accounting.IsBalanced(result.TotalDebits, result.TotalCredits)

	return result
}

// buildSnapshot derives the opening/period/closing figures for one account.
// When period activity is not requested, cumulative activity is folded into
// the opening balance and the period columns stay zero, so the closing
// formula holds trivially.
func buildSnapshot(account domain.Account, opening, period domain.AccountActivity, includePeriod bool) domain.AccountBalanceSnapshot {
	normal := account.NormalBalance

	if !includePeriod {
		cumulative := accounting.NetActivity(
			opening.TotalDebits.Add(period.TotalDebits),
			opening.TotalCredits.Add(period.TotalCredits),
			normal,
		)
		return domain.AccountBalanceSnapshot{
			AccountID:      account.AccountID,
			OpeningBalance: cumulative,
			PeriodDebits:   decimal.Zero,
			PeriodCredits:  decimal.Zero,
			ClosingBalance: cumulative,
		}
	}

	openingBalance := accounting.NetActivity(opening.TotalDebits, opening.TotalCredits, normal)
	return domain.AccountBalanceSnapshot{
		AccountID:      account.AccountID,
		OpeningBalance: openingBalance,
		PeriodDebits:   period.TotalDebits,
		PeriodCredits:  period.TotalCredits,
		ClosingBalance: accounting.ClosingBalance(openingBalance, period.TotalDebits, period.TotalCredits, normal),
	}
}
