package reports

import (
	"sort"

	"github.com/finacct/accounting_reports_app/internal/core/domain"
	"github.com/finacct/accounting_reports_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// CashFlowInput carries everything the cash flow builder needs.
// PeriodActivity spans the full chart (broader than the P&L's
// revenue/expense-only scope); BeginningCash and EndingCash come from the
// dedicated cumulative cash-balance query and are independent of section
// classification.
type CashFlowInput struct {
	TenantID             string
	CompanyID            string
	Period               domain.DatePeriod
	ComparativePeriod    *domain.DatePeriod
	Method               domain.CashFlowMethod
	Accounts             []domain.Account
	PeriodActivity       map[string]domain.AccountActivity
	ComparativeActivity  map[string]domain.AccountActivity
	TrialBalance         *domain.TrialBalanceResult
	BeginningCash        decimal.Decimal
	EndingCash           decimal.Decimal
	Classification       Classification
	AdjustmentClassifier AdjustmentClassifier
}

// cashFlowSectionOrder fixes the section sequence in the report output.
var cashFlowSectionOrder = []struct {
	activity domain.CashFlowActivity
	name     string
}{
	{domain.OperatingActivity, SectionOperating},
	{domain.InvestingActivity, SectionInvesting},
	{domain.FinancingActivity, SectionFinancing},
}

// BuildCashFlow classifies period activity into the IAS 7 buckets and
// assembles the statement. Pure function of its input.
//
// Each non-cash account's cash effect is credits − debits for the period:
// in a balanced ledger the cash accounts' net debit change is the mirror of
// every other account's net change, so summing credits − debits across the
// non-cash chart yields the change in cash. NetChangeInCash (sum of section
// subtotals) and EndingCash − BeginningCash therefore agree on consistent
// data but are computed independently and never reconciled here.
func BuildCashFlow(in CashFlowInput) *domain.CashFlowResult {
	withComparative := in.ComparativePeriod != nil

	sections := make(map[domain.CashFlowActivity]*domain.StatementSection, len(cashFlowSectionOrder))
	for _, entry := range cashFlowSectionOrder {
		sections[entry.activity] = &domain.StatementSection{Name: entry.name, Subtotal: decimal.Zero}
	}

	for _, account := range in.Accounts {
		if account.IsHeader {
			continue
		}
		activity, ok := in.Classification.CashFlowActivityFor(account)
		if !ok {
			continue
		}

		period := in.PeriodActivity[account.AccountID]
		current := cashEffect(period)

		line := domain.StatementLine{
			AccountID:     account.AccountID,
			AccountNumber: account.AccountNumber,
			AccountName:   account.Name,
			CurrentAmount: current,
		}

		if withComparative {
			comparative := cashEffect(in.ComparativeActivity[account.AccountID])
			variance := accounting.Variance(current, comparative)
			variancePct := accounting.VariancePercent(current, comparative)
			line.ComparativeAmount = &comparative
			line.Variance = &variance
			line.VariancePercent = &variancePct
		}

		if current.IsZero() && (line.ComparativeAmount == nil || line.ComparativeAmount.IsZero()) {
			continue
		}

		section := sections[activity]
		section.Lines = append(section.Lines, line)
		section.Subtotal = section.Subtotal.Add(current)
		if withComparative {
			addComparative(section, *line.ComparativeAmount)
		}
	}

	result := &domain.CashFlowResult{
		TenantID:          in.TenantID,
		CompanyID:         in.CompanyID,
		Period:            in.Period,
		ComparativePeriod: in.ComparativePeriod,
		Method:            in.Method,
		BeginningCash:     in.BeginningCash,
		EndingCash:        in.EndingCash,
		NetChangeInCash:   decimal.Zero,
	}
	for _, entry := range cashFlowSectionOrder {
		section := sections[entry.activity]
		sort.Slice(section.Lines, func(i, j int) bool {
			return section.Lines[i].AccountNumber < section.Lines[j].AccountNumber
		})
		finalizeSectionVariance(section, withComparative)
		result.Sections = append(result.Sections, *section)
		result.NetChangeInCash = result.NetChangeInCash.Add(section.Subtotal)
	}

	if in.Method == domain.IndirectMethod {
		result.Reconciliation = buildReconciliation(in)
	}

	return result
}

// cashEffect is the signed impact of an account's period activity on cash:
// credits − debits.
func cashEffect(activity domain.AccountActivity) decimal.Decimal {
	return activity.TotalCredits.Sub(activity.TotalDebits)
}

// buildReconciliation assembles the indirect-method block reconciling net
// income to net cash from operating activities: net income (from the trial
// balance's revenue/expense closing balances), non-cash adjustments detected
// by the pluggable classifier, and working-capital changes.
func buildReconciliation(in CashFlowInput) *domain.CashFlowReconciliation {
	reconciliation := &domain.CashFlowReconciliation{
		NetIncome: decimal.Zero,
	}
	if in.TrialBalance != nil {
		reconciliation.NetIncome = in.TrialBalance.NetIncome
	}

	operatingCash := reconciliation.NetIncome

	for _, account := range sortedByNumber(in.Accounts) {
		if account.IsHeader {
			continue
		}
		activity := in.PeriodActivity[account.AccountID]
		change := accounting.NetActivity(activity.TotalDebits, activity.TotalCredits, account.NormalBalance)
		if change.IsZero() {
			continue
		}

		if account.AccountType == domain.Revenue || account.AccountType == domain.Expense {
			if in.AdjustmentClassifier == nil {
				continue
			}
			description, kind, ok := in.AdjustmentClassifier.Classify(account)
			if !ok {
				continue
			}
			adjustment := domain.Adjustment{
				Description: description,
				Amount:      change.Abs(),
				Type:        kind,
			}
			reconciliation.Adjustments = append(reconciliation.Adjustments, adjustment)
			if kind == domain.AdjustmentAdd {
				operatingCash = operatingCash.Add(adjustment.Amount)
			} else {
				operatingCash = operatingCash.Sub(adjustment.Amount)
			}
			continue
		}

		if !in.Classification.WorkingCapital[account.Category] {
			continue
		}

		// Asset increase consumes cash; liability increase frees it.
		effect := change.Neg()
		if account.AccountType == domain.Liability {
			effect = change
		}
		direction := domain.ChangeIncrease
		if change.IsNegative() {
			direction = domain.ChangeDecrease
		}
		reconciliation.WorkingCapitalChanges = append(reconciliation.WorkingCapitalChanges, domain.WorkingCapitalChange{
			AccountID:   account.AccountID,
			AccountName: account.Name,
			Category:    account.Category,
			Change:      change,
			Direction:   direction,
			CashEffect:  effect,
		})
		operatingCash = operatingCash.Add(effect)
	}

	reconciliation.NetCashFromOperating = operatingCash
	return reconciliation
}

// sortedByNumber returns accounts ordered by account number without
// mutating the input slice.
func sortedByNumber(accounts []domain.Account) []domain.Account {
	sorted := make([]domain.Account, len(accounts))
	copy(sorted, accounts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].AccountNumber < sorted[j].AccountNumber
	})
	return sorted
}
