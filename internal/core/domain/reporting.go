package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceTolerance is the absolute debit/credit difference below which a
// trial balance is considered balanced. It absorbs rounding in monetary
// sums; it is not a business allowance.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// AccountActivity holds aggregated posted journal-line totals for one account
// over a date range. NetActivity is signed by the account's normal balance:
// debits − credits for DEBIT-normal accounts, credits − debits for
// CREDIT-normal accounts.
type AccountActivity struct {
	AccountID    string          `json:"accountID"`
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	NetActivity  decimal.Decimal `json:"netActivity"`
}

// AccountBalanceSnapshot is the derived per-account balance picture used as
// the foundation of every report. Computed fresh on each request, never
// persisted.
//
// Invariant: ClosingBalance = OpeningBalance + (PeriodDebits − PeriodCredits)
// when the account is DEBIT-normal, and the mirrored formula when CREDIT-normal.
type AccountBalanceSnapshot struct {
	AccountID      string          `json:"accountID"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	PeriodDebits   decimal.Decimal `json:"periodDebits"`
	PeriodCredits  decimal.Decimal `json:"periodCredits"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// TrialBalanceRow joins a balance snapshot with its account metadata.
type TrialBalanceRow struct {
	Account  Account                `json:"account"`
	Snapshot AccountBalanceSnapshot `json:"snapshot"`
}

// TrialBalanceResult is a point-in-time trial balance report. Immutable once
// produced.
type TrialBalanceResult struct {
	TenantID        string                          `json:"tenantID"`
	CompanyID       string                          `json:"companyID"`
	AsOfDate        time.Time                       `json:"asOfDate"`
	FiscalYearStart time.Time                       `json:"fiscalYearStart"`
	Rows            []TrialBalanceRow               `json:"rows"`
	TotalDebits     decimal.Decimal                 `json:"totalDebits"`
	TotalCredits    decimal.Decimal                 `json:"totalCredits"`
	TotalsByType    map[AccountType]decimal.Decimal `json:"totalsByType"`
	NetIncome       decimal.Decimal                 `json:"netIncome"`
	IsBalanced      bool                            `json:"isBalanced"`
}

// RowsByType returns the rows whose account is of the given type, preserving
// report order.
func (r *TrialBalanceResult) RowsByType(t AccountType) []TrialBalanceRow {
	var rows []TrialBalanceRow
	for _, row := range r.Rows {
		if row.Account.AccountType == t {
			rows = append(rows, row)
		}
	}
	return rows
}

// StatementLine is one classified account inside a statement section.
type StatementLine struct {
	AccountID         string           `json:"accountID"`
	AccountNumber     string           `json:"accountNumber"`
	AccountName       string           `json:"accountName"`
	CurrentAmount     decimal.Decimal  `json:"currentAmount"`
	ComparativeAmount *decimal.Decimal `json:"comparativeAmount,omitempty"`
	Variance          *decimal.Decimal `json:"variance,omitempty"`
	VariancePercent   *decimal.Decimal `json:"variancePercent,omitempty"`
}

// StatementSection is a named bucket of classified lines with a subtotal.
//
// Invariant: Subtotal = Σ line.CurrentAmount. When a comparative period is
// supplied, Variance = Subtotal − ComparativeSubtotal.
type StatementSection struct {
	Name                string           `json:"name"`
	Lines               []StatementLine  `json:"lines"`
	Subtotal            decimal.Decimal  `json:"subtotal"`
	ComparativeSubtotal *decimal.Decimal `json:"comparativeSubtotal,omitempty"`
	Variance            *decimal.Decimal `json:"variance,omitempty"`
	VariancePercent     *decimal.Decimal `json:"variancePercent,omitempty"`
}

// ProfitLossMetrics are the derived P&L summary figures. Each field is a
// deterministic function of the section subtotals, computed in strict order:
// grossProfit, then operatingIncome, then the net income figures.
type ProfitLossMetrics struct {
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	TotalCostOfSales   decimal.Decimal `json:"totalCostOfSales"`
	GrossProfit        decimal.Decimal `json:"grossProfit"`
	OperatingExpenses  decimal.Decimal `json:"operatingExpenses"`
	OperatingIncome    decimal.Decimal `json:"operatingIncome"`
	OtherIncome        decimal.Decimal `json:"otherIncome"`
	OtherExpenses      decimal.Decimal `json:"otherExpenses"`
	NetIncomeBeforeTax decimal.Decimal `json:"netIncomeBeforeTax"`
	// NetIncomeAfterTax currently equals NetIncomeBeforeTax; tax computation
	// is an explicit extension point, not a silent omission.
	NetIncomeAfterTax     decimal.Decimal `json:"netIncomeAfterTax"`
	GrossProfitMargin     decimal.Decimal `json:"grossProfitMargin"`
	OperatingIncomeMargin decimal.Decimal `json:"operatingIncomeMargin"`
	NetIncomeMargin       decimal.Decimal `json:"netIncomeMargin"`
}

// ProfitLossResult is the top-level P&L report output. Constructed
// synchronously within one request; never cached or persisted.
type ProfitLossResult struct {
	TenantID          string             `json:"tenantID"`
	CompanyID         string             `json:"companyID"`
	Period            DatePeriod         `json:"period"`
	ComparativePeriod *DatePeriod        `json:"comparativePeriod,omitempty"`
	Sections          []StatementSection `json:"sections"`
	Metrics           ProfitLossMetrics  `json:"metrics"`
	// Comparative blocks are present only when a comparative period was
	// requested. The variance blocks are field-wise current − comparative
	// and variance percent over the metrics.
	ComparativeMetrics     *ProfitLossMetrics `json:"comparativeMetrics,omitempty"`
	MetricsVariance        *ProfitLossMetrics `json:"metricsVariance,omitempty"`
	MetricsVariancePercent *ProfitLossMetrics `json:"metricsVariancePercent,omitempty"`
}

// Section returns the named section, or nil when absent.
func (r *ProfitLossResult) Section(name string) *StatementSection {
	for i := range r.Sections {
		if r.Sections[i].Name == name {
			return &r.Sections[i]
		}
	}
	return nil
}
