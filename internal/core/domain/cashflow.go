package domain

import (
	"github.com/shopspring/decimal"
)

// CashFlowMethod selects the cash flow statement presentation.
type CashFlowMethod string

const (
	DirectMethod   CashFlowMethod = "DIRECT"
	IndirectMethod CashFlowMethod = "INDIRECT"
)

// IsValid reports whether the method is a known value.
func (m CashFlowMethod) IsValid() bool {
	return m == DirectMethod || m == IndirectMethod
}

// CashFlowActivity names an IAS 7 classification bucket.
type CashFlowActivity string

const (
	OperatingActivity CashFlowActivity = "OPERATING"
	InvestingActivity CashFlowActivity = "INVESTING"
	FinancingActivity CashFlowActivity = "FINANCING"
)

// AdjustmentType indicates the direction of a reconciliation adjustment.
type AdjustmentType string

const (
	AdjustmentAdd      AdjustmentType = "ADD"
	AdjustmentSubtract AdjustmentType = "SUBTRACT"
)

// Adjustment is one non-cash add-back or subtraction in the indirect-method
// reconciliation.
type Adjustment struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        AdjustmentType  `json:"type"`
}

// ChangeDirection labels a working-capital movement by its cash-flow effect.
type ChangeDirection string

const (
	ChangeIncrease ChangeDirection = "INCREASE"
	ChangeDecrease ChangeDirection = "DECREASE"
)

// WorkingCapitalChange is one working-capital line in the indirect-method
// reconciliation. CashEffect carries the signed impact on operating cash.
type WorkingCapitalChange struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	Category    AccountCategory `json:"category"`
	Change      decimal.Decimal `json:"change"`
	Direction   ChangeDirection `json:"direction"`
	CashEffect  decimal.Decimal `json:"cashEffect"`
}

// CashFlowReconciliation is the indirect-method block reconciling net income
// to net cash from operating activities.
type CashFlowReconciliation struct {
	NetIncome             decimal.Decimal        `json:"netIncome"`
	Adjustments           []Adjustment           `json:"adjustments"`
	WorkingCapitalChanges []WorkingCapitalChange `json:"workingCapitalChanges"`
	NetCashFromOperating  decimal.Decimal        `json:"netCashFromOperating"`
}

// CashFlowResult is the top-level cash flow statement output.
//
// NetChangeInCash is the sum of the three section subtotals. EndingCash −
// BeginningCash is computed independently from cumulative cash-account
// balances; the two paths are reported side by side and deliberately not
// reconciled against each other — a discrepancy is a data-quality signal
// left to the caller.
type CashFlowResult struct {
	TenantID          string                  `json:"tenantID"`
	CompanyID         string                  `json:"companyID"`
	Period            DatePeriod              `json:"period"`
	ComparativePeriod *DatePeriod             `json:"comparativePeriod,omitempty"`
	Method            CashFlowMethod          `json:"method"`
	Sections          []StatementSection      `json:"sections"`
	BeginningCash     decimal.Decimal         `json:"beginningCash"`
	EndingCash        decimal.Decimal         `json:"endingCash"`
	NetChangeInCash   decimal.Decimal         `json:"netChangeInCash"`
	Reconciliation    *CashFlowReconciliation `json:"reconciliation,omitempty"`
}

// Section returns the named section, or nil when absent.
func (r *CashFlowResult) Section(name string) *StatementSection {
	for i := range r.Sections {
		if r.Sections[i].Name == name {
			return &r.Sections[i]
		}
	}
	return nil
}
