package dto

import (
	"time"

	"github.com/finacct/accounting_reports_app/internal/core/domain"
)

// TrialBalanceRequest parameterizes a trial balance report.
type TrialBalanceRequest struct {
	TenantID              string
	CompanyID             string
	AsOfDate              time.Time
	AccountTypes          []domain.AccountType
	IncludePeriodActivity bool
	IncludeZeroBalances   bool
	Currency              string
}

// ProfitLossRequest parameterizes a profit & loss report.
type ProfitLossRequest struct {
	TenantID          string
	CompanyID         string
	StartDate         time.Time
	EndDate           time.Time
	ComparativePeriod *domain.DatePeriod
	Currency          string
}

// CashFlowRequest parameterizes a cash flow statement.
type CashFlowRequest struct {
	TenantID          string
	CompanyID         string
	StartDate         time.Time
	EndDate           time.Time
	ComparativePeriod *domain.DatePeriod
	Method            domain.CashFlowMethod
	Currency          string
}
