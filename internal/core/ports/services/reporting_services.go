package services

import (
	"context"

	"github.com/finacct/accounting_reports_app/internal/core/domain"
	portsrepo "github.com/finacct/accounting_reports_app/internal/core/ports/repositories"
	"github.com/finacct/accounting_reports_app/internal/core/reports"
	"github.com/finacct/accounting_reports_app/internal/dto"
)

// LedgerAggregatorSvc aggregates posted journal-line activity per account.
// The comparative window of a report is simply a second, independent
// invocation with its own query.
type LedgerAggregatorSvc interface {
	// AggregateActivity returns per-account debit/credit/net-activity totals
	// for the query window. Only POSTED journals are included.
	AggregateActivity(ctx context.Context, query portsrepo.ActivityQuery) (map[string]domain.AccountActivity, error)
}

// TrialBalanceSvc produces the canonical account balance snapshot reports.
type TrialBalanceSvc interface {
	// TrialBalance builds a trial balance as of the request date.
	TrialBalance(ctx context.Context, req dto.TrialBalanceRequest) (*domain.TrialBalanceResult, error)

	// ExportTrialBalance renders a trial balance in the requested format.
	// Only CSV is implemented; XLSX and PDF return NOT_IMPLEMENTED.
	ExportTrialBalance(ctx context.Context, req dto.TrialBalanceRequest, format reports.ExportFormat) (string, error)
}

// ProfitLossSvc generates profit & loss statements.
type ProfitLossSvc interface {
	ProfitAndLoss(ctx context.Context, req dto.ProfitLossRequest) (*domain.ProfitLossResult, error)
}

// CashFlowSvc generates cash flow statements.
type CashFlowSvc interface {
	CashFlow(ctx context.Context, req dto.CashFlowRequest) (*domain.CashFlowResult, error)
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Aggregator   LedgerAggregatorSvc
	TrialBalance TrialBalanceSvc
	ProfitLoss   ProfitLossSvc
	CashFlow     CashFlowSvc
}
