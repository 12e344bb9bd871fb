package services

import (
	portsrepo "github.com/finacct/accounting_reports_app/internal/core/ports/repositories"
	portssvc "github.com/finacct/accounting_reports_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The aggregator is the leaf; the statement generators layer on top of
	// the trial balance service, which layers on the aggregated ledger.
	container.Aggregator = NewLedgerAggregatorService(repos.Ledger)
	container.TrialBalance = NewTrialBalanceService(repos.Ledger, repos.Accounts, repos.Fiscal)
	container.ProfitLoss = NewProfitLossService(container.TrialBalance, container.Aggregator)
	container.CashFlow = NewCashFlowService(container.TrialBalance, container.Aggregator, repos.Ledger)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerAggregatorSvc = (*ledgerAggregatorService)(nil)
	_ portssvc.TrialBalanceSvc     = (*trialBalanceService)(nil)
	_ portssvc.ProfitLossSvc       = (*profitLossService)(nil)
	_ portssvc.CashFlowSvc         = (*cashFlowService)(nil)
)
