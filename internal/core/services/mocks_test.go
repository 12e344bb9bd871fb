package services_test

import (
	"context"
	"time"

	"github.com/finacct/accounting_reports_app/internal/core/domain"
	portsrepo "github.com/finacct/accounting_reports_app/internal/core/ports/repositories"
	"github.com/finacct/accounting_reports_app/internal/core/reports"
	"github.com/finacct/accounting_reports_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockLedgerRepository is a mock type for the LedgerRepository interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) GetAccountActivity(ctx context.Context, query portsrepo.ActivityQuery) (map[string]domain.AccountActivity, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.AccountActivity), args.Error(1)
}

func (m *MockLedgerRepository) GetBalanceWindows(ctx context.Context, tenantID, companyID string, fiscalYearStart, asOf time.Time) (map[string]domain.AccountActivity, map[string]domain.AccountActivity, error) {
	args := m.Called(ctx, tenantID, companyID, fiscalYearStart, asOf)
	var opening, period map[string]domain.AccountActivity
	if args.Get(0) != nil {
		opening = args.Get(0).(map[string]domain.AccountActivity)
	}
	if args.Get(1) != nil {
		period = args.Get(1).(map[string]domain.AccountActivity)
	}
	return opening, period, args.Error(2)
}

func (m *MockLedgerRepository) GetCashBalances(ctx context.Context, tenantID, companyID string, periodStart, periodEnd time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, companyID, periodStart, periodEnd)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

// MockChartOfAccountsRepository is a mock type for the ChartOfAccountsRepository interface
type MockChartOfAccountsRepository struct {
	mock.Mock
}

func (m *MockChartOfAccountsRepository) ListAccounts(ctx context.Context, tenantID, companyID string, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockFiscalCalendarRepository is a mock type for the FiscalCalendarRepository interface
type MockFiscalCalendarRepository struct {
	mock.Mock
}

func (m *MockFiscalCalendarRepository) GetFiscalYearStart(ctx context.Context, tenantID, companyID string, asOf time.Time) (time.Time, error) {
	args := m.Called(ctx, tenantID, companyID, asOf)
	return args.Get(0).(time.Time), args.Error(1)
}

// MockTrialBalanceSvc is a mock type for the TrialBalanceSvc interface
type MockTrialBalanceSvc struct {
	mock.Mock
}

func (m *MockTrialBalanceSvc) TrialBalance(ctx context.Context, req dto.TrialBalanceRequest) (*domain.TrialBalanceResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceResult), args.Error(1)
}

func (m *MockTrialBalanceSvc) ExportTrialBalance(ctx context.Context, req dto.TrialBalanceRequest, format reports.ExportFormat) (string, error) {
	args := m.Called(ctx, req, format)
	return args.String(0), args.Error(1)
}

// MockLedgerAggregatorSvc is a mock type for the LedgerAggregatorSvc interface
type MockLedgerAggregatorSvc struct {
	mock.Mock
}

func (m *MockLedgerAggregatorSvc) AggregateActivity(ctx context.Context, query portsrepo.ActivityQuery) (map[string]domain.AccountActivity, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.AccountActivity), args.Error(1)
}
