package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finacct/accounting_reports_app/internal/apperrors"
	"github.com/finacct/accounting_reports_app/internal/core/domain"
	portssvc "github.com/finacct/accounting_reports_app/internal/core/ports/services"
	"github.com/finacct/accounting_reports_app/internal/core/reports"
	"github.com/finacct/accounting_reports_app/internal/dto"
	"github.com/finacct/accounting_reports_app/internal/handlers"
	"github.com/finacct/accounting_reports_app/internal/middleware"
	"github.com/finacct/accounting_reports_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock report services ---

type MockTrialBalanceService struct {
	mock.Mock
}

func (m *MockTrialBalanceService) TrialBalance(ctx context.Context, req dto.TrialBalanceRequest) (*domain.TrialBalanceResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceResult), args.Error(1)
}

func (m *MockTrialBalanceService) ExportTrialBalance(ctx context.Context, req dto.TrialBalanceRequest, format reports.ExportFormat) (string, error) {
	args := m.Called(ctx, req, format)
	return args.String(0), args.Error(1)
}

var _ portssvc.TrialBalanceSvc = (*MockTrialBalanceService)(nil)

type MockProfitLossService struct {
	mock.Mock
}

func (m *MockProfitLossService) ProfitAndLoss(ctx context.Context, req dto.ProfitLossRequest) (*domain.ProfitLossResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitLossResult), args.Error(1)
}

var _ portssvc.ProfitLossSvc = (*MockProfitLossService)(nil)

type MockCashFlowService struct {
	mock.Mock
}

func (m *MockCashFlowService) CashFlow(ctx context.Context, req dto.CashFlowRequest) (*domain.CashFlowResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowResult), args.Error(1)
}

var _ portssvc.CashFlowSvc = (*MockCashFlowService)(nil)

// --- Test Suite Setup ---

type ReportingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockTrialBalance *MockTrialBalanceService
	mockProfitLoss   *MockProfitLossService
	mockCashFlow     *MockCashFlowService
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockTrialBalance = new(MockTrialBalanceService)
	suite.mockProfitLoss = new(MockProfitLossService)
	suite.mockCashFlow = new(MockCashFlowService)

	cfg := &config.Config{
		IsProduction:      true, // no swagger wiring in tests
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		DefaultCurrency:   "USD",
	}
	services := &portssvc.ServiceContainer{
		TrialBalance: suite.mockTrialBalance,
		ProfitLoss:   suite.mockProfitLoss,
		CashFlow:     suite.mockCashFlow,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *ReportingHandlerTestSuite) get(path string, withTenant bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if withTenant {
		req.Header.Set(middleware.TenantHeader, "tenant-1")
	}
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

// --- Test Cases ---

func (suite *ReportingHandlerTestSuite) TestGetTrialBalance_Success() {
	expected := &domain.TrialBalanceResult{
		TenantID:        "tenant-1",
		CompanyID:       "company-1",
		AsOfDate:        time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		FiscalYearStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TotalDebits:     decimal.NewFromInt(1000),
		TotalCredits:    decimal.NewFromInt(1000),
		IsBalanced:      true,
	}
	suite.mockTrialBalance.On("TrialBalance", mock.Anything, mock.MatchedBy(func(req dto.TrialBalanceRequest) bool {
		return req.TenantID == "tenant-1" && req.CompanyID == "company-1" &&
			req.AsOfDate.Format("2006-01-02") == "2024-06-30" && req.IncludePeriodActivity
	})).Return(expected, nil).Once()

	recorder := suite.get("/api/v1/companies/company-1/reports/trial-balance?asOf=2024-06-30", true)

	suite.Equal(http.StatusOK, recorder.Code)
	var response dto.TrialBalanceResponse
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	suite.Equal("company-1", response.CompanyID)
	suite.Equal("2024-06-30", response.AsOf)
	suite.Equal("USD", response.Currency)
	suite.True(response.IsBalanced)

	suite.mockTrialBalance.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetTrialBalance_MissingTenantHeader() {
	recorder := suite.get("/api/v1/companies/company-1/reports/trial-balance", false)

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.mockTrialBalance.AssertNotCalled(suite.T(), "TrialBalance", mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestGetTrialBalance_InvalidDate() {
	recorder := suite.get("/api/v1/companies/company-1/reports/trial-balance?asOf=June-30", true)

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(recorder.Body.String(), apperrors.CodeInvalidInput)
}

func (suite *ReportingHandlerTestSuite) TestGetTrialBalance_ErrorCodeMapping() {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid input", apperrors.NewInvalidInput("asOf date must not be in the future"), http.StatusBadRequest},
		{"no accounts", apperrors.NewAppError(apperrors.CodeNoAccountsFound, "no accounts found for company", apperrors.ErrNotFound), http.StatusNotFound},
		{"query failure", apperrors.NewAppError(apperrors.CodeTrialBalanceError, "failed to aggregate ledger balances", nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		suite.mockTrialBalance.On("TrialBalance", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

		recorder := suite.get("/api/v1/companies/company-1/reports/trial-balance?asOf=2024-06-30", true)

		suite.Equal(tt.expected, recorder.Code, tt.name)
	}
	suite.mockTrialBalance.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestExportTrialBalance_CSV() {
	suite.mockTrialBalance.On("ExportTrialBalance", mock.Anything, mock.Anything, reports.FormatCSV).
		Return("Account Number,Account Name\n1000,Cash\n", nil).Once()

	recorder := suite.get("/api/v1/companies/company-1/reports/trial-balance/export?asOf=2024-06-30", true)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Header().Get("Content-Type"), "text/csv")
	suite.Contains(recorder.Header().Get("Content-Disposition"), "trial-balance-2024-06-30.csv")
	suite.Contains(recorder.Body.String(), "1000,Cash")
}

func (suite *ReportingHandlerTestSuite) TestExportTrialBalance_UnimplementedFormat() {
	suite.mockTrialBalance.On("ExportTrialBalance", mock.Anything, mock.Anything, reports.FormatPDF).
		Return("", apperrors.NewAppError(apperrors.CodeNotImplemented, "PDF export is not yet implemented", nil)).Once()

	recorder := suite.get("/api/v1/companies/company-1/reports/trial-balance/export?asOf=2024-06-30&format=pdf", true)

	suite.Equal(http.StatusNotImplemented, recorder.Code)
}

func (suite *ReportingHandlerTestSuite) TestGetProfitAndLoss_Success() {
	expected := &domain.ProfitLossResult{
		TenantID:  "tenant-1",
		CompanyID: "company-1",
		Period: domain.DatePeriod{
			StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		},
	}
	suite.mockProfitLoss.On("ProfitAndLoss", mock.Anything, mock.MatchedBy(func(req dto.ProfitLossRequest) bool {
		return req.TenantID == "tenant-1" && req.ComparativePeriod == nil
	})).Return(expected, nil).Once()

	recorder := suite.get("/api/v1/companies/company-1/reports/profit-and-loss?fromDate=2024-01-01&toDate=2024-06-30", true)

	suite.Equal(http.StatusOK, recorder.Code)
	var response dto.ProfitAndLossResponse
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	suite.Equal("2024-01-01", response.Period.FromDate)
	suite.Equal("2024-06-30", response.Period.ToDate)
}

func (suite *ReportingHandlerTestSuite) TestGetProfitAndLoss_IncompleteComparativePeriod() {
	recorder := suite.get("/api/v1/companies/company-1/reports/profit-and-loss?fromDate=2024-01-01&toDate=2024-06-30&comparativeFromDate=2023-01-01", true)

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.mockProfitLoss.AssertNotCalled(suite.T(), "ProfitAndLoss", mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestGetCashFlow_Success() {
	expected := &domain.CashFlowResult{
		TenantID:  "tenant-1",
		CompanyID: "company-1",
		Method:    domain.IndirectMethod,
		Period: domain.DatePeriod{
			StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		Reconciliation: &domain.CashFlowReconciliation{NetIncome: decimal.NewFromInt(20000)},
	}
	suite.mockCashFlow.On("CashFlow", mock.Anything, mock.MatchedBy(func(req dto.CashFlowRequest) bool {
		// Method is upper-cased before it reaches the service
		return req.Method == domain.IndirectMethod
	})).Return(expected, nil).Once()

	recorder := suite.get("/api/v1/companies/company-1/reports/cash-flow?fromDate=2024-01-01&toDate=2024-06-30&method=indirect", true)

	suite.Equal(http.StatusOK, recorder.Code)
	var response dto.CashFlowResponse
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	suite.Equal("INDIRECT", response.Method)
	suite.Require().NotNil(response.Reconciliation)
}

func (suite *ReportingHandlerTestSuite) TestGetCashFlow_ServiceRejectsMethod() {
	suite.mockCashFlow.On("CashFlow", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewInvalidInput("method must be DIRECT or INDIRECT")).Once()

	recorder := suite.get("/api/v1/companies/company-1/reports/cash-flow?fromDate=2024-01-01&toDate=2024-06-30&method=MODIFIED", true)

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(recorder.Body.String(), apperrors.CodeInvalidInput)
}

func TestReportingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
