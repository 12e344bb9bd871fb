package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/finacct/accounting_reports_app/internal/apperrors"
	"github.com/finacct/accounting_reports_app/internal/core/domain"
	portsrepo "github.com/finacct/accounting_reports_app/internal/core/ports/repositories"
	portssvc "github.com/finacct/accounting_reports_app/internal/core/ports/services"
	"github.com/finacct/accounting_reports_app/internal/core/reports"
	"github.com/finacct/accounting_reports_app/internal/core/services"
	"github.com/finacct/accounting_reports_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func fixtureAccount(id, number, name string, accountType domain.AccountType, category domain.AccountCategory) domain.Account {
	return domain.Account{
		AccountID:     id,
		TenantID:      "tenant-1",
		CompanyID:     "company-1",
		AccountNumber: number,
		Name:          name,
		AccountType:   accountType,
		Category:      category,
		NormalBalance: domain.NormalBalanceFor(accountType),
		IsActive:      true,
	}
}

func fixtureActivity(id, debits, credits string, normal domain.NormalBalance) domain.AccountActivity {
	d, c := mustDec(debits), mustDec(credits)
	net := d.Sub(c)
	if normal == domain.CreditNormal {
		net = c.Sub(d)
	}
	return domain.AccountActivity{AccountID: id, TotalDebits: d, TotalCredits: c, NetActivity: net}
}

// --- Test Suite Setup ---

type TrialBalanceServiceTestSuite struct {
	suite.Suite
	mockLedger   *MockLedgerRepository
	mockAccounts *MockChartOfAccountsRepository
	mockFiscal   *MockFiscalCalendarRepository
	service      portssvc.TrialBalanceSvc
	today        time.Time
}

func (suite *TrialBalanceServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerRepository)
	suite.mockAccounts = new(MockChartOfAccountsRepository)
	suite.mockFiscal = new(MockFiscalCalendarRepository)
	suite.today = mustDate("2024-07-01")
	suite.service = services.NewTrialBalanceService(
		suite.mockLedger,
		suite.mockAccounts,
		suite.mockFiscal,
		services.WithTrialBalanceClock(func() time.Time { return suite.today }),
	)
}

func (suite *TrialBalanceServiceTestSuite) validRequest() dto.TrialBalanceRequest {
	return dto.TrialBalanceRequest{
		TenantID:              "tenant-1",
		CompanyID:             "company-1",
		AsOfDate:              mustDate("2024-06-30"),
		IncludePeriodActivity: true,
	}
}

// --- Test Cases ---

func (suite *TrialBalanceServiceTestSuite) TestTrialBalance_Success() {
	ctx := context.Background()
	req := suite.validRequest()
	accounts := []domain.Account{
		fixtureAccount("acc-cash", "1000", "Cash", domain.Asset, domain.CategoryCash),
		fixtureAccount("acc-rev", "4000", "Sales Revenue", domain.Revenue, domain.CategorySalesRevenue),
	}
	period := map[string]domain.AccountActivity{
		"acc-cash": fixtureActivity("acc-cash", "1000", "0", domain.DebitNormal),
		"acc-rev":  fixtureActivity("acc-rev", "0", "1000", domain.CreditNormal),
	}

	// No fiscal calendar record: the service defaults to January 1
	suite.mockFiscal.On("GetFiscalYearStart", ctx, "tenant-1", "company-1", req.AsOfDate).
		Return(time.Time{}, apperrors.ErrNotFound).Once()
	suite.mockAccounts.On("ListAccounts", ctx, "tenant-1", "company-1", portsrepo.AccountFilter{}).
		Return(accounts, nil).Once()
	suite.mockLedger.On("GetBalanceWindows", ctx, "tenant-1", "company-1", mustDate("2024-01-01"), req.AsOfDate).
		Return(map[string]domain.AccountActivity{}, period, nil).Once()

	result, err := suite.service.TrialBalance(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(mustDate("2024-01-01"), result.FiscalYearStart)
	suite.Len(result.Rows, 2)
	suite.True(result.IsBalanced)

	suite.mockFiscal.AssertExpectations(suite.T())
	suite.mockAccounts.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TrialBalanceServiceTestSuite) TestTrialBalance_UsesFiscalCalendar() {
	ctx := context.Background()
	req := suite.validRequest()
	fiscalStart := mustDate("2024-04-01")

	suite.mockFiscal.On("GetFiscalYearStart", ctx, "tenant-1", "company-1", req.AsOfDate).
		Return(fiscalStart, nil).Once()
	suite.mockAccounts.On("ListAccounts", ctx, "tenant-1", "company-1", portsrepo.AccountFilter{}).
		Return([]domain.Account{fixtureAccount("acc-cash", "1000", "Cash", domain.Asset, domain.CategoryCash)}, nil).Once()
	suite.mockLedger.On("GetBalanceWindows", ctx, "tenant-1", "company-1", fiscalStart, req.AsOfDate).
		Return(map[string]domain.AccountActivity{}, map[string]domain.AccountActivity{}, nil).Once()

	result, err := suite.service.TrialBalance(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(fiscalStart, result.FiscalYearStart)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TrialBalanceServiceTestSuite) TestTrialBalance_FutureDateRejected() {
	ctx := context.Background()
	req := suite.validRequest()
	req.AsOfDate = mustDate("2024-07-02")

	result, err := suite.service.TrialBalance(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Equal(apperrors.CodeInvalidInput, apperrors.CodeOf(err))
	suite.mockFiscal.AssertNotCalled(suite.T(), "GetFiscalYearStart", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TrialBalanceServiceTestSuite) TestTrialBalance_MissingIdentifiersRejected() {
	ctx := context.Background()
	req := suite.validRequest()
	req.TenantID = ""

	_, err := suite.service.TrialBalance(ctx, req)

	suite.Require().Error(err)
	suite.Equal(apperrors.CodeInvalidInput, apperrors.CodeOf(err))
}

func (suite *TrialBalanceServiceTestSuite) TestTrialBalance_UnknownAccountTypeRejected() {
	ctx := context.Background()
	req := suite.validRequest()
	req.AccountTypes = []domain.AccountType{"BOGUS"}

	_, err := suite.service.TrialBalance(ctx, req)

	suite.Require().Error(err)
	suite.Equal(apperrors.CodeInvalidInput, apperrors.CodeOf(err))
}

func (suite *TrialBalanceServiceTestSuite) TestTrialBalance_NoAccountsFound() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockFiscal.On("GetFiscalYearStart", ctx, "tenant-1", "company-1", req.AsOfDate).
		Return(time.Time{}, apperrors.ErrNotFound).Once()
	suite.mockAccounts.On("ListAccounts", ctx, "tenant-1", "company-1", portsrepo.AccountFilter{}).
		Return([]domain.Account{}, nil).Once()

	result, err := suite.service.TrialBalance(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Equal(apperrors.CodeNoAccountsFound, apperrors.CodeOf(err))
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TrialBalanceServiceTestSuite) TestTrialBalance_LedgerErrorWrapped() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockFiscal.On("GetFiscalYearStart", ctx, "tenant-1", "company-1", req.AsOfDate).
		Return(time.Time{}, apperrors.ErrNotFound).Once()
	suite.mockAccounts.On("ListAccounts", ctx, "tenant-1", "company-1", portsrepo.AccountFilter{}).
		Return([]domain.Account{fixtureAccount("acc-cash", "1000", "Cash", domain.Asset, domain.CategoryCash)}, nil).Once()
	suite.mockLedger.On("GetBalanceWindows", ctx, "tenant-1", "company-1", mustDate("2024-01-01"), req.AsOfDate).
		Return(nil, nil, assert.AnError).Once()

	result, err := suite.service.TrialBalance(ctx, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Equal(apperrors.CodeTrialBalanceError, apperrors.CodeOf(err))
	suite.ErrorIs(err, assert.AnError)
}

func (suite *TrialBalanceServiceTestSuite) TestExportTrialBalance_CSV() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockFiscal.On("GetFiscalYearStart", ctx, "tenant-1", "company-1", req.AsOfDate).
		Return(time.Time{}, apperrors.ErrNotFound).Once()
	suite.mockAccounts.On("ListAccounts", ctx, "tenant-1", "company-1", portsrepo.AccountFilter{}).
		Return([]domain.Account{fixtureAccount("acc-cash", "1000", "Cash", domain.Asset, domain.CategoryCash)}, nil).Once()
	suite.mockLedger.On("GetBalanceWindows", ctx, "tenant-1", "company-1", mustDate("2024-01-01"), req.AsOfDate).
		Return(map[string]domain.AccountActivity{}, map[string]domain.AccountActivity{
			"acc-cash": fixtureActivity("acc-cash", "1000", "400", domain.DebitNormal),
		}, nil).Once()

	csvText, err := suite.service.ExportTrialBalance(ctx, req, reports.FormatCSV)

	suite.Require().NoError(err)
	lines := strings.Split(strings.TrimRight(csvText, "\n"), "\n")
	suite.Require().Len(lines, 2)
	suite.Contains(lines[0], "Account Number")
	suite.Contains(lines[1], "600.00")
}

func (suite *TrialBalanceServiceTestSuite) TestExportTrialBalance_UnimplementedFormats() {
	ctx := context.Background()
	req := suite.validRequest()

	for _, format := range []reports.ExportFormat{reports.FormatXLSX, reports.FormatPDF} {
		_, err := suite.service.ExportTrialBalance(ctx, req, format)
		suite.Require().Error(err)
		suite.Equal(apperrors.CodeNotImplemented, apperrors.CodeOf(err))
	}

	_, err := suite.service.ExportTrialBalance(ctx, req, reports.ExportFormat("DOCX"))
	suite.Require().Error(err)
	suite.Equal(apperrors.CodeInvalidInput, apperrors.CodeOf(err))
}

func TestTrialBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrialBalanceServiceTestSuite))
}
