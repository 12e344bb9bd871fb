package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/finacct/accounting_reports_app/internal/apperrors"
	"github.com/finacct/accounting_reports_app/internal/core/domain"
	portsrepo "github.com/finacct/accounting_reports_app/internal/core/ports/repositories"
	portssvc "github.com/finacct/accounting_reports_app/internal/core/ports/services"
	"github.com/finacct/accounting_reports_app/internal/core/reports"
	"github.com/finacct/accounting_reports_app/internal/dto"
)

// trialBalanceService implements the TrialBalanceSvc interface.
type trialBalanceService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepository
	accountRepo portsrepo.ChartOfAccountsRepository
	fiscalRepo  portsrepo.FiscalCalendarRepository
	now         func() time.Time
}

// TrialBalanceServiceOption is a functional option for configuring the
// trial balance service.
type TrialBalanceServiceOption func(*trialBalanceService)

// WithTrialBalanceClock overrides the wall clock, used by tests to pin
// "today" for future-date validation.
func WithTrialBalanceClock(now func() time.Time) TrialBalanceServiceOption {
	return func(s *trialBalanceService) {
		s.now = now
	}
}

// NewTrialBalanceService creates a new trial balance service with the provided options.
func NewTrialBalanceService(ledgerRepo portsrepo.LedgerRepository, accountRepo portsrepo.ChartOfAccountsRepository, fiscalRepo portsrepo.FiscalCalendarRepository, options ...TrialBalanceServiceOption) portssvc.TrialBalanceSvc {
	svc := &trialBalanceService{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
		fiscalRepo:  fiscalRepo,
		now:         time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure trialBalanceService implements the TrialBalanceSvc interface
var _ portssvc.TrialBalanceSvc = (*trialBalanceService)(nil)

// TrialBalance generates a trial balance report as of the request date.
func (s *trialBalanceService) TrialBalance(ctx context.Context, req dto.TrialBalanceRequest) (*domain.TrialBalanceResult, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	fiscalYearStart, err := s.resolveFiscalYearStart(ctx, req.TenantID, req.CompanyID, req.AsOfDate)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, req.TenantID, req.CompanyID, portsrepo.AccountFilter{
		AccountTypes: req.AccountTypes,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch chart of accounts",
			slog.String("tenant_id", req.TenantID),
			slog.String("company_id", req.CompanyID))
		return nil, apperrors.NewAppError(apperrors.CodeTrialBalanceError, "failed to fetch chart of accounts", err)
	}
	if len(accounts) == 0 {
		return nil, apperrors.NewAppError(apperrors.CodeNoAccountsFound, "no accounts found for company", apperrors.ErrNotFound)
	}

	opening, period, err := s.ledgerRepo.GetBalanceWindows(ctx, req.TenantID, req.CompanyID, fiscalYearStart, req.AsOfDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate balance windows",
			slog.String("tenant_id", req.TenantID),
			slog.String("company_id", req.CompanyID),
			slog.String("asOf", req.AsOfDate.Format(time.DateOnly)))
		return nil, apperrors.NewAppError(apperrors.CodeTrialBalanceError, "failed to aggregate ledger balances", err)
	}

	result := reports.BuildTrialBalance(reports.TrialBalanceInput{
		TenantID:              req.TenantID,
		CompanyID:             req.CompanyID,
		AsOfDate:              req.AsOfDate,
		FiscalYearStart:       fiscalYearStart,
		Accounts:              accounts,
		OpeningActivity:       opening,
		PeriodActivity:        period,
		IncludePeriodActivity: req.IncludePeriodActivity,
		IncludeZeroBalances:   req.IncludeZeroBalances,
	})

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("tenant_id", req.TenantID),
		slog.String("company_id", req.CompanyID),
		slog.String("asOf", req.AsOfDate.Format(time.DateOnly)),
		slog.Int("row_count", len(result.Rows)),
		slog.Bool("is_balanced", result.IsBalanced))
	return result, nil
}

// ExportTrialBalance renders a trial balance in the requested format.
func (s *trialBalanceService) ExportTrialBalance(ctx context.Context, req dto.TrialBalanceRequest, format reports.ExportFormat) (string, error) {
	switch format {
	case reports.FormatCSV:
		// handled below
	case reports.FormatXLSX, reports.FormatPDF:
		return "", apperrors.NewAppError(apperrors.CodeNotImplemented, string(format)+" export is not yet implemented", nil)
	default:
		return "", apperrors.NewInvalidInput("unknown export format: " + string(format))
	}

	result, err := s.TrialBalance(ctx, req)
	if err != nil {
		return "", err
	}

	csvText, err := reports.TrialBalanceCSV(result)
	if err != nil {
		s.LogError(ctx, err, "Failed to render trial balance CSV",
			slog.String("tenant_id", req.TenantID),
			slog.String("company_id", req.CompanyID))
		return "", apperrors.NewAppError(apperrors.CodeTrialBalanceError, "failed to render trial balance CSV", err)
	}
	return csvText, nil
}

func (s *trialBalanceService) validateRequest(req dto.TrialBalanceRequest) error {
	if req.TenantID == "" || req.CompanyID == "" {
		return apperrors.NewInvalidInput("tenant and company identifiers are required")
	}
	if req.AsOfDate.IsZero() {
		return apperrors.NewInvalidInput("asOf date is required")
	}
	if req.AsOfDate.After(s.now()) {
		return apperrors.NewInvalidInput("asOf date must not be in the future")
	}
	for _, t := range req.AccountTypes {
		if !t.IsValid() {
			return apperrors.NewInvalidInput("unknown account type: " + string(t))
		}
	}
	return nil
}

// resolveFiscalYearStart looks up the fiscal year containing asOf, falling
// back to January 1 of the as-of year when the company has no fiscal
// calendar record.
func (s *trialBalanceService) resolveFiscalYearStart(ctx context.Context, tenantID, companyID string, asOf time.Time) (time.Time, error) {
	start, err := s.fiscalRepo.GetFiscalYearStart(ctx, tenantID, companyID, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.DefaultFiscalYearStart(asOf), nil
		}
		s.LogError(ctx, err, "Failed to resolve fiscal year start",
			slog.String("tenant_id", tenantID),
			slog.String("company_id", companyID))
		return time.Time{}, apperrors.NewAppError(apperrors.CodeTrialBalanceError, "failed to resolve fiscal year start", err)
	}
	return start, nil
}
