package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/finacct/accounting_reports_app/internal/apperrors"
	"github.com/finacct/accounting_reports_app/internal/core/domain"
	portsrepo "github.com/finacct/accounting_reports_app/internal/core/ports/repositories"
	portssvc "github.com/finacct/accounting_reports_app/internal/core/ports/services"
	"github.com/finacct/accounting_reports_app/internal/core/reports"
	"github.com/finacct/accounting_reports_app/internal/dto"
)

// profitLossService implements the ProfitLossSvc interface.
type profitLossService struct {
	BaseService
	trialBalanceSvc portssvc.TrialBalanceSvc
	aggregator      portssvc.LedgerAggregatorSvc
	classification  reports.Classification
	now             func() time.Time
}

// ProfitLossServiceOption is a functional option for configuring the
// profit & loss service.
type ProfitLossServiceOption func(*profitLossService)

// WithProfitLossClassification overrides the stock classification tables.
func WithProfitLossClassification(classification reports.Classification) ProfitLossServiceOption {
	return func(s *profitLossService) {
		s.classification = classification
	}
}

// WithProfitLossClock overrides the wall clock used for future-date checks.
func WithProfitLossClock(now func() time.Time) ProfitLossServiceOption {
	return func(s *profitLossService) {
		s.now = now
	}
}

// NewProfitLossService creates a new profit & loss service with the provided options.
func NewProfitLossService(trialBalanceSvc portssvc.TrialBalanceSvc, aggregator portssvc.LedgerAggregatorSvc, options ...ProfitLossServiceOption) portssvc.ProfitLossSvc {
	svc := &profitLossService{
		trialBalanceSvc: trialBalanceSvc,
		aggregator:      aggregator,
		classification:  reports.DefaultClassification(),
		now:             time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure profitLossService implements the ProfitLossSvc interface
var _ portssvc.ProfitLossSvc = (*profitLossService)(nil)

// ProfitAndLoss generates a profit & loss report for the request period.
func (s *profitLossService) ProfitAndLoss(ctx context.Context, req dto.ProfitLossRequest) (*domain.ProfitLossResult, error) {
	if err := validatePeriod(req.TenantID, req.CompanyID, req.StartDate, req.EndDate, req.ComparativePeriod, s.now()); err != nil {
		return nil, err
	}

	// The trial balance anchors the report: it supplies the account
	// metadata the classifier keys on, while the period activity below
	// supplies the flow figures.
	trialBalance, err := s.trialBalanceSvc.TrialBalance(ctx, dto.TrialBalanceRequest{
		TenantID:              req.TenantID,
		CompanyID:             req.CompanyID,
		AsOfDate:              req.EndDate,
		IncludePeriodActivity: true,
		IncludeZeroBalances:   true,
	})
	if err != nil {
		return nil, err
	}

	if req.ComparativePeriod != nil {
		if _, err := s.trialBalanceSvc.TrialBalance(ctx, dto.TrialBalanceRequest{
			TenantID:              req.TenantID,
			CompanyID:             req.CompanyID,
			AsOfDate:              req.ComparativePeriod.EndDate,
			IncludePeriodActivity: true,
			IncludeZeroBalances:   true,
		}); err != nil {
			return nil, apperrors.NewAppError(apperrors.CodeComparativeTrialBalanceError,
				"failed to build comparative trial balance", err)
		}
	}

	// Period flow, not cumulative position: an independent query scoped
	// strictly to the report window.
	plTypes := []domain.AccountType{domain.Revenue, domain.Expense}
	periodActivity, err := s.aggregateWindow(ctx, req.TenantID, req.CompanyID, req.StartDate, req.EndDate, plTypes)
	if err != nil {
		return nil, err
	}

	var comparativeActivity map[string]domain.AccountActivity
	if req.ComparativePeriod != nil {
		comparativeActivity, err = s.aggregateWindow(ctx, req.TenantID, req.CompanyID,
			req.ComparativePeriod.StartDate, req.ComparativePeriod.EndDate, plTypes)
		if err != nil {
			return nil, err
		}
	}

	result := reports.BuildProfitAndLoss(reports.ProfitLossInput{
		TenantID:            req.TenantID,
		CompanyID:           req.CompanyID,
		Period:              domain.DatePeriod{StartDate: req.StartDate, EndDate: req.EndDate},
		ComparativePeriod:   req.ComparativePeriod,
		Accounts:            accountsFromTrialBalance(trialBalance),
		PeriodActivity:      periodActivity,
		ComparativeActivity: comparativeActivity,
		Classification:      s.classification,
	})

	s.LogInfo(ctx, "Profit and loss report generated successfully",
		slog.String("tenant_id", req.TenantID),
		slog.String("company_id", req.CompanyID),
		slog.String("from", req.StartDate.Format(time.DateOnly)),
		slog.String("to", req.EndDate.Format(time.DateOnly)),
		slog.String("net_income", result.Metrics.NetIncomeBeforeTax.String()))
	return result, nil
}

func (s *profitLossService) aggregateWindow(ctx context.Context, tenantID, companyID string, from, to time.Time, accountTypes []domain.AccountType) (map[string]domain.AccountActivity, error) {
	activity, err := s.aggregator.AggregateActivity(ctx, portsrepo.ActivityQuery{
		TenantID:     tenantID,
		CompanyID:    companyID,
		From:         &from,
		To:           to,
		AccountTypes: accountTypes,
	})
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeInvalidInput {
			return nil, err
		}
		return nil, apperrors.NewAppError(apperrors.CodeProfitLossError, "failed to aggregate period activity", err)
	}
	return activity, nil
}

// validatePeriod performs the shared period-report input checks. Validation
// short-circuits with INVALID_INPUT before any query is issued.
func validatePeriod(tenantID, companyID string, start, end time.Time, comparative *domain.DatePeriod, now time.Time) error {
	if tenantID == "" || companyID == "" {
		return apperrors.NewInvalidInput("tenant and company identifiers are required")
	}
	if start.IsZero() || end.IsZero() {
		return apperrors.NewInvalidInput("period start and end dates are required")
	}
	if start.After(end) {
		return apperrors.NewInvalidInput("period start must not be after period end")
	}
	if end.After(now) {
		return apperrors.NewInvalidInput("period end must not be in the future")
	}
	if comparative != nil {
		if comparative.StartDate.IsZero() || comparative.EndDate.IsZero() {
			return apperrors.NewInvalidInput("comparative period start and end dates are required")
		}
		if comparative.StartDate.After(comparative.EndDate) {
			return apperrors.NewInvalidInput("comparative period start must not be after its end")
		}
	}
	return nil
}

// accountsFromTrialBalance extracts the account metadata carried on the
// trial balance rows.
func accountsFromTrialBalance(result *domain.TrialBalanceResult) []domain.Account {
	accounts := make([]domain.Account, 0, len(result.Rows))
	for _, row := range result.Rows {
		accounts = append(accounts, row.Account)
	}
	return accounts
}
