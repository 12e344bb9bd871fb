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

// cashFlowService implements the CashFlowSvc interface.
type cashFlowService struct {
	BaseService
	trialBalanceSvc portssvc.TrialBalanceSvc
	aggregator      portssvc.LedgerAggregatorSvc
	ledgerRepo      portsrepo.LedgerRepository
	classification  reports.Classification
	classifier      reports.AdjustmentClassifier
	now             func() time.Time
}

// CashFlowServiceOption is a functional option for configuring the cash
// flow service.
type CashFlowServiceOption func(*cashFlowService)

// WithCashFlowClassification overrides the stock classification tables.
func WithCashFlowClassification(classification reports.Classification) CashFlowServiceOption {
	return func(s *cashFlowService) {
		s.classification = classification
	}
}

// WithAdjustmentClassifier replaces the keyword-based non-cash adjustment
// detector, e.g. with a metadata-tag-driven classifier.
func WithAdjustmentClassifier(classifier reports.AdjustmentClassifier) CashFlowServiceOption {
	return func(s *cashFlowService) {
		s.classifier = classifier
	}
}

// WithCashFlowClock overrides the wall clock used for future-date checks.
func WithCashFlowClock(now func() time.Time) CashFlowServiceOption {
	return func(s *cashFlowService) {
		s.now = now
	}
}

// NewCashFlowService creates a new cash flow service with the provided options.
func NewCashFlowService(trialBalanceSvc portssvc.TrialBalanceSvc, aggregator portssvc.LedgerAggregatorSvc, ledgerRepo portsrepo.LedgerRepository, options ...CashFlowServiceOption) portssvc.CashFlowSvc {
	svc := &cashFlowService{
		trialBalanceSvc: trialBalanceSvc,
		aggregator:      aggregator,
		ledgerRepo:      ledgerRepo,
		classification:  reports.DefaultClassification(),
		classifier:      reports.NewKeywordClassifier(),
		now:             time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure cashFlowService implements the CashFlowSvc interface
var _ portssvc.CashFlowSvc = (*cashFlowService)(nil)

// CashFlow generates a cash flow statement for the request period.
func (s *cashFlowService) CashFlow(ctx context.Context, req dto.CashFlowRequest) (*domain.CashFlowResult, error) {
	if !req.Method.IsValid() {
		return nil, apperrors.NewInvalidInput("method must be DIRECT or INDIRECT")
	}
	if err := validatePeriod(req.TenantID, req.CompanyID, req.StartDate, req.EndDate, req.ComparativePeriod, s.now()); err != nil {
		return nil, err
	}

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

	// Period activity across the whole chart: wider than the P&L's
	// revenue/expense-only scope because investing and financing movements
	// live on balance sheet accounts.
	periodActivity, err := s.aggregateWindow(ctx, req.TenantID, req.CompanyID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	var comparativeActivity map[string]domain.AccountActivity
	if req.ComparativePeriod != nil {
		comparativeActivity, err = s.aggregateWindow(ctx, req.TenantID, req.CompanyID,
			req.ComparativePeriod.StartDate, req.ComparativePeriod.EndDate)
		if err != nil {
			return nil, err
		}
	}

	// Beginning/ending cash come from a dedicated cumulative query over
	// cash-category accounts, independent of section classification.
	beginningCash, endingCash, err := s.ledgerRepo.GetCashBalances(ctx, req.TenantID, req.CompanyID, req.StartDate, req.EndDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch cash balances",
			slog.String("tenant_id", req.TenantID),
			slog.String("company_id", req.CompanyID))
		return nil, apperrors.NewAppError(apperrors.CodeCashFlowError, "failed to fetch cash balances", err)
	}

	result := reports.BuildCashFlow(reports.CashFlowInput{
		TenantID:             req.TenantID,
		CompanyID:            req.CompanyID,
		Period:               domain.DatePeriod{StartDate: req.StartDate, EndDate: req.EndDate},
		ComparativePeriod:    req.ComparativePeriod,
		Method:               req.Method,
		Accounts:             accountsFromTrialBalance(trialBalance),
		PeriodActivity:       periodActivity,
		ComparativeActivity:  comparativeActivity,
		TrialBalance:         trialBalance,
		BeginningCash:        beginningCash,
		EndingCash:           endingCash,
		Classification:       s.classification,
		AdjustmentClassifier: s.classifier,
	})

	s.LogInfo(ctx, "Cash flow report generated successfully",
		slog.String("tenant_id", req.TenantID),
		slog.String("company_id", req.CompanyID),
		slog.String("method", string(req.Method)),
		slog.String("net_change_in_cash", result.NetChangeInCash.String()))
	return result, nil
}

func (s *cashFlowService) aggregateWindow(ctx context.Context, tenantID, companyID string, from, to time.Time) (map[string]domain.AccountActivity, error) {
	activity, err := s.aggregator.AggregateActivity(ctx, portsrepo.ActivityQuery{
		TenantID:  tenantID,
		CompanyID: companyID,
		From:      &from,
		To:        to,
	})
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeInvalidInput {
			return nil, err
		}
		return nil, apperrors.NewAppError(apperrors.CodeCashFlowError, "failed to aggregate period activity", err)
	}
	return activity, nil
}
