package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/finacct/accounting_reports_app/internal/apperrors"
	"github.com/finacct/accounting_reports_app/internal/core/domain"
	portsrepo "github.com/finacct/accounting_reports_app/internal/core/ports/repositories"
	portssvc "github.com/finacct/accounting_reports_app/internal/core/ports/services"
)

// ledgerAggregatorService implements the LedgerAggregatorSvc interface.
// It is the leaf of the report pipeline: every statement generator obtains
// its per-account activity totals through this service.
type ledgerAggregatorService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepository
}

// NewLedgerAggregatorService creates a new ledger aggregator service.
func NewLedgerAggregatorService(repo portsrepo.LedgerRepository) portssvc.LedgerAggregatorSvc {
	return &ledgerAggregatorService{
		ledgerRepo: repo,
	}
}

// Ensure ledgerAggregatorService implements the LedgerAggregatorSvc interface
var _ portssvc.LedgerAggregatorSvc = (*ledgerAggregatorService)(nil)

// AggregateActivity returns per-account debit/credit/net-activity totals for
// the query window. Only POSTED journal lines are included; draft and voided
// entries never reach the result. Query failures surface as a typed
// LEDGER_QUERY_ERROR identifying the window that failed.
func (s *ledgerAggregatorService) AggregateActivity(ctx context.Context, query portsrepo.ActivityQuery) (map[string]domain.AccountActivity, error) {
	if query.TenantID == "" || query.CompanyID == "" {
		return nil, apperrors.NewInvalidInput("tenant and company identifiers are required")
	}
	if query.From != nil && query.From.After(query.To) {
		return nil, apperrors.NewInvalidInput("activity window start must not be after its end")
	}

	activity, err := s.ledgerRepo.GetAccountActivity(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate ledger activity",
			slog.String("tenant_id", query.TenantID),
			slog.String("company_id", query.CompanyID),
			slog.String("window_end", query.To.Format(time.DateOnly)))
		return nil, apperrors.NewAppError(apperrors.CodeLedgerQueryError,
			"failed to aggregate ledger activity for window ending "+query.To.Format(time.DateOnly), err)
	}

	s.LogDebug(ctx, "Ledger activity aggregated",
		slog.String("tenant_id", query.TenantID),
		slog.String("company_id", query.CompanyID),
		slog.Int("account_count", len(activity)))
	return activity, nil
}
