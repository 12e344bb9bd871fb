package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finacct/accounting_reports_app/internal/apperrors"
	portsrepo "github.com/finacct/accounting_reports_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// fiscalRepository implements the FiscalCalendarRepository interface
type fiscalRepository struct {
	BaseRepository
}

// newFiscalRepository creates a new fiscal calendar repository
func newFiscalRepository(db *pgxpool.Pool) portsrepo.FiscalCalendarRepository {
	return &fiscalRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetFiscalYearStart returns the start of the fiscal year containing asOf.
// Returns apperrors.ErrNotFound when no calendar covers the date; callers
// fall back to a calendar-year default.
func (r *fiscalRepository) GetFiscalYearStart(ctx context.Context, tenantID, companyID string, asOf time.Time) (time.Time, error) {
	sql := `
		SELECT start_date
		FROM fiscal_calendar
		WHERE tenant_id = $1
			AND company_id = $2
			AND start_date <= $3
			AND end_date >= $3
		ORDER BY start_date DESC
		LIMIT 1
	`

	var startDate time.Time
	err := r.Pool.QueryRow(ctx, sql, tenantID, companyID, asOf).Scan(&startDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, apperrors.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("error querying fiscal calendar: %w", err)
	}

	return startDate, nil
}
