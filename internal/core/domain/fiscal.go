package domain

import "time"

// FiscalCalendar records a company's fiscal year. Companies without a
// calendar record default to calendar years (fiscal year starts January 1).
type FiscalCalendar struct {
	FiscalCalendarID string    `json:"fiscalCalendarID"`
	TenantID         string    `json:"tenantID"`
	CompanyID        string    `json:"companyID"`
	FiscalYear       int       `json:"fiscalYear"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	AuditFields
}

// DefaultFiscalYearStart returns January 1 of asOf's year, the fallback when
// no fiscal calendar record covers the date.
func DefaultFiscalYearStart(asOf time.Time) time.Time {
	return time.Date(asOf.Year(), time.January, 1, 0, 0, 0, 0, asOf.Location())
}
