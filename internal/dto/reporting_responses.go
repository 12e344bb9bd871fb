package dto

import (
	"github.com/finacct/accounting_reports_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID      string          `json:"accountID"`
	AccountNumber  string          `json:"accountNumber"`
	AccountName    string          `json:"accountName"`
	AccountType    string          `json:"accountType"`
	Category       string          `json:"category"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	PeriodDebits   decimal.Decimal `json:"periodDebits"`
	PeriodCredits  decimal.Decimal `json:"periodCredits"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	CompanyID       string                     `json:"companyID"`
	AsOf            string                     `json:"asOf"`
	FiscalYearStart string                     `json:"fiscalYearStart"`
	Currency        string                     `json:"currency,omitempty"`
	Rows            []TrialBalanceRowResponse  `json:"rows"`
	Totals          struct {
		Debits  decimal.Decimal `json:"debits"`
		Credits decimal.Decimal `json:"credits"`
	} `json:"totals"`
	TotalsByType map[string]decimal.Decimal `json:"totalsByType"`
	NetIncome    decimal.Decimal            `json:"netIncome"`
	IsBalanced   bool                       `json:"isBalanced"`
}

// StatementLineResponse represents one classified account line in a statement
type StatementLineResponse struct {
	AccountID         string           `json:"accountID"`
	AccountNumber     string           `json:"accountNumber"`
	AccountName       string           `json:"accountName"`
	Amount            decimal.Decimal  `json:"amount"`
	ComparativeAmount *decimal.Decimal `json:"comparativeAmount,omitempty"`
	Variance          *decimal.Decimal `json:"variance,omitempty"`
	VariancePercent   *decimal.Decimal `json:"variancePercent,omitempty"`
}

// StatementSectionResponse represents a named statement section with subtotal
type StatementSectionResponse struct {
	Name                string                  `json:"name"`
	Lines               []StatementLineResponse `json:"lines"`
	Subtotal            decimal.Decimal         `json:"subtotal"`
	ComparativeSubtotal *decimal.Decimal        `json:"comparativeSubtotal,omitempty"`
	Variance            *decimal.Decimal        `json:"variance,omitempty"`
	VariancePercent     *decimal.Decimal        `json:"variancePercent,omitempty"`
}

// PeriodResponse represents a report date window
type PeriodResponse struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	CompanyID              string                     `json:"companyID"`
	Period                 PeriodResponse             `json:"period"`
	ComparativePeriod      *PeriodResponse            `json:"comparativePeriod,omitempty"`
	Currency               string                     `json:"currency,omitempty"`
	Sections               []StatementSectionResponse `json:"sections"`
	Metrics                domain.ProfitLossMetrics   `json:"metrics"`
	ComparativeMetrics     *domain.ProfitLossMetrics  `json:"comparativeMetrics,omitempty"`
	MetricsVariance        *domain.ProfitLossMetrics  `json:"metricsVariance,omitempty"`
	MetricsVariancePercent *domain.ProfitLossMetrics  `json:"metricsVariancePercent,omitempty"`
}

// CashFlowResponse represents the cash flow statement response
type CashFlowResponse struct {
	CompanyID         string                         `json:"companyID"`
	Period            PeriodResponse                 `json:"period"`
	ComparativePeriod *PeriodResponse                `json:"comparativePeriod,omitempty"`
	Method            string                         `json:"method"`
	Currency          string                         `json:"currency,omitempty"`
	Sections          []StatementSectionResponse     `json:"sections"`
	BeginningCash     decimal.Decimal                `json:"beginningCash"`
	EndingCash        decimal.Decimal                `json:"endingCash"`
	NetChangeInCash   decimal.Decimal                `json:"netChangeInCash"`
	Reconciliation    *domain.CashFlowReconciliation `json:"reconciliation,omitempty"`
}

// ToTrialBalanceResponse converts a domain trial balance result to a DTO response
func ToTrialBalanceResponse(result *domain.TrialBalanceResult, currency string) TrialBalanceResponse {
	response := TrialBalanceResponse{
		CompanyID:       result.CompanyID,
		AsOf:            result.AsOfDate.Format("2006-01-02"),
		FiscalYearStart: result.FiscalYearStart.Format("2006-01-02"),
		Currency:        currency,
		Rows:            make([]TrialBalanceRowResponse, len(result.Rows)),
		TotalsByType:    make(map[string]decimal.Decimal, len(result.TotalsByType)),
		NetIncome:       result.NetIncome,
		IsBalanced:      result.IsBalanced,
	}

	for i, row := range result.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:      row.Account.AccountID,
			AccountNumber:  row.Account.AccountNumber,
			AccountName:    row.Account.Name,
			AccountType:    string(row.Account.AccountType),
			Category:       string(row.Account.Category),
			OpeningBalance: row.Snapshot.OpeningBalance,
			PeriodDebits:   row.Snapshot.PeriodDebits,
			PeriodCredits:  row.Snapshot.PeriodCredits,
			ClosingBalance: row.Snapshot.ClosingBalance,
		}
	}

	for accountType, total := range result.TotalsByType {
		response.TotalsByType[string(accountType)] = total
	}

	response.Totals.Debits = result.TotalDebits
	response.Totals.Credits = result.TotalCredits

	return response
}

// ToProfitAndLossResponse converts a domain P&L result to a DTO response
func ToProfitAndLossResponse(result *domain.ProfitLossResult, currency string) ProfitAndLossResponse {
	response := ProfitAndLossResponse{
		CompanyID:              result.CompanyID,
		Period:                 toPeriodResponse(result.Period),
		ComparativePeriod:      toOptionalPeriodResponse(result.ComparativePeriod),
		Currency:               currency,
		Sections:               toSectionResponses(result.Sections),
		Metrics:                result.Metrics,
		ComparativeMetrics:     result.ComparativeMetrics,
		MetricsVariance:        result.MetricsVariance,
		MetricsVariancePercent: result.MetricsVariancePercent,
	}

	return response
}

// ToCashFlowResponse converts a domain cash flow result to a DTO response
func ToCashFlowResponse(result *domain.CashFlowResult, currency string) CashFlowResponse {
	response := CashFlowResponse{
		CompanyID:         result.CompanyID,
		Period:            toPeriodResponse(result.Period),
		ComparativePeriod: toOptionalPeriodResponse(result.ComparativePeriod),
		Method:            string(result.Method),
		Currency:          currency,
		Sections:          toSectionResponses(result.Sections),
		BeginningCash:     result.BeginningCash,
		EndingCash:        result.EndingCash,
		NetChangeInCash:   result.NetChangeInCash,
		Reconciliation:    result.Reconciliation,
	}

	return response
}

func toPeriodResponse(period domain.DatePeriod) PeriodResponse {
	return PeriodResponse{
		FromDate: period.StartDate.Format("2006-01-02"),
		ToDate:   period.EndDate.Format("2006-01-02"),
	}
}

func toOptionalPeriodResponse(period *domain.DatePeriod) *PeriodResponse {
	if period == nil {
		return nil
	}
	p := toPeriodResponse(*period)
	return &p
}

func toSectionResponses(sections []domain.StatementSection) []StatementSectionResponse {
	out := make([]StatementSectionResponse, len(sections))
	for i, section := range sections {
		lines := make([]StatementLineResponse, len(section.Lines))
		for j, line := range section.Lines {
			lines[j] = StatementLineResponse{
				AccountID:         line.AccountID,
				AccountNumber:     line.AccountNumber,
				AccountName:       line.AccountName,
				Amount:            line.CurrentAmount,
				ComparativeAmount: line.ComparativeAmount,
				Variance:          line.Variance,
				VariancePercent:   line.VariancePercent,
			}
		}
		out[i] = StatementSectionResponse{
			Name:                section.Name,
			Lines:               lines,
			Subtotal:            section.Subtotal,
			ComparativeSubtotal: section.ComparativeSubtotal,
			Variance:            section.Variance,
			VariancePercent:     section.VariancePercent,
		}
	}
	return out
}
