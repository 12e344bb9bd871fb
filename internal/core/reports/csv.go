package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/finacct/accounting_reports_app/internal/core/domain"
)

// ExportFormat names a trial balance export format.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "CSV"
	FormatXLSX ExportFormat = "XLSX"
	FormatPDF  ExportFormat = "PDF"
)

// trialBalanceCSVHeader is the fixed column set of the CSV export.
var trialBalanceCSVHeader = []string{
	"Account Number",
	"Account Name",
	"Account Type",
	"Opening Balance",
	"Period Debits",
	"Period Credits",
	"Closing Balance",
}

// TrialBalanceCSV renders a trial balance as CSV text: header row plus one
// row per account, amounts formatted to two decimals. Fields containing
// separators or quotes are quoted per RFC 4180.
func TrialBalanceCSV(result *domain.TrialBalanceResult) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(trialBalanceCSVHeader); err != nil {
		return "", fmt.Errorf("error writing trial balance CSV header: %w", err)
	}

	for _, row := range result.Rows {
		record := []string{
			row.Account.AccountNumber,
			row.Account.Name,
			string(row.Account.AccountType),
			row.Snapshot.OpeningBalance.StringFixed(2),
			row.Snapshot.PeriodDebits.StringFixed(2),
			row.Snapshot.PeriodCredits.StringFixed(2),
			row.Snapshot.ClosingBalance.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing trial balance CSV row for account %s: %w", row.Account.AccountID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing trial balance CSV: %w", err)
	}
	return buf.String(), nil
}
