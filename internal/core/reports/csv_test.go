package reports_test

import (
	"strings"
	"testing"

	"github.com/finacct/accounting_reports_app/internal/core/domain"
	"github.com/finacct/accounting_reports_app/internal/core/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrialBalanceCSV(t *testing.T) {
	result := &domain.TrialBalanceResult{
		Rows: []domain.TrialBalanceRow{
			{
				Account: testAccount("acc-cash", "1000", "Cash", domain.Asset, domain.CategoryCash),
				Snapshot: domain.AccountBalanceSnapshot{
					AccountID:      "acc-cash",
					OpeningBalance: dec("250"),
					PeriodDebits:   dec("1000"),
					PeriodCredits:  dec("400"),
					ClosingBalance: dec("850"),
				},
			},
		},
	}

	csvText, err := reports.TrialBalanceCSV(result)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(csvText, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Account Number,Account Name,Account Type,Opening Balance,Period Debits,Period Credits,Closing Balance", lines[0])
	assert.Equal(t, "1000,Cash,ASSET,250.00,1000.00,400.00,850.00", lines[1])
}

func TestTrialBalanceCSV_QuotesSpecialCharacters(t *testing.T) {
	account := testAccount("acc-misc", "1900", `Petty Cash, "Office"`, domain.Asset, domain.CategoryCash)
	result := &domain.TrialBalanceResult{
		Rows: []domain.TrialBalanceRow{
			{Account: account, Snapshot: domain.AccountBalanceSnapshot{AccountID: "acc-misc"}},
		},
	}

	csvText, err := reports.TrialBalanceCSV(result)
	require.NoError(t, err)

	// RFC 4180: the field is quoted and embedded quotes are doubled
	assert.Contains(t, csvText, `"Petty Cash, ""Office"""`)
}

func TestTrialBalanceCSV_EmptyReport(t *testing.T) {
	csvText, err := reports.TrialBalanceCSV(&domain.TrialBalanceResult{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(csvText, "\n"), "\n")
	require.Len(t, lines, 1) // header only
}
