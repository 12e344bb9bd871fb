package reports_test

import (
	"testing"

	"github.com/finacct/accounting_reports_app/internal/core/domain"
	"github.com/finacct/accounting_reports_app/internal/core/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cashFlowFixture models a balanced period: a cash sale of 100000, a 25000
// cash expense, a 30000 equipment purchase and 50000 of new borrowing, so the
// cash accounts move by +95000 overall.
func cashFlowFixture() ([]domain.Account, map[string]domain.AccountActivity) {
	accounts := []domain.Account{
		testAccount("acc-cash", "1000", "Cash", domain.Asset, domain.CategoryCash),
		testAccount("acc-equip", "1700", "Equipment", domain.Asset, domain.CategoryFixedAssets),
		testAccount("acc-debt", "2700", "Long Term Debt", domain.Liability, domain.CategoryLongTermDebt),
		testAccount("acc-sales", "4000", "Sales Revenue", domain.Revenue, domain.CategorySalesRevenue),
		testAccount("acc-admin", "6000", "Administrative Expenses", domain.Expense, domain.CategoryAdminExpenses),
	}
	periodActivity := map[string]domain.AccountActivity{
		"acc-cash":  activity("acc-cash", "150000", "55000", domain.DebitNormal),
		"acc-equip": activity("acc-equip", "30000", "0", domain.DebitNormal),
		"acc-debt":  activity("acc-debt", "0", "50000", domain.CreditNormal),
		"acc-sales": activity("acc-sales", "0", "100000", domain.CreditNormal),
		"acc-admin": activity("acc-admin", "25000", "0", domain.DebitNormal),
	}
	return accounts, periodActivity
}

func TestBuildCashFlow_SectionClassification(t *testing.T) {
	accounts, periodActivity := cashFlowFixture()

	result := reports.BuildCashFlow(reports.CashFlowInput{
		TenantID:       "tenant-1",
		CompanyID:      "company-1",
		Period:         domain.DatePeriod{StartDate: date("2024-01-01"), EndDate: date("2024-06-30")},
		Method:         domain.DirectMethod,
		Accounts:       accounts,
		PeriodActivity: periodActivity,
		BeginningCash:  dec("10000"),
		EndingCash:     dec("105000"),
		Classification: reports.DefaultClassification(),
	})

	require.Len(t, result.Sections, 3)
	operating := result.Section(reports.SectionOperating)
	investing := result.Section(reports.SectionInvesting)
	financing := result.Section(reports.SectionFinancing)
	require.NotNil(t, operating)
	require.NotNil(t, investing)
	require.NotNil(t, financing)

	// Revenue inflow minus expense outflow
	assert.True(t, operating.Subtotal.Equal(dec("75000")))
	// Equipment purchase consumes cash
	assert.True(t, investing.Subtotal.Equal(dec("-30000")))
	// New borrowing frees cash
	assert.True(t, financing.Subtotal.Equal(dec("50000")))

	// Both change-in-cash paths agree on consistent data even though they
	// are computed independently
	assert.True(t, result.NetChangeInCash.Equal(dec("95000")))
	assert.True(t, result.EndingCash.Sub(result.BeginningCash).Equal(result.NetChangeInCash))
}

func TestBuildCashFlow_CashAccountsExcludedFromSections(t *testing.T) {
	accounts, periodActivity := cashFlowFixture()

	result := reports.BuildCashFlow(reports.CashFlowInput{
		Method:         domain.DirectMethod,
		Accounts:       accounts,
		PeriodActivity: periodActivity,
		Classification: reports.DefaultClassification(),
	})

	for _, section := range result.Sections {
		for _, line := range section.Lines {
			assert.NotEqual(t, "acc-cash", line.AccountID, "cash account leaked into section %s", section.Name)
		}
	}
}

func TestBuildCashFlow_LiabilityClassification(t *testing.T) {
	accounts := []domain.Account{
		testAccount("acc-ap", "2000", "Accounts Payable", domain.Liability, domain.CategoryAccountsPayable),
		testAccount("acc-debt", "2700", "Long Term Debt", domain.Liability, domain.CategoryLongTermDebt),
	}
	periodActivity := map[string]domain.AccountActivity{
		"acc-ap":   activity("acc-ap", "0", "4000", domain.CreditNormal),
		"acc-debt": activity("acc-debt", "0", "50000", domain.CreditNormal),
	}

	result := reports.BuildCashFlow(reports.CashFlowInput{
		Method:         domain.DirectMethod,
		Accounts:       accounts,
		PeriodActivity: periodActivity,
		Classification: reports.DefaultClassification(),
	})

	operating := result.Section(reports.SectionOperating)
	require.Len(t, operating.Lines, 1)
	assert.Equal(t, "acc-ap", operating.Lines[0].AccountID)

	financing := result.Section(reports.SectionFinancing)
	require.Len(t, financing.Lines, 1)
	assert.Equal(t, "acc-debt", financing.Lines[0].AccountID)
}

func TestBuildCashFlow_DirectMethodHasNoReconciliation(t *testing.T) {
	accounts, periodActivity := cashFlowFixture()

	result := reports.BuildCashFlow(reports.CashFlowInput{
		Method:         domain.DirectMethod,
		Accounts:       accounts,
		PeriodActivity: periodActivity,
		Classification: reports.DefaultClassification(),
	})

	assert.Nil(t, result.Reconciliation)
}

func TestBuildCashFlow_IndirectReconciliation(t *testing.T) {
	accounts := []domain.Account{
		testAccount("acc-ar", "1100", "Accounts Receivable", domain.Asset, domain.CategoryAccountsReceivable),
		testAccount("acc-ap", "2000", "Accounts Payable", domain.Liability, domain.CategoryAccountsPayable),
		testAccount("acc-dep", "6500", "Depreciation Expense", domain.Expense, domain.CategoryAdminExpenses),
	}
	periodActivity := map[string]domain.AccountActivity{
		"acc-ar":  activity("acc-ar", "8000", "0", domain.DebitNormal),
		"acc-ap":  activity("acc-ap", "0", "3000", domain.CreditNormal),
		"acc-dep": activity("acc-dep", "5000", "0", domain.DebitNormal),
	}
	trialBalance := &domain.TrialBalanceResult{NetIncome: dec("20000")}

	result := reports.BuildCashFlow(reports.CashFlowInput{
		Method:               domain.IndirectMethod,
		Accounts:             accounts,
		PeriodActivity:       periodActivity,
		TrialBalance:         trialBalance,
		Classification:       reports.DefaultClassification(),
		AdjustmentClassifier: reports.NewKeywordClassifier(),
	})

	rec := result.Reconciliation
	require.NotNil(t, rec)
	assert.True(t, rec.NetIncome.Equal(dec("20000")))

	// Depreciation is detected by name and added back
	require.Len(t, rec.Adjustments, 1)
	assert.Equal(t, "Depreciation and Amortization", rec.Adjustments[0].Description)
	assert.Equal(t, domain.AdjustmentAdd, rec.Adjustments[0].Type)
	assert.True(t, rec.Adjustments[0].Amount.Equal(dec("5000")))

	// AR increase consumes cash; AP increase frees it
	require.Len(t, rec.WorkingCapitalChanges, 2)
	ar := rec.WorkingCapitalChanges[0]
	assert.Equal(t, "acc-ar", ar.AccountID)
	assert.Equal(t, domain.ChangeIncrease, ar.Direction)
	assert.True(t, ar.CashEffect.Equal(dec("-8000")))

	ap := rec.WorkingCapitalChanges[1]
	assert.Equal(t, "acc-ap", ap.AccountID)
	assert.Equal(t, domain.ChangeIncrease, ap.Direction)
	assert.True(t, ap.CashEffect.Equal(dec("3000")))

	// 20000 + 5000 − 8000 + 3000
	assert.True(t, rec.NetCashFromOperating.Equal(dec("20000")))
}

func TestBuildCashFlow_ComparativeVariance(t *testing.T) {
	accounts := []domain.Account{
		testAccount("acc-sales", "4000", "Sales Revenue", domain.Revenue, domain.CategorySalesRevenue),
	}
	periodActivity := map[string]domain.AccountActivity{
		"acc-sales": activity("acc-sales", "0", "100000", domain.CreditNormal),
	}
	comparativeActivity := map[string]domain.AccountActivity{
		"acc-sales": activity("acc-sales", "0", "50000", domain.CreditNormal),
	}

	result := reports.BuildCashFlow(reports.CashFlowInput{
		Period:              domain.DatePeriod{StartDate: date("2024-01-01"), EndDate: date("2024-06-30")},
		ComparativePeriod:   &domain.DatePeriod{StartDate: date("2023-01-01"), EndDate: date("2023-06-30")},
		Method:              domain.DirectMethod,
		Accounts:            accounts,
		PeriodActivity:      periodActivity,
		ComparativeActivity: comparativeActivity,
		Classification:      reports.DefaultClassification(),
	})

	operating := result.Section(reports.SectionOperating)
	require.Len(t, operating.Lines, 1)
	line := operating.Lines[0]
	require.NotNil(t, line.ComparativeAmount)
	assert.True(t, line.ComparativeAmount.Equal(dec("50000")))
	assert.True(t, line.Variance.Equal(dec("50000")))
	assert.True(t, line.VariancePercent.Equal(dec("100")))
}
