package reports

import (
	"sort"

	"github.com/finacct/accounting_reports_app/internal/core/domain"
	"github.com/finacct/accounting_reports_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ProfitLossInput carries everything the P&L builder needs. PeriodActivity
// holds debits/credits strictly within the report period for REVENUE and
// EXPENSE accounts — distinct from the trial balance's cumulative closing
// balances, because the P&L reports period flow, not cumulative position.
type ProfitLossInput struct {
	TenantID            string
	CompanyID           string
	Period              domain.DatePeriod
	ComparativePeriod   *domain.DatePeriod
	Accounts            []domain.Account
	PeriodActivity      map[string]domain.AccountActivity
	ComparativeActivity map[string]domain.AccountActivity
	Classification      Classification
}

// plSectionOrder fixes the section sequence in the report output.
var plSectionOrder = []PLSection{
	PLRevenue,
	PLCostOfSales,
	PLOperatingExpenses,
	PLOtherIncome,
	PLOtherExpenses,
}

// BuildProfitAndLoss classifies revenue and expense accounts into sections,
// computes subtotals, comparative variances and the derived metrics.
// Pure function of its input.
func BuildProfitAndLoss(in ProfitLossInput) *domain.ProfitLossResult {
	withComparative := in.ComparativePeriod != nil

	sections := make(map[PLSection]*domain.StatementSection, len(plSectionOrder))
	for _, name := range plSectionOrder {
		sections[name] = &domain.StatementSection{Name: string(name), Subtotal: decimal.Zero}
	}

	for _, account := range in.Accounts {
		if account.IsHeader {
			continue
		}
		if account.AccountType != domain.Revenue && account.AccountType != domain.Expense {
			continue
		}
		sectionName, ok := in.Classification.PLSectionFor(account)
		if !ok {
			// Unmapped category: excluded by design, not an error.
			continue
		}

		activity := in.PeriodActivity[account.AccountID]
		current := accounting.NetActivity(activity.TotalDebits, activity.TotalCredits, account.NormalBalance)

		line := domain.StatementLine{
			AccountID:     account.AccountID,
			AccountNumber: account.AccountNumber,
			AccountName:   account.Name,
			CurrentAmount: current,
		}

		if withComparative {
			compActivity := in.ComparativeActivity[account.AccountID]
			comparative := accounting.NetActivity(compActivity.TotalDebits, compActivity.TotalCredits, account.NormalBalance)
			variance := accounting.Variance(current, comparative)
			variancePct := accounting.VariancePercent(current, comparative)
			line.ComparativeAmount = &comparative
			line.Variance = &variance
			line.VariancePercent = &variancePct
		}

		if current.IsZero() && (line.ComparativeAmount == nil || line.ComparativeAmount.IsZero()) {
			continue
		}

		section := sections[sectionName]
		section.Lines = append(section.Lines, line)
		section.Subtotal = section.Subtotal.Add(current)
		if withComparative {
			addComparative(section, *line.ComparativeAmount)
		}
	}

	result := &domain.ProfitLossResult{
		TenantID:          in.TenantID,
		CompanyID:         in.CompanyID,
		Period:            in.Period,
		ComparativePeriod: in.ComparativePeriod,
	}
	for _, name := range plSectionOrder {
		section := sections[name]
		sort.Slice(section.Lines, func(i, j int) bool {
			return section.Lines[i].AccountNumber < section.Lines[j].AccountNumber
		})
		finalizeSectionVariance(section, withComparative)
		result.Sections = append(result.Sections, *section)
	}

	result.Metrics = buildMetrics(result)
	if withComparative {
		comparative := buildComparativeMetrics(result)
		variance, variancePct := metricsVariance(result.Metrics, comparative)
		result.ComparativeMetrics = &comparative
		result.MetricsVariance = &variance
		result.MetricsVariancePercent = &variancePct
	}
	return result
}

// buildMetrics derives the summary figures from the section subtotals, in
// strict order: gross profit, operating income, then the net income figures.
func buildMetrics(result *domain.ProfitLossResult) domain.ProfitLossMetrics {
	revenue := result.Section(SectionRevenue).Subtotal
	costOfSales := result.Section(SectionCostOfSales).Subtotal
	operatingExpenses := result.Section(SectionOperatingExpenses).Subtotal
	otherIncome := result.Section(SectionOtherIncome).Subtotal
	otherExpenses := result.Section(SectionOtherExpenses).Subtotal

	grossProfit := revenue.Sub(costOfSales)
	operatingIncome := grossProfit.Sub(operatingExpenses)
	netIncomeBeforeTax := operatingIncome.Add(otherIncome).Sub(otherExpenses)

	return domain.ProfitLossMetrics{
		TotalRevenue:       revenue,
		TotalCostOfSales:   costOfSales,
		GrossProfit:        grossProfit,
		OperatingExpenses:  operatingExpenses,
		OperatingIncome:    operatingIncome,
		OtherIncome:        otherIncome,
		OtherExpenses:      otherExpenses,
		NetIncomeBeforeTax: netIncomeBeforeTax,
		// Tax computation is an unimplemented extension point; after-tax
		// income is an explicit pass-through of the pre-tax figure.
		NetIncomeAfterTax:     netIncomeBeforeTax,
		GrossProfitMargin:     accounting.PercentOf(grossProfit, revenue),
		OperatingIncomeMargin: accounting.PercentOf(operatingIncome, revenue),
		NetIncomeMargin:       accounting.PercentOf(netIncomeBeforeTax, revenue),
	}
}

// buildComparativeMetrics recomputes the metrics block over the comparative
// subtotals.
func buildComparativeMetrics(result *domain.ProfitLossResult) domain.ProfitLossMetrics {
	subtotal := func(name string) decimal.Decimal {
		section := result.Section(name)
		if section == nil || section.ComparativeSubtotal == nil {
			return decimal.Zero
		}
		return *section.ComparativeSubtotal
	}

	revenue := subtotal(SectionRevenue)
	costOfSales := subtotal(SectionCostOfSales)
	operatingExpenses := subtotal(SectionOperatingExpenses)
	otherIncome := subtotal(SectionOtherIncome)
	otherExpenses := subtotal(SectionOtherExpenses)

	grossProfit := revenue.Sub(costOfSales)
	operatingIncome := grossProfit.Sub(operatingExpenses)
	netIncomeBeforeTax := operatingIncome.Add(otherIncome).Sub(otherExpenses)

	return domain.ProfitLossMetrics{
		TotalRevenue:          revenue,
		TotalCostOfSales:      costOfSales,
		GrossProfit:           grossProfit,
		OperatingExpenses:     operatingExpenses,
		OperatingIncome:       operatingIncome,
		OtherIncome:           otherIncome,
		OtherExpenses:         otherExpenses,
		NetIncomeBeforeTax:    netIncomeBeforeTax,
		NetIncomeAfterTax:     netIncomeBeforeTax,
		GrossProfitMargin:     accounting.PercentOf(grossProfit, revenue),
		OperatingIncomeMargin: accounting.PercentOf(operatingIncome, revenue),
		NetIncomeMargin:       accounting.PercentOf(netIncomeBeforeTax, revenue),
	}
}

// metricsVariance computes field-wise current − comparative and variance
// percent blocks.
func metricsVariance(current, comparative domain.ProfitLossMetrics) (domain.ProfitLossMetrics, domain.ProfitLossMetrics) {
	variance := domain.ProfitLossMetrics{
		TotalRevenue:          accounting.Variance(current.TotalRevenue, comparative.TotalRevenue),
		TotalCostOfSales:      accounting.Variance(current.TotalCostOfSales, comparative.TotalCostOfSales),
		GrossProfit:           accounting.Variance(current.GrossProfit, comparative.GrossProfit),
		OperatingExpenses:     accounting.Variance(current.OperatingExpenses, comparative.OperatingExpenses),
		OperatingIncome:       accounting.Variance(current.OperatingIncome, comparative.OperatingIncome),
		OtherIncome:           accounting.Variance(current.OtherIncome, comparative.OtherIncome),
		OtherExpenses:         accounting.Variance(current.OtherExpenses, comparative.OtherExpenses),
		NetIncomeBeforeTax:    accounting.Variance(current.NetIncomeBeforeTax, comparative.NetIncomeBeforeTax),
		NetIncomeAfterTax:     accounting.Variance(current.NetIncomeAfterTax, comparative.NetIncomeAfterTax),
		GrossProfitMargin:     accounting.Variance(current.GrossProfitMargin, comparative.GrossProfitMargin),
		OperatingIncomeMargin: accounting.Variance(current.OperatingIncomeMargin, comparative.OperatingIncomeMargin),
		NetIncomeMargin:       accounting.Variance(current.NetIncomeMargin, comparative.NetIncomeMargin),
	}
	variancePct := domain.ProfitLossMetrics{
		TotalRevenue:          accounting.VariancePercent(current.TotalRevenue, comparative.TotalRevenue),
		TotalCostOfSales:      accounting.VariancePercent(current.TotalCostOfSales, comparative.TotalCostOfSales),
		GrossProfit:           accounting.VariancePercent(current.GrossProfit, comparative.GrossProfit),
		OperatingExpenses:     accounting.VariancePercent(current.OperatingExpenses, comparative.OperatingExpenses),
		OperatingIncome:       accounting.VariancePercent(current.OperatingIncome, comparative.OperatingIncome),
		OtherIncome:           accounting.VariancePercent(current.OtherIncome, comparative.OtherIncome),
		OtherExpenses:         accounting.VariancePercent(current.OtherExpenses, comparative.OtherExpenses),
		NetIncomeBeforeTax:    accounting.VariancePercent(current.NetIncomeBeforeTax, comparative.NetIncomeBeforeTax),
		NetIncomeAfterTax:     accounting.VariancePercent(current.NetIncomeAfterTax, comparative.NetIncomeAfterTax),
		GrossProfitMargin:     accounting.VariancePercent(current.GrossProfitMargin, comparative.GrossProfitMargin),
		OperatingIncomeMargin: accounting.VariancePercent(current.OperatingIncomeMargin, comparative.OperatingIncomeMargin),
		NetIncomeMargin:       accounting.VariancePercent(current.NetIncomeMargin, comparative.NetIncomeMargin),
	}
	return variance, variancePct
}

// addComparative accumulates a line's comparative amount into the section.
func addComparative(section *domain.StatementSection, amount decimal.Decimal) {
	if section.ComparativeSubtotal == nil {
		zero := decimal.Zero
		section.ComparativeSubtotal = &zero
	}
	sum := section.ComparativeSubtotal.Add(amount)
	section.ComparativeSubtotal = &sum
}

// finalizeSectionVariance fills the section-level variance figures once all
// lines are accumulated.
func finalizeSectionVariance(section *domain.StatementSection, withComparative bool) {
	if !withComparative {
		return
	}
	if section.ComparativeSubtotal == nil {
		zero := decimal.Zero
		section.ComparativeSubtotal = &zero
	}
	variance := accounting.Variance(section.Subtotal, *section.ComparativeSubtotal)
	variancePct := accounting.VariancePercent(section.Subtotal, *section.ComparativeSubtotal)
	section.Variance = &variance
	section.VariancePercent = &variancePct
}
