// Package reports contains the pure report builders: trial balance,
// profit & loss and cash flow construction over pre-aggregated ledger
// activity. Everything here is a deterministic function of its inputs;
// data access and validation live in the services layer.
package reports

import (
	"github.com/finacct/accounting_reports_app/internal/core/domain"
)

// Statement section names as they appear in report output.
const (
	SectionRevenue           = "Revenue"
	SectionCostOfSales       = "Cost of Sales"
	SectionOperatingExpenses = "Operating Expenses"
	SectionOtherIncome       = "Other Income"
	SectionOtherExpenses     = "Other Expenses"

	SectionOperating = "Operating Activities"
	SectionInvesting = "Investing Activities"
	SectionFinancing = "Financing Activities"
)

// PLSection identifies a profit & loss section.
type PLSection string

const (
	PLRevenue           PLSection = SectionRevenue
	PLCostOfSales       PLSection = SectionCostOfSales
	PLOperatingExpenses PLSection = SectionOperatingExpenses
	PLOtherIncome       PLSection = SectionOtherIncome
	PLOtherExpenses     PLSection = SectionOtherExpenses
)

// Classification holds the lookup tables that drive account classification
// in the statement generators. It is injected into the generators as plain
// configuration so the rules can be versioned, tested and extended without
// touching the algorithms.
type Classification struct {
	// PLSections maps an account category to its profit & loss section.
	// Categories absent from the map are excluded from the P&L (not an
	// error; the tables are the maintainers' responsibility).
	PLSections map[domain.AccountCategory]PLSection

	// InvestingCategories lists asset categories classified as investing
	// activities (fixed assets, intangibles, investments).
	InvestingCategories map[domain.AccountCategory]bool

	// OperatingLiabilities lists liability categories that remain classified
	// as operating by exclusion (payables, accruals, taxes payable).
	// Liability accounts default to financing unless listed here.
	OperatingLiabilities map[domain.AccountCategory]bool

	// WorkingCapital lists the categories included in the indirect-method
	// working-capital reconciliation.
	WorkingCapital map[domain.AccountCategory]bool
}

// DefaultClassification returns the stock ruleset.
func DefaultClassification() Classification {
	return Classification{
		PLSections: map[domain.AccountCategory]PLSection{
			domain.CategorySalesRevenue:    PLRevenue,
			domain.CategoryServiceRevenue:  PLRevenue,
			domain.CategoryCostOfGoodsSold: PLCostOfSales,
			domain.CategorySellingExpenses: PLOperatingExpenses,
			domain.CategoryAdminExpenses:   PLOperatingExpenses,
			domain.CategoryPayrollExpenses: PLOperatingExpenses,
			domain.CategoryInterestIncome:  PLOtherIncome,
			domain.CategoryOtherIncome:     PLOtherIncome,
			domain.CategoryInterestExpense: PLOtherExpenses,
			domain.CategoryOtherExpenses:   PLOtherExpenses,
		},
		InvestingCategories: map[domain.AccountCategory]bool{
			domain.CategoryFixedAssets:      true,
			domain.CategoryIntangibleAssets: true,
			domain.CategoryInvestments:      true,
		},
		OperatingLiabilities: map[domain.AccountCategory]bool{
			domain.CategoryAccountsPayable:    true,
			domain.CategoryAccruedLiabilities: true,
			domain.CategoryTaxesPayable:       true,
		},
		WorkingCapital: map[domain.AccountCategory]bool{
			domain.CategoryAccountsReceivable: true,
			domain.CategoryInventory:          true,
			domain.CategoryPrepaidExpenses:    true,
			domain.CategoryAccountsPayable:    true,
			domain.CategoryAccruedLiabilities: true,
		},
	}
}

// PLSectionFor returns the P&L section for an account, or false when the
// account's category has no mapping.
func (c Classification) PLSectionFor(account domain.Account) (PLSection, bool) {
	section, ok := c.PLSections[account.Category]
	return section, ok
}

// CashFlowActivityFor classifies an account into its IAS 7 bucket.
// Cash and cash-equivalent accounts are the measured quantity and are
// reported via the dedicated beginning/ending balance query, so they are
// excluded from section classification entirely (ok = false).
func (c Classification) CashFlowActivityFor(account domain.Account) (domain.CashFlowActivity, bool) {
	if account.IsCashAccount() {
		return "", false
	}
	switch account.AccountType {
	case domain.Revenue, domain.Expense:
		return domain.OperatingActivity, true
	case domain.Asset:
		if c.InvestingCategories[account.Category] {
			return domain.InvestingActivity, true
		}
		// Non-cash current assets (receivables, inventory, prepaids) move
		// with operations.
		return domain.OperatingActivity, true
	case domain.Liability:
		if c.OperatingLiabilities[account.Category] {
			return domain.OperatingActivity, true
		}
		return domain.FinancingActivity, true
	case domain.Equity:
		return domain.FinancingActivity, true
	}
	return "", false
}
