package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether the account type is one of the known values.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// NormalBalance is the side on which an account type conventionally increases.
type NormalBalance string

const (
	DebitNormal  NormalBalance = "DEBIT"
	CreditNormal NormalBalance = "CREDIT"
)

// NormalBalanceFor returns the conventional balance side for an account type.
// ASSET and EXPENSE accounts increase on the debit side; LIABILITY, EQUITY
// and REVENUE accounts increase on the credit side.
func NormalBalanceFor(t AccountType) NormalBalance {
	switch t {
	case Asset, Expense:
		return DebitNormal
	default:
		return CreditNormal
	}
}

// AccountCategory is a free-form classification tag assigned in the chart of
// accounts. Report classification tables key on these, so the constants below
// cover the categories the stock classification rules understand; charts may
// carry other values, which the generators simply leave unclassified.
type AccountCategory string

const (
	// Asset categories
	CategoryCash               AccountCategory = "CASH"
	CategoryCashEquivalents    AccountCategory = "CASH_EQUIVALENTS"
	CategoryAccountsReceivable AccountCategory = "ACCOUNTS_RECEIVABLE"
	CategoryInventory          AccountCategory = "INVENTORY"
	CategoryPrepaidExpenses    AccountCategory = "PREPAID_EXPENSES"
	CategoryFixedAssets        AccountCategory = "FIXED_ASSETS"
	CategoryIntangibleAssets   AccountCategory = "INTANGIBLE_ASSETS"
	CategoryInvestments        AccountCategory = "INVESTMENTS"

	// Liability categories
	CategoryAccountsPayable    AccountCategory = "ACCOUNTS_PAYABLE"
	CategoryAccruedLiabilities AccountCategory = "ACCRUED_LIABILITIES"
	CategoryTaxesPayable       AccountCategory = "TAXES_PAYABLE"
	CategoryShortTermDebt      AccountCategory = "SHORT_TERM_DEBT"
	CategoryLongTermDebt       AccountCategory = "LONG_TERM_DEBT"

	// Equity categories
	CategoryCommonStock      AccountCategory = "COMMON_STOCK"
	CategoryRetainedEarnings AccountCategory = "RETAINED_EARNINGS"
	CategoryOwnerEquity      AccountCategory = "OWNER_EQUITY"

	// Revenue categories
	CategorySalesRevenue   AccountCategory = "SALES_REVENUE"
	CategoryServiceRevenue AccountCategory = "SERVICE_REVENUE"
	CategoryInterestIncome AccountCategory = "INTEREST_INCOME"
	CategoryOtherIncome    AccountCategory = "OTHER_INCOME"

	// Expense categories
	CategoryCostOfGoodsSold AccountCategory = "COST_OF_GOODS_SOLD"
	CategorySellingExpenses AccountCategory = "SELLING_EXPENSES"
	CategoryAdminExpenses   AccountCategory = "ADMIN_EXPENSES"
	CategoryPayrollExpenses AccountCategory = "PAYROLL_EXPENSES"
	CategoryInterestExpense AccountCategory = "INTEREST_EXPENSE"
	CategoryOtherExpenses   AccountCategory = "OTHER_EXPENSES"
)

// Account represents a ledger account from the chart of accounts.
// Reference data owned by the chart-of-accounts collaborator; read-only here.
type Account struct {
	AccountID       string          `json:"accountID"`
	TenantID        string          `json:"tenantID"`
	CompanyID       string          `json:"companyID"`
	AccountNumber   string          `json:"accountNumber"`
	Name            string          `json:"name"`
	AccountType     AccountType     `json:"accountType"`
	Category        AccountCategory `json:"category"`
	NormalBalance   NormalBalance   `json:"normalBalance"`
	Level           int             `json:"level"`
	ParentAccountID string          `json:"parentAccountID"` // Nullable FK (self-referencing)
	IsHeader        bool            `json:"isHeader"`
	IsActive        bool            `json:"isActive"`
	AuditFields
}

// IsCashAccount reports whether the account holds cash or cash equivalents.
func (a Account) IsCashAccount() bool {
	return a.Category == CategoryCash || a.Category == CategoryCashEquivalents
}
