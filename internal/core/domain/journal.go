package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry. Only POSTED journals
// affect official balances; DRAFT and VOIDED entries are excluded from every
// report query unconditionally.
type JournalStatus string

const (
	Posted JournalStatus = "POSTED"
	Draft  JournalStatus = "DRAFT"
	Voided JournalStatus = "VOIDED"
)

// Journal represents a single, balanced financial event composed of multiple
// journal lines. Read-only source of truth for the report pipeline.
type Journal struct {
	JournalID   string        `json:"journalID"`
	TenantID    string        `json:"tenantID"`
	CompanyID   string        `json:"companyID"`
	JournalDate time.Time     `json:"journalDate"`
	Description string        `json:"description"`
	Status      JournalStatus `json:"status"`
	AuditFields
}

// EntrySide indicates whether a journal line is a debit or a credit.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// JournalLine is a posted debit or credit amount against one account.
// Amount is always positive; Side carries the direction.
type JournalLine struct {
	LineID    string          `json:"lineID"`
	JournalID string          `json:"journalID"`
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount"`
	Side      EntrySide       `json:"side"`
	Memo      string          `json:"memo"`
	AuditFields
}
