package reports

import (
	"strings"

	"github.com/finacct/accounting_reports_app/internal/core/domain"
)

// AdjustmentClassifier decides whether an account represents a non-cash item
// that must be added back (or subtracted) when reconciling net income to
// operating cash flow. Pluggable so the default name-keyword heuristic can be
// swapped for a metadata-tag approach without touching the reconciliation
// algorithm.
type AdjustmentClassifier interface {
	// Classify returns the adjustment description and direction for the
	// account, or ok = false when the account is not a non-cash item.
	Classify(account domain.Account) (description string, kind domain.AdjustmentType, ok bool)
}

// keywordRule matches case-insensitive substrings of the account name.
// When all is set, every keyword must match; otherwise any one suffices.
type keywordRule struct {
	keywords    []string
	all         bool
	description string
	kind        domain.AdjustmentType
}

// KeywordClassifier is the stock AdjustmentClassifier. It matches account
// names against fixed keyword lists. Inherently naming-convention dependent;
// charts with unconventional names should supply their own classifier.
type KeywordClassifier struct {
	rules []keywordRule
}

// NewKeywordClassifier returns the default keyword ruleset.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		rules: []keywordRule{
			{keywords: []string{"depreciation", "amortization"}, description: "Depreciation and Amortization", kind: domain.AdjustmentAdd},
			{keywords: []string{"gain", "disposal"}, all: true, description: "Gain on Disposal of Assets", kind: domain.AdjustmentSubtract},
			{keywords: []string{"loss", "disposal"}, all: true, description: "Loss on Disposal of Assets", kind: domain.AdjustmentAdd},
			{keywords: []string{"bad debt", "doubtful"}, description: "Bad Debt Expense", kind: domain.AdjustmentAdd},
			{keywords: []string{"stock", "share-based"}, description: "Stock-Based Compensation", kind: domain.AdjustmentAdd},
		},
	}
}

var _ AdjustmentClassifier = (*KeywordClassifier)(nil)

// Classify implements AdjustmentClassifier.
func (k *KeywordClassifier) Classify(account domain.Account) (string, domain.AdjustmentType, bool) {
	name := strings.ToLower(account.Name)
	for _, rule := range k.rules {
		if rule.matches(name) {
			return rule.description, rule.kind, true
		}
	}
	return "", "", false
}

func (r keywordRule) matches(name string) bool {
	if r.all {
		for _, kw := range r.keywords {
			if !strings.Contains(name, kw) {
				return false
			}
		}
		return true
	}
	for _, kw := range r.keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
