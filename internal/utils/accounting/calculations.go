package accounting

import (
	"github.com/finacct/accounting_reports_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NetActivity signs aggregated debit/credit totals by the account's normal
// balance: debits − credits for DEBIT-normal accounts, credits − debits for
// CREDIT-normal accounts. Used by every report so the sign convention lives
// in exactly one place.
func NetActivity(debits, credits decimal.Decimal, normal domain.NormalBalance) decimal.Decimal {
	if normal == domain.DebitNormal {
		return debits.Sub(credits)
	}
	return credits.Sub(debits)
}

// ClosingBalance derives the closing balance from an opening balance and
// period debit/credit totals, honoring the normal-balance sign convention.
func ClosingBalance(opening, periodDebits, periodCredits decimal.Decimal, normal domain.NormalBalance) decimal.Decimal {
	return opening.Add(NetActivity(periodDebits, periodCredits, normal))
}

// Variance returns current − comparative.
func Variance(current, comparative decimal.Decimal) decimal.Decimal {
	return current.Sub(comparative)
}

// VariancePercent returns (current − comparative) / |comparative| × 100,
// and exactly zero when the comparative is zero (never NaN or infinity).
func VariancePercent(current, comparative decimal.Decimal) decimal.Decimal {
	if comparative.IsZero() {
		return decimal.Zero
	}
	return current.Sub(comparative).Div(comparative.Abs()).Mul(decimal.NewFromInt(100))
}

// PercentOf returns part / whole × 100, and zero when whole is zero. Used
// for margin calculations where a zero denominator means "no revenue", not
// an error.
func PercentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100))
}

// IsBalanced reports whether total debits and credits agree within the
// rounding tolerance.
func IsBalanced(totalDebits, totalCredits decimal.Decimal) bool {
	return totalDebits.Sub(totalCredits).Abs().LessThan(domain.BalanceTolerance)
}
