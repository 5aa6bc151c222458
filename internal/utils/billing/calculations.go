// Package billing holds the pure money arithmetic for transaction posting.
// All derived amounts are rounded to two decimal places, half away from zero,
// at the point they are computed; downstream code stores them verbatim.
package billing

import (
	"fmt"
	"time"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// moneyPlaces is the currency scale used for every derived amount.
const moneyPlaces = 2

// sequenceWidth is the zero-pad width of the per-period sequence part of a
// transaction number. Configuration constants, not protocol requirements.
const sequenceWidth = 4

var oneHundred = decimal.NewFromInt(100)

// Totals are the transaction-level derived amounts.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// LineTotal computes quantity * unitPrice rounded to currency scale.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Round(moneyPlaces)
}

// ComputeTotals derives subtotal, discount, tax and total from the line
// totals and the transaction-level discount/tax percentages. The tax applies
// to the discounted subtotal.
func ComputeTotals(lineTotals []decimal.Decimal, discountPercent, taxPercent decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, lt := range lineTotals {
		subtotal = subtotal.Add(lt)
	}

	discountAmount := subtotal.Mul(discountPercent).Div(oneHundred).Round(moneyPlaces)
	taxable := subtotal.Sub(discountAmount)
	taxAmount := taxable.Mul(taxPercent).Div(oneHundred).Round(moneyPlaces)
	total := taxable.Add(taxAmount)

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxAmount:      taxAmount,
		Total:          total,
	}
}

// FormatTransactionNumber renders a transaction number from its parts:
// type prefix, two-digit year, two-digit month and the per-period sequence.
// Pure function of its inputs; uniqueness comes from the sequence allocation.
func FormatTransactionNumber(txnType domain.TransactionType, at time.Time, seq int64) string {
	prefix := "INV"
	if txnType == domain.Purchase {
		prefix = "PUR"
	}
	return fmt.Sprintf("%s%02d%02d%0*d", prefix, at.Year()%100, int(at.Month()), sequenceWidth, seq)
}

// PeriodKey is the year+month bucket a transaction number sequence belongs to.
func PeriodKey(at time.Time) string {
	return fmt.Sprintf("%02d%02d", at.Year()%100, int(at.Month()))
}
