package billing_test

import (
	"testing"
	"time"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/bizledger/inventory_billing_app/internal/utils/billing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name            string
		lineTotals      []string
		discountPercent string
		taxPercent      string
		want            billing.Totals
	}{
		{
			// 3 units at 100 with 10% discount and 5% tax on the
			// discounted subtotal.
			name:            "discount then tax",
			lineTotals:      []string{"300"},
			discountPercent: "10",
			taxPercent:      "5",
			want: billing.Totals{
				Subtotal:       d("300"),
				DiscountAmount: d("30"),
				TaxAmount:      d("13.5"),
				Total:          d("283.5"),
			},
		},
		{
			name:            "no discount no tax",
			lineTotals:      []string{"120.50", "79.50"},
			discountPercent: "0",
			taxPercent:      "0",
			want: billing.Totals{
				Subtotal:       d("200"),
				DiscountAmount: d("0"),
				TaxAmount:      d("0"),
				Total:          d("200"),
			},
		},
		{
			name:            "rounding at each derived amount",
			lineTotals:      []string{"99.99"},
			discountPercent: "7.5",
			taxPercent:      "18",
			want: billing.Totals{
				Subtotal: d("99.99"),
				// 99.99 * 7.5% = 7.49925 -> 7.50
				DiscountAmount: d("7.50"),
				// (99.99 - 7.50) * 18% = 16.6482 -> 16.65
				TaxAmount: d("16.65"),
				Total:     d("109.14"),
			},
		},
		{
			name:            "full discount",
			lineTotals:      []string{"50"},
			discountPercent: "100",
			taxPercent:      "12",
			want: billing.Totals{
				Subtotal:       d("50"),
				DiscountAmount: d("50"),
				TaxAmount:      d("0"),
				Total:          d("0"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lts := make([]decimal.Decimal, len(tt.lineTotals))
			for i, s := range tt.lineTotals {
				lts[i] = d(s)
			}

			got := billing.ComputeTotals(lts, d(tt.discountPercent), d(tt.taxPercent))

			assert.True(t, tt.want.Subtotal.Equal(got.Subtotal), "subtotal: want %s got %s", tt.want.Subtotal, got.Subtotal)
			assert.True(t, tt.want.DiscountAmount.Equal(got.DiscountAmount), "discount: want %s got %s", tt.want.DiscountAmount, got.DiscountAmount)
			assert.True(t, tt.want.TaxAmount.Equal(got.TaxAmount), "tax: want %s got %s", tt.want.TaxAmount, got.TaxAmount)
			assert.True(t, tt.want.Total.Equal(got.Total), "total: want %s got %s", tt.want.Total, got.Total)

			// Invariant: total == subtotal - discountAmount + taxAmount.
			identity := got.Subtotal.Sub(got.DiscountAmount).Add(got.TaxAmount)
			assert.True(t, identity.Equal(got.Total))
		})
	}
}

func TestLineTotal(t *testing.T) {
	assert.True(t, d("300").Equal(billing.LineTotal(d("3"), d("100"))))
	// 2.5 kg at 33.33 -> 83.325 rounds half-up to 83.33.
	assert.True(t, d("83.33").Equal(billing.LineTotal(d("2.5"), d("33.33"))))
}

func TestFormatTransactionNumber(t *testing.T) {
	at := time.Date(2025, time.September, 14, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "INV25090001", billing.FormatTransactionNumber(domain.Sale, at, 1))
	assert.Equal(t, "PUR25090042", billing.FormatTransactionNumber(domain.Purchase, at, 42))

	// Sequences beyond the pad width must not collide with each other.
	assert.Equal(t, "INV250910000", billing.FormatTransactionNumber(domain.Sale, at, 10000))

	// Same inputs always produce the same number.
	assert.Equal(t,
		billing.FormatTransactionNumber(domain.Sale, at, 7),
		billing.FormatTransactionNumber(domain.Sale, at, 7))
}

func TestFormatTransactionNumber_Sortable(t *testing.T) {
	at := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	prev := billing.FormatTransactionNumber(domain.Sale, at, 1)
	for seq := int64(2); seq <= 60; seq++ {
		cur := billing.FormatTransactionNumber(domain.Sale, at, seq)
		assert.Less(t, prev, cur)
		prev = cur
	}
}

func TestPeriodKey(t *testing.T) {
	assert.Equal(t, "2509", billing.PeriodKey(time.Date(2025, time.September, 30, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2601", billing.PeriodKey(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)))
}
