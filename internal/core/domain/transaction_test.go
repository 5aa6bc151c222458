package domain_test

import (
	"testing"

	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusFor(t *testing.T) {
	total := decimal.NewFromFloat(283.5)

	tests := []struct {
		name string
		paid decimal.Decimal
		want domain.TransactionStatus
	}{
		{name: "nothing paid", paid: decimal.Zero, want: domain.StatusPending},
		{name: "partially paid", paid: decimal.NewFromInt(150), want: domain.StatusPartial},
		{name: "one cent short", paid: decimal.NewFromFloat(283.49), want: domain.StatusPartial},
		{name: "fully paid", paid: decimal.NewFromFloat(283.5), want: domain.StatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.PaymentStatusFor(tt.paid, total)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransaction_BalanceDue(t *testing.T) {
	txn := domain.Transaction{
		Total:      decimal.NewFromFloat(283.5),
		PaidAmount: decimal.NewFromInt(150),
	}
	assert.True(t, decimal.NewFromFloat(133.5).Equal(txn.BalanceDue()))

	txn.PaidAmount = txn.Total
	assert.True(t, txn.BalanceDue().IsZero())
}

func TestUserRole_AllowsActionBy(t *testing.T) {
	assert.True(t, domain.RoleEmployee.AllowsActionBy(domain.RoleAdmin))
	assert.True(t, domain.RoleManager.AllowsActionBy(domain.RoleManager))
	assert.False(t, domain.RoleManager.AllowsActionBy(domain.RoleEmployee))
	assert.False(t, domain.RoleAdmin.AllowsActionBy(domain.RoleManager))
}
