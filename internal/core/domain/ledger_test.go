package domain_test

import (
	"testing"

	"github.com/mecmec98/billingrestapi/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNextBalance(t *testing.T) {
	tests := []struct {
		name   string
		prior  string
		debit  string
		credit string
		want   string
	}{
		{name: "first billing on an empty ledger", prior: "0", debit: "500", credit: "0", want: "500"},
		{name: "exact payment clears the balance", prior: "500", debit: "0", credit: "500", want: "0"},
		{name: "overpayment goes negative", prior: "0", debit: "0", credit: "200", want: "-200"},
		{name: "partial payment leaves a remainder", prior: "500", debit: "0", credit: "300", want: "200"},
		{name: "billing on top of an advance consumes it", prior: "-200", debit: "350", credit: "0", want: "150"},
		{name: "centavo amounts stay exact", prior: "0.10", debit: "0.20", credit: "0", want: "0.30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.NextBalance(
				decimal.RequireFromString(tt.prior),
				decimal.RequireFromString(tt.debit),
				decimal.RequireFromString(tt.credit),
			)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

// A posting sequence is a fold of NextBalance over the entries in order; each
// entry's balance is the prior entry's balance plus debit minus credit.
func TestNextBalancePostingSequence(t *testing.T) {
	postings := []struct {
		debit  string
		credit string
		want   string
	}{
		{debit: "500", credit: "0", want: "500"},
		{debit: "0", credit: "500", want: "0"},
		{debit: "0", credit: "200", want: "-200"},
		{debit: "350", credit: "0", want: "150"},
	}

	balance := decimal.Zero
	for i, p := range postings {
		balance = domain.NextBalance(balance, decimal.RequireFromString(p.debit), decimal.RequireFromString(p.credit))
		assert.True(t, balance.Equal(decimal.RequireFromString(p.want)),
			"after posting %d: got %s, want %s", i+1, balance, p.want)
	}
}

func TestDeriveSettlement(t *testing.T) {
	tests := []struct {
		name            string
		particulars     string
		status          domain.LedgerStatus
		newBalance      decimal.Decimal
		wantStatus      domain.LedgerStatus
		wantParticulars string
	}{
		{
			name:            "billing entry passes through unchanged",
			particulars:     "Water bill for March",
			status:          domain.StatusUnpaid,
			newBalance:      decimal.NewFromInt(500),
			wantStatus:      domain.StatusUnpaid,
			wantParticulars: "Water bill for March",
		},
		{
			name:            "payment clearing the balance becomes full payment",
			particulars:     "payment via POS",
			status:          domain.StatusUnpaid,
			newBalance:      decimal.Zero,
			wantStatus:      domain.StatusPaid,
			wantParticulars: "Full Payment",
		},
		{
			name:            "payment leaving a remainder becomes partial payment",
			particulars:     "payment via POS",
			status:          domain.StatusUnpaid,
			newBalance:      decimal.NewFromInt(200),
			wantStatus:      domain.StatusPartial,
			wantParticulars: "Partial Payment",
		},
		{
			name:            "overpayment becomes advance payment",
			particulars:     "payment via POS",
			status:          domain.StatusUnpaid,
			newBalance:      decimal.NewFromInt(-200),
			wantStatus:      domain.StatusAdvance,
			wantParticulars: "Advance Payment",
		},
		{
			name:            "matching is case-sensitive",
			particulars:     "Payment received",
			status:          domain.StatusUnpaid,
			newBalance:      decimal.Zero,
			wantStatus:      domain.StatusUnpaid,
			wantParticulars: "Payment received",
		},
		{
			name:            "substring match anywhere in particulars",
			particulars:     "counter payment 2024-05",
			status:          domain.StatusOverdue,
			newBalance:      decimal.NewFromFloat(0.01),
			wantStatus:      domain.StatusPartial,
			wantParticulars: "Partial Payment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStatus, gotParticulars := domain.DeriveSettlement(tt.particulars, tt.status, tt.newBalance)
			assert.Equal(t, tt.wantStatus, gotStatus)
			assert.Equal(t, tt.wantParticulars, gotParticulars)
		})
	}
}
