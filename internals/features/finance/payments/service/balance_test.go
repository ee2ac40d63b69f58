package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemainingBalance(t *testing.T) {
	cases := []struct {
		name        string
		fee         float64
		downpayment float64
		paid        float64
		want        float64
	}{
		{"no payments yet", 1200, 200, 0, 1000},
		{"partial installments", 1200, 200, 400, 600},
		{"paid off exactly", 1200, 200, 1000, 0},
		{"overpayment clamps at zero", 1200, 200, 1500, 0},
		{"downpayment covers everything", 500, 500, 0, 0},
		{"zero fee", 0, 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RemainingBalance(tc.fee, tc.downpayment, tc.paid))
		})
	}
}

func TestRemainingBalanceInsertDeleteSymmetry(t *testing.T) {
	// recording then deleting the same installment lands back on the
	// original balance
	fee, down := 1500.0, 300.0

	before := RemainingBalance(fee, down, 500)
	afterInsert := RemainingBalance(fee, down, 500+250)
	afterDelete := RemainingBalance(fee, down, 500+250-250)

	assert.Equal(t, 700.0, before)
	assert.Equal(t, 450.0, afterInsert)
	assert.Equal(t, before, afterDelete)
}
