package pdf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "Rs. 0.00", formatMoney(decimal.Zero))
	assert.Equal(t, "Rs. 999.50", formatMoney(decimal.RequireFromString("999.5")))
	assert.Equal(t, "Rs. 1,180.00", formatMoney(decimal.NewFromInt(1180)))
	assert.Equal(t, "Rs. 1,234,567.89", formatMoney(decimal.RequireFromString("1234567.891")))
	assert.Equal(t, "Rs. -1,000.00", formatMoney(decimal.NewFromInt(-1000)))
}

func TestReceiptNumber(t *testing.T) {
	assert.Equal(t, "RCPT-9F1C2A7B3D", receiptNumber("9f1c2a7b-3d4e-4f00-8a1b-123456789abc"))
	assert.Equal(t, "RCPT-TX1", receiptNumber("tx-1"))
}
