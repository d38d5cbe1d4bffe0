package gst_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carwash-api/pkg/gst"
)

func TestValidateGSTIN(t *testing.T) {
	assert.NoError(t, gst.ValidateGSTIN("27AAPFU0939F1ZV"))
	assert.NoError(t, gst.ValidateGSTIN(" 29aagcb7383j1z4 "))

	assert.Error(t, gst.ValidateGSTIN("27AAPFU0939F1ZA"), "checksum incorrecto")
	assert.Error(t, gst.ValidateGSTIN("27AAPFU0939F1Z"), "longitud")
	assert.Error(t, gst.ValidateGSTIN("27AAPFU0939F1XV"), "posición 14 debe ser Z")
}

func TestComputeGSTINChecksum(t *testing.T) {
	c, err := gst.ComputeGSTINChecksum("07AAACR5055K1Z")
	require.NoError(t, err)
	assert.Equal(t, byte('9'), c)

	_, err = gst.ComputeGSTINChecksum("07AAACR")
	assert.Error(t, err)
}

func TestReceiptCode(t *testing.T) {
	p := gst.CodeParams{
		TransactionID: "tx-1",
		IssuedAt:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(1000),
		GST:           decimal.NewFromInt(180),
		Total:         decimal.NewFromInt(1180),
		IssuerGSTIN:   "27AAPFU0939F1ZV",
		CustomerID:    "cust-1",
	}
	a, err := gst.ReceiptCode(p)
	require.NoError(t, err)
	assert.Len(t, a, 96)

	same, err := gst.ReceiptCode(p)
	require.NoError(t, err)
	assert.Equal(t, a, same)

	p.Total = decimal.NewFromInt(1181)
	other, err := gst.ReceiptCode(p)
	require.NoError(t, err)
	assert.NotEqual(t, a, other)

	_, err = gst.ReceiptCode(gst.CodeParams{IssuedAt: time.Now()})
	assert.Error(t, err)
}

func TestShortCode(t *testing.T) {
	assert.Equal(t, "ABCD-EF01-2345-6789", gst.ShortCode("abcdef0123456789ffff"))
	assert.Equal(t, "AB", gst.ShortCode("ab"))
}
