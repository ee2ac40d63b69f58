package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	midtransServerKey = "SB-Mid-server-testkey"

	orderID := "PAY-0b0f-1756500000"
	statusCode := "200"
	gross := "250000.00"

	sum := sha512.Sum512([]byte(orderID + statusCode + gross + midtransServerKey))
	good := hex.EncodeToString(sum[:])

	assert.True(t, VerifySignature(orderID, statusCode, gross, good))
	assert.False(t, VerifySignature(orderID, statusCode, gross, "deadbeef"))
	assert.False(t, VerifySignature(orderID, "201", gross, good), "status code is part of the signature")
}
