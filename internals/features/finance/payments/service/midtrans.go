package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

var midtransServerKey string

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	midtransServerKey = serverKey
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Input helper untuk data customer
========================================================= */

type CustomerInput struct {
	FirstName string
	Email     string
	Phone     string
}

/* =========================================================
   Generate Snap Token
========================================================= */

// GenerateSnapToken opens a checkout for part of a player's remaining
// training-fee balance. orderID becomes the Midtrans OrderID and must be
// unique; the webhook matches on it later.
func GenerateSnapToken(orderID string, amount float64, cust CustomerInput) (string, string, error) {
	if amount <= 0 {
		return "", "", errors.New("invalid checkout amount")
	}
	if orderID == "" {
		return "", "", errors.New("order id is required")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.FirstName,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       orderID,
				Price:    int64(amount),
				Qty:      1,
				Name:     "Training fee installment",
				Category: "TRAINING",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

/* =========================================================
   Webhook signature
========================================================= */

// VerifySignature checks the sha512(order_id+status_code+gross_amount+key)
// signature Midtrans sends with every notification
func VerifySignature(orderID, statusCode, grossAmount, signature string) bool {
	sum := sha512.Sum512([]byte(fmt.Sprintf("%s%s%s%s", orderID, statusCode, grossAmount, midtransServerKey)))
	return hex.EncodeToString(sum[:]) == signature
}
