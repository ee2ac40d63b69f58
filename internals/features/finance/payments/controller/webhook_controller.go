package controller

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "coachdesk_backend/internals/features/finance/payments/model"
	service "coachdesk_backend/internals/features/finance/payments/service"
	helper "coachdesk_backend/internals/helpers"
)

// WebhookController receives Midtrans HTTP notifications. The endpoint is
// public (no JWT) but signature-verified. Always answers 200 once the
// notification is authentic, or Midtrans keeps retrying.
type WebhookController struct {
	DB *gorm.DB
}

func NewWebhookController(db *gorm.DB) *WebhookController {
	return &WebhookController{DB: db}
}

type midtransNotification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
}

// POST /api/p/payments/notification
func (h *WebhookController) HandleNotification(c *fiber.Ctx) error {
	var n midtransNotification
	if err := c.BodyParser(&n); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	if !service.VerifySignature(n.OrderID, n.StatusCode, n.GrossAmount, n.SignatureKey) {
		log.Printf("[WARN] midtrans webhook: bad signature order=%s", n.OrderID)
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid signature")
	}

	settled := n.TransactionStatus == "settlement" ||
		(n.TransactionStatus == "capture" && n.FraudStatus == "accept")
	if !settled {
		log.Printf("[INFO] midtrans webhook: order=%s status=%s (ignored)", n.OrderID, n.TransactionStatus)
		return helper.JsonOK(c, "OK", fiber.Map{"handled": false})
	}

	playerID, err := playerIDFromOrder(n.OrderID)
	if err != nil {
		log.Printf("[WARN] midtrans webhook: unparseable order id %q", n.OrderID)
		return helper.JsonOK(c, "OK", fiber.Map{"handled": false})
	}

	amount, err := strconv.ParseFloat(n.GrossAmount, 64)
	if err != nil || amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid gross_amount")
	}

	method := "midtrans/" + n.PaymentType
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		// idempotent on retries via the unique order id index
		var exists int64
		if err := tx.Model(&model.PaymentModel{}).
			Where("payment_midtrans_order_id = ?", n.OrderID).
			Count(&exists).Error; err != nil {
			return err
		}
		if exists > 0 {
			return nil
		}

		m := model.PaymentModel{
			PaymentPlayerID:        playerID,
			PaymentAmount:          amount,
			PaymentDate:            time.Now(),
			PaymentMethod:          &method,
			PaymentMidtransOrderID: &n.OrderID,
			PaymentMidtransStatus:  &n.TransactionStatus,
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return service.RecomputeBalance(tx, playerID)
	})
	if err != nil {
		log.Printf("[ERROR] midtrans webhook: order=%s: %v", n.OrderID, err)
		return helper.FromDBError(err, "payment")
	}

	return helper.JsonOK(c, "OK", fiber.Map{"handled": true})
}

// playerIDFromOrder parses "PAY-<uuid>-<unix>" back to the player id
func playerIDFromOrder(orderID string) (uuid.UUID, error) {
	s := strings.TrimPrefix(orderID, "PAY-")
	if i := strings.LastIndex(s, "-"); i > 0 {
		s = s[:i]
	}
	return uuid.Parse(s)
}
