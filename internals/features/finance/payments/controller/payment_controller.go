package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "coachdesk_backend/internals/features/finance/payments/dto"
	model "coachdesk_backend/internals/features/finance/payments/model"
	service "coachdesk_backend/internals/features/finance/payments/service"
	playerModel "coachdesk_backend/internals/features/players/model"
	helper "coachdesk_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/u/payments — record an installment; the player's remaining
// balance is recomputed in the same transaction
func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	m := req.ToModel()
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return service.RecomputeBalance(tx, m.PaymentPlayerID)
	})
	if err != nil {
		return helper.FromDBError(err, "payment")
	}

	return helper.JsonCreated(c, "Payment recorded", dto.FromModel(m))
}

/* ======================== LIST ======================== */
// GET /api/u/payments?player_id=&from=&to=
func (h *PaymentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	base := h.DB.Model(&model.PaymentModel{})
	if playerID := c.Query("player_id"); playerID != "" {
		base = base.Where("payment_player_id = ?", playerID)
	}
	if from := c.Query("from"); from != "" {
		base = base.Where("payment_date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		base = base.Where("payment_date <= ?", to)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.FromDBError(err, "payments")
	}

	var list []model.PaymentModel
	if err := base.
		Order("payment_date DESC, payment_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.FromDBError(err, "payments")
	}

	return helper.JsonList(c, "OK", dto.FromModels(list), helper.BuildPagination(total, p.Page, p.PerPage))
}

/* ======================== SUMMARY ======================== */
// GET /api/u/payments/summary/:player_id
func (h *PaymentController) Summary(c *fiber.Ctx) error {
	playerID, err := uuid.Parse(c.Params("player_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid player ID")
	}

	var player playerModel.PlayerModel
	if err := h.DB.Where("player_id = ?", playerID).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Player not found")
		}
		return helper.FromDBError(err, "player")
	}

	var payments []model.PaymentModel
	if err := h.DB.
		Where("payment_player_id = ?", playerID).
		Order("payment_date ASC").
		Find(&payments).Error; err != nil {
		return helper.FromDBError(err, "payments")
	}

	var paid float64
	for _, p := range payments {
		paid += p.PaymentAmount
	}

	return helper.JsonOK(c, "OK", dto.PlayerPaymentSummary{
		PlayerID:         player.PlayerID,
		TotalTrainingFee: player.PlayerTotalTrainingFee,
		Downpayment:      player.PlayerDownpayment,
		TotalPaid:        paid,
		RemainingBalance: service.RemainingBalance(player.PlayerTotalTrainingFee, player.PlayerDownpayment, paid),
		Payments:         dto.FromModels(payments),
	})
}

/* ======================== DELETE ======================== */
// DELETE /api/a/payments/:id — balance recomputed in the same transaction
func (h *PaymentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment ID")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var m model.PaymentModel
		if err := tx.Where("payment_id = ?", id).First(&m).Error; err != nil {
			return err
		}
		if err := tx.Delete(&m).Error; err != nil {
			return err
		}
		return service.RecomputeBalance(tx, m.PaymentPlayerID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return helper.FromDBError(err, "payment")
	}

	return helper.JsonDeleted(c, "Payment deleted", fiber.Map{"payment_id": id})
}

/* ======================== CHECKOUT ======================== */
// POST /api/u/payments/checkout — Snap token untuk sisa tagihan
func (h *PaymentController) Checkout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var player playerModel.PlayerModel
	if err := h.DB.Where("player_id = ?", req.PlayerID).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Player not found")
		}
		return helper.FromDBError(err, "player")
	}
	if req.Amount > player.PlayerRemainingBalance {
		return fiber.NewError(fiber.StatusBadRequest, "Amount exceeds remaining balance")
	}

	// player uuid rides inside the order id so the webhook can attribute
	// the settlement without a lookup table
	orderID := fmt.Sprintf("PAY-%s-%d", player.PlayerID, time.Now().Unix())

	cust := service.CustomerInput{FirstName: player.PlayerName}
	if player.PlayerEmail != nil {
		cust.Email = *player.PlayerEmail
	}
	if player.PlayerPhone != nil {
		cust.Phone = *player.PlayerPhone
	}

	token, redirectURL, err := service.GenerateSnapToken(orderID, req.Amount, cust)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Checkout failed: "+err.Error())
	}

	return helper.JsonOK(c, "Checkout created", fiber.Map{
		"order_id":     orderID,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}
