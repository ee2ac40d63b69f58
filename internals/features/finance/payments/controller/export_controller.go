package controller

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "coachdesk_backend/internals/features/finance/payments/model"
	helper "coachdesk_backend/internals/helpers"
)

// ExportController streams payment data as CSV for bookkeeping.
type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// GET /api/a/payments/export.csv?from=&to=
func (h *ExportController) ExportCSV(c *fiber.Ctx) error {
	base := h.DB.Model(&model.PaymentModel{})
	if from := c.Query("from"); from != "" {
		base = base.Where("payment_date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		base = base.Where("payment_date <= ?", to)
	}

	var rows []model.PaymentModel
	if err := base.Order("payment_date ASC").Find(&rows).Error; err != nil {
		return helper.FromDBError(err, "payments")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"payment_id", "player_id", "amount", "date", "method", "notes", "midtrans_order_id"})
	for _, p := range rows {
		_ = w.Write([]string{
			p.PaymentID.String(),
			p.PaymentPlayerID.String(),
			fmt.Sprintf("%.2f", p.PaymentAmount),
			p.PaymentDate.Format("2006-01-02"),
			deref(p.PaymentMethod),
			deref(p.PaymentNotes),
			deref(p.PaymentMidtransOrderID),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "CSV encoding failed")
	}

	filename := fmt.Sprintf("payments-%s.csv", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
