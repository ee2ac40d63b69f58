package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "coachdesk_backend/internals/features/schedule/sessions/dto"
	model "coachdesk_backend/internals/features/schedule/sessions/model"
	helper "coachdesk_backend/internals/helpers"
)

// TemplateController manages recurring weekly slots and generates concrete
// sessions from them.
type TemplateController struct {
	DB *gorm.DB
}

func NewTemplateController(db *gorm.DB) *TemplateController {
	return &TemplateController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/session-templates
func (h *TemplateController) Create(c *fiber.Ctx) error {
	var req dto.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.FromDBError(err, "session template")
	}

	return helper.JsonCreated(c, "Template created", m)
}

/* ======================== LIST ======================== */
// GET /api/u/session-templates
func (h *TemplateController) List(c *fiber.Ctx) error {
	base := h.DB.Model(&model.SessionTemplateModel{})
	if branchID := c.Query("branch_id"); branchID != "" {
		base = base.Where("session_template_branch_id = ?", branchID)
	}
	if c.Query("active") == "true" {
		base = base.Where("session_template_is_active = true")
	}

	var list []model.SessionTemplateModel
	if err := base.Order("session_template_created_at ASC").Find(&list).Error; err != nil {
		return helper.FromDBError(err, "session templates")
	}

	return helper.JsonOK(c, "OK", list)
}

/* ======================== DEACTIVATE ======================== */
// PATCH /api/a/session-templates/:id/deactivate
func (h *TemplateController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid template ID")
	}

	res := h.DB.Model(&model.SessionTemplateModel{}).
		Where("session_template_id = ?", id).
		Update("session_template_is_active", false)
	if res.Error != nil {
		return helper.FromDBError(res.Error, "session template")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Template not found")
	}

	return helper.JsonUpdated(c, "Template deactivated", fiber.Map{"session_template_id": id})
}

/* ======================== GENERATE ======================== */
// POST /api/a/session-templates/generate — stamp concrete sessions out of
// the active templates for [from, to], skipping dates that already have a
// session for the same branch/court/start time
func (h *TemplateController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateSessionsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if req.To.Before(req.From) {
		return fiber.NewError(fiber.StatusBadRequest, "'to' must not be before 'from'")
	}
	if req.To.Sub(req.From) > 92*24*time.Hour {
		return fiber.NewError(fiber.StatusBadRequest, "Range must not exceed ~3 months")
	}

	var templates []model.SessionTemplateModel
	if err := h.DB.
		Where("session_template_is_active = true").
		Find(&templates).Error; err != nil {
		return helper.FromDBError(err, "session templates")
	}

	var created []model.TrainingSessionModel
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		for d := req.From; !d.After(req.To); d = d.AddDate(0, 0, 1) {
			weekday := strings.ToLower(d.Weekday().String())
			for _, t := range templates {
				if !containsDay(t.SessionTemplateWeekdays, weekday) {
					continue
				}

				var exists int64
				q := tx.Model(&model.TrainingSessionModel{}).
					Where("session_date = ? AND session_start_time = ?", d.Format("2006-01-02"), t.SessionTemplateStartTime)
				if t.SessionTemplateBranchID != nil {
					q = q.Where("session_branch_id = ?", *t.SessionTemplateBranchID)
				}
				if err := q.Count(&exists).Error; err != nil {
					return err
				}
				if exists > 0 {
					continue
				}

				s := model.TrainingSessionModel{
					SessionBranchID:  t.SessionTemplateBranchID,
					SessionCoachID:   t.SessionTemplateCoachID,
					SessionDate:      d,
					SessionStartTime: t.SessionTemplateStartTime,
					SessionEndTime:   t.SessionTemplateEndTime,
					SessionCourt:     t.SessionTemplateCourt,
				}
				if err := tx.Create(&s).Error; err != nil {
					return err
				}
				created = append(created, s)
			}
		}
		return nil
	})
	if err != nil {
		return helper.FromDBError(err, "sessions")
	}

	return helper.JsonCreated(c, "Sessions generated", fiber.Map{
		"count":    len(created),
		"sessions": dto.FromModels(created),
	})
}

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
