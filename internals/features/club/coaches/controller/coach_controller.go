package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "coachdesk_backend/internals/features/club/coaches/dto"
	model "coachdesk_backend/internals/features/club/coaches/model"
	helper "coachdesk_backend/internals/helpers"
)

type CoachController struct {
	DB *gorm.DB
}

func NewCoachController(db *gorm.DB) *CoachController {
	return &CoachController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/coaches
func (h *CoachController) Create(c *fiber.Ctx) error {
	var req dto.CreateCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.FromDBError(err, "coach")
	}

	return helper.JsonCreated(c, "Coach created", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/u/coaches?branch_id=&q=
func (h *CoachController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.CoachModel{})
	if branchID := c.Query("branch_id"); branchID != "" {
		base = base.Where("coach_branch_id = ?", branchID)
	}
	if q := c.Query("q"); q != "" {
		base = base.Where("coach_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.FromDBError(err, "coaches")
	}

	var list []model.CoachModel
	if err := base.
		Order("coach_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.FromDBError(err, "coaches")
	}

	return helper.JsonList(c, "OK", dto.FromModels(list), helper.BuildPagination(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/u/coaches/:id
func (h *CoachController) GetByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	var row model.CoachModel
	if err := h.DB.Where("coach_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Coach not found")
		}
		return helper.FromDBError(err, "coach")
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE (partial) ======================== */
// PATCH /api/a/coaches/:id
func (h *CoachController) Update(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	var req dto.UpdateCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var curr model.CoachModel
	if err := h.DB.Where("coach_id = ?", idStr).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Coach not found")
		}
		return helper.FromDBError(err, "coach")
	}

	req.ApplyTo(&curr)
	if err := h.DB.Save(&curr).Error; err != nil {
		return helper.FromDBError(err, "coach")
	}

	return helper.JsonUpdated(c, "Coach updated", dto.FromModel(curr))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/coaches/:id
func (h *CoachController) Delete(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	res := h.DB.Where("coach_id = ?", idStr).Delete(&model.CoachModel{})
	if res.Error != nil {
		return helper.FromDBError(res.Error, "coach")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Coach not found")
	}

	return helper.JsonDeleted(c, "Coach deleted", fiber.Map{"id": idStr})
}
