package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "coachdesk_backend/internals/features/club/branches/dto"
	model "coachdesk_backend/internals/features/club/branches/model"
	helper "coachdesk_backend/internals/helpers"
)

type BranchController struct {
	DB *gorm.DB
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/branches
func (h *BranchController) Create(c *fiber.Ctx) error {
	var req dto.CreateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.FromDBError(err, "branch")
	}

	return helper.JsonCreated(c, "Branch created", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/u/branches
func (h *BranchController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.BranchModel{})
	if q := c.Query("q"); q != "" {
		base = base.Where("branch_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.FromDBError(err, "branches")
	}

	var list []model.BranchModel
	if err := base.
		Order("branch_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.FromDBError(err, "branches")
	}

	return helper.JsonList(c, "OK", dto.FromModels(list), helper.BuildPagination(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/u/branches/:id
func (h *BranchController) GetByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	var row model.BranchModel
	if err := h.DB.Where("branch_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Branch not found")
		}
		return helper.FromDBError(err, "branch")
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE (partial) ======================== */
// PATCH /api/a/branches/:id
func (h *BranchController) Update(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	var req dto.UpdateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var curr model.BranchModel
	if err := h.DB.Where("branch_id = ?", idStr).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Branch not found")
		}
		return helper.FromDBError(err, "branch")
	}

	req.ApplyTo(&curr)
	if err := h.DB.Save(&curr).Error; err != nil {
		return helper.FromDBError(err, "branch")
	}

	return helper.JsonUpdated(c, "Branch updated", dto.FromModel(curr))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/branches/:id
func (h *BranchController) Delete(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	res := h.DB.Where("branch_id = ?", idStr).Delete(&model.BranchModel{})
	if res.Error != nil {
		return helper.FromDBError(res.Error, "branch")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Branch not found")
	}

	return helper.JsonDeleted(c, "Branch deleted", fiber.Map{"id": idStr})
}
