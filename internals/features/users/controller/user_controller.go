package controller

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	dto "coachdesk_backend/internals/features/users/dto"
	model "coachdesk_backend/internals/features/users/model"
	helper "coachdesk_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* ======================= PROVISION ======================= */
// POST /api/a/users
func (h *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	usr := req.ToModel(string(hashed))
	if err := h.DB.Create(usr).Error; err != nil {
		return helper.FromDBError(err, "user")
	}

	return helper.JsonCreated(c, "Account provisioned", dto.FromModel(*usr))
}

/* ======================== LIST ======================== */
// GET /api/a/users
func (h *UserController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.UserModel{})
	if role := c.Query("role"); role != "" {
		base = base.Where("user_role = ?", role)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.FromDBError(err, "users")
	}

	var list []model.UserModel
	if err := base.
		Order("user_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.FromDBError(err, "users")
	}

	return helper.JsonList(c, "OK", dto.FromModels(list), helper.BuildPagination(total, p.Page, p.PerPage))
}

/* ======================== DEACTIVATE ======================== */
// PATCH /api/a/users/:id/deactivate
func (h *UserController) Deactivate(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID must not be empty")
	}

	res := h.DB.Model(&model.UserModel{}).
		Where("user_id = ?", idStr).
		Update("user_is_active", false)
	if res.Error != nil {
		return helper.FromDBError(res.Error, "user")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	return helper.JsonUpdated(c, "Account deactivated", fiber.Map{"id": idStr})
}
