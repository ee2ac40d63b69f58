package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "coachdesk_backend/internals/features/players/dto"
	service "coachdesk_backend/internals/features/players/service"
	helper "coachdesk_backend/internals/helpers"
)

// PackageController exposes the quota-ledger write paths: renew, expire,
// retrieve, and session editing. Everything goes through PackageService so
// the row lock and history bookkeeping are never bypassed.
type PackageController struct {
	DB       *gorm.DB
	Packages *service.PackageService
}

func NewPackageController(db *gorm.DB) *PackageController {
	return &PackageController{DB: db, Packages: service.NewPackageService(db)}
}

func actorFromCtx(c *fiber.Ctx) service.Actor {
	actor := service.Actor{}
	if role, err := helper.GetRoleFromToken(c); err == nil {
		actor.Role = role
	}
	if id, err := helper.GetUserIDFromToken(c); err == nil {
		actor.UserID = id
	}
	return actor
}

func parsePlayerID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid player ID")
	}
	return id, nil
}

/* ======================= RENEW ======================= */
// POST /api/u/players/:id/package/renew
func (h *PackageController) Renew(c *fiber.Ctx) error {
	playerID, err := parsePlayerID(c)
	if err != nil {
		return err
	}

	var req dto.RenewPackageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	row, err := h.Packages.RenewPackage(c.Context(), actorFromCtx(c), playerID, service.RenewPackageInput{
		PackageType:    req.PackageType,
		Sessions:       req.Sessions,
		EnrollmentDate: req.EnrollmentDate,
		ExpirationDate: req.ExpirationDate,
	})
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "Package renewed", dto.FromModel(row))
}

/* ======================= EXPIRE ======================= */
// POST /api/u/players/:id/package/expire
func (h *PackageController) Expire(c *fiber.Ctx) error {
	playerID, err := parsePlayerID(c)
	if err != nil {
		return err
	}

	row, err := h.Packages.ExpirePackage(c.Context(), playerID)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "Package expired", dto.FromModel(row))
}

/* ======================= RETRIEVE ======================= */
// POST /api/u/players/:id/package/retrieve
func (h *PackageController) Retrieve(c *fiber.Ctx) error {
	playerID, err := parsePlayerID(c)
	if err != nil {
		return err
	}

	var req dto.RetrievePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	row, err := h.Packages.RetrievePackage(c.Context(), actorFromCtx(c), playerID, req.ExtendDays, req.NewSessions)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "Package retrieved", dto.FromModel(row))
}

/* ======================= EDIT SESSIONS ======================= */
// PATCH /api/a/players/:id/package/sessions
func (h *PackageController) EditSessions(c *fiber.Ctx) error {
	playerID, err := parsePlayerID(c)
	if err != nil {
		return err
	}

	var req dto.EditSessionsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	row, err := h.Packages.EditSessions(c.Context(), actorFromCtx(c), playerID, req.Sessions)
	if err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Session quota updated", dto.FromModel(row))
}
