package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coachdesk_backend/internals/configs"
	dto "coachdesk_backend/internals/features/users/dto"
	model "coachdesk_backend/internals/features/users/model"
	helper "coachdesk_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ======================= LOGIN ======================= */
// POST /api/p/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var usr model.UserModel
	if err := h.DB.Where("user_email = ?", req.UserEmail).First(&usr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Wrong email or password")
		}
		return helper.FromDBError(err, "user")
	}

	if !usr.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.UserPassword), []byte(req.UserPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Wrong email or password")
	}

	token, err := issueAccessToken(usr)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		User:        dto.FromModel(usr),
	})
}

func issueAccessToken(usr model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   usr.UserID.String(),
		"user_name": usr.UserName,
		"role":      usr.UserRole,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
