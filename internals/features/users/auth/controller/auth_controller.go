// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authService "examcontrol_backend/internals/features/users/auth/service"
	userDTO "examcontrol_backend/internals/features/users/users/dto"
	userModel "examcontrol_backend/internals/features/users/users/model"
	helper "examcontrol_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ==========================
   LOGIN — POST /api/auth/login
   Login memakai NIK staf + password.
   ========================== */
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		NationalID string `json:"national_id"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format data tidak valid")
	}
	input.NationalID = strings.TrimSpace(input.NationalID)
	if input.NationalID == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "NIK dan password wajib diisi")
	}

	var user userModel.UserModel
	if err := ctl.DB.Where("user_national_id = ?", input.NationalID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "NIK atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "NIK atau password salah")
	}

	accessToken, err := authService.CreateAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refreshToken, err := authService.CreateRefreshToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          userDTO.FromModel(&user),
	})
}

/* ==========================
   REFRESH — POST /api/auth/refresh
   ========================== */
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.RefreshToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "refresh_token wajib diisi")
	}

	userID, err := authService.ParseRefreshToken(input.RefreshToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	var user userModel.UserModel
	if err := ctl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Pengguna tidak ditemukan")
	}

	accessToken, err := authService.CreateAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return helper.JsonOK(c, "Token diperbarui", fiber.Map{"access_token": accessToken})
}
