// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"examcontrol_backend/internals/configs"
	userModel "examcontrol_backend/internals/features/users/users/model"
)

const (
	AccessTokenTTL  = 12 * time.Hour // satu hari operasional ujian
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidRefreshToken = errors.New("refresh token tidak valid")

func buildClaims(u *userModel.UserModel, ttl time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id":             u.UserID.String(),
		"national_id":         u.UserNationalID,
		"user_name":           u.UserFullName,
		"role":                u.UserRole,
		"assigned_grades":     []string(u.UserAssignedGrades),
		"assigned_committees": []string(u.UserAssignedCommittees),
		"iat":                 time.Now().Unix(),
		"exp":                 time.Now().Add(ttl).Unix(),
	}
}

// CreateAccessToken menandatangani access token berisi klaim scope penuh
// (role + assigned grades/committees) supaya guard tidak perlu query users.
func CreateAccessToken(u *userModel.UserModel) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, buildClaims(u, AccessTokenTTL))
	return token.SignedString([]byte(configs.JWTSecret))
}

func CreateRefreshToken(u *userModel.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.UserID.String(),
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(RefreshTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTRefreshSecret))
}

// ParseRefreshToken memverifikasi refresh token dan mengembalikan user_id.
func ParseRefreshToken(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidRefreshToken
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil {
		return "", ErrInvalidRefreshToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidRefreshToken
	}
	return userID, nil
}
