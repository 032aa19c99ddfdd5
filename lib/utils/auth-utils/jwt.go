package authutils

import (
	"time"

	"hours-dashboard/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type Provider interface {
	GetToken(userID, name string, role models.UserRole) (tokenString string, err error)
	ParseToken(tokenString string) (jwt.MapClaims, error)
	Secret() []byte
}

type impl struct {
	secret []byte
	expire time.Duration
}

func NewInstance(secret string, expire time.Duration) Provider {
	return &impl{
		secret: []byte(secret),
		expire: expire,
	}
}

func (i impl) GetToken(userID, name string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name":  name,
		"sub":   userID,
		"admin": role.IsAdmin(),
		"role":  string(role),
		"exp":   time.Now().Add(i.expire).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i impl) ParseToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	return claims, nil
}

func (i impl) Secret() []byte {
	return i.secret
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func UserID(claims jwt.MapClaims) string {
	sub, _ := claims["sub"].(string)
	return sub
}

func Role(claims jwt.MapClaims) models.UserRole {
	role, _ := claims["role"].(string)
	return models.UserRole(role)
}
