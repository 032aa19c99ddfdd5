package middleware

import (
	"hours-dashboard/lib/backend"
	authutils "hours-dashboard/lib/utils/auth-utils"
	"hours-dashboard/models"
	apimodels "hours-dashboard/models/api"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const actorKey = "actor"

func GetUserID(ctx *fiber.Ctx) string {
	return authutils.UserID(authutils.GetClaims(ctx))
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	return authutils.Role(authutils.GetClaims(ctx))
}

// UserRequired loads the account behind the token. Tokens of deleted accounts are rejected.
func UserRequired(lookup func(userID string) (*userapimodels.User, error)) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		if userID == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(backend.ErrUnauthorized.Error()))
		}
		user, err := lookup(userID)
		if err != nil {
			log.WithField("user_id", userID).WithError(err).Info("token of unknown user")
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(backend.ErrUnauthorized.Error()))
		}
		ctx.Locals(actorKey, user)
		return ctx.Next()
	}
}

// GetUser returns the account loaded by UserRequired.
func GetUser(ctx *fiber.Ctx) *userapimodels.User {
	user, _ := ctx.Locals(actorKey).(*userapimodels.User)
	return user
}
