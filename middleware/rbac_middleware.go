package middleware

import (
	"hours-dashboard/lib/rbac"

	"github.com/gofiber/fiber/v2"
)

func RbacMiddleware(provider rbac.Provider) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		if userID == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  "fail",
				"message": "RBAC_FORBIDDEN",
			})
		}

		userRole := GetUserRole(ctx)
		if userRole == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  "fail",
				"message": "RBAC_FORBIDDEN",
			})
		}

		// routes without a rule are open to every signed-in user
		handler, found := provider.GetRuleFunc(ctx.Method(), ctx.Path())
		if !found {
			return ctx.Next()
		}

		if !handler(userID, userRole, ctx.Path()) {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  "fail",
				"message": "RBAC_FORBIDDEN",
			})
		}

		return ctx.Next()
	}
}
