package apiv1

import (
	"hours-dashboard/lib/backend/mock"
	"hours-dashboard/lib/rbac"
	authutils "hours-dashboard/lib/utils/auth-utils"
	"hours-dashboard/middleware"

	"github.com/gofiber/fiber/v2"
)

// Deps is what the mock API handlers serve from.
type Deps struct {
	Dataset *mock.Dataset
	Tokens  authutils.Provider
	Rbac    rbac.Provider
}

// InitApiRouters registers every route. Only login is reachable without a token.
func InitApiRouters(app *fiber.App, deps Deps) {
	InitLoginRouter(app, deps)

	app.Use(
		middleware.AuthorizationRequired(deps.Tokens.Secret()),
		middleware.UserRequired(deps.Dataset.User),
		middleware.RbacMiddleware(deps.Rbac),
	)
	InitAuthApiRouters(app, deps)
	// tracker routes share the /projects prefix and go first
	InitTrackerApiRouters(app, deps)
	InitProjectApiRouters(app, deps)
	InitExpenseApiRouters(app, deps)
	InitHourRequestApiRouters(app, deps)
	InitUserApiRouters(app, deps)
	InitCommentApiRouters(app, deps)
}
