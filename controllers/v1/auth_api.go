package apiv1

import (
	"hours-dashboard/controllers"
	apimodels "hours-dashboard/models/api"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/gofiber/fiber/v2"
)

type authApiController struct {
	controllers.BaseAPIController
	deps Deps
}

func InitLoginRouter(app *fiber.App, deps Deps) {
	controller := authApiController{deps: deps}
	app.Post("auth/login", controller.login)
}

func InitAuthApiRouters(app *fiber.App, deps Deps) {
	controller := authApiController{deps: deps}
	app.Route("auth", func(router fiber.Router) {
		router.Post("logout", controller.logout)
		router.Get("me", controller.me)
		router.Patch("settings", controller.settings)
	})
}

// @Summary Login
// @Tags Auth
// @Param	body	body	userapimodels.LoginRequest	true	"request body"
// @Success 200 {object} userapimodels.AuthResponse
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload userapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	user, err := c.deps.Dataset.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return c.SendError(ctx, err)
	}
	token, err := c.deps.Tokens.GetToken(user.ID, user.Name, user.Role)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return c.SendOK(ctx, userapimodels.AuthResponse{User: *user, Token: token})
}

// @Summary Logout
// @Tags Auth
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 204
// @router /api/auth/logout [post]
func (c *authApiController) logout(ctx *fiber.Ctx) error {
	// tokens are stateless, the client drops its copy
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary Current user
// @Tags Auth
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} userapimodels.User
// @Failure 401 {object} apimodels.Response
// @router /api/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	return c.SendOK(ctx, c.Actor(ctx))
}

// @Summary Update own settings
// @Tags Auth
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	userapimodels.SettingsRequest	true	"request body"
// @Success 200 {object} userapimodels.User
// @Failure 400 {object} apimodels.Response
// @router /api/auth/settings [patch]
func (c *authApiController) settings(ctx *fiber.Ctx) error {
	var payload userapimodels.SettingsRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	user, err := c.deps.Dataset.UpdateSettings(c.Actor(ctx).ID, payload.Settings)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, user)
}
