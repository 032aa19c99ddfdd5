package apiv1

import (
	"hours-dashboard/controllers"
	apimodels "hours-dashboard/models/api"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/gofiber/fiber/v2"
)

type userApiController struct {
	controllers.BaseAPIController
	deps Deps
}

func InitUserApiRouters(app *fiber.App, deps Deps) {
	controller := userApiController{deps: deps}
	app.Route("users", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Patch("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Post("password", controller.updatePassword)
		})
	})
}

// @Summary User directory
// @Tags Users
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} userapimodels.User
// @router /api/users [get]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	users, err := c.deps.Dataset.Users(c.Actor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, users)
}

// @Summary User
// @Tags Users
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  				    true         "user ID"
// @Success 200 {object} userapimodels.User
// @router /api/users/{id} [get]
func (c *userApiController) get(ctx *fiber.Ctx) error {
	user, err := c.deps.Dataset.User(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, user)
}

// @Summary Create user
// @Tags Users
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	userapimodels.CreateUser	true	"request body"
// @Success 201 {object} userapimodels.User
// @Failure 409 {object} apimodels.Response
// @router /api/users [post]
func (c *userApiController) create(ctx *fiber.Ctx) error {
	var payload userapimodels.CreateUser
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	user, err := c.deps.Dataset.CreateUser(c.Actor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendCreated(ctx, user)
}

// @Summary Update user
// @Tags Users
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"user ID"
// @Param	body	body	userapimodels.UpdateUser	true	"request body"
// @Success 200 {object} userapimodels.User
// @router /api/users/{id} [patch]
func (c *userApiController) update(ctx *fiber.Ctx) error {
	var payload userapimodels.UpdateUser
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	user, err := c.deps.Dataset.UpdateUser(c.Actor(ctx), ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, user)
}

// @Summary Delete user
// @Tags Users
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"user ID"
// @Success 204
// @router /api/users/{id} [delete]
func (c *userApiController) delete(ctx *fiber.Ctx) error {
	if err := c.deps.Dataset.DeleteUser(c.Actor(ctx), ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary Change password
// @Tags Users
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"user ID"
// @Param	body	body	userapimodels.PasswordUpdate	true	"request body"
// @Success 204
// @Failure 400 {object} apimodels.Response
// @router /api/users/{id}/password [post]
func (c *userApiController) updatePassword(ctx *fiber.Ctx) error {
	var payload userapimodels.PasswordUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := c.deps.Dataset.UpdatePassword(c.Actor(ctx), ctx.Params("id"), payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
