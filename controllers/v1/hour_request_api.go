package apiv1

import (
	"hours-dashboard/controllers"
	apimodels "hours-dashboard/models/api"
	projectapimodels "hours-dashboard/models/api/project"

	"github.com/gofiber/fiber/v2"
)

type hourRequestApiController struct {
	controllers.BaseAPIController
	deps Deps
}

func InitHourRequestApiRouters(app *fiber.App, deps Deps) {
	controller := hourRequestApiController{deps: deps}
	app.Route("projects/:id/hour-requests", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Delete(":requestId", controller.delete)
		router.Patch(":requestId/review", controller.review)
	})
}

// @Summary Hour requests of a project, newest first
// @Tags Hour requests
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  				    true         "project ID"
// @Success 200 {array} projectapimodels.HourRequest
// @router /api/projects/{id}/hour-requests [get]
func (c *hourRequestApiController) list(ctx *fiber.Ctx) error {
	requests, err := c.deps.Dataset.HourRequests(c.Actor(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, requests)
}

// @Summary Ask for more hours
// @Tags Hour requests
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"project ID"
// @Param	body	body	projectapimodels.CreateHourRequest	true	"request body"
// @Success 201 {object} projectapimodels.HourRequest
// @router /api/projects/{id}/hour-requests [post]
func (c *hourRequestApiController) create(ctx *fiber.Ctx) error {
	var payload projectapimodels.CreateHourRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	request, err := c.deps.Dataset.CreateHourRequest(c.Actor(ctx), ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendCreated(ctx, request)
}

// @Summary Approve or reject a pending request
// @Tags Hour requests
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"project ID"
// @Param	requestId	path	string	true	"hour request ID"
// @Param	body	body	projectapimodels.ReviewHourRequest	true	"request body"
// @Success 200 {object} projectapimodels.HourRequest
// @Failure 409 {object} apimodels.Response
// @router /api/projects/{id}/hour-requests/{requestId}/review [patch]
func (c *hourRequestApiController) review(ctx *fiber.Ctx) error {
	var payload projectapimodels.ReviewHourRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	request, err := c.deps.Dataset.ReviewHourRequest(c.Actor(ctx), ctx.Params("id"), ctx.Params("requestId"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, request)
}

// @Summary Withdraw a pending request
// @Tags Hour requests
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"project ID"
// @Param	requestId	path	string	true	"hour request ID"
// @Success 204
// @Failure 409 {object} apimodels.Response
// @router /api/projects/{id}/hour-requests/{requestId} [delete]
func (c *hourRequestApiController) delete(ctx *fiber.Ctx) error {
	if err := c.deps.Dataset.DeleteHourRequest(c.Actor(ctx), ctx.Params("id"), ctx.Params("requestId")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
