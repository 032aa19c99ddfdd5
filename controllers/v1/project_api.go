package apiv1

import (
	"hours-dashboard/controllers"
	apimodels "hours-dashboard/models/api"
	projectapimodels "hours-dashboard/models/api/project"

	"github.com/gofiber/fiber/v2"
)

type projectApiController struct {
	controllers.BaseAPIController
	deps Deps
}

func InitProjectApiRouters(app *fiber.App, deps Deps) {
	controller := projectApiController{deps: deps}
	app.Route("projects", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Patch("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Route("time-entries", func(entryRoute fiber.Router) {
				entryRoute.Post("", controller.addTimeEntry)
				entryRoute.Patch(":entryId", controller.updateTimeEntry)
				entryRoute.Post(":entryId/comments", controller.addComment)
			})
		})
	})
}

// @Summary Projects visible to the caller
// @Tags Projects
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} projectapimodels.Project
// @router /api/projects [get]
func (c *projectApiController) list(ctx *fiber.Ctx) error {
	return c.SendOK(ctx, c.deps.Dataset.Projects(c.Actor(ctx)))
}

// @Summary Create project
// @Tags Projects
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	projectapimodels.CreateProject	true	"request body"
// @Success 201 {object} projectapimodels.Project
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/projects [post]
func (c *projectApiController) create(ctx *fiber.Ctx) error {
	var payload projectapimodels.CreateProject
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	project, err := c.deps.Dataset.CreateProject(c.Actor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendCreated(ctx, project)
}

// @Summary Project with entries and expenses
// @Tags Projects
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  				    true         "project ID"
// @Success 200 {object} projectapimodels.Project
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/projects/{id} [get]
func (c *projectApiController) get(ctx *fiber.Ctx) error {
	project, err := c.deps.Dataset.Project(c.Actor(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, project)
}

// @Summary Update project
// @Tags Projects
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  				    true         "project ID"
// @Param	body	body	projectapimodels.ProjectUpdate	true	"request body"
// @Success 200 {object} projectapimodels.Project
// @router /api/projects/{id} [patch]
func (c *projectApiController) update(ctx *fiber.Ctx) error {
	var payload projectapimodels.ProjectUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	project, err := c.deps.Dataset.UpdateProject(c.Actor(ctx), ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, project)
}

// @Summary Delete project
// @Tags Projects
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  				    true         "project ID"
// @Success 204
// @router /api/projects/{id} [delete]
func (c *projectApiController) delete(ctx *fiber.Ctx) error {
	if err := c.deps.Dataset.DeleteProject(c.Actor(ctx), ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary Log hours
// @Tags Time entries
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  				    true         "project ID"
// @Param	body	body	projectapimodels.NewTimeEntry	true	"request body"
// @Success 201 {object} projectapimodels.TimeEntry
// @router /api/projects/{id}/time-entries [post]
func (c *projectApiController) addTimeEntry(ctx *fiber.Ctx) error {
	var payload projectapimodels.NewTimeEntry
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	entry, err := c.deps.Dataset.AddTimeEntry(c.Actor(ctx), ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendCreated(ctx, entry)
}

// @Summary Update time entry
// @Tags Time entries
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  				    true         "project ID"
// @Param   entryId          		path    	string  				    true         "time entry ID"
// @Param	body	body	projectapimodels.TimeEntryUpdate	true	"request body"
// @Success 200 {object} projectapimodels.TimeEntry
// @router /api/projects/{id}/time-entries/{entryId} [patch]
func (c *projectApiController) updateTimeEntry(ctx *fiber.Ctx) error {
	var payload projectapimodels.TimeEntryUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	entry, err := c.deps.Dataset.UpdateTimeEntry(c.Actor(ctx), ctx.Params("id"), ctx.Params("entryId"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, entry)
}

// @Summary Comment on a time entry
// @Tags Time entries
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  				    true         "project ID"
// @Param   entryId          		path    	string  				    true         "time entry ID"
// @Param	body	body	projectapimodels.CommentRequest	true	"request body"
// @Success 201 {object} projectapimodels.Comment
// @router /api/projects/{id}/time-entries/{entryId}/comments [post]
func (c *projectApiController) addComment(ctx *fiber.Ctx) error {
	var payload projectapimodels.CommentRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	comment, err := c.deps.Dataset.AddComment(c.Actor(ctx), ctx.Params("id"), ctx.Params("entryId"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendCreated(ctx, comment)
}
