package apiv1

import (
	"hours-dashboard/controllers"
	apimodels "hours-dashboard/models/api"
	trackerapimodels "hours-dashboard/models/api/tracker"

	"github.com/gofiber/fiber/v2"
)

type trackerApiController struct {
	controllers.BaseAPIController
	deps Deps
}

func InitTrackerApiRouters(app *fiber.App, deps Deps) {
	controller := trackerApiController{deps: deps}
	app.Route("projects", func(router fiber.Router) {
		router.Get("jira/epics", controller.epics)
		router.Get("jira/epics/:id", controller.epic)
		router.Get("jira-tasks/:key/comments", controller.taskComments)
		router.Post("jira-tasks/:key/comments", controller.addTaskComment)
		router.Patch("comments/:id", controller.updateComment)
		router.Delete("comments/:id", controller.deleteComment)
		router.Post("comments/:id/read", controller.markRead)
		router.Get(":id/jira-tasks", controller.tasks)
	})
}

// @Summary Tracker epics
// @Tags Tracker
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   projectKey	query	string	false	"tracker project key"
// @Success 200 {array} trackerapimodels.Epic
// @router /api/projects/jira/epics [get]
func (c *trackerApiController) epics(ctx *fiber.Ctx) error {
	return c.SendOK(ctx, c.deps.Dataset.Epics(ctx.Query("projectKey")))
}

// @Summary Tracker epic by id or key
// @Tags Tracker
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"epic ID or key"
// @Success 200 {object} trackerapimodels.Epic
// @router /api/projects/jira/epics/{id} [get]
func (c *trackerApiController) epic(ctx *fiber.Ctx) error {
	epic, err := c.deps.Dataset.Epic(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, epic)
}

// @Summary Tasks of the epic linked to a project
// @Tags Tracker
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"project ID"
// @Success 200 {array} trackerapimodels.Task
// @router /api/projects/{id}/jira-tasks [get]
func (c *trackerApiController) tasks(ctx *fiber.Ctx) error {
	tasks, err := c.deps.Dataset.Tasks(c.Actor(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, tasks)
}

// @Summary Task comments
// @Tags Tracker
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	key	path	string	true	"task key"
// @Success 200 {array} trackerapimodels.TaskComment
// @router /api/projects/jira-tasks/{key}/comments [get]
func (c *trackerApiController) taskComments(ctx *fiber.Ctx) error {
	comments, err := c.deps.Dataset.TaskComments(c.Actor(ctx), ctx.Params("key"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, comments)
}

// @Summary Comment on a task
// @Tags Tracker
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	key	path	string	true	"task key"
// @Param	body	body	trackerapimodels.NewTaskComment	true	"request body"
// @Success 201 {object} trackerapimodels.TaskComment
// @router /api/projects/jira-tasks/{key}/comments [post]
func (c *trackerApiController) addTaskComment(ctx *fiber.Ctx) error {
	var payload trackerapimodels.NewTaskComment
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	comment, err := c.deps.Dataset.AddTaskComment(c.Actor(ctx), ctx.Params("key"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendCreated(ctx, comment)
}

// @Summary Edit own task comment
// @Tags Tracker
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"comment ID"
// @Param	body	body	trackerapimodels.CommentUpdate	true	"request body"
// @Success 204
// @router /api/projects/comments/{id} [patch]
func (c *trackerApiController) updateComment(ctx *fiber.Ctx) error {
	var payload trackerapimodels.CommentUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := c.deps.Dataset.UpdateComment(c.Actor(ctx), ctx.Params("id"), payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary Delete own task comment
// @Tags Tracker
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"comment ID"
// @Success 204
// @router /api/projects/comments/{id} [delete]
func (c *trackerApiController) deleteComment(ctx *fiber.Ctx) error {
	if err := c.deps.Dataset.DeleteComment(c.Actor(ctx), ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary Mark a task comment read
// @Tags Tracker
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"comment ID"
// @Success 204
// @router /api/projects/comments/{id}/read [post]
func (c *trackerApiController) markRead(ctx *fiber.Ctx) error {
	if err := c.deps.Dataset.MarkRead(c.Actor(ctx), ctx.Params("id"), trackerapimodels.TaskGroup); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
