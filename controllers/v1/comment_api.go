package apiv1

import (
	"hours-dashboard/controllers"
	"hours-dashboard/lib/backend"
	trackerapimodels "hours-dashboard/models/api/tracker"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type commentApiController struct {
	controllers.BaseAPIController
	deps Deps
}

func InitCommentApiRouters(app *fiber.App, deps Deps) {
	controller := commentApiController{deps: deps}
	app.Route("comments", func(router fiber.Router) {
		router.Get("unread", controller.unread)
		router.Patch("task/:id/read-all", controller.readAllTask)
		router.Patch("time-entry/:id/read-all", controller.readAllTimeEntry)
		router.Patch(":id/read", controller.markRead)
	})
}

// @Summary Unread comments grouped by task and time entry
// @Tags Comments
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {array} trackerapimodels.UnreadCommentsGroup
// @router /api/comments/unread [get]
func (c *commentApiController) unread(ctx *fiber.Ctx) error {
	return c.SendOK(ctx, c.deps.Dataset.Unread(c.Actor(ctx)))
}

// @Summary Mark one comment read
// @Tags Comments
// @Description The comment may belong to a task or to a time entry
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"comment ID"
// @Success 204
// @router /api/comments/{id}/read [patch]
func (c *commentApiController) markRead(ctx *fiber.Ctx) error {
	actor := c.Actor(ctx)
	commentID := ctx.Params("id")
	err := c.deps.Dataset.MarkRead(actor, commentID, trackerapimodels.TaskGroup)
	if errors.Is(err, backend.ErrNotFound) {
		err = c.deps.Dataset.MarkRead(actor, commentID, trackerapimodels.TimeEntryGroup)
	}
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary Mark every comment of a task read
// @Tags Comments
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"task key"
// @Success 204
// @router /api/comments/task/{id}/read-all [patch]
func (c *commentApiController) readAllTask(ctx *fiber.Ctx) error {
	return c.readAll(ctx, trackerapimodels.TaskGroup)
}

// @Summary Mark every comment of a time entry read
// @Tags Comments
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"time entry ID"
// @Success 204
// @router /api/comments/time-entry/{id}/read-all [patch]
func (c *commentApiController) readAllTimeEntry(ctx *fiber.Ctx) error {
	return c.readAll(ctx, trackerapimodels.TimeEntryGroup)
}

func (c *commentApiController) readAll(ctx *fiber.Ctx, groupType trackerapimodels.GroupType) error {
	if err := c.deps.Dataset.MarkAllRead(c.Actor(ctx), ctx.Params("id"), groupType); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
