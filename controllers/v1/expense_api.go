package apiv1

import (
	"hours-dashboard/controllers"
	apimodels "hours-dashboard/models/api"
	projectapimodels "hours-dashboard/models/api/project"

	"github.com/gofiber/fiber/v2"
)

type expenseApiController struct {
	controllers.BaseAPIController
	deps Deps
}

func InitExpenseApiRouters(app *fiber.App, deps Deps) {
	controller := expenseApiController{deps: deps}
	app.Route("projects/:id/expenses", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Route(":expenseId", func(idRoute fiber.Router) {
			idRoute.Patch("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Route("payments", func(paymentRoute fiber.Router) {
				paymentRoute.Post("", controller.addPayment)
				paymentRoute.Patch(":paymentId", controller.updatePayment)
				paymentRoute.Delete(":paymentId", controller.deletePayment)
			})
		})
	})
}

// @Summary Add expense
// @Tags Expenses
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  				    true         "project ID"
// @Param	body	body	projectapimodels.NewExpense	true	"request body"
// @Success 201 {object} projectapimodels.Expense
// @router /api/projects/{id}/expenses [post]
func (c *expenseApiController) create(ctx *fiber.Ctx) error {
	var payload projectapimodels.NewExpense
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	expense, err := c.deps.Dataset.AddExpense(c.Actor(ctx), ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendCreated(ctx, expense)
}

// @Summary Update expense
// @Tags Expenses
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"project ID"
// @Param	expenseId	path	string	true	"expense ID"
// @Param	body	body	projectapimodels.ExpenseUpdate	true	"request body"
// @Success 200 {object} projectapimodels.Expense
// @router /api/projects/{id}/expenses/{expenseId} [patch]
func (c *expenseApiController) update(ctx *fiber.Ctx) error {
	var payload projectapimodels.ExpenseUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	expense, err := c.deps.Dataset.UpdateExpense(c.Actor(ctx), ctx.Params("id"), ctx.Params("expenseId"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, expense)
}

// @Summary Delete expense
// @Tags Expenses
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"project ID"
// @Param	expenseId	path	string	true	"expense ID"
// @Success 204
// @router /api/projects/{id}/expenses/{expenseId} [delete]
func (c *expenseApiController) delete(ctx *fiber.Ctx) error {
	if err := c.deps.Dataset.DeleteExpense(c.Actor(ctx), ctx.Params("id"), ctx.Params("expenseId")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary Record payment
// @Tags Expenses
// @Description Answers with the expense and its recomputed totals
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"project ID"
// @Param	expenseId	path	string	true	"expense ID"
// @Param	body	body	projectapimodels.PaymentData	true	"request body"
// @Success 201 {object} projectapimodels.Expense
// @router /api/projects/{id}/expenses/{expenseId}/payments [post]
func (c *expenseApiController) addPayment(ctx *fiber.Ctx) error {
	var payload projectapimodels.PaymentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	expense, err := c.deps.Dataset.AddPayment(c.Actor(ctx), ctx.Params("id"), ctx.Params("expenseId"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendCreated(ctx, expense)
}

// @Summary Update payment
// @Tags Expenses
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"project ID"
// @Param	expenseId	path	string	true	"expense ID"
// @Param	paymentId	path	string	true	"payment ID"
// @Param	body	body	projectapimodels.PaymentUpdate	true	"request body"
// @Success 200 {object} projectapimodels.Expense
// @router /api/projects/{id}/expenses/{expenseId}/payments/{paymentId} [patch]
func (c *expenseApiController) updatePayment(ctx *fiber.Ctx) error {
	var payload projectapimodels.PaymentUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	expense, err := c.deps.Dataset.UpdatePayment(c.Actor(ctx), ctx.Params("id"), ctx.Params("expenseId"), ctx.Params("paymentId"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, expense)
}

// @Summary Delete payment
// @Tags Expenses
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id	path	string	true	"project ID"
// @Param	expenseId	path	string	true	"expense ID"
// @Param	paymentId	path	string	true	"payment ID"
// @Success 200 {object} projectapimodels.Expense
// @router /api/projects/{id}/expenses/{expenseId}/payments/{paymentId} [delete]
func (c *expenseApiController) deletePayment(ctx *fiber.Ctx) error {
	expense, err := c.deps.Dataset.DeletePayment(c.Actor(ctx), ctx.Params("id"), ctx.Params("expenseId"), ctx.Params("paymentId"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, expense)
}
