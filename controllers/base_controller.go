package controllers

import (
	"hours-dashboard/lib/backend"
	"hours-dashboard/middleware"
	apimodels "hours-dashboard/models/api"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("unable to parse request body")
		return errors.New("unable to read request data")
	}
	return nil
}

// Actor is the signed-in account of the request.
func (c *BaseAPIController) Actor(ctx *fiber.Ctx) *userapimodels.User {
	return middleware.GetUser(ctx)
}

// SendError answers with the status matching err and the fail envelope.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	status := backend.StatusOf(err)
	message := err.Error()
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		message = apiErr.Message
	}
	if status >= fiber.StatusInternalServerError {
		log.WithError(err).WithField("path", ctx.Path()).Error("request failed")
	}
	return ctx.Status(status).JSON(apimodels.NewError(message))
}

func (c *BaseAPIController) SendOK(ctx *fiber.Ctx, resp interface{}) error {
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

func (c *BaseAPIController) SendCreated(ctx *fiber.Ctx, resp interface{}) error {
	return ctx.Status(fiber.StatusCreated).JSON(resp)
}
