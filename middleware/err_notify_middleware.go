package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	apimodels "hours-dashboard/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type errNotification struct {
	Code   int    `json:"code"`
	Method string `json:"method"`
	Path   string `json:"path"`
	Error  string `json:"error"`
}

// ErrNotify posts every 5xx answer to the webhook at addr.
func ErrNotify(addr string) fiber.Handler {
	client := &http.Client{Timeout: 5 * time.Second}
	return func(c *fiber.Ctx) error {
		err := c.Next()
		code := c.Response().StatusCode()
		if err != nil {
			code = fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
		}
		if code < fiber.StatusInternalServerError {
			return err
		}

		n := errNotification{Code: code, Method: c.Method(), Path: c.OriginalURL()}
		if r := c.Route(); r != nil {
			n.Path = r.Path
		}
		body := c.Response().Body()
		var resp apimodels.Response
		switch {
		case json.Unmarshal(body, &resp) == nil && resp.Message != "":
			n.Error = resp.Message
		case err != nil:
			n.Error = err.Error()
		default:
			n.Error = string(body)
		}
		go notify(client, addr, n)
		return err
	}
}

func notify(client *http.Client, addr string, n errNotification) {
	payload, err := json.Marshal(n)
	if err != nil {
		return
	}
	resp, err := client.Post(addr, fiber.MIMEApplicationJSON, bytes.NewReader(payload))
	if err != nil {
		log.WithError(err).WithField("addr", addr).Warn("error sending error notification")
		return
	}
	resp.Body.Close()
}
