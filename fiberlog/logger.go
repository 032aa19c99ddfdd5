package fiberlog

import (
	"os"
	"slices"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// getLogrusFields calls FuncTag functions on matching keys
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		strValue, ok := value.(string)
		if ok {
			if strValue != "" {
				f[k] = strValue
			}
		} else {
			f[k] = value
		}
	}
	return f
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg, &data{})
	return func(c *fiber.Ctx) error {
		// per request, handlers run concurrently
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions || slices.Contains(cfg.SkipPaths, c.Path()) {
			return err
		}

		fields := getLogrusFields(ftm, c, d)
		status := c.Response().StatusCode()
		switch cfg.Logger {
		case nil:
			log.WithFields(fields).Info(getMessage(status))
		default:
			entity := cfg.Logger.WithFields(fields)
			switch {
			case status >= fiber.StatusInternalServerError:
				entity.Error(getMessage(status))
			case status >= 300:
				entity.Warn(getMessage(status))
			default:
				entity.Info(getMessage(status))
			}
		}

		return err
	}
}

func getMessage(status int) string {
	if status >= 300 {
		return "api request rejected"
	}
	return "api request"
}
