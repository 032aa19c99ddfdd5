package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid      = "pid"
	TagLatency  = "latency"
	TagStatus   = "status"
	TagMethod   = "method"
	TagPath     = "path"
	TagURL      = "url"
	TagIP       = "ip"
	TagUA       = "user_agent"
	TagBody     = "body"
	TagResBody  = "res_body"
	TagBytesIn  = "bytes_in"
	TagBytesOut = "bytes_out"
	RequestID   = "request_id"
)

// bodies longer than this are cut in the log
const maxLoggedBody = 2048

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag extracts one log field from a finished request.
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func truncate(body []byte) string {
	if len(body) > maxLoggedBody {
		return string(body[:maxLoggedBody]) + "..."
	}
	return string(body)
}

var tagFuncs = map[string]FuncTag{
	TagPid: func(_ *fiber.Ctx, d *data) interface{} {
		return d.pid
	},
	TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
		return d.end.Sub(d.start).String()
	},
	TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
		return c.Response().StatusCode()
	},
	TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
		return c.Method()
	},
	TagPath: func(c *fiber.Ctx, _ *data) interface{} {
		return c.Path()
	},
	TagURL: func(c *fiber.Ctx, _ *data) interface{} {
		return c.OriginalURL()
	},
	TagIP: func(c *fiber.Ctx, _ *data) interface{} {
		return c.IP()
	},
	TagUA: func(c *fiber.Ctx, _ *data) interface{} {
		return c.Get(fiber.HeaderUserAgent)
	},
	TagBody: func(c *fiber.Ctx, _ *data) interface{} {
		return truncate(c.Body())
	},
	TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
		return truncate(c.Response().Body())
	},
	TagBytesIn: func(c *fiber.Ctx, _ *data) interface{} {
		return len(c.Request().Body())
	},
	TagBytesOut: func(c *fiber.Ctx, _ *data) interface{} {
		return len(c.Response().Body())
	},
	RequestID: func(c *fiber.Ctx, _ *data) interface{} {
		return c.GetRespHeader(fiber.HeaderXRequestID)
	},
}

// getFuncTagMap keeps the FuncTag of every configured tag. Unknown tags are ignored.
func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := tagFuncs[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}
