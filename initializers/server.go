package initializers

import (
	"time"

	"hours-dashboard/config"
	apiv1 "hours-dashboard/controllers/v1"
	"hours-dashboard/docs"
	"hours-dashboard/fiberlog"
	"hours-dashboard/lib/backend/mock"
	"hours-dashboard/lib/rbac"
	authutils "hours-dashboard/lib/utils/auth-utils"
	"hours-dashboard/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/pkg/errors"
)

const apiPrefix = "/api"

// InitServerApp builds the mock REST API over a fresh demo dataset.
func InitServerApp(conf *config.Configuration, loggerConfig *fiberlog.Config) (*fiber.App, error) {
	dataset, err := mock.NewDataset(time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "unable to seed mock data")
	}
	return NewServerApp(conf, loggerConfig, apiv1.Deps{
		Dataset: dataset,
		Tokens:  authutils.NewInstance(conf.Mock.JWTSecret, conf.JWTExpire()),
		Rbac:    rbac.NewInstance(apiPrefix),
	}), nil
}

func NewServerApp(conf *config.Configuration, loggerConfig *fiberlog.Config, deps apiv1.Deps) *fiber.App {
	bodyLimit := conf.App.BodyLimitKb * 1024
	app := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
	})
	app.Use(fiberRecover.New())

	app.Use(swagger.New(swagger.Config{
		Path:        "/swagger",
		FilePath:    "./docs/swagger.json",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Title:       docs.SwaggerInfo.Title,
	}))
	if conf.App.ErrNotifyURL != "" {
		app.Use(middleware.ErrNotify(conf.App.ErrNotifyURL))
	}

	api := fiber.New()
	api.Use(requestid.New())
	if loggerConfig != nil {
		api.Use(fiberlog.New(*loggerConfig))
	}
	api.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE",
	}))
	api.Use(middleware.WithBodyLimit(int64(bodyLimit)))
	app.Mount(apiPrefix, api)
	apiv1.InitApiRouters(api, deps)
	return app
}
