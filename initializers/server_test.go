package initializers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"hours-dashboard/config"
	apiv1 "hours-dashboard/controllers/v1"
	"hours-dashboard/lib/backend/mock"
	"hours-dashboard/lib/rbac"
	authutils "hours-dashboard/lib/utils/auth-utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type swaggerDoc struct {
	Swagger string `json:"swagger"`
	Info    struct {
		Title string `json:"title"`
	} `json:"info"`
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]json.RawMessage            `json:"definitions"`
}

func testConfig() *config.Configuration {
	conf := &config.Configuration{}
	conf.App.BodyLimitKb = 1024
	conf.Mock.JWTSecret = "test-secret"
	conf.Mock.JWTExpireInSec = 3600
	return conf
}

func TestServerDocs(t *testing.T) {
	app, err := InitServerApp(testConfig(), nil)
	require.NoError(t, err)

	t.Run(`ui`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/swagger", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	})
	t.Run(`every api route is documented`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs/swagger.json", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		doc := swaggerDoc{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
		require.Equal(t, "2.0", doc.Swagger)
		require.Equal(t, "Hours dashboard API", doc.Info.Title)
		require.Contains(t, doc.Definitions, "projectapimodels.Project")

		api := fiber.New()
		apiv1.InitApiRouters(api, apiv1.Deps{
			Dataset: &mock.Dataset{},
			Tokens:  authutils.NewInstance("test-secret", time.Hour),
			Rbac:    rbac.NewInstance(apiPrefix),
		})
		param := regexp.MustCompile(`:(\w+)`)
		count := 0
		for _, route := range api.GetRoutes(true) {
			if route.Method == fiber.MethodHead {
				continue
			}
			path := apiPrefix + "/" + strings.Trim(route.Path, "/")
			path = param.ReplaceAllString(path, "{$1}")
			methods, ok := doc.Paths[path]
			require.True(t, ok, "%s is not documented", path)
			require.Contains(t, methods, strings.ToLower(route.Method), "%s %s is not documented", route.Method, path)
			count++
		}
		require.Equal(t, 40, count)
	})
}
