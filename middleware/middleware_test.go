package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hours-dashboard/lib/backend"
	"hours-dashboard/lib/rbac"
	authutils "hours-dashboard/lib/utils/auth-utils"
	"hours-dashboard/models"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(8))
	app.Post("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest("POST", "/", strings.NewReader("small")))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/", strings.NewReader("much larger body")))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestGuards(t *testing.T) {
	tokens := authutils.NewInstance("test-secret", time.Hour)
	users := map[string]*userapimodels.User{
		"1": {ID: "1", Role: models.AdminRole},
		"3": {ID: "3", Role: models.RegularUserRole},
	}
	lookup := func(id string) (*userapimodels.User, error) {
		if u, ok := users[id]; ok {
			return u, nil
		}
		return nil, backend.NotFound("user", id)
	}

	app := fiber.New()
	app.Use(AuthorizationRequired(tokens.Secret()), UserRequired(lookup), RbacMiddleware(rbac.NewInstance("/")))
	app.Post("/projects", func(c *fiber.Ctx) error { return c.SendString(GetUser(c).ID) })

	request := func(token string) int {
		req := httptest.NewRequest("POST", "/projects", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}
	token := func(id string, role models.UserRole) string {
		s, err := tokens.GetToken(id, "name", role)
		require.NoError(t, err)
		return s
	}

	t.Run(`no token`, func(t *testing.T) {
		require.Equal(t, fiber.StatusUnauthorized, request(""))
	})
	t.Run(`foreign signature`, func(t *testing.T) {
		other, err := authutils.NewInstance("other", time.Hour).GetToken("1", "x", models.AdminRole)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, request(other))
	})
	t.Run(`unknown user`, func(t *testing.T) {
		require.Equal(t, fiber.StatusUnauthorized, request(token("9", models.AdminRole)))
	})
	t.Run(`role check`, func(t *testing.T) {
		require.Equal(t, fiber.StatusForbidden, request(token("3", models.RegularUserRole)))
		require.Equal(t, fiber.StatusOK, request(token("1", models.AdminRole)))
	})
}
