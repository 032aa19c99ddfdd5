package rbac

import (
	"testing"

	"hours-dashboard/models"

	"github.com/stretchr/testify/require"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/projects/{id}/hour-requests/{requestId}/review [patch]")
		require.Nil(t, err)
		require.Equal(t, PATCH, method)
		r1, err := pathToRegex(path)
		require.NoError(t, err)

		validUri := "/projects/123-321/hour-requests/qwe-ewr123/review"
		require.True(t, r1.MatchString(validUri))

		invalidUri := "/projects/123-321/hour-requests/review"
		require.False(t, r1.MatchString(invalidUri))
	})
	t.Run(`pattern without method`, func(t *testing.T) {
		_, _, err := parseSwaggerPattern("/projects/{id}")
		require.NotNil(t, err)
	})
	t.Run(`normalizePath`, func(t *testing.T) {
		require.Equal(t, "/", normalizePath(""))
		require.Equal(t, "/api/projects", normalizePath("api//projects/"))
	})
}

func TestPermissionsFor(t *testing.T) {
	t.Run(`admin has everything`, func(t *testing.T) {
		require.Equal(t, models.UserPermissions{
			CanManageProjects: true,
			CanManageUsers:    true,
			CanManageExpenses: true,
			CanApproveHours:   true,
			CanViewReports:    true,
		}, PermissionsFor(models.AdminRole))
	})
	t.Run(`manager cannot manage users`, func(t *testing.T) {
		p := PermissionsFor(models.ManagerRole)
		require.False(t, p.CanManageUsers)
		require.True(t, p.CanManageProjects)
		require.True(t, p.CanManageExpenses)
		require.True(t, p.CanApproveHours)
		require.True(t, p.CanViewReports)
	})
	t.Run(`user and unknown roles have nothing`, func(t *testing.T) {
		require.Equal(t, models.UserPermissions{}, PermissionsFor(models.RegularUserRole))
		require.Equal(t, models.UserPermissions{}, PermissionsFor(models.UserRole("auditor")))
	})
	t.Run(`only admin manages users`, func(t *testing.T) {
		require.Equal(t, []models.UserRole{models.AdminRole}, UserManagerRoleSet)
	})
}

func TestRules(t *testing.T) {
	provider := NewInstance("/api")

	t.Run(`exact route by role`, func(t *testing.T) {
		handler, ok := provider.GetRuleFunc("post", "/api/projects")
		require.True(t, ok)
		require.True(t, handler("1", models.ManagerRole, "/api/projects"))
		require.False(t, handler("3", models.RegularUserRole, "/api/projects"))
	})
	t.Run(`pattern route by role`, func(t *testing.T) {
		handler, ok := provider.GetRuleFunc("PATCH", "/api/projects/p1/hour-requests/r1/review")
		require.True(t, ok)
		require.True(t, handler("2", models.ManagerRole, ""))
		require.False(t, handler("3", models.RegularUserRole, ""))
	})
	t.Run(`unknown route`, func(t *testing.T) {
		_, ok := provider.GetRuleFunc("GET", "/api/unknown")
		require.False(t, ok)
	})
	t.Run(`own password only`, func(t *testing.T) {
		handler, ok := provider.GetRuleFunc("POST", "/api/users/3/password")
		require.True(t, ok)
		require.True(t, handler("3", models.RegularUserRole, "/api/users/3/password"))
		require.False(t, handler("4", models.RegularUserRole, "/api/users/3/password"))
		require.True(t, handler("1", models.AdminRole, "/api/users/3/password"))
	})
	t.Run(`permissions for display`, func(t *testing.T) {
		perms := provider.GetPermissions(models.ManagerRole)
		require.Contains(t, perms[models.HourRequestsModule], models.ApprovePermission)
		require.Contains(t, perms[models.ReportsModule], models.ViewPermission)
		require.NotContains(t, perms[models.UsersModule], models.CreatePermission)
	})
}
