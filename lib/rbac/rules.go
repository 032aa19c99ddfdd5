package rbac

import (
	"strings"

	"hours-dashboard/models"

	log "github.com/sirupsen/logrus"
)

var (
	ProjectManagerRoleSet = RolesWith(func(p models.UserPermissions) bool { return p.CanManageProjects })
	UserManagerRoleSet    = RolesWith(func(p models.UserPermissions) bool { return p.CanManageUsers })
	ExpenseManagerRoleSet = RolesWith(func(p models.UserPermissions) bool { return p.CanManageExpenses })
	HoursApproverRoleSet  = RolesWith(func(p models.UserPermissions) bool { return p.CanApproveHours })
	ReportViewerRoleSet   = RolesWith(func(p models.UserPermissions) bool { return p.CanViewReports })
)

func (i *impl) initRules() {
	i.profile()
	i.projects()
	i.expenses()
	i.hourRequests()
	i.users()
	i.tracker()
	i.comments()
	i.grant(models.ReportsModule, models.ViewPermission, ReportViewerRoleSet)
}

func (i *impl) register(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) {
	if err := i.RegisterRule(module, permission, roles, swaggerPattern, handler); err != nil {
		log.WithError(err).Errorf("rbac: unable to register rule %v", swaggerPattern)
	}
}

func (i *impl) profile() {
	i.register(models.UsersModule, models.EditPermission, AllRoles, "/auth/logout [post]", nil)
	i.register(models.UsersModule, models.ViewPermission, AllRoles, "/auth/me [get]", nil)
	i.register(models.UsersModule, models.EditPermission, AllRoles, "/auth/settings [patch]", nil)
}

func (i *impl) projects() {
	// VIEW
	i.register(models.ProjectsModule, models.ViewPermission, AllRoles, "/projects [get]", nil)
	i.register(models.ProjectsModule, models.ViewPermission, AllRoles, "/projects/{id} [get]", nil)
	// MANAGE
	i.register(models.ProjectsModule, models.CreatePermission, ProjectManagerRoleSet, "/projects [post]", nil)
	i.register(models.ProjectsModule, models.EditPermission, ProjectManagerRoleSet, "/projects/{id} [patch]", nil)
	i.register(models.ProjectsModule, models.DeletePermission, ProjectManagerRoleSet, "/projects/{id} [delete]", nil)
	// TIME ENTRIES, requested by clients too
	i.register(models.ProjectsModule, models.ViewPermission, AllRoles, "/projects/{id}/time-entries [post]", nil)
	i.register(models.ProjectsModule, models.ViewPermission, AllRoles, "/projects/{id}/time-entries/{entryId} [patch]", nil)
	i.register(models.ProjectsModule, models.ViewPermission, AllRoles, "/projects/{id}/time-entries/{entryId}/comments [post]", nil)
}

func (i *impl) expenses() {
	i.register(models.ExpensesModule, models.CreatePermission, ExpenseManagerRoleSet, "/projects/{id}/expenses [post]", nil)
	i.register(models.ExpensesModule, models.EditPermission, ExpenseManagerRoleSet, "/projects/{id}/expenses/{expenseId} [patch]", nil)
	i.register(models.ExpensesModule, models.DeletePermission, ExpenseManagerRoleSet, "/projects/{id}/expenses/{expenseId} [delete]", nil)
	// PAYMENTS
	i.register(models.ExpensesModule, models.EditPermission, ExpenseManagerRoleSet, "/projects/{id}/expenses/{expenseId}/payments [post]", nil)
	i.register(models.ExpensesModule, models.EditPermission, ExpenseManagerRoleSet, "/projects/{id}/expenses/{expenseId}/payments/{paymentId} [patch]", nil)
	i.register(models.ExpensesModule, models.EditPermission, ExpenseManagerRoleSet, "/projects/{id}/expenses/{expenseId}/payments/{paymentId} [delete]", nil)
}

func (i *impl) hourRequests() {
	i.register(models.HourRequestsModule, models.ViewPermission, AllRoles, "/projects/{id}/hour-requests [get]", nil)
	i.register(models.HourRequestsModule, models.CreatePermission, AllRoles, "/projects/{id}/hour-requests [post]", nil)
	i.register(models.HourRequestsModule, models.DeletePermission, AllRoles, "/projects/{id}/hour-requests/{requestId} [delete]", nil)
	i.register(models.HourRequestsModule, models.ApprovePermission, HoursApproverRoleSet, "/projects/{id}/hour-requests/{requestId}/review [patch]", nil)
}

func (i *impl) users() {
	// VIEW, managers pick assignees from this list
	i.register(models.UsersModule, models.ViewPermission, ProjectManagerRoleSet, "/users [get]", nil)
	i.register(models.UsersModule, models.ViewPermission, ProjectManagerRoleSet, "/users/{id} [get]", nil)
	// MANAGE
	i.register(models.UsersModule, models.CreatePermission, UserManagerRoleSet, "/users [post]", nil)
	i.register(models.UsersModule, models.EditPermission, UserManagerRoleSet, "/users/{id} [patch]", nil)
	i.register(models.UsersModule, models.DeletePermission, UserManagerRoleSet, "/users/{id} [delete]", nil)
	// own password, or anyone's for user managers
	i.register(models.UsersModule, models.EditPermission, AllRoles, "/users/{id}/password [post]", SelfOrRolesFunc(UserManagerRoleSet))
}

func (i *impl) tracker() {
	i.register(models.ProjectsModule, models.ViewPermission, AllRoles, "/projects/jira/epics [get]", nil)
	i.register(models.ProjectsModule, models.ViewPermission, AllRoles, "/projects/jira/epics/{id} [get]", nil)
	i.register(models.ProjectsModule, models.ViewPermission, AllRoles, "/projects/{id}/jira-tasks [get]", nil)
	i.register(models.ProjectsModule, models.ViewPermission, AllRoles, "/projects/jira-tasks/{key}/comments [get]", nil)
	i.register(models.ProjectsModule, models.ViewPermission, AllRoles, "/projects/jira-tasks/{key}/comments [post]", nil)
	i.register(models.ProjectsModule, models.ViewPermission, AllRoles, "/projects/comments/{id} [patch]", nil)
	i.register(models.ProjectsModule, models.ViewPermission, AllRoles, "/projects/comments/{id} [delete]", nil)
	i.register(models.ProjectsModule, models.ViewPermission, AllRoles, "/projects/comments/{id}/read [post]", nil)
}

func (i *impl) comments() {
	i.register(models.ProjectsModule, models.ViewPermission, AllRoles, "/comments/unread [get]", nil)
	i.register(models.ProjectsModule, models.ViewPermission, AllRoles, "/comments/{id}/read [patch]", nil)
	i.register(models.ProjectsModule, models.ViewPermission, AllRoles, "/comments/task/{id}/read-all [patch]", nil)
	i.register(models.ProjectsModule, models.ViewPermission, AllRoles, "/comments/time-entry/{id}/read-all [patch]", nil)
}

// SelfOrRolesFunc allows a "/users/{id}/..." route when {id} is the caller or the caller holds one of roles.
func SelfOrRolesFunc(roles []models.UserRole) models.RbacFunc {
	byRole := AllowByRoleFunc(roles)
	return func(userID string, role models.UserRole, uri string) bool {
		if byRole(userID, role, uri) {
			return true
		}
		parts := strings.Split(strings.Trim(normalizePath(uri), "/"), "/")
		for idx, part := range parts {
			if part == "users" && idx+1 < len(parts) {
				return parts[idx+1] == userID
			}
		}
		return false
	}
}
