package rbac

import (
	"hours-dashboard/models"
)

var AllRoles = []models.UserRole{models.AdminRole, models.ManagerRole, models.RegularUserRole}

// PermissionsFor maps a role to its capability set. Unknown roles get nothing.
func PermissionsFor(role models.UserRole) models.UserPermissions {
	switch role {
	case models.AdminRole:
		return models.UserPermissions{
			CanManageProjects: true,
			CanManageUsers:    true,
			CanManageExpenses: true,
			CanApproveHours:   true,
			CanViewReports:    true,
		}
	case models.ManagerRole:
		return models.UserPermissions{
			CanManageProjects: true,
			CanManageUsers:    false,
			CanManageExpenses: true,
			CanApproveHours:   true,
			CanViewReports:    true,
		}
	default:
		return models.UserPermissions{}
	}
}

// RolesWith returns the roles whose capability set passes check.
func RolesWith(check func(p models.UserPermissions) bool) []models.UserRole {
	var roles []models.UserRole
	for _, role := range AllRoles {
		if check(PermissionsFor(role)) {
			roles = append(roles, role)
		}
	}
	return roles
}
