package models

type RbacFunc func(userID string, role UserRole, path string) bool

// UserPermissions is the capability set used to gate views and actions.
// It is advisory: the backend re-checks every request.
type UserPermissions struct {
	CanManageProjects bool `json:"canManageProjects"`
	CanManageUsers    bool `json:"canManageUsers"`
	CanManageExpenses bool `json:"canManageExpenses"`
	CanApproveHours   bool `json:"canApproveHours"`
	CanViewReports    bool `json:"canViewReports"`
}

type Module string

const (
	ProjectsModule     Module = "PROJECTS"
	UsersModule        Module = "USERS"
	ExpensesModule     Module = "EXPENSES"
	HourRequestsModule Module = "HOUR_REQUESTS"
	ReportsModule      Module = "REPORTS"
)

type Permission string

const (
	CreatePermission  Permission = "CREATE"
	EditPermission    Permission = "EDIT"
	DeletePermission  Permission = "DELETE"
	ViewPermission    Permission = "VIEW"
	ApprovePermission Permission = "APPROVE"
)
