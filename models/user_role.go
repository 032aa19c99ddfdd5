package models

type UserRole string

const (
	AdminRole       UserRole = "admin"
	ManagerRole     UserRole = "manager"
	RegularUserRole UserRole = "user"
)

var roleHumanName = map[UserRole]string{
	AdminRole:       "Administrator",
	ManagerRole:     "Manager",
	RegularUserRole: "Client",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == AdminRole
}

func (r UserRole) IsValid() bool {
	_, ok := roleHumanName[r]
	return ok
}

type UserStatus string

const (
	UserActiveStatus   UserStatus = "active"
	UserInactiveStatus UserStatus = "inactive"
)

var userStatusHumanName = map[UserStatus]string{
	UserActiveStatus:   "Active",
	UserInactiveStatus: "Inactive",
}

func (r UserStatus) ToHuman() string {
	if human, exist := userStatusHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserStatus) IsValid() bool {
	_, ok := userStatusHumanName[r]
	return ok
}

type Theme string

const (
	LightTheme Theme = "light"
	DarkTheme  Theme = "dark"
)

// ParseTheme falls back to light for anything that is not "dark".
func ParseTheme(value string) Theme {
	if Theme(value) == DarkTheme {
		return DarkTheme
	}
	return LightTheme
}

func (t Theme) Toggle() Theme {
	if t == DarkTheme {
		return LightTheme
	}
	return DarkTheme
}
