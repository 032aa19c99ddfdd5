package userapimodels

import (
	"net/mail"
	"strings"
	"time"

	"hours-dashboard/models"

	"github.com/pkg/errors"
)

type Settings struct {
	Theme         models.Theme `json:"theme"`         // light/dark
	Notifications bool         `json:"notifications"` // in-app notifications on/off
	EmailUpdates  bool         `json:"emailUpdates"`  // email digests on/off
}

type User struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Avatar    string            `json:"avatar,omitempty"`
	Role      models.UserRole   `json:"role"`
	Settings  Settings          `json:"settings"`
	Status    models.UserStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	LastLogin *time.Time        `json:"lastLogin,omitempty"`
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.LastLogin != nil {
		lastLogin := *u.LastLogin
		c.LastLogin = &lastLogin
	}
	return &c
}

// SettingsUpdate is a partial settings change; nil fields stay as they are.
type SettingsUpdate struct {
	Theme         *models.Theme `json:"theme,omitempty"`
	Notifications *bool         `json:"notifications,omitempty"`
	EmailUpdates  *bool         `json:"emailUpdates,omitempty"`
}

func (r SettingsUpdate) Validate() error {
	if r.Theme != nil && *r.Theme != models.LightTheme && *r.Theme != models.DarkTheme {
		return errors.Errorf("unknown theme %q", *r.Theme)
	}
	return nil
}

func (r SettingsUpdate) Apply(settings Settings) Settings {
	if r.Theme != nil {
		settings.Theme = *r.Theme
	}
	if r.Notifications != nil {
		settings.Notifications = *r.Notifications
	}
	if r.EmailUpdates != nil {
		settings.EmailUpdates = *r.EmailUpdates
	}
	return settings
}

type SettingsRequest struct {
	Settings SettingsUpdate `json:"settings"`
}

type CreateUser struct {
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Avatar   string            `json:"avatar,omitempty"`
	Role     models.UserRole   `json:"role"`
	Settings Settings          `json:"settings"`
	Status   models.UserStatus `json:"status"`
	Password string            `json:"password,omitempty"` // initial password, optional
}

func (r CreateUser) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if !r.Role.IsValid() {
		return errors.Errorf("unknown role %q", r.Role)
	}
	if r.Status != "" && !r.Status.IsValid() {
		return errors.Errorf("unknown status %q", r.Status)
	}
	return nil
}

// UpdateUser is a partial user change; nil fields stay as they are.
type UpdateUser struct {
	Name     *string            `json:"name,omitempty"`
	Email    *string            `json:"email,omitempty"`
	Avatar   *string            `json:"avatar,omitempty"`
	Role     *models.UserRole   `json:"role,omitempty"`
	Settings *Settings          `json:"settings,omitempty"`
	Status   *models.UserStatus `json:"status,omitempty"`
}

func (r UpdateUser) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name must not be empty")
	}
	if r.Email != nil {
		if err := validateEmail(*r.Email); err != nil {
			return err
		}
	}
	if r.Role != nil && !r.Role.IsValid() {
		return errors.Errorf("unknown role %q", *r.Role)
	}
	if r.Status != nil && !r.Status.IsValid() {
		return errors.Errorf("unknown status %q", *r.Status)
	}
	return nil
}

func (r UpdateUser) Apply(user User) User {
	if r.Name != nil {
		user.Name = *r.Name
	}
	if r.Email != nil {
		user.Email = *r.Email
	}
	if r.Avatar != nil {
		user.Avatar = *r.Avatar
	}
	if r.Role != nil {
		user.Role = *r.Role
	}
	if r.Settings != nil {
		user.Settings = *r.Settings
	}
	if r.Status != nil {
		user.Status = *r.Status
	}
	return user
}

type PasswordUpdate struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (r PasswordUpdate) Validate() error {
	if r.CurrentPassword == "" {
		return errors.New("current password is required")
	}
	if len(r.NewPassword) < 6 {
		return errors.New("new password must be at least 6 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.Errorf("invalid email %q", email)
	}
	return nil
}
