package backendclient

import (
	"context"
	"net/http"

	userapimodels "hours-dashboard/models/api/user"
)

const (
	loginPath    = "/auth/login"
	logoutPath   = "/auth/logout"
	mePath       = "/auth/me"
	settingsPath = "/auth/settings"
)

type authImpl struct {
	*transport
}

func (i *authImpl) Login(ctx context.Context, request userapimodels.LoginRequest) (*userapimodels.AuthResponse, error) {
	resp := userapimodels.AuthResponse{}
	err := i.sendWith(ctx, http.MethodPost, loginPath, request, &resp, requestOptions{loginSurface: true})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *authImpl) Logout(ctx context.Context) error {
	return i.send(ctx, http.MethodPost, logoutPath, nil, nil)
}

func (i *authImpl) CurrentUser(ctx context.Context) (*userapimodels.User, error) {
	resp := userapimodels.User{}
	if err := i.send(ctx, http.MethodGet, mePath, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *authImpl) UpdateSettings(ctx context.Context, settings userapimodels.SettingsUpdate) (*userapimodels.User, error) {
	resp := userapimodels.User{}
	err := i.send(ctx, http.MethodPatch, settingsPath, userapimodels.SettingsRequest{Settings: settings}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
