package backendclient

import (
	"context"
	"net/http"

	userapimodels "hours-dashboard/models/api/user"
)

const (
	usersPath        = "/users"
	userPath         = "/users/%v"
	userPasswordPath = "/users/%v/password"
)

type usersImpl struct {
	*transport
}

func (i *usersImpl) List(ctx context.Context) ([]userapimodels.User, error) {
	resp := []userapimodels.User{}
	if err := i.send(ctx, http.MethodGet, usersPath, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (i *usersImpl) Get(ctx context.Context, userID string) (*userapimodels.User, error) {
	resp := userapimodels.User{}
	if err := i.send(ctx, http.MethodGet, pathf(userPath, userID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *usersImpl) Create(ctx context.Context, request userapimodels.CreateUser) (*userapimodels.User, error) {
	resp := userapimodels.User{}
	if err := i.send(ctx, http.MethodPost, usersPath, request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *usersImpl) Update(ctx context.Context, userID string, request userapimodels.UpdateUser) (*userapimodels.User, error) {
	resp := userapimodels.User{}
	if err := i.send(ctx, http.MethodPatch, pathf(userPath, userID), request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *usersImpl) Delete(ctx context.Context, userID string) error {
	return i.send(ctx, http.MethodDelete, pathf(userPath, userID), nil, nil)
}

func (i *usersImpl) UpdatePassword(ctx context.Context, userID string, request userapimodels.PasswordUpdate) error {
	return i.send(ctx, http.MethodPost, pathf(userPasswordPath, userID), request, nil)
}
