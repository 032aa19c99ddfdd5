package backendclient

import (
	"context"
	"net/http"

	projectapimodels "hours-dashboard/models/api/project"
)

const (
	hourRequestsPath      = "/projects/%v/hour-requests"
	hourRequestPath       = "/projects/%v/hour-requests/%v"
	hourRequestReviewPath = "/projects/%v/hour-requests/%v/review"
)

type hourRequestsImpl struct {
	*transport
}

func (i *hourRequestsImpl) List(ctx context.Context, projectID string) ([]projectapimodels.HourRequest, error) {
	resp := []projectapimodels.HourRequest{}
	if err := i.send(ctx, http.MethodGet, pathf(hourRequestsPath, projectID), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (i *hourRequestsImpl) Create(ctx context.Context, projectID string, request projectapimodels.CreateHourRequest) (*projectapimodels.HourRequest, error) {
	resp := projectapimodels.HourRequest{}
	if err := i.send(ctx, http.MethodPost, pathf(hourRequestsPath, projectID), request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *hourRequestsImpl) Review(ctx context.Context, projectID, requestID string, request projectapimodels.ReviewHourRequest) (*projectapimodels.HourRequest, error) {
	resp := projectapimodels.HourRequest{}
	if err := i.send(ctx, http.MethodPatch, pathf(hourRequestReviewPath, projectID, requestID), request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *hourRequestsImpl) Delete(ctx context.Context, projectID, requestID string) error {
	return i.send(ctx, http.MethodDelete, pathf(hourRequestPath, projectID, requestID), nil, nil)
}
