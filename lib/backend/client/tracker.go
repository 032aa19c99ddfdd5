package backendclient

import (
	"context"
	"net/http"
	"net/url"

	trackerapimodels "hours-dashboard/models/api/tracker"
)

const (
	epicsPath              = "/projects/jira/epics"
	epicPath               = "/projects/jira/epics/%v"
	tasksPath              = "/projects/%v/jira-tasks"
	taskCommentsPath       = "/projects/jira-tasks/%v/comments"
	trackerCommentPath     = "/projects/comments/%v"
	trackerCommentReadPath = "/projects/comments/%v/read"
)

type trackerImpl struct {
	*transport
}

func (i *trackerImpl) Epics(ctx context.Context, projectKey string) ([]trackerapimodels.Epic, error) {
	resp := []trackerapimodels.Epic{}
	opts := requestOptions{query: url.Values{"projectKey": []string{projectKey}}}
	if err := i.sendWith(ctx, http.MethodGet, epicsPath, nil, &resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (i *trackerImpl) Epic(ctx context.Context, epicID string) (*trackerapimodels.Epic, error) {
	resp := trackerapimodels.Epic{}
	if err := i.send(ctx, http.MethodGet, pathf(epicPath, epicID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *trackerImpl) Tasks(ctx context.Context, projectID string) ([]trackerapimodels.Task, error) {
	resp := []trackerapimodels.Task{}
	if err := i.send(ctx, http.MethodGet, pathf(tasksPath, projectID), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (i *trackerImpl) TaskComments(ctx context.Context, taskKey string) ([]trackerapimodels.TaskComment, error) {
	resp := []trackerapimodels.TaskComment{}
	if err := i.send(ctx, http.MethodGet, pathf(taskCommentsPath, taskKey), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (i *trackerImpl) AddTaskComment(ctx context.Context, taskKey string, request trackerapimodels.NewTaskComment) (*trackerapimodels.TaskComment, error) {
	resp := trackerapimodels.TaskComment{}
	if err := i.send(ctx, http.MethodPost, pathf(taskCommentsPath, taskKey), request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i *trackerImpl) UpdateComment(ctx context.Context, commentID string, request trackerapimodels.CommentUpdate) error {
	return i.send(ctx, http.MethodPatch, pathf(trackerCommentPath, commentID), request, nil)
}

func (i *trackerImpl) DeleteComment(ctx context.Context, commentID string) error {
	return i.send(ctx, http.MethodDelete, pathf(trackerCommentPath, commentID), nil, nil)
}

func (i *trackerImpl) MarkCommentRead(ctx context.Context, commentID string) error {
	return i.send(ctx, http.MethodPost, pathf(trackerCommentReadPath, commentID), nil, nil)
}
