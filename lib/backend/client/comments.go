package backendclient

import (
	"context"
	"net/http"

	trackerapimodels "hours-dashboard/models/api/tracker"

	"github.com/pkg/errors"
)

const (
	unreadPath           = "/comments/unread"
	commentReadPath      = "/comments/%v/read"
	taskReadAllPath      = "/comments/task/%v/read-all"
	timeEntryReadAllPath = "/comments/time-entry/%v/read-all"
)

type commentsImpl struct {
	*transport
}

func (i *commentsImpl) Unread(ctx context.Context) ([]trackerapimodels.UnreadCommentsGroup, error) {
	resp := []trackerapimodels.UnreadCommentsGroup{}
	if err := i.send(ctx, http.MethodGet, unreadPath, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// MarkRead uses one endpoint for both group types.
func (i *commentsImpl) MarkRead(ctx context.Context, commentID string, groupType trackerapimodels.GroupType) error {
	if err := groupType.Validate(); err != nil {
		return err
	}
	return i.send(ctx, http.MethodPatch, pathf(commentReadPath, commentID), nil, nil)
}

func (i *commentsImpl) MarkAllRead(ctx context.Context, groupID string, groupType trackerapimodels.GroupType) error {
	switch groupType {
	case trackerapimodels.TaskGroup:
		return i.send(ctx, http.MethodPatch, pathf(taskReadAllPath, groupID), nil, nil)
	case trackerapimodels.TimeEntryGroup:
		return i.send(ctx, http.MethodPatch, pathf(timeEntryReadAllPath, groupID), nil, nil)
	}
	return errors.Errorf("unknown comment group %q", groupType)
}
