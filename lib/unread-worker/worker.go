package unreadworker

import (
	"context"
	"time"

	baseworker "hours-dashboard/lib/utils/base-worker"
	"hours-dashboard/lib/utils/helpers"
)

// Refresher is the slice of the auth store the poller needs.
type Refresher interface {
	IsAuthenticated() bool
	RefreshUnread(ctx context.Context) error
}

type impl struct {
	baseworker.BaseImpl
	auth Refresher
}

// StartWorker polls the unread comments in the background until ctx is done.
func StartWorker(ctx context.Context, auth Refresher, interval time.Duration) {
	go Run(ctx, auth, interval)
}

// Run polls in the calling goroutine, first right away and then every interval.
func Run(ctx context.Context, auth Refresher, interval time.Duration) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("UnreadWorker", 0, interval),
		auth:     auth,
	}
	i.Run(ctx, i.handle)
}

func (i impl) handle(ctx context.Context) {
	if helpers.IsContextDone(ctx) || !i.auth.IsAuthenticated() {
		return
	}
	if err := i.auth.RefreshUnread(ctx); err != nil {
		i.GetLogger().WithError(err).Warn("unable to refresh unread comments")
	}
}
