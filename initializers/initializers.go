package initializers

import (
	"context"
	"time"

	"hours-dashboard/config"
	"hours-dashboard/db"
	"hours-dashboard/lib/backend"
	backendclient "hours-dashboard/lib/backend/client"
	"hours-dashboard/lib/backend/mock"
	"hours-dashboard/lib/session"
	authstore "hours-dashboard/lib/store/auth"
	projectstore "hours-dashboard/lib/store/project"
	userstore "hours-dashboard/lib/store/user"
	unreadworker "hours-dashboard/lib/unread-worker"
	authutils "hours-dashboard/lib/utils/auth-utils"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// InitBackend is the only place that picks the adapter: the bundled mock
// dataset when Api.UseMockData is set, the REST API otherwise.
func InitBackend(conf *config.Configuration, sess backend.Session) (backend.Backend, error) {
	if conf.Api.UseMockData {
		dataset, err := mock.NewDataset(time.Now())
		if err != nil {
			return backend.Backend{}, errors.Wrap(err, "unable to seed mock data")
		}
		log.WithField("latency", conf.MockLatency().String()).Info("using mock data")
		tokens := authutils.NewInstance(conf.Mock.JWTSecret, conf.JWTExpire())
		return mock.NewInstance(dataset, sess, conf.MockLatency(), tokens), nil
	}
	log.WithField("api_url", conf.Api.BaseURL).Debug("using remote api")
	return backendclient.NewInstance(conf.Api.BaseURL, conf.ApiTimeout(), sess), nil
}

// Client is everything a dashboard front end works with.
type Client struct {
	Conf     *config.Configuration
	Session  *session.Manager
	Backend  backend.Backend
	Auth     *authstore.Store
	Projects *projectstore.Store
	Users    *userstore.Store

	db *gorm.DB
}

// InitClient wires the session, the adapter and the stores, then restores a saved session.
func InitClient(ctx context.Context, conf *config.Configuration) (*Client, error) {
	storage, conn := InitSessionStorage(conf.State.Path)
	manager := session.NewManager(storage)
	b, err := InitBackend(conf, manager)
	if err != nil {
		if conn != nil {
			db.Close(conn)
		}
		return nil, err
	}
	auth := authstore.New(b, manager)
	c := &Client{
		Conf:     conf,
		Session:  manager,
		Backend:  b,
		Auth:     auth,
		Projects: projectstore.New(b, auth.CurrentUser, conf.TrackerDoneStatuses()),
		Users:    userstore.New(b),
		db:       conn,
	}
	auth.InitializeAuth(ctx)
	return c, nil
}

// StartUnreadWorker polls the unread comment count until ctx is done.
func (c *Client) StartUnreadWorker(ctx context.Context) {
	unreadworker.StartWorker(ctx, c.Auth, c.Conf.UnreadPollInterval())
}

func (c *Client) Close() {
	c.Projects.Teardown()
	c.Users.Teardown()
	c.Auth.Teardown()
	if c.db != nil {
		if err := db.Close(c.db); err != nil {
			log.WithError(err).Warn("unable to close state database")
		}
	}
}
