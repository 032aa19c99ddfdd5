package config

import (
	"time"

	"hours-dashboard/lib/utils/helpers"

	"github.com/gotify/configor"
	"github.com/pkg/errors"
)

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`

		// request bodies above this size are rejected
		BodyLimitKb  int    `default:"1024" env:"APP_BODY_LIMIT_KB"`
		ErrNotifyURL string `default:"" env:"APP_ERR_NOTIFY_URL"`
	}
	Api struct {
		BaseURL     string `default:"http://localhost:8080/api" env:"API_URL"`
		UseMockData bool   `default:"false" env:"USE_MOCK_DATA"`
		TimeoutSec  int    `default:"30" env:"API_TIMEOUT_SEC"`
	}
	Mock struct {
		LatencyMs      int    `default:"800" env:"MOCK_LATENCY_MS"`
		JWTSecret      string `default:"local-mock-secret" env:"MOCK_JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"MOCK_JWT_EXPIRE_SEC"`
	}
	State struct {
		Path string `default:"dashboard.db" env:"STATE_PATH"`
	}
	Polling struct {
		UnreadIntervalSec int `default:"30" env:"UNREAD_POLL_SEC"`
	}
	Tracker struct {
		DoneStatuses string `default:"Done,Finalizada" env:"TRACKER_DONE_STATUSES"`
	}
	Log struct {
		Level string `default:"info" env:"LOG_LEVEL"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

// Load reads config.yml (when present) and the environment. With no files
// given the default config.yml lookup is used.
func Load(files ...string) (*Configuration, error) {
	if len(files) == 0 {
		files = configFiles()
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, files...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	return conf, nil
}

func (c Configuration) ApiTimeout() time.Duration {
	return time.Duration(c.Api.TimeoutSec) * time.Second
}

func (c Configuration) MockLatency() time.Duration {
	return time.Duration(c.Mock.LatencyMs) * time.Millisecond
}

func (c Configuration) JWTExpire() time.Duration {
	return time.Duration(c.Mock.JWTExpireInSec) * time.Second
}

func (c Configuration) UnreadPollInterval() time.Duration {
	return time.Duration(c.Polling.UnreadIntervalSec) * time.Second
}

func (c Configuration) TrackerDoneStatuses() []string {
	return helpers.SplitList(c.Tracker.DoneStatuses)
}
