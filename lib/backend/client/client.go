package backendclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hours-dashboard/lib/backend"
	apimodels "hours-dashboard/models/api"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type transport struct {
	host    string
	client  *http.Client
	session backend.Session
}

// NewInstance builds the HTTP adapter for every port against baseURL (e.g. "http://localhost:8080/api").
func NewInstance(baseURL string, timeout time.Duration, session backend.Session) backend.Backend {
	t := &transport{
		host:    strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		session: session,
	}
	return backend.Backend{
		Auth:         &authImpl{t},
		Projects:     &projectsImpl{t},
		HourRequests: &hourRequestsImpl{t},
		Users:        &usersImpl{t},
		Tracker:      &trackerImpl{t},
		Comments:     &commentsImpl{t},
	}
}

type requestOptions struct {
	query url.Values
	// login requests must not fire the session-expired signal
	loginSurface bool
}

func (t *transport) send(ctx context.Context, method, path string, request, resp interface{}) error {
	return t.sendWith(ctx, method, path, request, resp, requestOptions{})
}

func (t *transport) sendWith(ctx context.Context, method, path string, request, resp interface{}, opts requestOptions) error {
	uri := t.host + path
	if len(opts.query) > 0 {
		uri += "?" + opts.query.Encode()
	}
	logger := log.
		WithField("external_request", uri).
		WithField("method", method)

	var body io.Reader
	if request != nil {
		payload, err := json.Marshal(request)
		if err != nil {
			return errors.Wrap(err, "unable to encode request")
		}
		body = bytes.NewReader(payload)
	}
	r, err := http.NewRequestWithContext(ctx, method, uri, body)
	if err != nil {
		return errors.Wrap(err, "unable to build request")
	}
	if request != nil {
		r.Header.Add("Content-Type", "application/json")
	}
	return t.sendRequest(logger, r, resp, opts)
}

func (t *transport) sendRequest(logger *log.Entry, r *http.Request, resp interface{}, opts requestOptions) error {
	r.Header.Add("Accept", "application/json")
	r.Header.Add("User-Agent", "HoursDashboard/1.0")
	if token := t.session.Token(); token != "" {
		r.Header.Add("Authorization", fmt.Sprintf("Bearer %v", token))
	}
	response, err := t.client.Do(r)
	if err != nil {
		logger.WithError(err).Error("request to backend failed")
		return errors.Wrap(err, "unable to reach backend")
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return errors.Wrap(err, "unable to read response")
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if resp != nil && len(responseBody) > 0 {
			if err = json.Unmarshal(responseBody, resp); err != nil {
				logger.WithField("response_body", string(responseBody)).WithError(err).Error("unable to decode response")
				return errors.Wrap(err, "unable to decode response")
			}
		}
		return nil
	}

	errorResp := apimodels.Response{}
	if len(responseBody) > 0 {
		if err = json.Unmarshal(responseBody, &errorResp); err != nil {
			logger.WithError(err).Debug("error response is not json")
		}
	}
	logger.
		WithField("status", response.StatusCode).
		WithField("response_body", string(responseBody)).
		Warn("backend rejected request")

	if response.StatusCode == http.StatusUnauthorized && !opts.loginSurface {
		t.session.Expire()
	}
	return &backend.APIError{Status: response.StatusCode, Message: errorResp.Message}
}

func pathf(format string, args ...string) string {
	escaped := make([]interface{}, len(args))
	for i, arg := range args {
		escaped[i] = url.PathEscape(arg)
	}
	return fmt.Sprintf(format, escaped...)
}
