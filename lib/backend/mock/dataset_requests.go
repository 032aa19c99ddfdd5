package mock

import (
	"hours-dashboard/lib/backend"
	"hours-dashboard/models"
	projectapimodels "hours-dashboard/models/api/project"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func (d *Dataset) HourRequests(actor *userapimodels.User, projectID string) ([]projectapimodels.HourRequest, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if _, err := d.project(actor, projectID); err != nil {
		return nil, err
	}
	requests := d.hourRequests[projectID]
	result := make([]projectapimodels.HourRequest, 0, len(requests))
	for i := len(requests) - 1; i >= 0; i-- {
		result = append(result, requests[i].Clone())
	}
	return result, nil
}

func (d *Dataset) CreateHourRequest(actor *userapimodels.User, projectID string, request projectapimodels.CreateHourRequest) (*projectapimodels.HourRequest, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	project, err := d.project(actor, projectID)
	if err != nil {
		return nil, err
	}
	if _, ok := project.Billing.(projectapimodels.TimeBased); !ok {
		return nil, errors.Errorf("project %s is not time-based", project.Name)
	}
	created := projectapimodels.HourRequest{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		RequestedBy: actor.ID,
		Requester:   actor.Clone(),
		Hours:       request.Hours,
		Reason:      request.Reason,
		NeededBy:    request.NeededBy,
		RequestedAt: d.now(),
		Status:      projectapimodels.HourRequestPending,
	}
	d.hourRequests[projectID] = append(d.hourRequests[projectID], created)
	result := created.Clone()
	return &result, nil
}

func (d *Dataset) findHourRequest(projectID, requestID string) (int, bool) {
	for i, r := range d.hourRequests[projectID] {
		if r.ID == requestID {
			return i, true
		}
	}
	return -1, false
}

// ReviewHourRequest settles a pending request. Approval raises the project's total hours.
func (d *Dataset) ReviewHourRequest(actor *userapimodels.User, projectID, requestID string, review projectapimodels.ReviewHourRequest) (*projectapimodels.HourRequest, error) {
	if err := can(actor, func(p models.UserPermissions) bool { return p.CanApproveHours }); err != nil {
		return nil, err
	}
	if err := review.Validate(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	project, err := d.project(actor, projectID)
	if err != nil {
		return nil, err
	}
	idx, ok := d.findHourRequest(projectID, requestID)
	if !ok {
		return nil, backend.NotFound("hour request", requestID)
	}
	current := d.hourRequests[projectID][idx]
	if current.Status != projectapimodels.HourRequestPending {
		return nil, errors.Wrapf(backend.ErrConflict, "hour request is already %s", current.Status)
	}
	reviewed, err := current.Review(review, actor, d.now())
	if err != nil {
		return nil, err
	}
	if reviewed.Status == projectapimodels.HourRequestApproved {
		billing, ok := project.Billing.(projectapimodels.TimeBased)
		if !ok {
			return nil, errors.Errorf("project %s is not time-based", project.Name)
		}
		billing.TotalHours += reviewed.Hours
		project = project.Clone()
		project.Billing = billing
		d.projects[projectID] = project
		log.WithField("project", projectID).WithField("hours", reviewed.Hours).Info("mock: hour request approved")
	}
	d.hourRequests[projectID][idx] = reviewed
	result := reviewed.Clone()
	return &result, nil
}

// DeleteHourRequest withdraws a pending request. Reviewed requests stay on record.
func (d *Dataset) DeleteHourRequest(actor *userapimodels.User, projectID, requestID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := d.project(actor, projectID); err != nil {
		return err
	}
	idx, ok := d.findHourRequest(projectID, requestID)
	if !ok {
		return backend.NotFound("hour request", requestID)
	}
	requests := d.hourRequests[projectID]
	current := requests[idx]
	if current.RequestedBy != actor.ID {
		if err := can(actor, func(p models.UserPermissions) bool { return p.CanApproveHours }); err != nil {
			return err
		}
	}
	if current.Status != projectapimodels.HourRequestPending {
		return errors.Wrapf(backend.ErrConflict, "hour request is already %s", current.Status)
	}
	d.hourRequests[projectID] = append(requests[:idx:idx], requests[idx+1:]...)
	return nil
}
