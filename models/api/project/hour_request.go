package projectapimodels

import (
	"strings"
	"time"

	"hours-dashboard/models"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/pkg/errors"
)

type HourRequestStatus string

const (
	HourRequestPending  HourRequestStatus = "pending"
	HourRequestApproved HourRequestStatus = "approved"
	HourRequestRejected HourRequestStatus = "rejected"
)

func (s HourRequestStatus) IsTerminal() bool {
	return s == HourRequestApproved || s == HourRequestRejected
}

type HourRequest struct {
	ID          string              `json:"id"`
	ProjectID   string              `json:"projectId"`
	RequestedBy string              `json:"requestedBy"`
	Requester   *userapimodels.User `json:"requester,omitempty"`
	Hours       float64             `json:"hours"`
	Reason      string              `json:"reason"`
	NeededBy    models.Date         `json:"neededBy"`
	RequestedAt time.Time           `json:"requestedAt"`
	Status      HourRequestStatus   `json:"status"`
	ReviewedBy  string              `json:"reviewedBy,omitempty"`
	Reviewer    *userapimodels.User `json:"reviewer,omitempty"`
	ReviewNotes string              `json:"reviewNotes,omitempty"`
	ReviewedAt  *time.Time          `json:"reviewedAt,omitempty"`
}

func (r HourRequest) Clone() HourRequest {
	c := r
	c.Requester = r.Requester.Clone()
	c.Reviewer = r.Reviewer.Clone()
	if r.ReviewedAt != nil {
		at := *r.ReviewedAt
		c.ReviewedAt = &at
	}
	return c
}

// CreateHourRequest asks for more hours on a time-based project.
type CreateHourRequest struct {
	Hours    float64     `json:"hours"`
	Reason   string      `json:"reason"`
	NeededBy models.Date `json:"neededBy"`
}

func (r CreateHourRequest) Validate() error {
	if r.Hours <= 0 {
		return errors.New("requested hours must be positive")
	}
	if strings.TrimSpace(r.Reason) == "" {
		return errors.New("reason is required")
	}
	if r.NeededBy.IsZero() {
		return errors.New("needed-by date is required")
	}
	return nil
}

type ReviewHourRequest struct {
	Status      HourRequestStatus `json:"status"`
	ReviewNotes string            `json:"reviewNotes,omitempty"`
}

func (r ReviewHourRequest) Validate() error {
	if !r.Status.IsTerminal() {
		return errors.Errorf("review status must be approved or rejected, got %q", r.Status)
	}
	return nil
}

// Review moves a pending request into the reviewed state. Reviewed requests never change again.
func (r HourRequest) Review(review ReviewHourRequest, reviewer *userapimodels.User, at time.Time) (HourRequest, error) {
	if err := review.Validate(); err != nil {
		return r, err
	}
	if r.Status != HourRequestPending {
		return r, errors.Errorf("hour request %s already %s", r.ID, r.Status)
	}
	r.Status = review.Status
	r.ReviewNotes = review.ReviewNotes
	r.ReviewedAt = &at
	if reviewer != nil {
		r.ReviewedBy = reviewer.ID
		r.Reviewer = reviewer.Clone()
	}
	return r, nil
}
