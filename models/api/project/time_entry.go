package projectapimodels

import (
	"strings"
	"time"

	"hours-dashboard/models"

	"github.com/pkg/errors"
)

type Priority string

const (
	LowPriority    Priority = "low"
	MediumPriority Priority = "medium"
	HighPriority   Priority = "high"
	UrgentPriority Priority = "urgent"
)

func (p Priority) Validate() error {
	switch p {
	case LowPriority, MediumPriority, HighPriority, UrgentPriority:
		return nil
	}
	return errors.Errorf("unknown priority %q", p)
}

func (p Priority) ToHuman() string {
	switch p {
	case LowPriority:
		return "Low"
	case MediumPriority:
		return "Medium"
	case HighPriority:
		return "High"
	case UrgentPriority:
		return "Urgent"
	}
	return string(p)
}

// TimeEntryStatus is not a strict pipeline: any status may follow any other.
type TimeEntryStatus string

const (
	PendingEstimationStatus TimeEntryStatus = "pending-estimation"
	ClientApprovedStatus    TimeEntryStatus = "client-approved"
	InProgressStatus        TimeEntryStatus = "in-progress"
	BlockedStatus           TimeEntryStatus = "blocked"
	DoneStatus              TimeEntryStatus = "done"
)

func (s TimeEntryStatus) Validate() error {
	switch s {
	case PendingEstimationStatus, ClientApprovedStatus, InProgressStatus, BlockedStatus, DoneStatus:
		return nil
	}
	return errors.Errorf("unknown time entry status %q", s)
}

func (s TimeEntryStatus) ToHuman() string {
	switch s {
	case PendingEstimationStatus:
		return "Pending estimation"
	case ClientApprovedStatus:
		return "Client approved"
	case InProgressStatus:
		return "In progress"
	case BlockedStatus:
		return "Blocked"
	case DoneStatus:
		return "Done"
	}
	return string(s)
}

type Comment struct {
	ID          string    `json:"id"`
	TimeEntryID string    `json:"timeEntryId"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	UserAvatar  string    `json:"userAvatar,omitempty"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	IsClient    bool      `json:"isClient"`
	IsRead      bool      `json:"isRead"`
}

type CommentRequest struct {
	Content  string `json:"content"`
	IsClient bool   `json:"isClient"`
}

func (r CommentRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return errors.New("comment must not be empty")
	}
	return nil
}

type TimeEntry struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"projectId"`
	Description string          `json:"description"`
	Hours       float64         `json:"hours"`
	Priority    Priority        `json:"priority"`
	Status      TimeEntryStatus `json:"status"`
	Date        models.Date     `json:"date"`
	Comments    []Comment       `json:"comments"`
}

func (e TimeEntry) Clone() TimeEntry {
	c := e
	if e.Comments != nil {
		c.Comments = append([]Comment(nil), e.Comments...)
	}
	return c
}

// NewTimeEntry is the request body for adding a time entry; the backend
// assigns id, projectId and an empty comment list.
type NewTimeEntry struct {
	Description string          `json:"description"`
	Hours       float64         `json:"hours"`
	Priority    Priority        `json:"priority"`
	Status      TimeEntryStatus `json:"status"`
	Date        models.Date     `json:"date"`
}

func (r NewTimeEntry) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("description is required")
	}
	if r.Hours <= 0 {
		return errors.New("hours must be positive")
	}
	if err := r.Priority.Validate(); err != nil {
		return err
	}
	if err := r.Status.Validate(); err != nil {
		return err
	}
	if r.Date.IsZero() {
		return errors.New("date is required")
	}
	return nil
}

func (r NewTimeEntry) ToTimeEntry(id, projectID string) TimeEntry {
	return TimeEntry{
		ID:          id,
		ProjectID:   projectID,
		Description: r.Description,
		Hours:       r.Hours,
		Priority:    r.Priority,
		Status:      r.Status,
		Date:        r.Date,
		Comments:    []Comment{},
	}
}

// TimeEntryUpdate is a partial time entry change; nil fields stay as they are.
type TimeEntryUpdate struct {
	Description *string          `json:"description,omitempty"`
	Hours       *float64         `json:"hours,omitempty"`
	Priority    *Priority        `json:"priority,omitempty"`
	Status      *TimeEntryStatus `json:"status,omitempty"`
	Date        *models.Date     `json:"date,omitempty"`
}

func (r TimeEntryUpdate) Validate() error {
	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		return errors.New("description must not be empty")
	}
	if r.Hours != nil && *r.Hours <= 0 {
		return errors.New("hours must be positive")
	}
	if r.Priority != nil {
		if err := r.Priority.Validate(); err != nil {
			return err
		}
	}
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r TimeEntryUpdate) Apply(entry TimeEntry) TimeEntry {
	if r.Description != nil {
		entry.Description = *r.Description
	}
	if r.Hours != nil {
		entry.Hours = *r.Hours
	}
	if r.Priority != nil {
		entry.Priority = *r.Priority
	}
	if r.Status != nil {
		entry.Status = *r.Status
	}
	if r.Date != nil {
		entry.Date = *r.Date
	}
	return entry
}
