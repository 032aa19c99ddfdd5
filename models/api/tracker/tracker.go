package trackerapimodels

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Epic struct {
	ID         string `json:"id"`
	Key        string `json:"key"`
	Name       string `json:"name"`
	Summary    string `json:"summary"`
	ProjectKey string `json:"projectKey"`
}

// TimeTracking holds the tracker's own estimates; the *Seconds fields feed the hour metrics.
type TimeTracking struct {
	OriginalEstimate         string `json:"originalEstimate"`
	RemainingEstimate        string `json:"remainingEstimate"`
	TimeSpent                string `json:"timeSpent"`
	OriginalEstimateSeconds  int64  `json:"originalEstimateSeconds"`
	RemainingEstimateSeconds int64  `json:"remainingEstimateSeconds"`
	TimeSpentSeconds         int64  `json:"timeSpentSeconds"`
}

type Assignee struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type Task struct {
	ID      string `json:"id"`
	Key     string `json:"key"`
	Summary string `json:"summary"`
	// Description is either a plain string or a rich-text document tree.
	Description  json.RawMessage `json:"description,omitempty"`
	Status       string          `json:"status"`
	Assignee     *Assignee       `json:"assignee,omitempty"`
	Created      string          `json:"created"`
	Updated      string          `json:"updated"`
	TimeTracking TimeTracking    `json:"timeTracking"`
}

type docNode struct {
	Type    string    `json:"type"`
	Text    string    `json:"text"`
	Content []docNode `json:"content"`
}

// DescriptionText flattens the description into plain text.
func (t Task) DescriptionText() string {
	if len(t.Description) == 0 {
		return ""
	}
	var plain string
	if err := json.Unmarshal(t.Description, &plain); err == nil {
		return plain
	}
	var doc docNode
	if err := json.Unmarshal(t.Description, &doc); err != nil {
		return ""
	}
	var paragraphs []string
	var walk func(n docNode, sb *strings.Builder)
	walk = func(n docNode, sb *strings.Builder) {
		sb.WriteString(n.Text)
		for _, child := range n.Content {
			walk(child, sb)
		}
	}
	for _, block := range doc.Content {
		sb := &strings.Builder{}
		walk(block, sb)
		if text := strings.TrimSpace(sb.String()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return strings.Join(paragraphs, "\n")
}

func (t Task) Clone() Task {
	c := t
	if t.Description != nil {
		c.Description = append(json.RawMessage(nil), t.Description...)
	}
	if t.Assignee != nil {
		assignee := *t.Assignee
		c.Assignee = &assignee
	}
	return c
}

type TaskComment struct {
	ID          string    `json:"id"`
	JiraTaskID  string    `json:"jiraTaskId"`
	JiraTaskKey string    `json:"jiraTaskKey"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	UserAvatar  string    `json:"userAvatar,omitempty"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	IsClient    bool      `json:"isClient"`
	IsRead      bool      `json:"isRead"`
}

type NewTaskComment struct {
	Content string `json:"content"`
}

func (r NewTaskComment) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return errors.New("comment must not be empty")
	}
	return nil
}

// CommentUpdate is a partial comment change; nil fields stay as they are.
type CommentUpdate struct {
	Content *string `json:"content,omitempty"`
	IsRead  *bool   `json:"isRead,omitempty"`
}

func (r CommentUpdate) Validate() error {
	if r.Content != nil && strings.TrimSpace(*r.Content) == "" {
		return errors.New("comment must not be empty")
	}
	if r.Content == nil && r.IsRead == nil {
		return errors.New("nothing to update")
	}
	return nil
}

type GroupType string

const (
	TaskGroup      GroupType = "jira"
	TimeEntryGroup GroupType = "timeEntry"
)

func (g GroupType) Validate() error {
	switch g {
	case TaskGroup, TimeEntryGroup:
		return nil
	}
	return errors.Errorf("unknown comment group %q", g)
}

// UnreadComment is a comment left on either a time entry or a tracker task.
// Exactly one of TimeEntryID or JiraTaskKey is set.
type UnreadComment struct {
	ID          string    `json:"id"`
	TimeEntryID string    `json:"timeEntryId,omitempty"`
	JiraTaskID  string    `json:"jiraTaskId,omitempty"`
	JiraTaskKey string    `json:"jiraTaskKey,omitempty"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	UserAvatar  string    `json:"userAvatar,omitempty"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	IsClient    bool      `json:"isClient"`
	IsRead      bool      `json:"isRead"`
}

type UnreadCommentsGroup struct {
	Type                 GroupType       `json:"type"`
	TaskKey              string          `json:"taskKey,omitempty"`
	TaskSummary          string          `json:"taskSummary,omitempty"`
	TimeEntryID          string          `json:"timeEntryId,omitempty"`
	TimeEntryDescription string          `json:"timeEntryDescription,omitempty"`
	Comments             []UnreadComment `json:"comments"`
}

// GroupID is the id used by the mark-all-read endpoints.
func (g UnreadCommentsGroup) GroupID() string {
	if g.Type == TaskGroup {
		return g.TaskKey
	}
	return g.TimeEntryID
}

func (g UnreadCommentsGroup) Clone() UnreadCommentsGroup {
	c := g
	c.Comments = append([]UnreadComment(nil), g.Comments...)
	return c
}

// CountUnread is the number shown on the unread badge.
func CountUnread(groups []UnreadCommentsGroup) int {
	n := 0
	for _, g := range groups {
		for _, c := range g.Comments {
			if !c.IsRead {
				n++
			}
		}
	}
	return n
}
