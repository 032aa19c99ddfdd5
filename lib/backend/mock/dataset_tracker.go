package mock

import (
	"sort"
	"time"

	"hours-dashboard/lib/access"
	"hours-dashboard/lib/backend"
	"hours-dashboard/models"
	trackerapimodels "hours-dashboard/models/api/tracker"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func (d *Dataset) Epics(projectKey string) []trackerapimodels.Epic {
	d.mu.RLock()
	defer d.mu.RUnlock()
	result := []trackerapimodels.Epic{}
	for _, epic := range d.epics {
		if projectKey == "" || epic.ProjectKey == projectKey {
			result = append(result, epic)
		}
	}
	return result
}

func (d *Dataset) Epic(epicID string) (*trackerapimodels.Epic, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, epic := range d.epics {
		if epic.ID == epicID || epic.Key == epicID {
			result := epic
			return &result, nil
		}
	}
	return nil, backend.NotFound("epic", epicID)
}

// Tasks lists the tracker tasks of the epic linked to the project. Unlinked projects have none.
func (d *Dataset) Tasks(actor *userapimodels.User, projectID string) ([]trackerapimodels.Task, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	project, err := d.project(actor, projectID)
	if err != nil {
		return nil, err
	}
	result := []trackerapimodels.Task{}
	if project.Epic == nil {
		return result, nil
	}
	for _, task := range d.tasks[project.Epic.Key] {
		result = append(result, task.Clone())
	}
	return result, nil
}

// task finds a task and checks that actor may see one of the projects linked to its epic.
// Callers hold d.mu.
func (d *Dataset) task(actor *userapimodels.User, taskKey string) (trackerapimodels.Task, error) {
	for epicKey, tasks := range d.tasks {
		for _, task := range tasks {
			if task.Key != taskKey {
				continue
			}
			for _, id := range d.projectOrder {
				project := d.projects[id]
				if project.Epic != nil && project.Epic.Key == epicKey && access.HasProjectAccess(project, actor) {
					return task, nil
				}
			}
			return trackerapimodels.Task{}, backend.ErrForbidden
		}
	}
	return trackerapimodels.Task{}, backend.NotFound("task", taskKey)
}

func (d *Dataset) TaskComments(actor *userapimodels.User, taskKey string) ([]trackerapimodels.TaskComment, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if _, err := d.task(actor, taskKey); err != nil {
		return nil, err
	}
	return append([]trackerapimodels.TaskComment{}, d.taskComments[taskKey]...), nil
}

func (d *Dataset) AddTaskComment(actor *userapimodels.User, taskKey string, request trackerapimodels.NewTaskComment) (*trackerapimodels.TaskComment, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	task, err := d.task(actor, taskKey)
	if err != nil {
		return nil, err
	}
	comment := trackerapimodels.TaskComment{
		ID:          uuid.NewString(),
		JiraTaskID:  task.ID,
		JiraTaskKey: task.Key,
		UserID:      actor.ID,
		UserName:    actor.Name,
		UserAvatar:  actor.Avatar,
		Content:     request.Content,
		Timestamp:   d.now(),
		IsClient:    actor.Role == models.RegularUserRole,
	}
	d.taskComments[taskKey] = append(d.taskComments[taskKey], comment)
	return &comment, nil
}

// findTaskComment returns the task key and index of a tracker comment. Callers hold d.mu.
func (d *Dataset) findTaskComment(commentID string) (string, int, bool) {
	for key, comments := range d.taskComments {
		for i, c := range comments {
			if c.ID == commentID {
				return key, i, true
			}
		}
	}
	return "", -1, false
}

// UpdateComment edits a tracker comment. Only the author or an admin may change the content.
func (d *Dataset) UpdateComment(actor *userapimodels.User, commentID string, request trackerapimodels.CommentUpdate) error {
	if err := request.Validate(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	key, idx, ok := d.findTaskComment(commentID)
	if !ok {
		return backend.NotFound("comment", commentID)
	}
	if _, err := d.task(actor, key); err != nil {
		return err
	}
	comment := &d.taskComments[key][idx]
	if request.Content != nil {
		if comment.UserID != actor.ID && !actor.Role.IsAdmin() {
			return errors.Wrap(backend.ErrForbidden, "only the author can edit a comment")
		}
		comment.Content = *request.Content
	}
	if request.IsRead != nil {
		comment.IsRead = *request.IsRead
	}
	return nil
}

func (d *Dataset) DeleteComment(actor *userapimodels.User, commentID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	key, idx, ok := d.findTaskComment(commentID)
	if !ok {
		return backend.NotFound("comment", commentID)
	}
	if _, err := d.task(actor, key); err != nil {
		return err
	}
	comments := d.taskComments[key]
	if comments[idx].UserID != actor.ID && !actor.Role.IsAdmin() {
		return errors.Wrap(backend.ErrForbidden, "only the author can delete a comment")
	}
	d.taskComments[key] = append(comments[:idx:idx], comments[idx+1:]...)
	return nil
}

// Unread groups the unread comments left by others on everything actor can see,
// tracker tasks first, newest group first.
func (d *Dataset) Unread(actor *userapimodels.User) []trackerapimodels.UnreadCommentsGroup {
	d.mu.RLock()
	defer d.mu.RUnlock()
	groups := []trackerapimodels.UnreadCommentsGroup{}
	if actor == nil {
		return groups
	}
	visibleEpics := map[string]bool{}
	var entryGroups []trackerapimodels.UnreadCommentsGroup
	for _, id := range d.projectOrder {
		project := d.projects[id]
		if !access.HasProjectAccess(project, actor) {
			continue
		}
		if project.Epic != nil {
			visibleEpics[project.Epic.Key] = true
		}
		for _, entry := range project.TimeEntries {
			group := trackerapimodels.UnreadCommentsGroup{
				Type:                 trackerapimodels.TimeEntryGroup,
				TimeEntryID:          entry.ID,
				TimeEntryDescription: entry.Description,
			}
			for _, c := range entry.Comments {
				if c.IsRead || c.UserID == actor.ID {
					continue
				}
				group.Comments = append(group.Comments, trackerapimodels.UnreadComment{
					ID:          c.ID,
					TimeEntryID: entry.ID,
					UserID:      c.UserID,
					UserName:    c.UserName,
					UserAvatar:  c.UserAvatar,
					Content:     c.Content,
					Timestamp:   c.Timestamp,
					IsClient:    c.IsClient,
				})
			}
			if len(group.Comments) > 0 {
				entryGroups = append(entryGroups, group)
			}
		}
	}

	var taskGroups []trackerapimodels.UnreadCommentsGroup
	for _, epic := range d.epics {
		if !visibleEpics[epic.Key] {
			continue
		}
		for _, task := range d.tasks[epic.Key] {
			group := trackerapimodels.UnreadCommentsGroup{
				Type:        trackerapimodels.TaskGroup,
				TaskKey:     task.Key,
				TaskSummary: task.Summary,
			}
			for _, c := range d.taskComments[task.Key] {
				if c.IsRead || c.UserID == actor.ID {
					continue
				}
				group.Comments = append(group.Comments, trackerapimodels.UnreadComment{
					ID:          c.ID,
					JiraTaskID:  c.JiraTaskID,
					JiraTaskKey: c.JiraTaskKey,
					UserID:      c.UserID,
					UserName:    c.UserName,
					UserAvatar:  c.UserAvatar,
					Content:     c.Content,
					Timestamp:   c.Timestamp,
					IsClient:    c.IsClient,
				})
			}
			if len(group.Comments) > 0 {
				taskGroups = append(taskGroups, group)
			}
		}
	}

	byLatest := func(list []trackerapimodels.UnreadCommentsGroup) {
		sort.SliceStable(list, func(i, j int) bool {
			return latest(list[i]).After(latest(list[j]))
		})
	}
	byLatest(taskGroups)
	byLatest(entryGroups)
	groups = append(groups, taskGroups...)
	return append(groups, entryGroups...)
}

func latest(g trackerapimodels.UnreadCommentsGroup) time.Time {
	var t time.Time
	for _, c := range g.Comments {
		if c.Timestamp.After(t) {
			t = c.Timestamp
		}
	}
	return t
}

// MarkRead flags a single comment as read.
func (d *Dataset) MarkRead(actor *userapimodels.User, commentID string, groupType trackerapimodels.GroupType) error {
	if err := groupType.Validate(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if groupType == trackerapimodels.TaskGroup {
		key, idx, ok := d.findTaskComment(commentID)
		if !ok {
			return backend.NotFound("comment", commentID)
		}
		if _, err := d.task(actor, key); err != nil {
			return err
		}
		d.taskComments[key][idx].IsRead = true
		return nil
	}
	for _, id := range d.projectOrder {
		project := d.projects[id]
		for ei, entry := range project.TimeEntries {
			for ci, c := range entry.Comments {
				if c.ID != commentID {
					continue
				}
				if !access.HasProjectAccess(project, actor) {
					return backend.ErrForbidden
				}
				project = project.Clone()
				project.TimeEntries[ei].Comments[ci].IsRead = true
				d.projects[id] = project
				return nil
			}
		}
	}
	return backend.NotFound("comment", commentID)
}

// MarkAllRead flags every comment of a task or time entry as read.
func (d *Dataset) MarkAllRead(actor *userapimodels.User, groupID string, groupType trackerapimodels.GroupType) error {
	if err := groupType.Validate(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if groupType == trackerapimodels.TaskGroup {
		if _, err := d.task(actor, groupID); err != nil {
			return err
		}
		for i := range d.taskComments[groupID] {
			d.taskComments[groupID][i].IsRead = true
		}
		return nil
	}
	for _, id := range d.projectOrder {
		project := d.projects[id]
		idx, ok := project.FindTimeEntry(groupID)
		if !ok {
			continue
		}
		if !access.HasProjectAccess(project, actor) {
			return backend.ErrForbidden
		}
		project = project.Clone()
		for i := range project.TimeEntries[idx].Comments {
			project.TimeEntries[idx].Comments[i].IsRead = true
		}
		d.projects[id] = project
		return nil
	}
	return backend.NotFound("time entry", groupID)
}
