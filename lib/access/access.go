// Package access decides which projects a user may see. The result only gates
// navigation; the backend authorizes every request on its own.
package access

import (
	projectapimodels "hours-dashboard/models/api/project"
	userapimodels "hours-dashboard/models/api/user"
)

// AccessibleProjects returns every project for an admin, and for anyone else
// the projects that carry an assignment for the user. Order is preserved.
func AccessibleProjects(projects []projectapimodels.Project, user *userapimodels.User) []projectapimodels.Project {
	if user == nil {
		return []projectapimodels.Project{}
	}
	if user.Role.IsAdmin() {
		return append([]projectapimodels.Project{}, projects...)
	}
	result := make([]projectapimodels.Project, 0, len(projects))
	for _, project := range projects {
		if project.IsAssigned(user.ID) {
			result = append(result, project)
		}
	}
	return result
}

func HasProjectAccess(project projectapimodels.Project, user *userapimodels.User) bool {
	if user == nil {
		return false
	}
	return user.Role.IsAdmin() || project.IsAssigned(user.ID)
}

// HasProjectAccessByID reports false for an id not present in projects, unless the user is an admin.
func HasProjectAccessByID(projects []projectapimodels.Project, projectID string, user *userapimodels.User) bool {
	if user == nil {
		return false
	}
	if user.Role.IsAdmin() {
		return true
	}
	for _, project := range projects {
		if project.ID == projectID {
			return project.IsAssigned(user.ID)
		}
	}
	return false
}
