package access

import (
	"testing"

	"hours-dashboard/models"
	projectapimodels "hours-dashboard/models/api/project"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/stretchr/testify/require"
)

func TestAccessibleProjects(t *testing.T) {
	projects := []projectapimodels.Project{
		{ID: "p1", Assignments: []projectapimodels.ProjectAssignment{{UserID: "u1", Role: projectapimodels.DeveloperAssignment}}},
		{ID: "p2", Assignments: []projectapimodels.ProjectAssignment{{UserID: "u2", Role: projectapimodels.ViewerAssignment}}},
		{ID: "p3", Assignments: []projectapimodels.ProjectAssignment{
			{UserID: "u2", Role: projectapimodels.ProjectManagerAssignment},
			{UserID: "u1", Role: projectapimodels.ViewerAssignment},
		}},
		{ID: "p4"},
	}
	admin := &userapimodels.User{ID: "a", Role: models.AdminRole}
	client := &userapimodels.User{ID: "u1", Role: models.RegularUserRole}
	manager := &userapimodels.User{ID: "u2", Role: models.ManagerRole}

	ids := func(list []projectapimodels.Project) []string {
		result := []string{}
		for _, p := range list {
			result = append(result, p.ID)
		}
		return result
	}

	t.Run(`admin sees everything`, func(t *testing.T) {
		require.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(AccessibleProjects(projects, admin)))
	})
	t.Run(`non-admin sees assigned projects`, func(t *testing.T) {
		require.Equal(t, []string{"p1", "p3"}, ids(AccessibleProjects(projects, client)))
		require.Equal(t, []string{"p2", "p3"}, ids(AccessibleProjects(projects, manager)))
	})
	t.Run(`nobody sees nothing`, func(t *testing.T) {
		require.Empty(t, AccessibleProjects(projects, nil))
	})
	t.Run(`single project`, func(t *testing.T) {
		require.True(t, HasProjectAccess(projects[0], client))
		require.False(t, HasProjectAccess(projects[1], client))
		require.True(t, HasProjectAccess(projects[3], admin))
		require.False(t, HasProjectAccess(projects[0], nil))
	})
	t.Run(`by id`, func(t *testing.T) {
		require.True(t, HasProjectAccessByID(projects, "p3", client))
		require.False(t, HasProjectAccessByID(projects, "p2", client))
		require.False(t, HasProjectAccessByID(projects, "missing", client))
		require.True(t, HasProjectAccessByID(projects, "missing", admin))
	})
}
