package rbac

import (
	"regexp"

	"hours-dashboard/models"
)

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
	PATCH  HTTPMethod = "PATCH"
	ALL    HTTPMethod = "ALL"
)

// PathRule holds the rules of one method. Exact paths are checked before patterns.
type PathRule struct {
	Exact    map[string]models.RbacFunc
	Patterns []PatternRule
}

type PatternRule struct {
	Pattern *regexp.Regexp
	Handler models.RbacFunc
}

func newPathRule() *PathRule {
	return &PathRule{Exact: map[string]models.RbacFunc{}}
}

func (r *PathRule) match(path string) (models.RbacFunc, bool) {
	if r == nil {
		return nil, false
	}
	if handler, ok := r.Exact[path]; ok {
		return handler, true
	}
	for _, p := range r.Patterns {
		if p.Pattern.MatchString(path) {
			return p.Handler, true
		}
	}
	return nil, false
}
