package rbac

import (
	"regexp"
	"slices"
	"strings"

	"hours-dashboard/models"

	"github.com/pkg/errors"
)

type Provider interface {
	GetRuleFunc(method, path string) (models.RbacFunc, bool)
	RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error
	GetPermissions(role models.UserRole) map[models.Module][]models.Permission
}

// NewInstance builds the rule registry for every route under prefix (e.g. "/api").
func NewInstance(prefix string) Provider {
	i := &impl{
		prefix:      normalizePath(prefix),
		rules:       map[HTTPMethod]*PathRule{},
		permissions: map[models.UserRole]map[models.Module][]models.Permission{},
	}
	i.initRules()
	return i
}

type impl struct {
	prefix      string
	rules       map[HTTPMethod]*PathRule
	permissions map[models.UserRole]map[models.Module][]models.Permission
}

var paramRe = regexp.MustCompile(`\{[^}]+?\}`)

// GetRuleFunc looks up the method's own rules first, then the ones registered for ALL.
func (i *impl) GetRuleFunc(method, path string) (models.RbacFunc, bool) {
	path = normalizePath(path)
	for _, m := range []HTTPMethod{HTTPMethod(strings.ToUpper(method)), ALL} {
		if handler, ok := i.rules[m].match(path); ok {
			return handler, true
		}
	}
	return nil, false
}

func (i *impl) RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error {
	path, method, err := parseSwaggerPattern(swaggerPattern)
	if err != nil {
		return err
	}
	if i.prefix != "/" {
		path = normalizePath(i.prefix + path)
	}
	i.grant(module, permission, roles)

	if handler == nil {
		handler = AllowByRoleFunc(roles)
	}
	rule, ok := i.rules[method]
	if !ok {
		rule = newPathRule()
		i.rules[method] = rule
	}
	if !strings.Contains(path, "{") {
		rule.Exact[path] = handler
		return nil
	}
	pattern, err := pathToRegex(path)
	if err != nil {
		return errors.Wrapf(err, "unable to compile rule pattern (%v)", swaggerPattern)
	}
	rule.Patterns = append(rule.Patterns, PatternRule{Pattern: pattern, Handler: handler})
	return nil
}

func (i *impl) GetPermissions(role models.UserRole) map[models.Module][]models.Permission {
	return i.permissions[role]
}

// grant records module permissions for display without binding a route.
func (i *impl) grant(module models.Module, permission models.Permission, roles []models.UserRole) {
	for _, role := range roles {
		modules, ok := i.permissions[role]
		if !ok {
			modules = map[models.Module][]models.Permission{}
			i.permissions[role] = modules
		}
		if !slices.Contains(modules[module], permission) {
			modules[module] = append(modules[module], permission)
		}
	}
}

// pathToRegex turns "/projects/{id}/expenses" into an anchored expression with one group per parameter.
func pathToRegex(path string) (*regexp.Regexp, error) {
	quoted := strings.NewReplacer(`\{`, "{", `\}`, "}").Replace(regexp.QuoteMeta(path))
	quoted = paramRe.ReplaceAllString(quoted, `([^/]+)`)
	quoted = strings.ReplaceAll(quoted, `\*`, `.*?`)
	return regexp.Compile("^" + quoted + "$")
}

func AllowByRoleFunc(accessRoles []models.UserRole) models.RbacFunc {
	allowed := map[models.UserRole]bool{}
	for _, role := range accessRoles {
		allowed[role] = true
	}
	return func(_ string, role models.UserRole, _ string) bool {
		return allowed[role]
	}
}

// parseSwaggerPattern splits "/users/{id} [post]" into path and method.
func parseSwaggerPattern(pattern string) (string, HTTPMethod, error) {
	pattern = strings.TrimSpace(pattern)
	open := strings.LastIndex(pattern, "[")
	end := strings.LastIndex(pattern, "]")
	if open == -1 || end < open {
		return "", "", errors.Errorf("Method not provided for pattern (%v)", pattern)
	}
	method := HTTPMethod(strings.ToUpper(strings.TrimSpace(pattern[open+1 : end])))
	return normalizePath(strings.TrimSpace(pattern[:open])), method, nil
}

func normalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
