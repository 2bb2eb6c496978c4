package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// DefaultModel is used when no model file is configured: users inherit the
// permissions of their roles, and a role permission is a (resource, action)
// pair.
const DefaultModel = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// NewEnforcer builds an enforcer from the model file at modelPath, or from
// DefaultModel when modelPath is empty. Policies are loaded by the service.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	if modelPath != "" {
		return casbin.NewEnforcer(modelPath)
	}
	m, err := model.NewModelFromString(DefaultModel)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}
