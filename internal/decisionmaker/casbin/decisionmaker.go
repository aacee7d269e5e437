package casbin

import (
	"context"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/persist"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"

	"github.com/CameronXie/eth-order-api/internal/decisionmaker"
)

// OriginModel matches a request origin against "p" policy lines by exact string equality.
const OriginModel = `
[request_definition]
r = origin

[policy_definition]
p = origin

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.origin == p.origin
`

// enforcer is the subset of casbin.IEnforcer used to evaluate origins.
type enforcer interface {
	Enforce(rvals ...any) (bool, error)
}

type decisionMaker struct {
	enforcer enforcer
}

// MakeDecision evaluates the request origin against the loaded policy.
// Policies are loaded once at construction since the allow-list is fixed for the life of the process.
func (d *decisionMaker) MakeDecision(_ context.Context, req *decisionmaker.DecisionRequest) (bool, error) {
	ok, err := d.enforcer.Enforce(req.Origin)
	if err != nil {
		return false, fmt.Errorf("casbin enforce: %w", err)
	}

	return ok, nil
}

// NewDecisionMaker creates a DecisionMaker from a Casbin model definition and a policy adapter.
// It returns an error if the model cannot be parsed or the policy cannot be loaded.
func NewDecisionMaker(config string, policyRepo persist.Adapter) (decisionmaker.DecisionMaker, error) {
	m, err := model.NewModelFromString(config)
	if err != nil {
		return nil, fmt.Errorf("casbin model: %w", err)
	}

	e, err := casbin.NewSyncedEnforcer(m, policyRepo)
	if err != nil {
		return nil, fmt.Errorf("casbin enforcer: %w", err)
	}

	return &decisionMaker{enforcer: e}, nil
}

// NewOriginPolicyAdapter renders origins as "p" policy lines behind a read-only string adapter.
func NewOriginPolicyAdapter(origins []string) persist.Adapter {
	lines := make([]string, 0, len(origins))
	for _, o := range origins {
		lines = append(lines, "p, "+o)
	}

	return stringadapter.NewAdapter(strings.Join(lines, "\n"))
}
