package allowlist

import (
	"context"

	"github.com/CameronXie/eth-order-api/internal/decisionmaker"
)

type decisionMaker struct {
	origins map[string]struct{}
}

// MakeDecision allows the request only when its origin equals one of the configured entries.
// Comparison is exact and case-sensitive; an entry of "*" only matches the literal origin "*".
func (d *decisionMaker) MakeDecision(_ context.Context, req *decisionmaker.DecisionRequest) (bool, error) {
	_, ok := d.origins[req.Origin]
	return ok, nil
}

// NewDecisionMaker copies origins into an immutable set.
func NewDecisionMaker(origins []string) decisionmaker.DecisionMaker {
	set := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		set[o] = struct{}{}
	}

	return &decisionMaker{origins: set}
}
