package enforcer

import (
	"context"

	"github.com/CameronXie/eth-order-api/internal/decisionmaker"
)

type Enforcer interface {
	Enforce(ctx context.Context, req *OriginRequest) (bool, error)
}

// OriginRequest describes the origin a request declared. An empty Origin means none was declared,
// as with curl, server-to-server calls and same-origin navigations.
type OriginRequest struct {
	Origin string
}

type enforcer struct {
	decisionMaker decisionmaker.DecisionMaker
}

// Enforce allows undeclared origins unconditionally and defers every declared origin, unmodified, to the
// decision maker.
func (e *enforcer) Enforce(ctx context.Context, req *OriginRequest) (bool, error) {
	if req.Origin == "" {
		return true, nil
	}

	return e.decisionMaker.MakeDecision(
		ctx,
		&decisionmaker.DecisionRequest{
			Origin: req.Origin,
		},
	)
}

func NewEnforcer(decisionMaker decisionmaker.DecisionMaker) Enforcer {
	return &enforcer{decisionMaker: decisionMaker}
}
