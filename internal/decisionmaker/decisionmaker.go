package decisionmaker

import "context"

// DecisionRequest carries the origin declared by a cross-origin request.
type DecisionRequest struct {
	Origin string
}

// DecisionMaker decides whether an origin may receive cross-origin responses.
type DecisionMaker interface {
	MakeDecision(ctx context.Context, req *DecisionRequest) (bool, error)
}
