package opa

import (
	"context"
	"errors"
	"fmt"

	"github.com/open-policy-agent/opa/rego"

	"github.com/CameronXie/eth-order-api/internal/decisionmaker"
	"github.com/CameronXie/eth-order-api/internal/infoprovider"
	"github.com/CameronXie/eth-order-api/internal/policyretriever"
)

const (
	moduleName = "origin.rego"
)

type decisionMaker struct {
	policyRetriever policyretriever.PolicyRetriever
	infoProvider    infoprovider.InfoProvider
	query           string
}

// MakeDecision evaluates the policy for the request origin and returns whether it is allowed.
func (d *decisionMaker) MakeDecision(ctx context.Context, req *decisionmaker.DecisionRequest) (bool, error) {
	policy, err := d.policyRetriever.GetPolicy()
	if err != nil {
		return false, fmt.Errorf("failed to get policy: %w", err)
	}

	query, err := rego.New(rego.Module(moduleName, policy), rego.Query(d.query)).PrepareForEval(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to prepare query: %w", err)
	}

	origins, err := d.infoProvider.GetAllowedOrigins()
	if err != nil {
		return false, fmt.Errorf("failed to get allowed origins: %w", err)
	}

	result, err := query.Eval(ctx, rego.EvalInput(map[string]any{
		"origin":          req.Origin,
		"allowed_origins": origins,
	}))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate query: %w", err)
	}

	if len(result) == 0 || len(result[0].Expressions) == 0 {
		return false, errors.New("failed to evaluate query: result is undefined")
	}

	allowed, ok := result[0].Expressions[0].Value.(bool)
	if !ok {
		return false, fmt.Errorf("failed to evaluate query: expected boolean result, got %T", result[0].Expressions[0].Value)
	}

	return allowed, nil
}

// NewDecisionMaker initializes a DecisionMaker with the provided PolicyRetriever, InfoProvider, and Rego query.
func NewDecisionMaker(
	policyRetriever policyretriever.PolicyRetriever,
	infoProvider infoprovider.InfoProvider,
	query string,
) decisionmaker.DecisionMaker {
	return &decisionMaker{
		policyRetriever: policyRetriever,
		infoProvider:    infoProvider,
		query:           query,
	}
}
