package opa

import "github.com/CameronXie/eth-order-api/internal/policyretriever"

// OriginPolicy allows a request when input.origin equals one of input.allowed_origins.
const OriginPolicy = `
package origin

default allow = false

allow {
    input.allowed_origins[_] == input.origin
}
`

// OriginQuery is the Rego query that evaluates OriginPolicy.
const OriginQuery = "data.origin.allow"

type hardcodedPolicyRetriever struct {
	policy string
}

// GetPolicy retrieves the hardcoded policy as a string and returns it along with any potential error.
func (p *hardcodedPolicyRetriever) GetPolicy() (string, error) {
	return p.policy, nil
}

// NewHardcodedPolicyRetriever creates a PolicyRetriever with a provided hardcoded policy string.
func NewHardcodedPolicyRetriever(policy string) policyretriever.PolicyRetriever {
	return &hardcodedPolicyRetriever{
		policy: policy,
	}
}
