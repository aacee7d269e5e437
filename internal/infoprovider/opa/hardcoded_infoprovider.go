package opa

import (
	"slices"

	"github.com/CameronXie/eth-order-api/internal/infoprovider"
)

type hardcodedInfoProvider struct {
	origins []string
}

// GetAllowedOrigins returns a copy of the allow-list fixed at construction.
func (p *hardcodedInfoProvider) GetAllowedOrigins() ([]string, error) {
	return slices.Clone(p.origins), nil
}

// NewHardcodedInfoProvider initializes a new InfoProvider with the origins permitted to make cross-origin requests.
func NewHardcodedInfoProvider(origins []string) infoprovider.InfoProvider {
	return &hardcodedInfoProvider{origins: slices.Clone(origins)}
}
