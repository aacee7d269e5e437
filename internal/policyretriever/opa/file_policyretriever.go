package opa

import (
	"fmt"
	"os"

	"github.com/CameronXie/eth-order-api/internal/policyretriever"
)

// filePolicyRetriever reads a Rego module from the local filesystem on every call,
// so edits to the file apply to the next decision without a restart.
type filePolicyRetriever struct {
	path string
}

func (p *filePolicyRetriever) GetPolicy() (string, error) {
	fileInfo, err := os.Stat(p.path)
	if err != nil {
		return "", fmt.Errorf("policy not found: %w", err)
	}

	if fileInfo.IsDir() {
		return "", fmt.Errorf("policy path %s is a directory, not a file", p.path)
	}

	content, err := os.ReadFile(p.path)
	if err != nil {
		return "", fmt.Errorf("failed to read policy: %w", err)
	}

	return string(content), nil
}

// NewFilePolicyRetriever creates a PolicyRetriever backed by the Rego file at path.
func NewFilePolicyRetriever(path string) policyretriever.PolicyRetriever {
	return &filePolicyRetriever{
		path: path,
	}
}
