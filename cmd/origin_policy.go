package main

import (
	"fmt"
	"log/slog"

	"github.com/CameronXie/eth-order-api/internal/config"
	"github.com/CameronXie/eth-order-api/internal/decisionmaker"
	"github.com/CameronXie/eth-order-api/internal/decisionmaker/allowlist"
	"github.com/CameronXie/eth-order-api/internal/decisionmaker/casbin"
	"github.com/CameronXie/eth-order-api/internal/enforcer"
	"github.com/CameronXie/eth-order-api/internal/policyretriever"

	pdp "github.com/CameronXie/eth-order-api/internal/decisionmaker/opa"
	pip "github.com/CameronXie/eth-order-api/internal/infoprovider/opa"
	prp "github.com/CameronXie/eth-order-api/internal/policyretriever/opa"
)

// newEnforcer builds the origin Enforcer backed by the decision maker named in cfg.PolicyEngine.
func newEnforcer(cfg *config.Config, logger *slog.Logger) (enforcer.Enforcer, error) {
	logger.Info("initializing_enforcer", slog.String("engine", string(cfg.PolicyEngine)))

	var (
		decisionMaker decisionmaker.DecisionMaker
		err           error
	)

	switch cfg.PolicyEngine {
	case config.PolicyEngineAllowList:
		decisionMaker = allowlist.NewDecisionMaker(cfg.AllowedOrigins)
	case config.PolicyEngineCasbin:
		decisionMaker, err = casbin.NewDecisionMaker(casbin.OriginModel, casbin.NewOriginPolicyAdapter(cfg.AllowedOrigins))
	case config.PolicyEngineOPA:
		decisionMaker = pdp.NewDecisionMaker(
			newOPAPolicyRetriever(cfg, logger),
			pip.NewHardcodedInfoProvider(cfg.AllowedOrigins),
			prp.OriginQuery,
		)
	default:
		err = fmt.Errorf("unsupported origin policy engine %q", cfg.PolicyEngine)
	}

	if err != nil {
		return nil, err
	}

	return enforcer.NewEnforcer(decisionMaker), nil
}

// newOPAPolicyRetriever returns the file-backed retriever when OPA_POLICY_FILE is set and the built-in policy otherwise.
func newOPAPolicyRetriever(cfg *config.Config, logger *slog.Logger) policyretriever.PolicyRetriever {
	if cfg.OPAPolicyFile == "" {
		return prp.NewHardcodedPolicyRetriever(prp.OriginPolicy)
	}

	logger.Info("loading_opa_policy_file", slog.String("path", cfg.OPAPolicyFile))
	return prp.NewFilePolicyRetriever(cfg.OPAPolicyFile)
}
