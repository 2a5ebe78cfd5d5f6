package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/role-recommender/internal/config"
	"github.com/jonathan/role-recommender/internal/llm"
	"github.com/jonathan/role-recommender/internal/recommend"
)

// resolveConfig merges the optional config file with environment defaults.
// Flag values are applied by the individual commands afterwards.
func resolveConfig(configPath string) (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		RemoteURL: os.Getenv("RECOMMENDER_REMOTE_URL"),
		Provider:  os.Getenv("RECOMMENDER_PROVIDER"),
		APIKey:    os.Getenv("GEMINI_API_KEY"),
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildEngine constructs the analysis engine for the resolved configuration.
// Provider "none" (or an empty provider with no remote URL) yields a purely
// local engine.
func buildEngine(ctx context.Context, cfg config.Config) (*recommend.Engine, error) {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond

	var client llm.Client
	switch cfg.Provider {
	case "none":
		// local only
	case "gemini":
		clientCfg := &llm.Config{Provider: llm.ProviderGemini, Model: llm.DefaultModel, Timeout: timeout}
		c, err := llm.NewClient(ctx, clientCfg, cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create recommendation client: %w", err)
		}
		client = c
	case "http":
		client = llm.NewHTTPClient(&llm.Config{Provider: llm.ProviderHTTP, BaseURL: cfg.RemoteURL, Timeout: timeout})
	default:
		if cfg.RemoteURL != "" {
			client = llm.NewHTTPClient(&llm.Config{Provider: llm.ProviderHTTP, BaseURL: cfg.RemoteURL, Timeout: timeout})
		}
	}

	return recommend.NewEngine(recommend.Options{
		Client:  client,
		Timeout: timeout,
	}), nil
}
