package recommend

import (
	"context"
	"errors"
	"net"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/role-recommender/internal/catalog"
	"github.com/jonathan/role-recommender/internal/extraction"
	"github.com/jonathan/role-recommender/internal/llm"
	"github.com/jonathan/role-recommender/internal/ranking"
	"github.com/jonathan/role-recommender/internal/selection"
	"github.com/jonathan/role-recommender/internal/types"
)

// Engine runs analyses against the static catalogs, optionally assisted by a
// remote recommendation client. The engine holds no mutable state: every
// analysis is a pure function of its text input plus the catalogs, so one
// Engine is safely shared across concurrent requests.
type Engine struct {
	catalog *catalog.Catalog
	client  llm.Client
	timeout time.Duration
}

// Options configures an Engine. Zero values fall back to the default catalog,
// no remote client, and the default call timeout.
type Options struct {
	Catalog *catalog.Catalog
	Client  llm.Client
	Timeout time.Duration
}

// NewEngine creates an Engine.
func NewEngine(opts Options) *Engine {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = llm.DefaultTimeout
	}
	return &Engine{
		catalog: cat,
		client:  opts.Client,
		timeout: timeout,
	}
}

// Notice advises the caller that the returned result came from the local
// fallback rather than the remote service. The result shape is identical
// either way; callers never need to distinguish origin to render it.
type Notice struct {
	Kind    FailureKind
	Message string
}

// Analyze produces the recommendation result for one experience description.
// It attempts the remote service once, bounded by the configured timeout, and
// on any failure recomputes locally. The result is always non-nil; a non-nil
// Notice means the fallback was used.
func (e *Engine) Analyze(ctx context.Context, text string) (*types.AnalysisResult, *Notice) {
	result, err := e.fetchRemote(ctx, text)
	if err != nil {
		return e.AnalyzeLocal(text), &Notice{Kind: err.Kind, Message: err.Advisory()}
	}
	return result, nil
}

// AnalyzeLocal runs the fully local pipeline: skill extraction, direct-fit
// ranking, trending selection, and focus-area classification. Deterministic
// given fixed catalogs.
func (e *Engine) AnalyzeLocal(text string) *types.AnalysisResult {
	profile := extraction.Extract(text, e.catalog.Skills)

	// The two consumers of the profile are independent; run them as
	// parallel branches.
	var (
		directFit []types.JobRecommendation
		trending  []types.TrendingJob
		focus     []string
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		focus = extraction.DisciplineFocusAreas(text)
		matches := ranking.MatchRoles(profile, text, e.catalog.Roles)
		directFit = ranking.BuildRecommendations(matches, focus)
		return nil
	})
	g.Go(func() error {
		trending = selection.SelectTrending(profile, e.catalog)
		return nil
	})
	_ = g.Wait() // branches never fail

	return &types.AnalysisResult{
		DirectFitJobs:   directFit,
		TrendingJobs:    trending,
		ExtractedSkills: detectedSkills(profile),
		FocusAreas:      focus,
	}
}

// fetchRemote performs the single remote attempt and normalizes its payload.
// No retry: one failed attempt goes straight to the local fallback.
func (e *Engine) fetchRemote(ctx context.Context, text string) (*types.AnalysisResult, *FailureError) {
	if e.client == nil {
		return nil, &FailureError{Kind: FailureDisabled}
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	body, err := e.client.Recommend(callCtx, text)
	if err != nil {
		return nil, classifyCallError(err)
	}

	parsed, ferr := parseRecommendations(body)
	if ferr != nil {
		return nil, ferr
	}
	return e.normalize(parsed, text), nil
}

// classifyCallError maps a client error onto the failure taxonomy.
func classifyCallError(err error) *FailureError {
	var statusErr *llm.StatusError
	if errors.As(err, &statusErr) {
		return &FailureError{Kind: FailureStatus, Cause: err}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &FailureError{Kind: FailureTimeout, Cause: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &FailureError{Kind: FailureTimeout, Cause: err}
	}

	return &FailureError{Kind: FailureTransport, Cause: err}
}
