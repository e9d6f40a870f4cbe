package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/bnema/workiq-automation/internal/ports"
	"golang.org/x/sync/errgroup"
)

// QueryService asks the Work IQ CLI questions, consulting the answer cache
// first. It never retries; a single attempt per call is the whole contract.
type QueryService struct {
	runner        ports.QueryRunner
	cache         ports.QueryCache
	logger        *slog.Logger
	defaultTenant string
	cacheEnabled  bool
	timeout       time.Duration
}

type QueryServiceConfig struct {
	DefaultTenant string
	CacheEnabled  bool
	Timeout       time.Duration
}

func NewQueryService(runner ports.QueryRunner, cache ports.QueryCache, cfg QueryServiceConfig, logger *slog.Logger) *QueryService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DefaultQueryTimeout
	}

	return &QueryService{
		runner:        runner,
		cache:         cache,
		logger:        logger,
		defaultTenant: cfg.DefaultTenant,
		cacheEnabled:  cfg.CacheEnabled && cache != nil,
		timeout:       cfg.Timeout,
	}
}

type askOptions struct {
	tenant   string
	useCache bool
	timeout  time.Duration
}

type AskOption func(*askOptions)

func WithTenant(tenant string) AskOption {
	return func(o *askOptions) {
		if tenant != "" {
			o.tenant = tenant
		}
	}
}

func WithoutCache() AskOption {
	return func(o *askOptions) {
		o.useCache = false
	}
}

func WithTimeout(timeout time.Duration) AskOption {
	return func(o *askOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

func (s *QueryService) DefaultTenant() string {
	return s.defaultTenant
}

func (s *QueryService) Ask(ctx context.Context, question string, opts ...AskOption) (string, error) {
	o := askOptions{
		tenant:   s.defaultTenant,
		useCache: s.cacheEnabled,
		timeout:  s.timeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is empty")
	}

	if o.useCache {
		if cached, ok := s.cache.Get(ctx, question, o.tenant); ok {
			s.logger.Debug("cache hit", "question", question)
			return cached, nil
		}
	}

	s.logger.Debug("querying work iq", "question", question, "tenant", o.tenant != "")

	askCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	answer, err := s.runner.Ask(askCtx, question, o.tenant)
	if err != nil {
		return "", fmt.Errorf("work iq query failed: %w", err)
	}
	answer = strings.TrimSpace(answer)

	if o.useCache {
		if err := s.cache.Put(ctx, question, o.tenant, answer); err != nil {
			s.logger.Debug("cache write failed", "question", question, "error", err)
		}
	}

	return answer, nil
}

type BatchOptions struct {
	// Concurrency caps the number of questions in flight. Zero or less means one.
	Concurrency int
	Ask         []AskOption
	Progress    ProgressFunc
}

// Batch asks every question and returns one result per question in input
// order. A failing question never aborts the others.
func (s *QueryService) Batch(ctx context.Context, questions []string, opts BatchOptions) []domain.QueryResult {
	results := make([]domain.QueryResult, len(questions))

	limit := opts.Concurrency
	if limit <= 0 {
		limit = 1
	}

	var done atomic.Int64
	var g errgroup.Group
	g.SetLimit(limit)
	for i, question := range questions {
		g.Go(func() error {
			answer, err := s.Ask(ctx, question, opts.Ask...)
			if err != nil {
				s.logger.Warn("query failed", "question", question, "error", err)
			}
			results[i] = domain.QueryResult{Question: question, Answer: answer, Err: err}
			opts.Progress.report(int(done.Add(1)), len(questions))
			return nil
		})
	}
	_ = g.Wait()

	return results
}
