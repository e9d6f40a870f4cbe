package ports

import (
	"context"

	"github.com/bnema/workiq-automation/internal/domain"
)

// QueryCache is a best-effort store of previous answers. Get never fails: any
// problem reading an entry is reported as a miss.
type QueryCache interface {
	Get(ctx context.Context, question, tenant string) (string, bool)
	Put(ctx context.Context, question, tenant, result string) error
	Clear(ctx context.Context) (int, error)
	Stats(ctx context.Context) (domain.CacheStats, error)
}

// QueryRunner asks the Work IQ CLI a single question.
type QueryRunner interface {
	Ask(ctx context.Context, question, tenant string) (string, error)
}

// ToolProbe is the subset of the CLI used to check the local installation.
type ToolProbe interface {
	QueryRunner
	Version(ctx context.Context) (string, error)
}
