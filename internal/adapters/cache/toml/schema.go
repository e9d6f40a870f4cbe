package toml

import (
	"fmt"
	"time"

	"github.com/bnema/workiq-automation/internal/domain"
)

const currentSchemaVersion = 1

type entrySchema struct {
	Version   int    `toml:"version"`
	Question  string `toml:"question"`
	Tenant    string `toml:"tenant,omitempty"`
	Result    string `toml:"result"`
	CreatedAt string `toml:"created_at"`
}

func (s *entrySchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s entrySchema) validate() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported cache schema version %d (current %d): %w", s.Version, currentSchemaVersion, domain.ErrCacheRead)
	}
	if s.CreatedAt == "" {
		return fmt.Errorf("cache entry has no timestamp: %w", domain.ErrCacheRead)
	}

	return nil
}

func toSchema(entry domain.CacheEntry) entrySchema {
	return entrySchema{
		Version:   currentSchemaVersion,
		Question:  entry.Question,
		Tenant:    entry.Tenant,
		Result:    entry.Result,
		CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSchema(s entrySchema) (domain.CacheEntry, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, s.CreatedAt)
	if err != nil {
		return domain.CacheEntry{}, fmt.Errorf("parse cache timestamp: %w: %w", domain.ErrCacheRead, err)
	}

	return domain.CacheEntry{
		Question:  s.Question,
		Tenant:    s.Tenant,
		Result:    s.Result,
		CreatedAt: createdAt,
	}, nil
}
