package toml

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/bnema/workiq-automation/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	entryExt        = ".toml"
	entryFileMode   = 0o600
	cacheDirMode    = 0o700
	tempFilePattern = ".entry-*.toml.tmp"
)

// entryNamePattern matches the files this store writes. Anything else in the
// directory is left alone by Clear and Stats.
var entryNamePattern = regexp.MustCompile(`^[0-9a-f]{64}\.toml$`)

// Store keeps one TOML file per cached answer, named by the entry key. There is
// no locking: each write replaces a single file atomically, so concurrent
// writers for the same key only duplicate work.
type Store struct {
	dir    string
	ttl    time.Duration
	clock  ports.Clock
	logger *slog.Logger
}

var _ ports.QueryCache = (*Store)(nil)

func NewStore(dir string, ttl time.Duration, clock ports.Clock, logger *slog.Logger) *Store {
	if ttl <= 0 {
		ttl = domain.DefaultCacheTTL
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Store{
		dir:    filepath.Clean(dir),
		ttl:    ttl,
		clock:  clock,
		logger: logger,
	}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

func (s *Store) Get(ctx context.Context, question, tenant string) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}

	key := domain.CacheKey(question, tenant)
	path := s.pathForKey(key)

	entry, err := readEntry(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("discarding unreadable cache entry", "key", key, "error", err)
			s.remove(path)
		}
		return "", false
	}

	if entry.Question != question || entry.Tenant != tenant {
		s.logger.Debug("cache key collision", "key", key)
		return "", false
	}

	if entry.Expired(s.clock.Now(), s.ttl) {
		s.logger.Debug("cache entry expired", "key", key, "created_at", entry.CreatedAt)
		s.remove(path)
		return "", false
	}

	return entry.Result, true
}

func (s *Store) Put(ctx context.Context, question, tenant, result string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// TOML strings must be valid UTF-8, otherwise the entry could never be read back.
	if !utf8.ValidString(question) || !utf8.ValidString(tenant) || !utf8.ValidString(result) {
		return fmt.Errorf("cache entry is not valid UTF-8: %w", domain.ErrCacheWrite)
	}

	entry := domain.CacheEntry{
		Question:  question,
		Tenant:    tenant,
		Result:    result,
		CreatedAt: s.clock.Now(),
	}

	data, err := toml.Marshal(toSchema(entry))
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	if err := os.MkdirAll(s.dir, cacheDirMode); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	return writeAtomic(s.pathForKey(entry.Key()), data)
}

// Clear removes every entry file. A missing directory is not created and
// reports zero removals.
func (s *Store) Clear(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	paths, err := s.entryPaths()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return removed, fmt.Errorf("remove cache entry: %w", err)
		}
		removed++
	}

	return removed, nil
}

func (s *Store) Stats(ctx context.Context) (domain.CacheStats, error) {
	if err := ctx.Err(); err != nil {
		return domain.CacheStats{}, err
	}

	paths, err := s.entryPaths()
	if err != nil {
		return domain.CacheStats{}, err
	}

	now := s.clock.Now()
	var stats domain.CacheStats
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		stats.Total++
		stats.SizeBytes += info.Size()

		entry, err := readEntry(path)
		if err != nil || entry.Expired(now, s.ttl) {
			stats.Expired++
			continue
		}
		stats.Valid++
	}

	return stats, nil
}

func (s *Store) pathForKey(key string) string {
	return filepath.Join(s.dir, key+entryExt)
}

func (s *Store) entryPaths() ([]string, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cache directory: %w", err)
	}

	paths := make([]string, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if dirEntry.IsDir() || !entryNamePattern.MatchString(name) {
			continue
		}
		paths = append(paths, filepath.Join(s.dir, name))
	}

	return paths, nil
}

func (s *Store) remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("remove cache entry", "path", path, "error", err)
	}
}

func readEntry(path string) (domain.CacheEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.CacheEntry{}, err
	}

	var schema entrySchema
	if err := toml.Unmarshal(data, &schema); err != nil {
		return domain.CacheEntry{}, fmt.Errorf("decode cache entry: %w: %w", domain.ErrCacheRead, err)
	}
	schema.applyDefaults()
	if err := schema.validate(); err != nil {
		return domain.CacheEntry{}, err
	}

	return fromSchema(schema)
}

func writeAtomic(path string, data []byte) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp cache entry: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp cache entry: %w", err)
	}

	if err := tempFile.Chmod(entryFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp cache entry: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp cache entry: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace cache entry: %w", err)
	}

	cleanup = false
	return nil
}
