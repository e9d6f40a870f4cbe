// Package secrets resolves credential references found in configuration.
//
// A reference is "env:NAME", "pass:path/in/store" or "file:/path/to/file".
// Any other value is taken literally.
package secrets

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/bnema/workiq-automation/internal/ports"
)

const (
	schemeEnv  = "env:"
	schemePass = "pass:"
	schemeFile = "file:"
)

type Resolver struct {
	pass   *passBackend
	lookup func(string) (string, bool)
}

var _ ports.SecretResolver = (*Resolver)(nil)

func NewResolver() *Resolver {
	return &Resolver{
		pass:   newPassBackend(),
		lookup: os.LookupEnv,
	}
}

func (r *Resolver) Resolve(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch {
	case strings.HasPrefix(ref, schemeEnv):
		name := strings.TrimPrefix(ref, schemeEnv)
		value, ok := r.lookup(name)
		if !ok || value == "" {
			return "", fmt.Errorf("environment variable %q: %w", name, domain.ErrSecretNotFound)
		}
		return value, nil
	case strings.HasPrefix(ref, schemePass):
		return r.pass.show(ctx, strings.TrimPrefix(ref, schemePass))
	case strings.HasPrefix(ref, schemeFile):
		return readSecretFile(strings.TrimPrefix(ref, schemeFile))
	default:
		return ref, nil
	}
}
