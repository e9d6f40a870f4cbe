package ports

import "context"

type SecretResolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}
