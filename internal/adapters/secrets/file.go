package secrets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/bnema/workiq-automation/internal/domain"
)

// readSecretFile reads a secret file, trimming one trailing newline. A leading
// "~/" is expanded to the home directory.
func readSecretFile(path string) (string, error) {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		path = filepath.Join(xdg.Home, rest)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("file secret %q: %w", path, domain.ErrSecretNotFound)
		}
		return "", fmt.Errorf("read file secret %q: %w", path, err)
	}

	value := strings.TrimSuffix(string(data), "\n")
	value = strings.TrimSuffix(value, "\r")
	return value, nil
}
