package config

import (
	"context"
	"os"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultFileNames are looked up in the walk root, in order, when no
// config file is given explicitly
var DefaultFileNames = []string{
	".dvserialize.yaml",
	".dvserialize.yml",
	".dvserialize.json",
	".dvserialize.hcl",
}

// Discover loads the explicit config file when path is set. Otherwise it
// loads the first default file found in root, falling back to Default.
func Discover(ctx context.Context, root string, path string) (*Config, error) {
	if path != "" {
		return Load(ctx, path)
	}

	for _, name := range DefaultFileNames {
		candidate := filepath.Join(root, name)
		info, err := os.Stat(candidate)
		if err != nil {
			if os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR) {
				continue
			}
			return nil, errors.Errorf("checking config file %s: %w", candidate, err)
		}
		if info.IsDir() {
			continue
		}
		return Load(ctx, candidate)
	}

	zerolog.Ctx(ctx).Debug().Str("root", root).Msg("no config file found, using defaults")
	return Default(), nil
}
