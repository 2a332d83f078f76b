package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/coyksdev/create-rn-app/internal/config"
)

var ErrNoProjectDir = errors.New("project directory not found")

// Install adds the configured dependencies inside dir and overwrites the
// entry file with the template.
func Install(ctx context.Context, r Runner, cfg config.Config, dir string) error {
	if err := checkProjectDir(dir); err != nil {
		return err
	}

	name, args := cfg.InstallArgs()
	if _, err := r.Run(ctx, Command{Name: name, Args: args, Dir: dir}); err != nil {
		return err
	}

	if err := writeTemplate(cfg, dir); err != nil {
		return fmt.Errorf("write %s: %w", cfg.EntryFile, err)
	}
	return nil
}

func checkProjectDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNoProjectDir, dir)
		}
		return fmt.Errorf("stat project dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrNoProjectDir, dir)
	}
	return nil
}

// writeTemplate truncates any existing entry file.
func writeTemplate(cfg config.Config, dir string) error {
	path := filepath.Join(dir, cfg.EntryFile)
	return os.WriteFile(path, []byte(cfg.Template), 0o644)
}
