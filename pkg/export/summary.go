// Package export writes the tutorial summary to disk and hands snippets to
// the system clipboard.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vanderheijden86/weavetour/pkg/debug"
	"github.com/vanderheijden86/weavetour/pkg/tutorial"
)

// ErrCanceled is returned when the user declines an interactive prompt.
var ErrCanceled = errors.New("export canceled")

// SummaryPath returns where SaveSummary writes inside dir.
func SummaryPath(dir string) string {
	return filepath.Join(dir, tutorial.SummaryFilename)
}

// SaveSummary writes the summary artifact into dir, creating dir if needed,
// and returns the written path. An existing file is replaced.
func SaveSummary(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	art := tutorial.DownloadSummary()
	path := filepath.Join(dir, art.Filename)

	tmp, err := os.CreateTemp(dir, ".weavetour-summary-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(art.Content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing summary: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return "", fmt.Errorf("setting summary permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing summary: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("saving summary: %w", err)
	}

	debug.Log("export: wrote %d bytes to %s", len(art.Content), path)
	return path, nil
}
