// Package export moves normalized Expert Advisor code out of the app:
// onto the clipboard or into a .mq5 file. Always feed it the normalized
// text, never the highlighted rendering.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

// DefaultFilename is used when the caller does not pick a name.
const DefaultFilename = "ExpertAdvisor.mq5"

// Extension is the MQL5 source file extension.
const Extension = ".mq5"

// Save writes code to dir/name, creating dir if needed. An empty name
// falls back to DefaultFilename; a missing .mq5 extension is appended.
// Returns the full path written.
func Save(code, dir, name string) (string, error) {
	if name == "" {
		name = DefaultFilename
	}
	if !strings.HasSuffix(strings.ToLower(name), Extension) {
		name += Extension
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(code+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// CopyToClipboard places code on the system clipboard.
func CopyToClipboard(code string) error {
	if err := clipboard.WriteAll(code); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
