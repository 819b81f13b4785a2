package health

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mqlforge/mqlforge/internal/config"
	"github.com/mqlforge/mqlforge/internal/library"
)

// geminiHost is the API endpoint the generation client talks to.
const geminiHost = "generativelanguage.googleapis.com"

// registerChecks registers all diagnostics across three categories.
func (c *Checker) registerChecks() {
	// System checks
	c.add("gemini-endpoint", "system", c.checkGeminiEndpoint)
	c.add("clipboard", "system", c.checkClipboard)

	// Config checks
	c.add("config-file", "config", c.checkConfigFile)
	c.add("api-key", "config", c.checkAPIKey)
	c.add("output-dir", "config", c.checkOutputDir)
	c.add("log-dir", "config", c.checkLogDir)

	// Library checks
	c.add("ea-files", "library", c.checkEAFiles)
	c.add("metatrader", "library", c.checkMetaTrader)
}

// ---------------------------------------------------------------------------
// System checks
// ---------------------------------------------------------------------------

func (c *Checker) checkGeminiEndpoint(ctx context.Context) CheckResult {
	addrs, err := net.DefaultResolver.LookupHost(ctx, geminiHost)
	if err != nil {
		return CheckResult{Status: StatusFail, Message: fmt.Sprintf("cannot resolve %s", geminiHost)}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%s resolves (%d addresses)", geminiHost, len(addrs))}
}

// checkClipboard verifies the helper binary the clipboard library shells
// out to on this platform. Darwin and Windows ship theirs with the OS.
func (c *Checker) checkClipboard(ctx context.Context) CheckResult {
	if runtime.GOOS != "linux" {
		return CheckResult{Status: StatusPass, Message: "native clipboard"}
	}
	for _, tool := range []string{"xclip", "xsel", "wl-copy"} {
		if _, err := exec.LookPath(tool); err == nil {
			return CheckResult{Status: StatusPass, Message: tool}
		}
	}
	return CheckResult{Status: StatusWarn, Message: "no xclip/xsel/wl-copy; ctrl+y will not work"}
}

// ---------------------------------------------------------------------------
// Config checks
// ---------------------------------------------------------------------------

func (c *Checker) checkConfigFile(ctx context.Context) CheckResult {
	if c.configFile == "" {
		return CheckResult{Status: StatusWarn, Message: "no config file; using environment only"}
	}
	if _, err := os.Stat(c.configFile); err != nil {
		return CheckResult{Status: StatusFail, Message: fmt.Sprintf("cannot read %s", c.configFile)}
	}
	return CheckResult{Status: StatusPass, Message: c.configFile}
}

func (c *Checker) checkAPIKey(ctx context.Context) CheckResult {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return CheckResult{Status: StatusFail, Message: "GEMINI_API_KEY not set"}
	}
	return CheckResult{Status: StatusPass, Message: c.cfg.Redacted()}
}

func (c *Checker) checkOutputDir(ctx context.Context) CheckResult {
	dir := c.cfg.OutputDir
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return CheckResult{Status: StatusWarn, Message: fmt.Sprintf("%s missing; created on first save", dir)}
		}
		return CheckResult{Status: StatusFail, Message: err.Error()}
	}
	if !info.IsDir() {
		return CheckResult{Status: StatusFail, Message: fmt.Sprintf("%s is not a directory", dir)}
	}

	// Prove writability rather than guessing from mode bits.
	probe := filepath.Join(dir, ".mqlforge-doctor")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return CheckResult{Status: StatusFail, Message: fmt.Sprintf("%s is not writable", dir)}
	}
	_ = os.Remove(probe)
	return CheckResult{Status: StatusPass, Message: dir}
}

func (c *Checker) checkLogDir(ctx context.Context) CheckResult {
	dir := config.LogDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return CheckResult{Status: StatusWarn, Message: fmt.Sprintf("cannot create %s; logging disabled", dir)}
	}
	return CheckResult{Status: StatusPass, Message: dir}
}

// ---------------------------------------------------------------------------
// Library checks
// ---------------------------------------------------------------------------

func (c *Checker) checkEAFiles(ctx context.Context) CheckResult {
	entries, err := library.Scan(c.cfg.OutputDir)
	if err != nil {
		return CheckResult{Status: StatusWarn, Message: err.Error()}
	}
	if len(entries) == 0 {
		return CheckResult{Status: StatusPass, Message: "no EAs saved yet"}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%d EA file(s), newest %s", len(entries), entries[0].Name)}
}

// checkMetaTrader looks for a MetaTrader data folder so saved EAs land
// somewhere MetaEditor can see. Informational only.
func (c *Checker) checkMetaTrader(ctx context.Context) CheckResult {
	home, err := os.UserHomeDir()
	if err != nil {
		return CheckResult{Status: StatusWarn, Message: "cannot determine home directory"}
	}
	candidates := []string{
		filepath.Join(home, "MQL5", "Experts"),
		filepath.Join(home, "AppData", "Roaming", "MetaQuotes"),
		filepath.Join(home, ".wine", "drive_c", "Program Files", "MetaTrader 5"),
	}
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return CheckResult{Status: StatusPass, Message: dir}
		}
	}
	return CheckResult{Status: StatusWarn, Message: "no MetaTrader folder found; copy saved EAs manually"}
}
