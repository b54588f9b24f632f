package workspace

import (
	"os"

	"github.com/agentkit-labs/agentkit/internal/branding"
	"github.com/agentkit-labs/agentkit/internal/config"
)

// Root returns the directory agents are scaffolded into and discovered from.
// It checks the AGENTKIT_AGENTS_ROOT environment variable first, then the
// agents_root config key, and falls back to the current directory.
func Root() string {
	if v := os.Getenv(branding.EnvVar("AGENTS_ROOT")); v != "" {
		return v
	}
	if v := config.Get(config.KeyAgentsRoot); v != "" {
		return v
	}
	return "."
}
