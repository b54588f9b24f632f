package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentkit-labs/agentkit/internal/scaffold"
)

// Agent represents a scaffolded agent package found under the agents root.
type Agent struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Starter bool   `json:"starter"` // agent.py has content (starter or hand-written)
}

// Discover returns the agent packages directly under root, sorted by name.
// A directory counts as an agent when it carries both agent.py and
// __init__.py. A missing root yields an empty result, not an error.
func Discover(root string) ([]Agent, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading agents root %s: %w", root, err)
	}

	var result []Agent
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(root, entry.Name())

		agentInfo, err := os.Stat(filepath.Join(dir, scaffold.AgentFile))
		if err != nil {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, scaffold.InitFile)); err != nil {
			continue
		}

		result = append(result, Agent{
			Name:    entry.Name(),
			Path:    dir,
			Starter: agentInfo.Size() > 0,
		})
	}

	return result, nil
}
