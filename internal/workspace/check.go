package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agentkit-labs/agentkit/internal/scaffold"
)

// Check inspects every agent-like directory under root and writes one status
// line per finding. A directory is agent-like when it carries at least one of
// agent.py / __init__.py. Returns the number of failures ([FAIL] lines);
// warnings do not count.
func Check(w io.Writer, root string) (int, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(w, "  [INFO] agents root %s does not exist yet\n", root)
			return 0, nil
		}
		return 0, fmt.Errorf("reading agents root %s: %w", root, err)
	}

	failures := 0
	checked := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		hasAgent := fileExists(filepath.Join(dir, scaffold.AgentFile))
		hasInit := fileExists(filepath.Join(dir, scaffold.InitFile))
		if !hasAgent && !hasInit {
			continue // not agent-like
		}
		checked++

		switch {
		case !hasAgent:
			fmt.Fprintf(w, "  [FAIL] %s: missing %s\n", entry.Name(), scaffold.AgentFile)
			failures++
		case !hasInit:
			fmt.Fprintf(w, "  [FAIL] %s: missing %s\n", entry.Name(), scaffold.InitFile)
			failures++
		default:
			data, err := os.ReadFile(filepath.Join(dir, scaffold.InitFile))
			if err != nil {
				fmt.Fprintf(w, "  [FAIL] %s: cannot read %s: %v\n", entry.Name(), scaffold.InitFile, err)
				failures++
				continue
			}
			if string(data) != scaffold.InitContent {
				fmt.Fprintf(w, "  [WARN] %s: %s diverges from the scaffolded re-export\n", entry.Name(), scaffold.InitFile)
				continue
			}
			fmt.Fprintf(w, "  [ OK ] %s\n", entry.Name())
		}
	}

	if checked == 0 {
		fmt.Fprintf(w, "  [INFO] no agents found under %s\n", root)
	}

	return failures, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
