package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agentkit-labs/agentkit/internal/scaffold"
)

// writeAgent lays down an agent directory with the given agent.py content.
func writeAgent(t *testing.T, root, name, agentContent string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, scaffold.AgentFile), []byte(agentContent), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, scaffold.InitFile), []byte(scaffold.InitContent), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()

	writeAgent(t, root, "weather", "")
	writeAgent(t, root, "dara", "root_agent = None\n")

	// Not agents: plain file, empty dir, dir missing __init__.py.
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "half"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "half", scaffold.AgentFile), nil, 0644); err != nil {
		t.Fatal(err)
	}

	agents, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	if len(agents) != 2 {
		t.Fatalf("got %d agents %v, want 2", len(agents), agents)
	}
	// os.ReadDir sorts lexically.
	if agents[0].Name != "dara" || agents[1].Name != "weather" {
		t.Errorf("agent names = %q, %q; want dara, weather", agents[0].Name, agents[1].Name)
	}
	if !agents[0].Starter {
		t.Errorf("dara should report Starter=true (non-empty agent.py)")
	}
	if agents[1].Starter {
		t.Errorf("weather should report Starter=false (empty agent.py)")
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	agents, err := Discover(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(agents) != 0 {
		t.Errorf("got %d agents, want 0", len(agents))
	}
}

func TestRootPrecedence(t *testing.T) {
	t.Setenv("AGENTKIT_AGENTS_ROOT", "/tmp/agents-from-env")
	if got := Root(); got != "/tmp/agents-from-env" {
		t.Errorf("Root() = %q, want env override", got)
	}

	t.Setenv("AGENTKIT_AGENTS_ROOT", "")
	if got := Root(); got != "." {
		t.Errorf("Root() = %q, want %q", got, ".")
	}
}
