package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"
)

// File names and fixed content of a generated agent package.
const (
	AgentFile = "agent.py"
	InitFile  = "__init__.py"

	// InitContent is the exact content of every generated __init__.py.
	// The re-export makes `from <name> import agent` work from the parent
	// package, which is what the ADK loader expects.
	InitContent = "from . import agent\n"

	// DefaultModel is the model id written into starter agents when neither
	// the --model flag nor the starter_model config key is set.
	DefaultModel = "gemini-2.0-flash"
)

// Data holds the template variables available to scaffold templates.
type Data struct {
	Name  string // e.g., "weather_agent"
	Model string // model id for the starter agent, e.g., "gemini-2.0-flash"
	Year  int    // current year
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
}

// NewData creates a Data with derived fields populated. An empty model
// falls back to DefaultModel.
func NewData(name, model string) *Data {
	if model == "" {
		model = DefaultModel
	}
	return &Data{
		Name:  name,
		Model: model,
		Year:  time.Now().Year(),
	}
}

// Generate creates (or refreshes) an agent package at outputDir.
//
// The operation is deliberately idempotent: an existing directory is not an
// error, agent.py is truncated to empty on every run (unless starter is set,
// in which case it is overwritten with the rendered starter template), and
// __init__.py is rewritten with its fixed re-export line. There is no
// rollback if a later write fails.
func Generate(data *Data, outputDir string, starter bool) (*Result, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{OutputDir: outputDir}

	agentPath := filepath.Join(outputDir, AgentFile)
	if starter {
		rendered, err := renderTemplate("scaffolds/agent/agent.py.tmpl", data)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(agentPath, rendered, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", agentPath, err)
		}
	} else {
		if err := os.WriteFile(agentPath, nil, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", agentPath, err)
		}
	}
	result.Files = append(result.Files, AgentFile)

	initPath := filepath.Join(outputDir, InitFile)
	if err := os.WriteFile(initPath, []byte(InitContent), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", initPath, err)
	}
	result.Files = append(result.Files, InitFile)

	return result, nil
}

// renderTemplate reads a template from the embedded FS and executes it.
func renderTemplate(path string, data *Data) ([]byte, error) {
	tmplBytes, err := scaffoldFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	tmpl, err := template.New(filepath.Base(path)).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", path, err)
	}
	return buf.Bytes(), nil
}
