package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"

	"github.com/agentkit-labs/agentkit/internal/branding"
	"github.com/agentkit-labs/agentkit/internal/config"
	"github.com/agentkit-labs/agentkit/internal/scaffold"
	"github.com/agentkit-labs/agentkit/internal/workspace"
	"github.com/spf13/cobra"
)

// namePattern admits underscores and hyphens but no separators or dots,
// so a name can never escape the agents root.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_-]*$`)

var (
	createOutputDir string
	createModel     string
	createStarter   bool
)

func init() {
	createAgentCmd.Flags().StringVar(&createOutputDir, "output-dir", "", "Output directory (default: <agents root>/<name>)")
	createAgentCmd.Flags().BoolVar(&createStarter, "starter", false, "Fill agent.py with a runnable ADK starter instead of leaving it empty")
	createAgentCmd.Flags().StringVar(&createModel, "model", "", "Model id for the starter agent (default: starter_model config key, then "+scaffold.DefaultModel+")")
	rootCmd.AddCommand(createAgentCmd)
}

var createAgentCmd = &cobra.Command{
	Use:   "create-agent <AGENT_NAME>",
	Short: "Scaffold a new agent package",
	Long: `Create a directory named after the agent containing an empty agent.py and
an __init__.py that re-exports the agent module.

Examples:
  agentkit create-agent weather
  agentkit create-agent trip_planner --starter --model gemini-2.0-flash`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("missing agent name\n\nUsage: %s create-agent <AGENT_NAME>", branding.CLIName())
		}
		if len(args) > 1 {
			return fmt.Errorf("expected exactly one agent name, got %d arguments", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return createAgent(cmd.OutOrStdout(), args[0], createOutputDir, createModel, createStarter)
	},
}

// createAgent validates the name and generates the agent package.
func createAgent(out io.Writer, name, outputDir, model string, starter bool) error {
	if err := validateAgentName(name); err != nil {
		return err
	}

	if model == "" {
		model = config.Get(config.KeyStarterModel)
	}
	if outputDir == "" {
		outputDir = filepath.Join(workspace.Root(), name)
	}

	result, err := scaffold.Generate(scaffold.NewData(name, model), outputDir, starter)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Created agent with name: %s\n", name)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	return nil
}

func validateAgentName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid agent name %q: must match pattern [A-Za-z0-9_][A-Za-z0-9_-]*", name)
	}
	return nil
}
