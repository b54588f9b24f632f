package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/agentkit-labs/agentkit/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	listNameFilter string
	listJSON       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List scaffolded agents",
	Long:  `List agent packages found under the agents root.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listNameFilter, "name", "", "Filter agents by name prefix")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	root := workspace.Root()
	agents, err := workspace.Discover(root)
	if err != nil {
		return fmt.Errorf("discovering agents: %w", err)
	}

	agents = filterAgents(agents, listNameFilter)
	if len(agents) == 0 {
		if listNameFilter != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No agents matching --name=%s\n", listNameFilter)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No agents scaffolded yet.")
		}
		return nil
	}

	if listJSON {
		data, err := json.MarshalIndent(agents, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tPATH\tAGENT.PY")
	for _, a := range agents {
		body := "empty"
		if a.Starter {
			body = "populated"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.Name, a.Path, body)
	}
	return w.Flush()
}

// filterAgents keeps agents whose name starts with prefix (empty keeps all).
func filterAgents(agents []workspace.Agent, prefix string) []workspace.Agent {
	if prefix == "" {
		return agents
	}
	var out []workspace.Agent
	for _, a := range agents {
		if strings.HasPrefix(a.Name, prefix) {
			out = append(out, a)
		}
	}
	return out
}
