package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/agentkit-labs/agentkit/internal/config"
	"github.com/agentkit-labs/agentkit/internal/version"
	"github.com/agentkit-labs/agentkit/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	checkRuntime   bool
	checkConfig    bool
	checkWorkspace bool
)

func init() {
	doctorCmd.Flags().BoolVar(&checkRuntime, "check-runtime", false, "Verify python3/adk/git available")
	doctorCmd.Flags().BoolVar(&checkConfig, "check-config", false, "Validate the config file against its schema")
	doctorCmd.Flags().BoolVar(&checkWorkspace, "check-workspace", false, "Verify scaffolded agents are well-formed")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the agents workspace",
	Long:  `Run diagnostic checks on the runtime environment, the config file, and every scaffolded agent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		anyFlag := checkRuntime || checkConfig || checkWorkspace
		// If no specific flag, run all checks.
		all := !anyFlag

		failures := 0
		if all || checkRuntime {
			runRuntimeCheck()
			runVersionCheck()
		}
		if all || checkConfig {
			n, err := runConfigCheck()
			if err != nil {
				return err
			}
			failures += n
		}
		if all || checkWorkspace {
			root := workspace.Root()
			fmt.Printf("Workspace check (%s):\n", root)
			n, err := workspace.Check(os.Stdout, root)
			if err != nil {
				return err
			}
			failures += n
		}

		if failures > 0 {
			return fmt.Errorf("%d check(s) failed", failures)
		}
		return nil
	},
}

func runRuntimeCheck() {
	fmt.Println("Runtime check:")
	checkBinary("python3")
	checkBinary("adk")
	checkBinary("git")
}

func checkBinary(name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Printf("  [MISS] %s not found\n", name)
		return
	}
	fmt.Printf("  [ OK ] %s found at %s\n", name, path)
}

// runVersionCheck warns when the running build predates the configured
// min_version. Dev builds don't parse as semver and are skipped.
func runVersionCheck() {
	min := config.Get(config.KeyMinVersion)
	if min == "" {
		return
	}
	fmt.Println("Version check:")
	older, err := version.IsOlder(buildVersion, min)
	if err != nil {
		fmt.Printf("  [INFO] skipping (version %q: not semver)\n", buildVersion)
		return
	}
	if older {
		fmt.Printf("  [WARN] build %s is older than min_version %s\n", buildVersion, min)
		return
	}
	fmt.Printf("  [ OK ] build %s satisfies min_version %s\n", buildVersion, min)
}

func runConfigCheck() (int, error) {
	path := config.FilePath()
	fmt.Printf("Config check (%s):\n", path)

	result, err := config.ValidateFile(path)
	if err != nil {
		return 0, fmt.Errorf("validating config: %w", err)
	}
	if result.Valid {
		fmt.Println("  [ OK ] config is valid")
		return 0, nil
	}

	fmt.Printf("  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Printf("    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Printf("    - %s\n", issue.Message)
		}
	}
	return 1, nil
}
