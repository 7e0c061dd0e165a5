package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/sfdc-tools/sfcompare/internal/commands"
	"github.com/sfdc-tools/sfcompare/internal/output"
)

var (
	version   = "dev"
	buildDate = "unknown"
	commit    = "unknown"
)

func init() {
	// Try to get build info from runtime
	if info, ok := debug.ReadBuildInfo(); ok {
		if version == "dev" {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" && commit == "unknown" {
					commit = setting.Value
					if len(commit) > 7 {
						commit = commit[:7]
					}
				}
				if setting.Key == "vcs.time" && buildDate == "unknown" {
					buildDate = setting.Value
				}
			}
		}
	}

	commands.SetBuildInfo(commands.BuildInfo{
		Version:   version,
		BuildDate: buildDate,
		Commit:    commit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	})
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "sfcompare",
		Short: "sfcompare - compare two snapshots of an org",
		Long: `sfcompare - compare two snapshots of an org

Compares object data or metadata between two snapshots, each given as a
point in time or a finished export job, and reports added, deleted, and
modified records per entity.

Connection settings can be provided via:
  1. CLI flags (--api-url, --api-token) - highest priority
  2. Environment variables (SFCOMPARE_API_URL, SFCOMPARE_API_TOKEN)
  3. Configuration file (~/.sfcompare/config.yaml)`,
		Version: version,
	}

	// Global flags
	var (
		configFile string
		apiURL     string
		apiToken   string
		env        string
		debug      bool
		noColor    bool
		quiet      bool
		verbose    bool
	)

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Comparison service API URL (overrides config/env)")
	rootCmd.PersistentFlags().StringVar(&apiToken, "api-token", "", "Comparison service API token (overrides config/env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "", "Named environment from the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug mode")
	rootCmd.PersistentFlags().MarkHidden("debug")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable color output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Store global flags in context and initialize color output
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		output.Init(noColor)

		if quiet {
			output.SetVerbosity(output.QuietLevel)
		} else if verbose {
			output.SetVerbosity(output.VerboseLevel)
		} else {
			output.SetVerbosity(output.NormalLevel)
		}

		cmd.SetContext(commands.WithGlobalFlags(cmd.Context(), commands.GlobalFlags{
			ConfigFile: configFile,
			APIURL:     apiURL,
			APIToken:   apiToken,
			Env:        env,
			Debug:      debug,
			NoColor:    noColor,
			Quiet:      quiet,
			Verbose:    verbose,
		}))
	}

	// Add subcommands
	commands.RegisterCompare(rootCmd)
	commands.RegisterConfig(rootCmd)
	commands.RegisterVersion(rootCmd)
	commands.RegisterCompletion(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		// Initialize output in case PreRun didn't execute
		output.Init(false)
		output.SetVerbosity(output.NormalLevel)
		formattedErr := output.FormatError(err)
		if formattedErr != "" {
			output.ErrorPrintf("%s\n", formattedErr)
		} else {
			output.ErrorPrintf("%s: %v\n", output.Error("Error"), err)
		}
		os.Exit(1)
	}
}
