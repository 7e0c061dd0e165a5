package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/sfdc-tools/sfcompare/internal/output"
	"github.com/sfdc-tools/sfcompare/internal/update"
)

// BuildInfo holds build-time information
type BuildInfo struct {
	Version   string
	BuildDate string
	Commit    string
	GoVersion string
	Platform  string
}

var buildInfo = BuildInfo{
	Version:   "dev",
	BuildDate: "unknown",
	Commit:    "unknown",
	GoVersion: runtime.Version(),
	Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
}

// SetBuildInfo sets build information (called from main.go)
func SetBuildInfo(info BuildInfo) {
	buildInfo = info
}

// RegisterVersion registers the version command.
func RegisterVersion(rootCmd *cobra.Command) {
	var check bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the CLI version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("sfcompare version %s\n", buildInfo.Version)
			fmt.Printf("Build date: %s\n", buildInfo.BuildDate)
			fmt.Printf("Git commit: %s\n", buildInfo.Commit)
			fmt.Printf("Go version: %s\n", buildInfo.GoVersion)
			fmt.Printf("Platform: %s\n", buildInfo.Platform)

			if check {
				result, err := update.NewChecker().CheckLatestVersion(cmd.Context(), buildInfo.Version)
				if err != nil {
					return fmt.Errorf("update check failed: %w", err)
				}
				if result.UpdateAvailable {
					output.WarningPrintln(fmt.Sprintf("\nA newer version is available: %s", result.LatestVersion))
					fmt.Printf("Download: %s\n", result.DownloadURL)
				} else {
					output.SuccessPrintln("\nYou are running the latest version.")
				}
			}

			return nil
		},
	}

	versionCmd.Flags().BoolVar(&check, "check", false, "Check for a newer release")

	rootCmd.AddCommand(versionCmd)
}
