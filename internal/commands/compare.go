package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sfdc-tools/sfcompare/internal/api"
	"github.com/sfdc-tools/sfcompare/internal/config"
	"github.com/sfdc-tools/sfcompare/internal/modules/compare"
)

// Accepted layouts for --left-time / --right-time. Values without a zone
// offset are read in the machine's local timezone, matching how the
// comparison service's datetime picker treats its input.
var snapshotTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// RegisterCompare registers the compare command.
func RegisterCompare(rootCmd *cobra.Command) {
	var (
		leftTime     string
		leftJob      string
		rightTime    string
		rightJob     string
		compareType  string
		entities     string
		destination  string
		fields       string
		outputFormat string
		verbose      bool
		full         bool
	)

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two snapshots of an org",
		Long: `Compare two snapshots of an org and show per-entity differences.

Each side of the comparison is either a point in time or a finished export
job. Records are classified as added, deleted, or modified between the two
snapshots.

Examples:
  # Compare object data between a timestamp and an export job
  sfcompare compare --type object --entities Account,Contact \
    --left-time "2024-01-01T10:00" --right-job Job_551

  # Compare metadata between two timestamps
  sfcompare compare --type metadata --entities workflows,reports \
    --left-time "2024-01-01T10:00" --right-time "2024-02-01T10:00"

  # Include extra fields in object drill-down listings
  sfcompare compare --type object --entities Account \
    --left-time "2024-01-01T10:00" --right-job Job_551 --fields Industry,Phone

  # Output as JSON
  sfcompare compare --type object --entities Account \
    --left-time "2024-01-01T10:00" --right-job Job_551 --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := GetGlobalFlags(cmd.Context())
			configManager := config.NewConfigManager(flags.ConfigFile)

			env, err := configManager.LoadWithOverrides(flags.APIURL, flags.APIToken, flags.Env)
			if err != nil {
				return err
			}

			left, err := resolveSide(leftTime, leftJob, "left")
			if err != nil {
				return err
			}
			right, err := resolveSide(rightTime, rightJob, "right")
			if err != nil {
				return err
			}

			req, err := compare.BuildRequest(
				compare.ComparisonKind(compareType),
				left, right,
				splitList(entities),
				compare.Options{
					DestinationContext: destination,
					ProjectionFields:   splitList(fields),
				},
			)
			if err != nil {
				return err
			}

			client := api.NewClient(env.APIURL, env.APIToken, time.Duration(env.Timeout)*time.Second)
			defer client.Close()

			report, err := compare.NewModule(client).Execute(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			var formatter interface{ Format(*compare.Report) error }
			switch outputFormat {
			case "json":
				formatter = compare.NewJSONFormatter(cmd.OutOrStdout())
			case "text":
				formatter = compare.NewTextFormatter(cmd.OutOrStdout(), verbose || flags.Verbose, full)
			default:
				return fmt.Errorf("unknown output format %q (expected text or json)", outputFormat)
			}
			if err := formatter.Format(report); err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}

			return nil
		},
	}

	compareCmd.Flags().StringVar(&leftTime, "left-time", "", "Left snapshot datetime (e.g. 2024-01-01T10:00)")
	compareCmd.Flags().StringVar(&leftJob, "left-job", "", "Left snapshot export job ID")
	compareCmd.Flags().StringVar(&rightTime, "right-time", "", "Right snapshot datetime")
	compareCmd.Flags().StringVar(&rightJob, "right-job", "", "Right snapshot export job ID")
	compareCmd.MarkFlagsMutuallyExclusive("left-time", "left-job")
	compareCmd.MarkFlagsMutuallyExclusive("right-time", "right-job")

	compareCmd.Flags().StringVarP(&compareType, "type", "t", "object", "Comparison type: object or metadata")
	compareCmd.Flags().StringVarP(&entities, "entities", "e", "", "Comma-separated list of entities to compare (required)")
	compareCmd.MarkFlagRequired("entities")
	compareCmd.Flags().StringVar(&destination, "destination", "", "Destination context for cross-environment metadata comparisons")
	compareCmd.Flags().StringVar(&fields, "fields", "", "Comma-separated extra fields for object drill-down listings")

	compareCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json")
	compareCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show changed record identifiers")
	compareCmd.Flags().BoolVar(&full, "full", false, "Show every field of changed records")

	rootCmd.AddCommand(compareCmd)
}

// resolveSide builds the snapshot reference for one side from its pair of
// mutually exclusive flags.
func resolveSide(timeVal, jobVal, side string) (compare.SnapshotReference, error) {
	if jobVal != "" {
		return compare.ResolveSnapshot(jobVal, true)
	}
	if timeVal == "" {
		return compare.SnapshotReference{}, fmt.Errorf("missing --%s-time or --%s-job flag", side, side)
	}

	for _, layout := range snapshotTimeLayouts {
		if t, err := time.ParseInLocation(layout, timeVal, time.Local); err == nil {
			return compare.ResolveSnapshot(t, false)
		}
	}
	return compare.SnapshotReference{}, fmt.Errorf("invalid --%s-time value %q (expected e.g. 2024-01-01T10:00)", side, timeVal)
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

