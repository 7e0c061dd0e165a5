package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sfdc-tools/sfcompare/internal/modules/compare"
)

// FormatError formats an error with a suggestion and error code where one
// can be derived.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	suggestion, errorCode := classify(err)

	var parts []string
	parts = append(parts, Error(err.Error()))

	if suggestion != "" {
		parts = append(parts, fmt.Sprintf("\n%s", Info("Suggestion: "+suggestion)))
	}

	if errorCode != "" {
		parts = append(parts, fmt.Sprintf("\n%s", Dim("Error code: "+errorCode)))
	}

	return strings.Join(parts, "")
}

// classify maps known error types and common transport failures to a
// suggestion and a stable error code.
func classify(err error) (string, string) {
	var invalidSnapshot *compare.InvalidSnapshotError
	if errors.As(err, &invalidSnapshot) {
		return "Check the snapshot reference. Use --left-time/--right-time with a datetime, or --left-job/--right-job with an export job ID", "INVALID_SNAPSHOT"
	}

	var noDiff *compare.NoDifferencesError
	if errors.As(err, &noDiff) {
		return "The snapshots are identical for this entity. Remove it from --entities or pick different snapshots", "NO_DIFFERENCES"
	}

	var ambiguousEntity *compare.AmbiguousEntityMatchError
	if errors.As(err, &ambiguousEntity) {
		return "The summary table holds more than one row with this exact name. Report this to the comparison service operators", "AMBIGUOUS_ENTITY"
	}

	var ambiguousColumn *compare.TimeColumnAmbiguityError
	if errors.As(err, &ambiguousColumn) {
		return "The summary table's time columns could not be matched to the snapshot instants. The service may render timestamps in an unexpected timezone", "AMBIGUOUS_TIME_COLUMN"
	}

	if errors.Is(err, compare.ErrEmptyEntityList) {
		return "Pass at least one entity with --entities", "EMPTY_ENTITY_LIST"
	}

	lowerMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lowerMsg, "config"):
		return "Run `sfcompare config --init` to create a configuration file", "CONFIG_ERROR"
	case strings.Contains(lowerMsg, "401") || strings.Contains(lowerMsg, "unauthorized"):
		return "Check your API token. Run `sfcompare config --show` to view current configuration", "AUTH_FAILED"
	case strings.Contains(lowerMsg, "403") || strings.Contains(lowerMsg, "forbidden"):
		return "Check that your API token has the necessary permissions", "PERMISSION_DENIED"
	case strings.Contains(lowerMsg, "404"):
		return "The requested resource may not exist or you may not have access to it", "RESOURCE_NOT_FOUND"
	case strings.Contains(lowerMsg, "timeout") || strings.Contains(lowerMsg, "connection"):
		return "Check your network connection and the API URL, then try again", "TIMEOUT"
	case strings.Contains(lowerMsg, "429") || strings.Contains(lowerMsg, "rate limit"):
		return "Rate limit exceeded. Please wait a moment and try again", "RATE_LIMIT"
	default:
		return "", ""
	}
}
