package output

import (
	"errors"
	"strings"
	"testing"

	"github.com/sfdc-tools/sfcompare/internal/modules/compare"
)

func TestFormatError(t *testing.T) {
	Init(true) // keep assertions free of ANSI codes

	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{
			name:     "invalid snapshot",
			err:      &compare.InvalidSnapshotError{Value: 42, Reason: "unsupported type"},
			wantCode: "INVALID_SNAPSHOT",
		},
		{
			name:     "no differences",
			err:      &compare.NoDifferencesError{Entity: "Account"},
			wantCode: "NO_DIFFERENCES",
		},
		{
			name:     "empty entity list",
			err:      compare.ErrEmptyEntityList,
			wantCode: "EMPTY_ENTITY_LIST",
		},
		{
			name:     "wrapped typed error",
			err:      errors.Join(errors.New("compare Account"), &compare.NoDifferencesError{Entity: "Account"}),
			wantCode: "NO_DIFFERENCES",
		},
		{
			name:     "auth failure",
			err:      errors.New("API request failed: 401 Unauthorized - bad token"),
			wantCode: "AUTH_FAILED",
		},
		{
			name:     "unknown error gets no code",
			err:      errors.New("something odd"),
			wantCode: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := FormatError(tt.err)
			if !strings.Contains(out, tt.err.Error()) {
				t.Errorf("output missing error message: %q", out)
			}
			if tt.wantCode == "" {
				if strings.Contains(out, "Error code:") {
					t.Errorf("expected no error code, got %q", out)
				}
				return
			}
			if !strings.Contains(out, "Error code: "+tt.wantCode) {
				t.Errorf("expected code %s in %q", tt.wantCode, out)
			}
			if !strings.Contains(out, "Suggestion:") {
				t.Errorf("expected a suggestion in %q", out)
			}
		})
	}
}

func TestFormatError_Nil(t *testing.T) {
	if got := FormatError(nil); got != "" {
		t.Errorf("expected empty string for nil error, got %q", got)
	}
}
