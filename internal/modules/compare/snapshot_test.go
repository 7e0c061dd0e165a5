package compare

import (
	"errors"
	"testing"
	"time"
)

func TestResolveSnapshot_JobToken(t *testing.T) {
	ref, err := ResolveSnapshot("Job_551", true)
	if err != nil {
		t.Fatalf("ResolveSnapshot failed: %v", err)
	}

	if ref.Kind != SnapshotJob {
		t.Errorf("expected kind %q, got %q", SnapshotJob, ref.Kind)
	}
	if ref.JobToken != "Job_551" {
		t.Errorf("expected job token 'Job_551', got %q", ref.JobToken)
	}
	if !ref.Instant.IsZero() {
		t.Errorf("job reference should not carry an instant, got %v", ref.Instant)
	}
}

func TestResolveSnapshot_JobToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
	}{
		{"empty string", ""},
		{"not a string", 42},
		{"time value", time.Now()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveSnapshot(tt.value, true)
			var invalid *InvalidSnapshotError
			if !errors.As(err, &invalid) {
				t.Errorf("expected InvalidSnapshotError, got %v", err)
			}
		})
	}
}

func TestResolveSnapshot_TimeDecomposition(t *testing.T) {
	tests := []struct {
		name        string
		instant     time.Time
		wantHour    int
		wantSession string
		wantMonth   string
	}{
		{"midnight", time.Date(2024, time.January, 1, 0, 5, 0, 0, time.UTC), 12, "AM", "January"},
		{"morning", time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC), 10, "AM", "March"},
		{"noon", time.Date(2024, time.June, 30, 12, 30, 0, 0, time.UTC), 12, "PM", "June"},
		{"afternoon", time.Date(2024, time.November, 7, 13, 45, 0, 0, time.UTC), 1, "PM", "November"},
		{"late evening", time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC), 11, "PM", "December"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ResolveSnapshot(tt.instant, false)
			if err != nil {
				t.Fatalf("ResolveSnapshot failed: %v", err)
			}

			if ref.Kind != SnapshotTime {
				t.Errorf("expected kind %q, got %q", SnapshotTime, ref.Kind)
			}
			if !ref.Instant.Equal(tt.instant) {
				t.Errorf("expected instant %v, got %v", tt.instant, ref.Instant)
			}
			p := ref.Picker
			if p.Hour != tt.wantHour || p.Session != tt.wantSession {
				t.Errorf("expected %d %s, got %d %s", tt.wantHour, tt.wantSession, p.Hour, p.Session)
			}
			if p.Month != tt.wantMonth {
				t.Errorf("expected month %q, got %q", tt.wantMonth, p.Month)
			}
			if p.Minute != tt.instant.Minute() || p.Day != tt.instant.Day() || p.Year != tt.instant.Year() {
				t.Errorf("date components mismatch: got %+v", p)
			}
		})
	}
}

func TestResolveSnapshot_PickerTime(t *testing.T) {
	picker := PickerTime{Year: 2024, Month: "January", Day: 1, Hour: 10, Minute: 0, Session: "AM"}

	ref, err := ResolveSnapshot(picker, false)
	if err != nil {
		t.Fatalf("ResolveSnapshot failed: %v", err)
	}

	if ref.Picker != picker {
		t.Errorf("picker should be used as-is, got %+v", ref.Picker)
	}
	want := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.Local)
	if !ref.Instant.Equal(want) {
		t.Errorf("expected derived instant %v, got %v", want, ref.Instant)
	}
}

func TestResolveSnapshot_PickerTime_TwelveHourEdges(t *testing.T) {
	tests := []struct {
		name     string
		picker   PickerTime
		wantHour int
	}{
		{"12 AM is hour zero", PickerTime{Year: 2024, Month: "May", Day: 2, Hour: 12, Session: "AM"}, 0},
		{"12 PM is noon", PickerTime{Year: 2024, Month: "May", Day: 2, Hour: 12, Session: "PM"}, 12},
		{"1 PM is thirteen", PickerTime{Year: 2024, Month: "May", Day: 2, Hour: 1, Session: "PM"}, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ResolveSnapshot(tt.picker, false)
			if err != nil {
				t.Fatalf("ResolveSnapshot failed: %v", err)
			}
			if ref.Instant.Hour() != tt.wantHour {
				t.Errorf("expected hour %d, got %d", tt.wantHour, ref.Instant.Hour())
			}
		})
	}
}

func TestResolveSnapshot_PickerTime_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		picker PickerTime
	}{
		{"bad month", PickerTime{Year: 2024, Month: "Janvier", Day: 1, Hour: 10, Session: "AM"}},
		{"bad session", PickerTime{Year: 2024, Month: "January", Day: 1, Hour: 10, Session: "XX"}},
		{"hour out of range", PickerTime{Year: 2024, Month: "January", Day: 1, Hour: 13, Session: "PM"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveSnapshot(tt.picker, false)
			var invalid *InvalidSnapshotError
			if !errors.As(err, &invalid) {
				t.Errorf("expected InvalidSnapshotError, got %v", err)
			}
		})
	}
}

func TestResolveSnapshot_UnsupportedValue(t *testing.T) {
	_, err := ResolveSnapshot(3.14, false)

	var invalid *InvalidSnapshotError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidSnapshotError, got %v", err)
	}
}
