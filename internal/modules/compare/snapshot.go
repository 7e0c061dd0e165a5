package compare

import (
	"fmt"
	"strings"
	"time"
)

// ResolveSnapshot normalizes one side of a comparison into a
// SnapshotReference.
//
// When isJobID is true, value must be a non-empty job token string. The
// token is matched by the backend against its job list by contains match,
// so a partial identifier is fine.
//
// Otherwise value is either a PickerTime already in the picker's
// vocabulary, or a time.Time to be decomposed into one: 12-hour clock with
// an explicit AM/PM session (hour 0 becomes 12 AM, hour 12 becomes 12 PM)
// and the full English month name. A time-addressed reference carries both
// the structured form and the parsed instant, since the backend accepts
// either.
func ResolveSnapshot(value interface{}, isJobID bool) (SnapshotReference, error) {
	if isJobID {
		token, ok := value.(string)
		if !ok {
			return SnapshotReference{}, &InvalidSnapshotError{Value: value, Reason: "job reference must be a string"}
		}
		if token == "" {
			return SnapshotReference{}, &InvalidSnapshotError{Value: value, Reason: "job token is empty"}
		}
		return SnapshotReference{Kind: SnapshotJob, JobToken: token}, nil
	}

	switch v := value.(type) {
	case PickerTime:
		instant, err := pickerToInstant(v)
		if err != nil {
			return SnapshotReference{}, &InvalidSnapshotError{Value: value, Reason: err.Error()}
		}
		return SnapshotReference{Kind: SnapshotTime, Picker: v, Instant: instant}, nil

	case time.Time:
		return SnapshotReference{Kind: SnapshotTime, Picker: decompose(v), Instant: v}, nil

	default:
		return SnapshotReference{}, &InvalidSnapshotError{Value: value, Reason: "expected a time, a picker time or a job token"}
	}
}

// decompose converts an instant into the picker's 12-hour vocabulary.
func decompose(t time.Time) PickerTime {
	hour := t.Hour()
	session := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		session = "PM"
	case hour > 12:
		hour -= 12
		session = "PM"
	}

	return PickerTime{
		Year:    t.Year(),
		Month:   t.Month().String(),
		Day:     t.Day(),
		Hour:    hour,
		Minute:  t.Minute(),
		Session: session,
	}
}

// pickerToInstant derives the parsed instant for a caller-supplied picker
// time. Picker times carry no offset, so the local zone is assumed.
func pickerToInstant(p PickerTime) (time.Time, error) {
	month, err := parseMonth(p.Month)
	if err != nil {
		return time.Time{}, err
	}

	hour := p.Hour
	switch strings.ToUpper(p.Session) {
	case "AM":
		if hour < 1 || hour > 12 {
			return time.Time{}, fmt.Errorf("hour %d is outside the 12-hour clock", p.Hour)
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return time.Time{}, fmt.Errorf("hour %d is outside the 12-hour clock", p.Hour)
		}
		if hour != 12 {
			hour += 12
		}
	default:
		return time.Time{}, fmt.Errorf("session %q is not AM or PM", p.Session)
	}

	return time.Date(p.Year, month, p.Day, hour, p.Minute, 0, 0, time.Local), nil
}

func parseMonth(name string) (time.Month, error) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown month name %q", name)
}
