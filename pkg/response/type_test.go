package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"finbook/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	d := response.Date(tm)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if got := string(b); got != `"2026-03-10"` {
		t.Errorf("Date = %s, want %q", got, "2026-03-10")
	}
}

func TestDateMarshalJSON_NonUTCInput(t *testing.T) {
	// A zoned value renders the same calendar day in UTC, never the
	// runner's local day.
	loc := time.FixedZone("UTC+9", 9*3600)
	d := response.Date(time.Date(2026, 3, 11, 2, 0, 0, 0, loc)) // 2026-03-10T17:00Z

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if got := string(b); got != `"2026-03-10"` {
		t.Errorf("Date = %s, want %q", got, "2026-03-10")
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2026, 3, 10, 15, 30, 45, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if got := string(b); got != `"2026-03-10 15:30:45"` {
		t.Errorf("DateTime = %s, want %q", got, "2026-03-10 15:30:45")
	}
}
