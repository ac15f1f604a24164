package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"library-loans/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	d := response.Date(tm)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}

	if string(b) != `"2024-05-01"` {
		t.Errorf("expected \"2024-05-01\", got %s", b)
	}
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d response.Date
	if err := json.Unmarshal([]byte(`"2024-05-01"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := time.Time(d); got.Year() != 2024 || got.Month() != time.May || got.Day() != 1 {
		t.Errorf("unexpected date %v", got)
	}

	if err := json.Unmarshal([]byte(`"01/05/2024"`), &d); err == nil {
		t.Error("expected error for wrong layout")
	}
}

func TestNewDatePtr(t *testing.T) {
	if response.NewDatePtr(nil) != nil {
		t.Error("expected nil for nil time")
	}

	b, _ := json.Marshal(struct {
		ReturnDate *response.Date `json:"return_date"`
	}{})
	if string(b) != `{"return_date":null}` {
		t.Errorf("expected null return_date, got %s", b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) < 15 {
		t.Errorf("marshaled string too short: %s", str)
	}
}
