package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestValidReqID(t *testing.T) {
	valid := []string{
		"0f8fad5b-d9cb-469f-a165-70867728950e",
		"a3f2c1d4e5b6978812345678901234ab",
	}
	for _, id := range valid {
		if !validReqID(id) {
			t.Errorf("validReqID(%q) = false, want true", id)
		}
	}

	invalid := []string{
		"",
		"not-a-request-id",
		"0f8fad5b-d9cb-469f-a165",
		"a3f2c1d4e5b69788",
	}
	for _, id := range invalid {
		if validReqID(id) {
			t.Errorf("validReqID(%q) = true, want false", id)
		}
	}
}

func TestRequestIDHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if _, err := requestIDHeader(req); err == nil {
		t.Error("missing header accepted")
	}

	req.Header.Set("Ax-Request-Id", "garbage")
	if _, err := requestIDHeader(req); err == nil {
		t.Error("malformed header accepted")
	}

	req.Header.Set("Ax-Request-Id", "  0f8fad5b-d9cb-469f-a165-70867728950e  ")
	id, err := requestIDHeader(req)
	if err != nil {
		t.Fatalf("requestIDHeader: %v", err)
	}
	if id != "0f8fad5b-d9cb-469f-a165-70867728950e" {
		t.Fatalf("id = %q", id)
	}
}

func TestParseRequestAt(t *testing.T) {
	// epoch seconds
	got, err := parseRequestAt("1736123456")
	if err != nil {
		t.Fatalf("epoch seconds: %v", err)
	}
	if got.Unix() != 1736123456 {
		t.Fatalf("epoch seconds = %v", got)
	}

	// epoch milliseconds
	got, err = parseRequestAt("1736123456789")
	if err != nil {
		t.Fatalf("epoch ms: %v", err)
	}
	if got.UnixMilli() != 1736123456789 {
		t.Fatalf("epoch ms = %v", got)
	}

	// RFC3339 with zone
	got, err = parseRequestAt("2025-09-05T10:00:00+07:00")
	if err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	want := time.Date(2025, 9, 5, 3, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("rfc3339 = %v, want %v", got, want)
	}

	// rejected forms
	for _, raw := range []string{"", "2025-09-05 10:00:00", "yesterday"} {
		if _, err := parseRequestAt(raw); err == nil {
			t.Errorf("parseRequestAt(%q) accepted", raw)
		}
	}
}

func TestBuildKey(t *testing.T) {
	key := buildKey("POST", "/funds/", "7", "0f8fad5b-d9cb-469f-a165-70867728950e")
	want := "idemp:ax:post:/funds/:7:0f8fad5b-d9cb-469f-a165-70867728950e"
	if key != want {
		t.Fatalf("key = %q, want %q", key, want)
	}
}
