package timezone

import (
	"testing"
	"time"
)

func TestLocation(t *testing.T) {
	cases := []struct {
		tz       string
		fallback []string
		want     string
	}{
		{"America/Phoenix", nil, "America/Phoenix"},
		{"Not/AZone", []string{"Europe/Madrid"}, "Europe/Madrid"},
		{"", []string{"", "bogus"}, "UTC"},
		{"", nil, "UTC"},
	}

	for _, tc := range cases {
		if got := Location(tc.tz, tc.fallback...); got.String() != tc.want {
			t.Errorf("Location(%q, %v) = %s, want %s", tc.tz, tc.fallback, got, tc.want)
		}
	}
}

func TestIsValid(t *testing.T) {
	if IsValid("") {
		t.Error("empty zone should be invalid")
	}
	if !IsValid(DefaultTimezone) {
		t.Error("default zone should be valid")
	}
	if _, err := time.LoadLocation("Mars/Olympus"); err == nil || IsValid("Mars/Olympus") {
		t.Error("unknown zone should be invalid")
	}
}
