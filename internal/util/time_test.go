package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{3725 * time.Second, "1h 2m 5s"},
		{45 * time.Second, "45s"},
		{0, "0s"},
		{90 * time.Second, "1m 30s"},
		{-3725 * time.Second, "1h 2m 5s"},
		{(86400 + 3661) * time.Second, "1d 1h 1m 1s"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.d); got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}
