package util

import (
	"fmt"
	"time"
)

//DateTimeFormat unified in the program.
const DateTimeFormat = "2006-01-02 15:04:05"

//StampFormat is the day-first timestamp layout used in run summaries.
const StampFormat = "02/01/2006 - 15:04:05"

//Now returns date time in the format of "2006-01-02 15:04:05"
func Now() string {
	return time.Now().Format(DateTimeFormat)
}

//FormatDuration renders d as a compact human-readable string such as
//"1h 2m 5s" or "45s". Days are included when nonzero. Negative durations
//are normalized to their absolute value first.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	total := int64(d.Seconds())
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
