package util

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateID returns a random token for records the backend omitted an ID
// for.
func GenerateID() string {
	return uuid.NewString()
}

// FormatTrackDuration formats whole seconds as "HH:MM:SS", dropping the hour
// segment below one hour.
func FormatTrackDuration(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}

	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
