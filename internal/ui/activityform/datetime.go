package activityform

import (
	"fmt"
	"strings"
	"time"
)

// deadlineLayout is the wall-clock format users type into the form.
const deadlineLayout = "2006-01-02 15:04"

// ParseDeadline interprets the input as local wall-clock time and
// returns the corresponding UTC instant, which is what the backend
// stores and compares against.
func ParseDeadline(s string) (time.Time, error) {
	t, err := time.ParseInLocation(deadlineLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid deadline, use YYYY-MM-DD HH:MM")
	}
	return t.UTC(), nil
}

// FormatDeadline renders a stored UTC instant back as local wall-clock
// text for editing.
func FormatDeadline(t time.Time) string {
	return t.Local().Format(deadlineLayout)
}

func validateDeadline(s string) error {
	_, err := ParseDeadline(s)
	return err
}
