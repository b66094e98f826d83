package util

import (
	"fmt"
	"strconv"
	"time"
)

// ParseDuration parses a trial-timing value. Stimulus windows are
// sub-second, so a bare number is taken as milliseconds; anything else
// must be a Go duration string.
func ParseDuration(input string) (time.Duration, error) {
	if ms, err := strconv.Atoi(input); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}

	duration, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q\n\nValid formats:\n"+
			"• bare milliseconds (e.g. '500')\n"+
			"• duration string (e.g. '500ms', '1.5s')", input)
	}
	return duration, nil
}
