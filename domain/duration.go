package domain

import (
	"regexp"
	"strconv"
)

var (
	minutesPattern = regexp.MustCompile(`(?i)(\d+)\s*min`)
	secondsPattern = regexp.MustCompile(`(?i)(\d+)\s*sec`)
)

// ParseRepDuration extracts a duration in seconds from a free-form rep
// specification ("3 min" -> 180, "30 sec" -> 30). Rep counts ("12", "max")
// and unparseable strings return ok=false: the step is manually timed.
//
// Only the first quantity-unit pair is honored, so interval specs like
// "30 sec sprint / 30 sec repos" parse as a single 30 second block.
func ParseRepDuration(reps string) (seconds int, ok bool) {
	if m := minutesPattern.FindStringSubmatch(reps); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return n * 60, true
	}
	if m := secondsPattern.FindStringSubmatch(reps); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
