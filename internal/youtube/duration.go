package youtube

import (
	"regexp"
	"strconv"
)

// durationRe matches the ISO 8601 duration subset the Data API emits for
// video lengths: P[nD]T[nH][nM][nS], every component optional.
var durationRe = regexp.MustCompile(`^P(?:(\d+)D)?T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDuration converts an ISO 8601 duration string into total seconds.
// A string that does not match the grammar yields 0 rather than an error,
// so unparsable durations classify as shorts.
func ParseDuration(s string) int {
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	days := atoiOrZero(m[1])
	hours := atoiOrZero(m[2])
	minutes := atoiOrZero(m[3])
	seconds := atoiOrZero(m[4])

	return days*86400 + hours*3600 + minutes*60 + seconds
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
