// Package deadline implements the per-venue order cutoff policy.
package deadline

import (
	"regexp"
	"strings"
	"time"
)

var hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Valid reports whether s is a well-formed 24-hour "HH:MM" deadline.
func Valid(s string) bool {
	return hhmmRe.MatchString(strings.TrimSpace(s))
}

// Open reports whether a venue still accepts orders at the given moment.
// An inactive venue is always closed. An empty deadline means no cutoff.
// Otherwise now is formatted as zero-padded "HH:MM" and compared to the
// deadline lexicographically, which within a single day is equivalent to
// time-of-day comparison. At exactly the deadline minute the venue is
// closed, which lines up with the report cycle firing at that minute.
//
// The comparison is deliberately same-day literal: a deadline of "00:05"
// means five minutes past midnight, with no rollover handling. now must
// already be in the operating timezone.
func Open(active bool, reportDeadline string, now time.Time) bool {
	if !active {
		return false
	}
	cutoff := strings.TrimSpace(reportDeadline)
	if cutoff == "" {
		return true
	}
	return now.Format("15:04") < cutoff
}

// Due reports whether the cutoff minute has been reached. A blank or
// malformed deadline never comes due. Unlike Open it ignores the active
// flag: an order already belongs to the report once the minute passes,
// whatever the venue's state. now must already be in the operating
// timezone.
func Due(reportDeadline string, now time.Time) bool {
	cutoff := strings.TrimSpace(reportDeadline)
	if !hhmmRe.MatchString(cutoff) {
		return false
	}
	return now.Format("15:04") >= cutoff
}
