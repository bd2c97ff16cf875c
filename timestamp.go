package snowflake

import (
	"fmt"
	"time"
)

// TimestampField returns a 64 bit value containing only the timestamp
// field for t, positioned at bit 22 with all other bits zero. It is a
// pure function of t; the generator supplies its clock reading and tests
// supply fixed instants.
//
// Errors are fatal precondition failures and are never retried here:
//
//   - ErrEpochOrdering if t precedes the custom epoch. This implies a
//     broken or maliciously skewed system clock and there is no sensible
//     fallback value.
//   - ErrTimestampOverflow if the elapsed milliseconds exceed the 41 bit
//     field. Unreachable before 2088, but checked rather than assumed.
func TimestampField(t time.Time) (uint64, error) {
	ms := t.UnixMilli()
	if ms < EpochMS {
		return 0, fmt.Errorf("%v: %w", t.UTC(), ErrEpochOrdering)
	}

	elapsed := uint64(ms - EpochMS)
	if elapsed > MaxMillis {
		return 0, fmt.Errorf("%d milliseconds: %w", elapsed, ErrTimestampOverflow)
	}

	// The mask is redundant after the range check above, it defensively
	// pins the field width regardless.
	return (elapsed & MaxMillis) << TimeShift, nil
}
