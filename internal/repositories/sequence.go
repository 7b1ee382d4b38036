package repositories

import (
	"strconv"
	"time"
)

// Clock returns the timestamp stamped on new records.
type Clock func() time.Time

// UTCMillis is the default Clock: UTC, truncated to milliseconds so records
// round-trip through ISO-8601 without drift.
func UTCMillis() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// sequence hands out monotonically increasing decimal IDs. It is not
// goroutine-safe; callers hold their store's write lock.
type sequence struct {
	last uint64
}

func (s *sequence) next() string {
	s.last++
	return strconv.FormatUint(s.last, 10)
}

// observe moves the sequence past an explicitly supplied numeric ID so later
// generated IDs never collide with it.
func (s *sequence) observe(id string) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err == nil && n > s.last {
		s.last = n
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
