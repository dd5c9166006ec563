package history

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const idSuffixLength = 7

// MakeID returns a new record id: creation time in unix milliseconds, a dash,
// and a short random suffix.
func MakeID() string {
	return makeID(time.Now())
}

func makeID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:idSuffixLength]
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}

// idTime recovers the creation time encoded in ids produced by MakeID.
func idTime(id string) (time.Time, bool) {
	prefix, _, found := strings.Cut(id, "-")
	if !found {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	t := time.UnixMilli(ms).UTC()
	// Anything before 2000 is not one of ours.
	if t.Year() < 2000 {
		return time.Time{}, false
	}
	return t, true
}
