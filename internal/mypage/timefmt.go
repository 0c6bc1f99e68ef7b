// Package mypage shapes order, review, stamp and coupon records into the
// grouped views shown on the account page.
package mypage

import "time"

var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime accepts the timestamp shapes the backend emits. Values without a
// zone are read in loc.
func ParseTime(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// stamp holds a parsed timestamp; ok is false when the source was missing or
// unreadable.
type stamp struct {
	t  time.Time
	ok bool
}

func parseStamp(s string, loc *time.Location) stamp {
	t, ok := ParseTime(s, loc)
	return stamp{t: t, ok: ok}
}

func (s stamp) date() string {
	if !s.ok {
		return ""
	}
	return s.t.Format(dateLayout)
}

func (s stamp) clock() string {
	if !s.ok {
		return ""
	}
	return s.t.Format(timeLayout)
}

func (s stamp) hour() string {
	if !s.ok {
		return ""
	}
	return s.t.Format("15") + ":00"
}

// before orders undated values after dated ones.
func (s stamp) before(o stamp) bool {
	switch {
	case s.ok && o.ok:
		return s.t.Before(o.t)
	default:
		return s.ok && !o.ok
	}
}

// dateKeysNewestFirst sorts "2006-01-02" keys descending with "" last.
func dateKeysNewestFirst(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	case a > b:
		return -1
	default:
		return 1
	}
}
