package listing

import (
	"strings"
	"time"
	"unicode"
)

// Predicate reports whether an item passes one filter stage.
type Predicate[T any] func(T) bool

// Apply runs the predicates in sequence over items (AND semantics) and
// returns the matching subset in original relative order. Apply never
// mutates its input and returns a non-nil slice.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		ok := true
		for _, pred := range preds {
			if pred == nil {
				continue
			}
			if !pred(item) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, item)
		}
	}
	return out
}

// NormalizeQuery lowercases s and strips every non-alphanumeric rune.
// This makes searches tolerant of punctuation and formatting differences
// in phone numbers, emails, and names.
func NormalizeQuery(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// TextMatch reports whether any of the fields contains the query after both
// sides are normalized. An empty (or all-punctuation) query matches everything.
func TextMatch(query string, fields ...string) bool {
	q := NormalizeQuery(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(NormalizeQuery(f), q) {
			return true
		}
	}
	return false
}

// CategoricalMatch reports whether value matches the selected filter value,
// case-insensitively. An empty filter or the sentinel "all" passes everything.
func CategoricalMatch(filter, value string) bool {
	f := strings.TrimSpace(filter)
	if f == "" || strings.EqualFold(f, "all") {
		return true
	}
	return strings.EqualFold(f, strings.TrimSpace(value))
}

// PaymentStatus is the resolved payment state of an order.
type PaymentStatus string

const (
	PaymentFull    PaymentStatus = "FULL"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentNone    PaymentStatus = "NONE"
)

// ResolvePayments collapses a list of raw payment statuses into a single
// PaymentStatus: FULL if any element is FULL (case-insensitive), PARTIAL if
// the list is non-empty, NONE otherwise. A record with a single payment
// object is represented as a one-element list.
func ResolvePayments(statuses []string) PaymentStatus {
	if len(statuses) == 0 {
		return PaymentNone
	}
	for _, s := range statuses {
		if strings.EqualFold(strings.TrimSpace(s), string(PaymentFull)) {
			return PaymentFull
		}
	}
	return PaymentPartial
}

// DateRangeMode selects how a DateRange is derived from the current time.
type DateRangeMode string

const (
	AllTime     DateRangeMode = "all_time"
	Today       DateRangeMode = "today"
	Yesterday   DateRangeMode = "yesterday"
	ThisWeek    DateRangeMode = "this_week"
	ThisMonth   DateRangeMode = "this_month"
	CustomRange DateRangeMode = "custom"
)

// ParseDateRangeMode maps a raw filter value to a DateRangeMode.
// Unknown values fall back to AllTime so an unrecognized filter never
// empties the list.
func ParseDateRangeMode(s string) DateRangeMode {
	switch DateRangeMode(strings.ToLower(strings.TrimSpace(s))) {
	case Today, Yesterday, ThisWeek, ThisMonth, CustomRange:
		return DateRangeMode(strings.ToLower(strings.TrimSpace(s)))
	default:
		return AllTime
	}
}

// DateRange is a date filter: a mode plus explicit bounds for CustomRange.
type DateRange struct {
	Mode  DateRangeMode
	Start *time.Time
	End   *time.Time
}

// IsActive reports whether the range filters anything at all.
func (r DateRange) IsActive() bool {
	switch r.Mode {
	case "", AllTime:
		return false
	case CustomRange:
		// A custom range with either bound missing is a no-op filter.
		return r.Start != nil && r.End != nil
	default:
		return true
	}
}

// Contains reports whether t falls inside the range as evaluated at now.
// Record dates are truncated to local midnight before comparison. Weeks run
// Sunday through Saturday. Custom ranges are inclusive of
// [start 00:00:00, end 23:59:59].
func (r DateRange) Contains(t, now time.Time) bool {
	day := truncateToDay(t)
	today := truncateToDay(now)

	switch r.Mode {
	case Today:
		return day.Equal(today)
	case Yesterday:
		return day.Equal(today.AddDate(0, 0, -1))
	case ThisWeek:
		weekStart := today.AddDate(0, 0, -int(today.Weekday()))
		weekEnd := weekStart.AddDate(0, 0, 6)
		return !day.Before(weekStart) && !day.After(weekEnd)
	case ThisMonth:
		return day.Year() == today.Year() && day.Month() == today.Month()
	case CustomRange:
		if r.Start == nil || r.End == nil {
			return true
		}
		start := truncateToDay(*r.Start)
		end := truncateToDay(*r.End).Add(24*time.Hour - time.Second)
		return !t.Before(start) && !t.After(end)
	default:
		return true
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
