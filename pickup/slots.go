// Package pickup computes the half-hour pickup slots offered at checkout.
// Pure clock arithmetic over the pantry's operating window, nothing is
// scheduled or persisted.
package pickup

import "time"

// Operating window. Slots land on :00 and :30; the last one starts half an
// hour before close.
const (
	OpenHour  = 9
	CloseHour = 17

	ASAP = "ASAP"
)

const slot = 30 * time.Minute

// Options returns what the checkout screen shows: ASAP plus the next two
// half-hour slots. Outside operating hours both slots roll to the next
// morning.
func Options(now time.Time) []string {
	first := NextSlot(now)
	second := NextSlot(first)
	return []string{ASAP, Label(first), Label(second)}
}

// NextSlot returns the earliest slot strictly after t. After the last slot
// of the day it rolls to the next day's opening.
func NextSlot(t time.Time) time.Time {
	candidate := roundUp(t)
	open := time.Date(t.Year(), t.Month(), t.Day(), OpenHour, 0, 0, 0, t.Location())
	lastSlot := time.Date(t.Year(), t.Month(), t.Day(), CloseHour, 0, 0, 0, t.Location()).Add(-slot)

	if candidate.Before(open) {
		return open
	}
	if candidate.After(lastSlot) {
		return open.AddDate(0, 0, 1)
	}
	return candidate
}

// ScheduleSlots returns every slot still ahead of t in today's window, for
// the "Schedule" picker. When today is done it returns the whole next-day
// window.
func ScheduleSlots(t time.Time) []string {
	first := NextSlot(t)
	end := time.Date(first.Year(), first.Month(), first.Day(), CloseHour, 0, 0, 0, first.Location()).Add(-slot)

	var labels []string
	for cur := first; !cur.After(end); cur = cur.Add(slot) {
		labels = append(labels, Label(cur))
	}
	return labels
}

// Label formats a slot the way the screens show it, e.g. "11:30 AM".
func Label(t time.Time) string {
	return t.Format("3:04 PM")
}

// roundUp moves t forward to the next :00 or :30 boundary, exclusive: a
// time already on a boundary advances a full half hour.
func roundUp(t time.Time) time.Time {
	truncated := t.Truncate(slot)
	return truncated.Add(slot)
}
