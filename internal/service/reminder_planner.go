package service

import (
	"sort"
	"time"

	"sehat-clinic/internal/domain/entity"
	"sehat-clinic/pkg/validator"
)

// WallClock drops the zone of t and keeps its wall-clock reading, tagged UTC.
// Timestamp columns carry no zone, so every value written to or compared
// against them goes through here.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// NextOccurrence returns the first instant strictly after now whose time of day is clock (HH:MM).
func NextOccurrence(now time.Time, clock string) (time.Time, bool) {
	if !validator.IsClock(clock) {
		return time.Time{}, false
	}
	tod, _ := time.Parse(validator.ClockLayout, clock)

	now = WallClock(now)
	next := time.Date(now.Year(), now.Month(), now.Day(), tod.Hour(), tod.Minute(), 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next, true
}

// PlanReminders builds one pending reminder per distinct valid time, ordered by when it fires.
func PlanReminders(prescriptionID int, times []string, now time.Time) []entity.Reminder {
	seen := make(map[string]bool, len(times))
	reminders := make([]entity.Reminder, 0, len(times))
	for _, clock := range times {
		if seen[clock] {
			continue
		}
		seen[clock] = true

		at, ok := NextOccurrence(now, clock)
		if !ok {
			continue
		}
		reminders = append(reminders, entity.Reminder{
			PrescriptionID: prescriptionID,
			ReminderTime:   at,
			Status:         entity.ReminderStatusPending,
		})
	}

	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].ReminderTime.Before(reminders[j].ReminderTime)
	})
	return reminders
}

// RearmReminders plans the following daily occurrence of each fired reminder,
// the first one strictly after now.
func RearmReminders(fired []entity.ReminderDetail, now time.Time) []entity.Reminder {
	now = WallClock(now)
	reminders := make([]entity.Reminder, 0, len(fired))
	for _, r := range fired {
		next := r.ReminderTime.AddDate(0, 0, 1)
		for !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
		reminders = append(reminders, entity.Reminder{
			PrescriptionID: r.PrescriptionID,
			ReminderTime:   next,
			Status:         entity.ReminderStatusPending,
		})
	}
	return reminders
}
