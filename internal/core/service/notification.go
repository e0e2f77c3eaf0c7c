package service

import (
	"time"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
)

// upcomingWindowDays is how far ahead a due date still raises an UPCOMING
// notification, inclusive of today.
const upcomingWindowDays = 2

// classifyNotifications scans the user's open tasks and flags each one
// whose due date is strictly before today (OVERDUE, Days elapsed) or within
// the next two days including today (UPCOMING, Days remaining). Tasks with
// no due date, a malformed date, or a farther due date produce nothing.
func classifyNotifications(tasks []domain.Task, now time.Time, userID string) []ports.Notification {
	today := truncateToDay(now)
	horizon := today.AddDate(0, 0, upcomingWindowDays)

	var out []ports.Notification
	for _, t := range tasks {
		if t.Status == domain.TaskDone || t.AssignedToUserID != userID || t.DueDate == "" {
			continue
		}
		due, err := time.Parse(domain.DateLayout, t.DueDate)
		if err != nil {
			continue
		}

		n := ports.Notification{
			TaskID:   t.ID,
			Title:    t.Title,
			ClientID: t.ClientID,
			DueDate:  t.DueDate,
		}
		switch {
		case due.Before(today):
			n.Kind = ports.NotificationOverdue
			n.Days = daysBetween(due, today)
		case !due.After(horizon):
			n.Kind = ports.NotificationUpcoming
			n.Days = daysBetween(today, due)
		default:
			continue
		}
		out = append(out, n)
	}
	return out
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
