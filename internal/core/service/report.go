package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
)

// The aggregation core is a set of pure functions over the full task and
// client lists plus the caller and a month selection. No function here
// touches repositories or the wall clock.

var oneHundred = decimal.NewFromInt(100)

// dateInMonth reports whether a YYYY-MM-DD string falls in the selected
// month. Empty or malformed dates belong to no month.
func dateInMonth(date string, sel ports.MonthSelection) bool {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return false
	}
	return t.Year() == sel.Year && int(t.Month())-1 == sel.Month
}

// scopeClients restricts the client list to what the caller may see:
// everything for admins, assigned clients otherwise.
func scopeClients(clients []domain.Client, caller ports.Caller) []domain.Client {
	if caller.Role == domain.RoleAdmin {
		return clients
	}
	scoped := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		if c.IsAssigned(caller.UserID) {
			scoped = append(scoped, c)
		}
	}
	return scoped
}

// scopeTasks restricts the task list to what the caller may see:
// everything for admins, own assignments otherwise.
func scopeTasks(tasks []domain.Task, caller ports.Caller) []domain.Task {
	if caller.Role == domain.RoleAdmin {
		return tasks
	}
	scoped := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.AssignedToUserID == caller.UserID {
			scoped = append(scoped, t)
		}
	}
	return scoped
}

// activeClients filters to clients whose status is ACTIVE right now.
// Status is always evaluated against current data: a client deactivated or
// deleted today disappears from every month's view, past ones included.
func activeClients(clients []domain.Client) []domain.Client {
	active := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		if c.Status == domain.ClientActive {
			active = append(active, c)
		}
	}
	return active
}

// commissionAmount computes fee × percentage ÷ 100 for the user's
// commission entry on the client. ok is false when no entry exists.
// Percentages are passed through unclamped; values above 100 simply
// produce a commission exceeding the fee.
func commissionAmount(c domain.Client, userID string) (amount, pct decimal.Decimal, ok bool) {
	cm, ok := c.CommissionFor(userID)
	if !ok {
		return decimal.Zero, decimal.Zero, false
	}
	return c.MonthlyFee.Mul(cm.Percentage).Div(oneHundred), cm.Percentage, true
}

// buildDashboard computes the month's metrics for one caller.
func buildDashboard(tasks []domain.Task, clients []domain.Client, caller ports.Caller, sel ports.MonthSelection) *ports.Dashboard {
	myTasks := scopeTasks(tasks, caller)
	active := activeClients(scopeClients(clients, caller))

	d := &ports.Dashboard{
		Month:         sel,
		ActiveClients: len(active),
	}

	for _, t := range myTasks {
		if t.Status != domain.TaskDone && dateInMonth(t.DueDate, sel) {
			d.PendingCount++
			if t.Status == domain.TaskInProgress {
				d.InProgressCount++
			}
		}
		if t.Status == domain.TaskDone && dateInMonth(t.CompletedAt, sel) {
			d.DoneCount++
		}
	}

	if caller.Role == domain.RoleAdmin {
		revenue := decimal.Zero
		for _, c := range active {
			revenue = revenue.Add(c.MonthlyFee)
		}
		d.Revenue = &revenue
		return d
	}

	total := decimal.Zero
	breakdown := make([]ports.CommissionLine, 0, len(active))
	for _, c := range active {
		amount, pct, ok := commissionAmount(c, caller.UserID)
		if !ok {
			continue
		}
		total = total.Add(amount)
		breakdown = append(breakdown, ports.CommissionLine{
			ClientID:   c.ID,
			ClientName: c.Name,
			Amount:     amount,
			Percentage: pct,
		})
	}
	d.CommissionTotal = &total
	d.CommissionBreakdown = breakdown
	return d
}

// buildTeamPerformance produces one row per non-admin user. It ignores any
// caller scope: commissions run over all currently-active clients and the
// counts over the global task list.
func buildTeamPerformance(users []domain.User, clients []domain.Client, tasks []domain.Task, sel ports.MonthSelection) []ports.TeamPerformanceRow {
	active := activeClients(clients)

	rows := make([]ports.TeamPerformanceRow, 0, len(users))
	for _, u := range users {
		if u.Role == domain.RoleAdmin {
			continue
		}
		row := ports.TeamPerformanceRow{
			UserID:     u.ID,
			Name:       u.Name,
			Commission: decimal.Zero,
		}
		for _, c := range active {
			if amount, _, ok := commissionAmount(c, u.ID); ok {
				row.Commission = row.Commission.Add(amount)
			}
		}
		for _, t := range tasks {
			if t.AssignedToUserID != u.ID {
				continue
			}
			switch {
			case t.Status == domain.TaskDone && dateInMonth(t.CompletedAt, sel):
				row.DoneCount++
			case t.Status != domain.TaskDone && dateInMonth(t.DueDate, sel):
				row.OpenCount++
			}
		}
		rows = append(rows, row)
	}
	return rows
}
