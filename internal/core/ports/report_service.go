package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// MonthSelection picks the reporting window. Month is a zero-based index
// (0 = January, 11 = December), matching the contract the console has
// always exposed: a date string belongs to (Year, Month) iff its parsed
// year equals Year and its parsed month minus one equals Month.
type MonthSelection struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// CommissionLine is one row of a user's commission breakdown: the amount
// earned from a single active client in scope.
type CommissionLine struct {
	ClientID   string          `json:"client_id"`
	ClientName string          `json:"client_name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Dashboard aggregates the month's metrics for one caller.
//
// PendingCount counts every non-DONE task due in the month, so tasks that
// are IN_PROGRESS contribute to both PendingCount and InProgressCount.
// That overlap is the product's documented behavior.
type Dashboard struct {
	Month           MonthSelection   `json:"month"`
	ActiveClients   int              `json:"active_clients"`
	PendingCount    int              `json:"pending_count"`
	InProgressCount int              `json:"in_progress_count"`
	DoneCount       int              `json:"done_count"`
	// Revenue is present for admin callers only: the sum of monthly fees
	// over currently-active clients.
	Revenue *decimal.Decimal `json:"revenue,omitempty"`
	// CommissionTotal and CommissionBreakdown are present for non-admin
	// callers only, ordered by the client list's iteration order.
	CommissionTotal     *decimal.Decimal `json:"commission_total,omitempty"`
	CommissionBreakdown []CommissionLine `json:"commission_breakdown,omitempty"`
}

// TeamPerformanceRow summarizes one non-admin user for the admin view. It
// is computed over all active clients and the global task list, ignoring
// any caller scope.
type TeamPerformanceRow struct {
	UserID     string          `json:"user_id"`
	Name       string          `json:"name"`
	Commission decimal.Decimal `json:"commission"`
	DoneCount  int             `json:"done_count"`
	OpenCount  int             `json:"open_count"`
}

// NotificationKind classifies a due-date notification.
type NotificationKind string

const (
	NotificationOverdue  NotificationKind = "OVERDUE"
	NotificationUpcoming NotificationKind = "UPCOMING"
)

// Notification flags an open task of the signed-in user whose due date is
// past (Days elapsed) or within the next two days (Days remaining).
type Notification struct {
	TaskID   string           `json:"task_id"`
	Title    string           `json:"title"`
	ClientID string           `json:"client_id"`
	DueDate  string           `json:"due_date"`
	Kind     NotificationKind `json:"kind"`
	Days     int              `json:"days"`
}

// ReportService computes the role-scoped reporting views. A nil month
// selects the current month; injecting the clock keeps the module
// deterministic under test.
type ReportService interface {
	Dashboard(ctx context.Context, caller Caller, month *MonthSelection) (*Dashboard, error)
	// TeamPerformance is admin-only and returns one row per non-admin user.
	TeamPerformance(ctx context.Context, caller Caller, month *MonthSelection) ([]TeamPerformanceRow, error)
	Notifications(ctx context.Context, caller Caller) ([]Notification, error)
}
