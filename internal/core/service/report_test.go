package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestDateInMonth(t *testing.T) {
	tests := []struct {
		date  string
		year  int
		month int
		want  bool
	}{
		{"2025-03-05", 2025, 2, true},   // March is index 2
		{"2025-03-05", 2025, 3, false},  // April
		{"2025-03-05", 2024, 2, false},  // wrong year
		{"2025-12-31", 2025, 11, true},  // December is index 11
		{"2025-01-01", 2025, 0, true},   // January is index 0
		{"", 2025, 2, false},            // no date, no month
		{"05/03/2025", 2025, 2, false},  // malformed
		{"2025-03-41", 2025, 2, false},  // impossible day
	}
	for _, tc := range tests {
		got := dateInMonth(tc.date, ports.MonthSelection{Year: tc.year, Month: tc.month})
		if got != tc.want {
			t.Errorf("dateInMonth(%q, %d/%d) = %v, want %v", tc.date, tc.year, tc.month, got, tc.want)
		}
	}
}

func TestBuildDashboard_AdminRevenue(t *testing.T) {
	clients := []domain.Client{
		{ID: "a", Name: "A", Status: domain.ClientActive, MonthlyFee: dec("1000"),
			Commissions: []domain.Commission{{UserID: "u1", Percentage: dec("10")}}},
		{ID: "b", Name: "B", Status: domain.ClientInactive, MonthlyFee: dec("500"),
			Commissions: []domain.Commission{{UserID: "u1", Percentage: dec("50")}}},
	}
	caller := ports.Caller{UserID: "admin", Role: domain.RoleAdmin}

	d := buildDashboard(nil, clients, caller, ports.MonthSelection{Year: 2025, Month: 2})

	if d.ActiveClients != 1 {
		t.Fatalf("active clients = %d, want 1", d.ActiveClients)
	}
	if d.Revenue == nil || !d.Revenue.Equal(dec("1000")) {
		t.Fatalf("revenue = %v, want 1000", d.Revenue)
	}
	if d.CommissionTotal != nil || d.CommissionBreakdown != nil {
		t.Fatalf("admin dashboard must not carry commission fields")
	}
}

func TestBuildDashboard_UserCommission(t *testing.T) {
	clients := []domain.Client{
		{ID: "a", Name: "A", Status: domain.ClientActive, MonthlyFee: dec("1000"),
			AssignedUserIDs: []string{"u1"},
			Commissions:     []domain.Commission{{UserID: "u1", Percentage: dec("10")}}},
		// Inactive: excluded even though u1 has a 50% entry.
		{ID: "b", Name: "B", Status: domain.ClientInactive, MonthlyFee: dec("500"),
			AssignedUserIDs: []string{"u1"},
			Commissions:     []domain.Commission{{UserID: "u1", Percentage: dec("50")}}},
	}
	caller := ports.Caller{UserID: "u1", Role: domain.RoleUser}

	d := buildDashboard(nil, clients, caller, ports.MonthSelection{Year: 2025, Month: 2})

	if d.Revenue != nil {
		t.Fatalf("non-admin dashboard must not carry revenue")
	}
	if d.CommissionTotal == nil || !d.CommissionTotal.Equal(dec("100")) {
		t.Fatalf("commission total = %v, want 100", d.CommissionTotal)
	}
	if len(d.CommissionBreakdown) != 1 {
		t.Fatalf("breakdown length = %d, want 1", len(d.CommissionBreakdown))
	}
	line := d.CommissionBreakdown[0]
	if line.ClientID != "a" || line.ClientName != "A" {
		t.Fatalf("unexpected breakdown line: %+v", line)
	}
	if !line.Amount.Equal(dec("100")) || !line.Percentage.Equal(dec("10")) {
		t.Fatalf("breakdown amounts wrong: %+v", line)
	}
}

func TestBuildDashboard_NoCommissionEntryMeansZero(t *testing.T) {
	clients := []domain.Client{
		{ID: "a", Name: "A", Status: domain.ClientActive, MonthlyFee: dec("1000"),
			AssignedUserIDs: []string{"u1"}},
	}
	caller := ports.Caller{UserID: "u1", Role: domain.RoleUser}

	d := buildDashboard(nil, clients, caller, ports.MonthSelection{Year: 2025, Month: 2})

	if d.CommissionTotal == nil || !d.CommissionTotal.IsZero() {
		t.Fatalf("commission total = %v, want 0", d.CommissionTotal)
	}
	if len(d.CommissionBreakdown) != 0 {
		t.Fatalf("breakdown must be empty without an entry, got %+v", d.CommissionBreakdown)
	}
}

func TestBuildDashboard_PercentageAboveHundredPassesThrough(t *testing.T) {
	clients := []domain.Client{
		{ID: "a", Name: "A", Status: domain.ClientActive, MonthlyFee: dec("200"),
			AssignedUserIDs: []string{"u1"},
			Commissions:     []domain.Commission{{UserID: "u1", Percentage: dec("150")}}},
	}
	caller := ports.Caller{UserID: "u1", Role: domain.RoleUser}

	d := buildDashboard(nil, clients, caller, ports.MonthSelection{Year: 2025, Month: 0})

	if d.CommissionTotal == nil || !d.CommissionTotal.Equal(dec("300")) {
		t.Fatalf("commission total = %v, want 300", d.CommissionTotal)
	}
}

func TestBuildDashboard_ExactFractions(t *testing.T) {
	// 333.33 × 12.5% = 41.66625, exactly.
	clients := []domain.Client{
		{ID: "a", Name: "A", Status: domain.ClientActive, MonthlyFee: dec("333.33"),
			AssignedUserIDs: []string{"u1"},
			Commissions:     []domain.Commission{{UserID: "u1", Percentage: dec("12.5")}}},
	}
	caller := ports.Caller{UserID: "u1", Role: domain.RoleUser}

	d := buildDashboard(nil, clients, caller, ports.MonthSelection{Year: 2025, Month: 0})

	if d.CommissionTotal == nil || !d.CommissionTotal.Equal(dec("41.66625")) {
		t.Fatalf("commission total = %v, want 41.66625", d.CommissionTotal)
	}
}

func TestBuildDashboard_TaskCountsAndOverlap(t *testing.T) {
	sel := ports.MonthSelection{Year: 2025, Month: 2} // March 2025
	tasks := []domain.Task{
		{ID: "t1", Status: domain.TaskPending, AssignedToUserID: "u1", DueDate: "2025-03-10"},
		{ID: "t2", Status: domain.TaskInProgress, AssignedToUserID: "u1", DueDate: "2025-03-12"},
		{ID: "t3", Status: domain.TaskInProgress, AssignedToUserID: "u1", DueDate: "2025-04-01"}, // next month
		{ID: "t4", Status: domain.TaskDone, AssignedToUserID: "u1", DueDate: "2025-03-01", CompletedAt: "2025-03-03"},
		{ID: "t5", Status: domain.TaskDone, AssignedToUserID: "u1", DueDate: "2025-03-01", CompletedAt: "2025-04-02"}, // completed next month
		{ID: "t6", Status: domain.TaskPending, AssignedToUserID: "u2", DueDate: "2025-03-10"},                        // someone else's
	}
	caller := ports.Caller{UserID: "u1", Role: domain.RoleUser}

	d := buildDashboard(tasks, nil, caller, sel)

	// t2 counts as both pending and in-progress.
	if d.PendingCount != 2 {
		t.Errorf("pending = %d, want 2", d.PendingCount)
	}
	if d.InProgressCount != 1 {
		t.Errorf("in progress = %d, want 1", d.InProgressCount)
	}
	if d.DoneCount != 1 {
		t.Errorf("done = %d, want 1", d.DoneCount)
	}
}

func TestBuildDashboard_AdminSeesAllTasks(t *testing.T) {
	sel := ports.MonthSelection{Year: 2025, Month: 2}
	tasks := []domain.Task{
		{ID: "t1", Status: domain.TaskPending, AssignedToUserID: "u1", DueDate: "2025-03-10"},
		{ID: "t2", Status: domain.TaskPending, AssignedToUserID: "u2", DueDate: "2025-03-11"},
	}
	caller := ports.Caller{UserID: "admin", Role: domain.RoleAdmin}

	d := buildDashboard(tasks, nil, caller, sel)
	if d.PendingCount != 2 {
		t.Fatalf("pending = %d, want 2", d.PendingCount)
	}
}

func TestBuildDashboard_DoneCountMovesWithCompletionMonth(t *testing.T) {
	tasks := []domain.Task{
		{ID: "t1", Status: domain.TaskDone, AssignedToUserID: "u1", CompletedAt: "2025-01-20"},
	}
	caller := ports.Caller{UserID: "u1", Role: domain.RoleUser}

	jan := buildDashboard(tasks, nil, caller, ports.MonthSelection{Year: 2025, Month: 0})
	feb := buildDashboard(tasks, nil, caller, ports.MonthSelection{Year: 2025, Month: 1})

	if jan.DoneCount != 1 {
		t.Fatalf("january done = %d, want 1", jan.DoneCount)
	}
	if feb.DoneCount != 0 {
		t.Fatalf("february done = %d, want 0", feb.DoneCount)
	}
}

func TestBuildDashboard_BreakdownFollowsClientOrder(t *testing.T) {
	clients := []domain.Client{
		{ID: "z", Name: "Zeta", Status: domain.ClientActive, MonthlyFee: dec("100"),
			AssignedUserIDs: []string{"u1"},
			Commissions:     []domain.Commission{{UserID: "u1", Percentage: dec("10")}}},
		{ID: "a", Name: "Alpha", Status: domain.ClientActive, MonthlyFee: dec("100"),
			AssignedUserIDs: []string{"u1"},
			Commissions:     []domain.Commission{{UserID: "u1", Percentage: dec("20")}}},
	}
	caller := ports.Caller{UserID: "u1", Role: domain.RoleUser}

	d := buildDashboard(nil, clients, caller, ports.MonthSelection{Year: 2025, Month: 0})

	if len(d.CommissionBreakdown) != 2 {
		t.Fatalf("breakdown length = %d, want 2", len(d.CommissionBreakdown))
	}
	if d.CommissionBreakdown[0].ClientID != "z" || d.CommissionBreakdown[1].ClientID != "a" {
		t.Fatalf("breakdown not in client list order: %+v", d.CommissionBreakdown)
	}
}

func TestBuildDashboard_StatusIsEvaluatedNow(t *testing.T) {
	// Commissions are computed from the current roster. Deactivating a
	// client removes its contribution from every month, past ones too.
	active := []domain.Client{
		{ID: "a", Name: "A", Status: domain.ClientActive, MonthlyFee: dec("1000"),
			AssignedUserIDs: []string{"u1"},
			Commissions:     []domain.Commission{{UserID: "u1", Percentage: dec("10")}}},
	}
	caller := ports.Caller{UserID: "u1", Role: domain.RoleUser}
	lastYear := ports.MonthSelection{Year: 2024, Month: 6}

	before := buildDashboard(nil, active, caller, lastYear)
	if !before.CommissionTotal.Equal(dec("100")) {
		t.Fatalf("before deactivation: total = %v, want 100", before.CommissionTotal)
	}

	active[0].Status = domain.ClientInactive
	after := buildDashboard(nil, active, caller, lastYear)
	if !after.CommissionTotal.IsZero() {
		t.Fatalf("after deactivation: total = %v, want 0", after.CommissionTotal)
	}
}

func TestBuildTeamPerformance(t *testing.T) {
	users := []domain.User{
		{ID: "admin", Name: "Boss", Role: domain.RoleAdmin},
		{ID: "u1", Name: "Ana", Role: domain.RoleUser},
		{ID: "u2", Name: "Rui", Role: domain.RoleUser},
	}
	clients := []domain.Client{
		// u1 is not assigned here, but team performance ignores scope.
		{ID: "a", Name: "A", Status: domain.ClientActive, MonthlyFee: dec("1000"),
			Commissions: []domain.Commission{{UserID: "u1", Percentage: dec("10")}}},
		{ID: "b", Name: "B", Status: domain.ClientInactive, MonthlyFee: dec("1000"),
			Commissions: []domain.Commission{{UserID: "u1", Percentage: dec("90")}}},
	}
	sel := ports.MonthSelection{Year: 2025, Month: 2}
	tasks := []domain.Task{
		{ID: "t1", Status: domain.TaskDone, AssignedToUserID: "u1", CompletedAt: "2025-03-02"},
		{ID: "t2", Status: domain.TaskPending, AssignedToUserID: "u1", DueDate: "2025-03-09"},
		{ID: "t3", Status: domain.TaskInProgress, AssignedToUserID: "u2", DueDate: "2025-03-10"},
		{ID: "t4", Status: domain.TaskPending, AssignedToUserID: "u2", DueDate: "2025-05-01"}, // out of month
	}

	rows := buildTeamPerformance(users, clients, tasks, sel)

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (admin excluded)", len(rows))
	}

	u1 := rows[0]
	if u1.UserID != "u1" || u1.Name != "Ana" {
		t.Fatalf("unexpected first row: %+v", u1)
	}
	if !u1.Commission.Equal(dec("100")) {
		t.Errorf("u1 commission = %v, want 100 (inactive client excluded)", u1.Commission)
	}
	if u1.DoneCount != 1 || u1.OpenCount != 1 {
		t.Errorf("u1 counts = done %d open %d, want 1/1", u1.DoneCount, u1.OpenCount)
	}

	u2 := rows[1]
	if !u2.Commission.IsZero() {
		t.Errorf("u2 commission = %v, want 0", u2.Commission)
	}
	if u2.DoneCount != 0 || u2.OpenCount != 1 {
		t.Errorf("u2 counts = done %d open %d, want 0/1", u2.DoneCount, u2.OpenCount)
	}
}
