package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
)

type stubReportService struct {
	dashboardFn       func(ctx context.Context, caller ports.Caller, month *ports.MonthSelection) (*ports.Dashboard, error)
	teamPerformanceFn func(ctx context.Context, caller ports.Caller, month *ports.MonthSelection) ([]ports.TeamPerformanceRow, error)
	notificationsFn   func(ctx context.Context, caller ports.Caller) ([]ports.Notification, error)
}

func (s *stubReportService) Dashboard(ctx context.Context, caller ports.Caller, month *ports.MonthSelection) (*ports.Dashboard, error) {
	return s.dashboardFn(ctx, caller, month)
}

func (s *stubReportService) TeamPerformance(ctx context.Context, caller ports.Caller, month *ports.MonthSelection) ([]ports.TeamPerformanceRow, error) {
	return s.teamPerformanceFn(ctx, caller, month)
}

func (s *stubReportService) Notifications(ctx context.Context, caller ports.Caller) ([]ports.Notification, error) {
	return s.notificationsFn(ctx, caller)
}

func newReportContext(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")
	c.Set("role", "USER")
	return c, rec
}

func TestReportHandler_Dashboard_DefaultMonth(t *testing.T) {
	e := newTestEcho()
	stub := &stubReportService{
		dashboardFn: func(ctx context.Context, caller ports.Caller, month *ports.MonthSelection) (*ports.Dashboard, error) {
			if month != nil {
				t.Fatalf("expected nil month, got %+v", month)
			}
			total := decimal.NewFromInt(100)
			return &ports.Dashboard{
				Month:           ports.MonthSelection{Year: 2025, Month: 5},
				CommissionTotal: &total,
			}, nil
		},
	}
	h := NewReportHandler(stub)

	c, rec := newReportContext(e, "/v1/reports/dashboard")
	if err := h.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["commission_total"] != "100" {
		t.Fatalf("commission total missing: %+v", resp)
	}
	if _, hasRevenue := resp["revenue"]; hasRevenue {
		t.Fatalf("revenue must be omitted for non-admin payloads: %+v", resp)
	}
}

func TestReportHandler_Dashboard_ExplicitMonth(t *testing.T) {
	e := newTestEcho()
	stub := &stubReportService{
		dashboardFn: func(ctx context.Context, caller ports.Caller, month *ports.MonthSelection) (*ports.Dashboard, error) {
			if month == nil || month.Year != 2025 || month.Month != 2 {
				t.Fatalf("month not parsed: %+v", month)
			}
			return &ports.Dashboard{Month: *month}, nil
		},
	}
	h := NewReportHandler(stub)

	c, rec := newReportContext(e, "/v1/reports/dashboard?year=2025&month=2")
	if err := h.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReportHandler_Dashboard_BadMonthParams(t *testing.T) {
	e := newTestEcho()
	stub := &stubReportService{
		dashboardFn: func(ctx context.Context, caller ports.Caller, month *ports.MonthSelection) (*ports.Dashboard, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewReportHandler(stub)

	targets := []string{
		"/v1/reports/dashboard?year=2025",             // month missing
		"/v1/reports/dashboard?month=2",               // year missing
		"/v1/reports/dashboard?year=abc&month=2",      // year not a number
		"/v1/reports/dashboard?year=2025&month=xyz",   // month not a number
		"/v1/reports/dashboard?year=2025&month=12",    // index out of range
		"/v1/reports/dashboard?year=2025&month=-1",    // negative index
	}
	for _, target := range targets {
		c, _ := newReportContext(e, target)
		err := h.Dashboard(c)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", target, err)
		}
	}
}

func TestReportHandler_TeamPerformance(t *testing.T) {
	e := newTestEcho()
	stub := &stubReportService{
		teamPerformanceFn: func(ctx context.Context, caller ports.Caller, month *ports.MonthSelection) ([]ports.TeamPerformanceRow, error) {
			return []ports.TeamPerformanceRow{
				{UserID: "u1", Name: "Ana", Commission: decimal.NewFromInt(100), DoneCount: 2, OpenCount: 1},
			}, nil
		},
	}
	h := NewReportHandler(stub)

	c, rec := newReportContext(e, "/v1/reports/team-performance")
	if err := h.TeamPerformance(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var rows []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(rows) != 1 || rows[0]["user_id"] != "u1" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestReportHandler_TeamPerformance_Forbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubReportService{
		teamPerformanceFn: func(ctx context.Context, caller ports.Caller, month *ports.MonthSelection) ([]ports.TeamPerformanceRow, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewReportHandler(stub)

	c, _ := newReportContext(e, "/v1/reports/team-performance")
	if err := h.TeamPerformance(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestReportHandler_Notifications(t *testing.T) {
	e := newTestEcho()
	stub := &stubReportService{
		notificationsFn: func(ctx context.Context, caller ports.Caller) ([]ports.Notification, error) {
			if caller.UserID != "u1" {
				t.Fatalf("unexpected caller: %+v", caller)
			}
			return []ports.Notification{
				{TaskID: "t1", Title: "Atrasada", Kind: ports.NotificationOverdue, Days: 2},
			}, nil
		},
	}
	h := NewReportHandler(stub)

	c, rec := newReportContext(e, "/v1/notifications")
	if err := h.Notifications(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out) != 1 || out[0]["kind"] != "OVERDUE" {
		t.Fatalf("unexpected payload: %+v", out)
	}
}
