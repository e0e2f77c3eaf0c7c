package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/corvo-marketing/agency-console/internal/api/metrics"
	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
)

// ReportHandler exposes the reporting views and due-date notifications.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// monthFromQuery parses optional year/month query params. Month is the
// zero-based index the console has always used (0 = January). Both params
// must be present together; absence selects the current month.
func monthFromQuery(c echo.Context) (*ports.MonthSelection, error) {
	yearRaw := c.QueryParam("year")
	monthRaw := c.QueryParam("month")
	if yearRaw == "" && monthRaw == "" {
		return nil, nil
	}
	if yearRaw == "" || monthRaw == "" {
		return nil, fmt.Errorf("%w: year and month must be provided together", domain.ErrInvalidInput)
	}

	year, err := strconv.Atoi(yearRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: year must be an integer", domain.ErrInvalidInput)
	}
	month, err := strconv.Atoi(monthRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: month must be an integer", domain.ErrInvalidInput)
	}
	if month < 0 || month > 11 {
		return nil, fmt.Errorf("%w: month index must be between 0 and 11", domain.ErrInvalidInput)
	}
	return &ports.MonthSelection{Year: year, Month: month}, nil
}

// Dashboard handles GET /v1/reports/dashboard. Admins get agency revenue;
// everyone else gets their own commission total and breakdown.
//
// @Summary      Monthly dashboard
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        year   query     int  false  "Report year (defaults to current)"
// @Param        month  query     int  false  "Zero-based month index, 0 = January"
// @Success      200    {object}  ports.Dashboard
// @Failure      400    {object}  errorResponse
// @Router       /v1/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	month, err := monthFromQuery(c)
	if err != nil {
		return err
	}

	dashboard, err := h.service.Dashboard(c.Request().Context(), caller, month)
	if err != nil {
		return err
	}

	metrics.ReportRequestsTotal.WithLabelValues("dashboard", string(caller.Role)).Inc()
	return c.JSON(http.StatusOK, dashboard)
}

// TeamPerformance handles GET /v1/reports/team-performance (admin only).
//
// @Summary      Per-user performance summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        year   query     int  false  "Report year (defaults to current)"
// @Param        month  query     int  false  "Zero-based month index, 0 = January"
// @Success      200    {array}   ports.TeamPerformanceRow
// @Failure      400    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /v1/reports/team-performance [get]
func (h *ReportHandler) TeamPerformance(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	month, err := monthFromQuery(c)
	if err != nil {
		return err
	}

	rows, err := h.service.TeamPerformance(c.Request().Context(), caller, month)
	if err != nil {
		return err
	}

	metrics.ReportRequestsTotal.WithLabelValues("team_performance", string(caller.Role)).Inc()
	return c.JSON(http.StatusOK, rows)
}

// Notifications handles GET /v1/notifications: overdue and upcoming due
// dates for the caller's open tasks, evaluated against today.
//
// @Summary      Due-date notifications
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.Notification
// @Router       /v1/notifications [get]
func (h *ReportHandler) Notifications(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	notifications, err := h.service.Notifications(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	metrics.ReportRequestsTotal.WithLabelValues("notifications", string(caller.Role)).Inc()
	return c.JSON(http.StatusOK, notifications)
}
