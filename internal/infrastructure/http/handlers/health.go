package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corvo-marketing/agency-console/internal/clients/gemini"
	"github.com/corvo-marketing/agency-console/internal/infrastructure/db/memory"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthDependenciesHandler handles GET /health/ready — readiness probe.
// The store is in-process, so readiness reports its record counts plus
// whether the suggestion collaborator is configured.
type HealthDependenciesHandler struct {
	store  *memory.Store
	gemini *gemini.Client
}

func NewHealthDependenciesHandler(store *memory.Store, g *gemini.Client) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{
		store:  store,
		gemini: g,
	}
}

type dependencyStatus struct {
	Status string         `json:"status"`
	Counts map[string]int `json:"counts,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	deps := make(map[string]dependencyStatus)

	// --- In-memory store ---
	deps["store"] = dependencyStatus{
		Status: "ok",
		Counts: h.store.Counts(c.Request().Context()),
	}

	// --- Gemini collaborator ---
	// Suggestions degrade to fallback text without an API key, so an
	// unconfigured collaborator never blocks readiness.
	if h.gemini.Configured() {
		deps["gemini"] = dependencyStatus{Status: "ok"}
	} else {
		deps["gemini"] = dependencyStatus{Status: "disabled"}
	}

	return c.JSON(http.StatusOK, readinessResponse{
		Status:       "ok",
		Dependencies: deps,
	})
}
