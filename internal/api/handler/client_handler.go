package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corvo-marketing/agency-console/internal/api/metrics"
	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
)

// ClientHandler handles client accounts, their simulated file storage, and
// the AI briefing suggestions.
type ClientHandler struct {
	service     ports.ClientService
	suggestions ports.SuggestionProvider
}

func NewClientHandler(service ports.ClientService, suggestions ports.SuggestionProvider) *ClientHandler {
	return &ClientHandler{service: service, suggestions: suggestions}
}

func toClientInput(req clientRequest) ports.ClientInput {
	commissions := make([]ports.CommissionInput, 0, len(req.Commissions))
	for _, cm := range req.Commissions {
		commissions = append(commissions, ports.CommissionInput{
			UserID:     cm.UserID,
			Percentage: cm.Percentage,
		})
	}
	return ports.ClientInput{
		Name:              req.Name,
		CompanyName:       req.CompanyName,
		Phone:             req.Phone,
		Area:              req.Area,
		Notes:             req.Notes,
		Status:            domain.ClientStatus(req.Status),
		MonthlyFee:        req.MonthlyFee,
		Briefing:          req.Briefing,
		AccessCredentials: req.AccessCredentials,
		AssignedUserIDs:   req.AssignedUserIDs,
		ManagerID:         req.ManagerID,
		TeamID:            req.TeamID,
		Commissions:       commissions,
	}
}

// List handles GET /v1/clients — all clients for admins, visible ones
// otherwise.
//
// @Summary      List visible clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Client
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	clients, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Get handles GET /v1/clients/:id.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	client, err := h.service.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Create handles POST /v1/clients (admin only).
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientRequest  true  "Client fields"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.Create(c.Request().Context(), caller, toClientInput(req))
	if err != nil {
		return err
	}

	metrics.DirectoryMutationsTotal.WithLabelValues("client", "create").Inc()
	return c.JSON(http.StatusCreated, client)
}

// Update handles PUT /v1/clients/:id — open to anyone who can view the
// client, since assignees maintain briefing and credentials.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Client id"
// @Param        body  body      clientRequest  true  "Client fields"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), toClientInput(req))
	if err != nil {
		return err
	}

	metrics.DirectoryMutationsTotal.WithLabelValues("client", "update").Inc()
	return c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /v1/clients/:id (admin only). The client's fee
// and commissions disappear from all months' reports, past ones included.
//
// @Summary      Delete a client
// @Tags         clients
// @Security     BearerAuth
// @Param        id  path  string  true  "Client id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}

	metrics.DirectoryMutationsTotal.WithLabelValues("client", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// fileUploadFromForm reads the multipart "file" field, keeps the metadata,
// and discards the content. Storage is simulated end to end.
func fileUploadFromForm(c echo.Context) (ports.FileUpload, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return ports.FileUpload{}, echo.NewHTTPError(http.StatusBadRequest, "missing file field")
	}
	return ports.FileUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		SizeBytes:   fh.Size,
	}, nil
}

// UploadContract handles POST /v1/clients/:id/contract.
//
// @Summary      Upload a contract (simulated)
// @Tags         clients
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Client id"
// @Param        file  formData  file    true  "Contract file"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/clients/{id}/contract [post]
func (h *ClientHandler) UploadContract(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	up, err := fileUploadFromForm(c)
	if err != nil {
		return err
	}

	client, err := h.service.UploadContract(c.Request().Context(), caller, c.Param("id"), up)
	if err != nil {
		return err
	}

	metrics.FileUploadsTotal.WithLabelValues("contract").Inc()
	return c.JSON(http.StatusOK, client)
}

// DeleteContract handles DELETE /v1/clients/:id/contract.
//
// @Summary      Remove the contract reference
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id}/contract [delete]
func (h *ClientHandler) DeleteContract(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	client, err := h.service.DeleteContract(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// ListFiles handles GET /v1/clients/:id/files.
//
// @Summary      List attached files
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Client id"
// @Success      200  {array}  domain.ClientFile
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id}/files [get]
func (h *ClientHandler) ListFiles(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	files, err := h.service.ListFiles(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, files)
}

// AttachFile handles POST /v1/clients/:id/files.
//
// @Summary      Attach a file (simulated)
// @Tags         clients
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Client id"
// @Param        file  formData  file    true  "File to attach"
// @Success      201   {object}  domain.ClientFile
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/clients/{id}/files [post]
func (h *ClientHandler) AttachFile(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	up, err := fileUploadFromForm(c)
	if err != nil {
		return err
	}

	file, err := h.service.AttachFile(c.Request().Context(), caller, c.Param("id"), up)
	if err != nil {
		return err
	}

	metrics.FileUploadsTotal.WithLabelValues("attachment").Inc()
	return c.JSON(http.StatusCreated, file)
}

// SuggestBriefing handles POST /v1/clients/:id/briefing/suggestions. The
// collaborator degrades to a fallback message rather than failing, so the
// response is always 200 for a visible client.
//
// @Summary      AI briefing suggestions
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true   "Client id"
// @Param        body  body      suggestionRequest  false  "Optional briefing override"
// @Success      200   {object}  suggestionResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/clients/{id}/briefing/suggestions [post]
func (h *ClientHandler) SuggestBriefing(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	client, err := h.service.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}

	var req suggestionRequest
	_ = c.Bind(&req) // body is optional
	briefing := client.Briefing
	if req.Briefing != "" {
		briefing = req.Briefing
	}

	text, ok := h.suggestions.BriefingSuggestions(c.Request().Context(), client.Name, briefing)
	result := "fallback"
	if ok {
		result = "ok"
	}
	metrics.BriefingSuggestionsTotal.WithLabelValues(result).Inc()

	return c.JSON(http.StatusOK, suggestionResponse{Suggestions: text})
}
