package handler

import (
	"github.com/shopspring/decimal"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Users ---

type userRequest struct {
	Name      string `json:"name"       validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Role      string `json:"role"       validate:"required,oneof=ADMIN USER"`
	Title     string `json:"title"`
	AvatarURL string `json:"avatar_url"`
	TeamID    string `json:"team_id"`
}

// --- Teams ---

type teamRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	PhotoURL    string   `json:"photo_url"`
	MemberIDs   []string `json:"member_ids"`
}

// --- Clients ---

type commissionRequest struct {
	UserID     string          `json:"user_id" validate:"required"`
	Percentage decimal.Decimal `json:"percentage"`
}

type clientRequest struct {
	Name              string              `json:"name"   validate:"required"`
	CompanyName       string              `json:"company_name"`
	Phone             string              `json:"phone"`
	Area              string              `json:"area"`
	Notes             string              `json:"notes"`
	Status            string              `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
	MonthlyFee        decimal.Decimal     `json:"monthly_fee"`
	Briefing          string              `json:"briefing"`
	AccessCredentials string              `json:"access_credentials"`
	AssignedUserIDs   []string            `json:"assigned_user_ids"`
	ManagerID         string              `json:"manager_id"`
	TeamID            string              `json:"team_id"`
	Commissions       []commissionRequest `json:"commissions" validate:"dive"`
}

type suggestionRequest struct {
	// Briefing optionally overrides the stored briefing text, so the UI
	// can ask about unsaved edits.
	Briefing string `json:"briefing"`
}

type suggestionResponse struct {
	Suggestions string `json:"suggestions"`
}

// --- Tasks ---

type taskRequest struct {
	Title            string `json:"title"     validate:"required"`
	Description      string `json:"description"`
	Status           string `json:"status"    validate:"required,oneof=PENDING IN_PROGRESS DONE"`
	AssignedToUserID string `json:"assigned_to_user_id"`
	ClientID         string `json:"client_id" validate:"required"`
	DueDate          string `json:"due_date"     validate:"omitempty,datetime=2006-01-02"`
	CompletedAt      string `json:"completed_at" validate:"omitempty,datetime=2006-01-02"`
}

type commentRequest struct {
	Text string `json:"text" validate:"required"`
}
