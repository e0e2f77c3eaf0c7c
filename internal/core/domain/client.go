package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientStatus marks whether a client account is currently billed.
type ClientStatus string

const (
	ClientActive   ClientStatus = "ACTIVE"
	ClientInactive ClientStatus = "INACTIVE"
)

// Valid reports whether s is one of the known client statuses.
func (s ClientStatus) Valid() bool {
	return s == ClientActive || s == ClientInactive
}

// Commission attributes a percentage of a client's monthly fee to a user.
// A client carries at most one entry per user id. Percentages are not
// clamped and are not required to sum to 100.
type Commission struct {
	UserID     string          `json:"user_id"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ClientFile records metadata for a file attached to a client. The bytes
// themselves are not stored; StorageRef is a synthetic reference.
type ClientFile struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	StorageRef  string    `json:"storage_ref"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedBy  string    `json:"uploaded_by"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Client is an agency account. References to users and teams are by id and
// may dangle after the referenced record is deleted; lookups must tolerate
// that and render the relation as unassigned.
type Client struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	CompanyName       string          `json:"company_name,omitempty"`
	Phone             string          `json:"phone,omitempty"`
	Area              string          `json:"area,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	Status            ClientStatus    `json:"status"`
	MonthlyFee        decimal.Decimal `json:"monthly_fee"`
	Briefing          string          `json:"briefing"`
	AccessCredentials string          `json:"access_credentials"`
	ContractRef       string          `json:"contract_ref,omitempty"`
	AssignedUserIDs   []string        `json:"assigned_user_ids"`
	ManagerID         string          `json:"manager_id,omitempty"`
	TeamID            string          `json:"team_id,omitempty"`
	Commissions       []Commission    `json:"commissions,omitempty"`
	Files             []ClientFile    `json:"files"`
}

// CommissionFor returns the commission entry for the given user, if any.
func (c *Client) CommissionFor(userID string) (Commission, bool) {
	for _, cm := range c.Commissions {
		if cm.UserID == userID {
			return cm, true
		}
	}
	return Commission{}, false
}

// IsAssigned reports whether the user appears in the assignment list.
func (c *Client) IsAssigned(userID string) bool {
	for _, id := range c.AssignedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
