package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
)

// --- Users ---

// UserInput carries the admin-editable fields of a user record.
type UserInput struct {
	Name      string
	Email     string
	Role      domain.Role
	Title     string
	AvatarURL string
	TeamID    string
}

// UserService is the admin-managed user roster. List and Get are open to
// any signed-in caller (names are needed to resolve references); mutations
// require the admin role.
type UserService interface {
	List(ctx context.Context, caller Caller) ([]domain.User, error)
	Get(ctx context.Context, caller Caller, id string) (*domain.User, error)
	Create(ctx context.Context, caller Caller, in UserInput) (*domain.User, error)
	Update(ctx context.Context, caller Caller, id string, in UserInput) (*domain.User, error)
	Delete(ctx context.Context, caller Caller, id string) error
}

// --- Teams ---

// TeamInput carries the admin-editable fields of a team.
type TeamInput struct {
	Name        string
	Description string
	PhotoURL    string
	MemberIDs   []string
}

// TeamService is the admin-managed team roster.
type TeamService interface {
	List(ctx context.Context, caller Caller) ([]domain.Team, error)
	Get(ctx context.Context, caller Caller, id string) (*domain.Team, error)
	Create(ctx context.Context, caller Caller, in TeamInput) (*domain.Team, error)
	Update(ctx context.Context, caller Caller, id string, in TeamInput) (*domain.Team, error)
	Delete(ctx context.Context, caller Caller, id string) error
}

// --- Clients ---

// CommissionInput is one commission entry on a client.
type CommissionInput struct {
	UserID     string
	Percentage decimal.Decimal
}

// ClientInput carries the editable fields of a client account.
type ClientInput struct {
	Name              string
	CompanyName       string
	Phone             string
	Area              string
	Notes             string
	Status            domain.ClientStatus
	MonthlyFee        decimal.Decimal
	Briefing          string
	AccessCredentials string
	AssignedUserIDs   []string
	ManagerID         string
	TeamID            string
	Commissions       []CommissionInput
}

// FileUpload describes an uploaded file. Only metadata is retained; the
// transport layer measures and discards the body.
type FileUpload struct {
	Filename    string
	ContentType string
	SizeBytes   int64
}

// ClientService manages client accounts. Visibility follows the two access
// rules: admins see every client, other callers see clients they are
// assigned to or manage. Create and Delete are admin-only; Update is open
// to any caller who can view the client (assignees maintain briefing and
// credentials).
type ClientService interface {
	List(ctx context.Context, caller Caller) ([]domain.Client, error)
	Get(ctx context.Context, caller Caller, id string) (*domain.Client, error)
	Create(ctx context.Context, caller Caller, in ClientInput) (*domain.Client, error)
	Update(ctx context.Context, caller Caller, id string, in ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, caller Caller, id string) error

	UploadContract(ctx context.Context, caller Caller, clientID string, up FileUpload) (*domain.Client, error)
	DeleteContract(ctx context.Context, caller Caller, clientID string) (*domain.Client, error)
	AttachFile(ctx context.Context, caller Caller, clientID string, up FileUpload) (*domain.ClientFile, error)
	ListFiles(ctx context.Context, caller Caller, clientID string) ([]domain.ClientFile, error)
}

// --- Tasks ---

// TaskInput carries the editable fields of a task. Dates use
// domain.DateLayout; empty means unset.
type TaskInput struct {
	Title            string
	Description      string
	Status           domain.TaskStatus
	AssignedToUserID string
	ClientID         string
	DueDate          string
	CompletedAt      string
}

// TaskFilter narrows List. A non-empty ClientID returns every task of that
// client (subject to client visibility); otherwise non-admin callers see
// only tasks assigned to them.
type TaskFilter struct {
	ClientID string
	Status   domain.TaskStatus
}

// TaskService manages tasks and their append-only comments.
type TaskService interface {
	List(ctx context.Context, caller Caller, filter TaskFilter) ([]domain.Task, error)
	Get(ctx context.Context, caller Caller, id string) (*domain.Task, error)
	Create(ctx context.Context, caller Caller, in TaskInput) (*domain.Task, error)
	Update(ctx context.Context, caller Caller, id string, in TaskInput) (*domain.Task, error)
	Delete(ctx context.Context, caller Caller, id string) error
	AddComment(ctx context.Context, caller Caller, taskID, text string) (*domain.Task, error)
}
