package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
	"github.com/corvo-marketing/agency-console/internal/core/ports"
)

// TaskService manages tasks. Visibility piggybacks on client visibility:
// a task can be touched by anyone who can view its owning client, and
// listings without a client filter are scoped to the caller's assignments.
type TaskService struct {
	tasks   ports.TaskRepository
	clients ports.ClientRepository
	users   ports.UserRepository
	now     func() time.Time
	logger  zerolog.Logger
}

func NewTaskService(
	tasks ports.TaskRepository,
	clients ports.ClientRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *TaskService {
	return &TaskService{tasks: tasks, clients: clients, users: users, now: time.Now, logger: logger}
}

// WithClock replaces the wall clock used for comment timestamps and
// completion-date defaults.
func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	s.now = now
	return s
}

func (s *TaskService) List(ctx context.Context, caller ports.Caller, filter ports.TaskFilter) ([]domain.Task, error) {
	if filter.ClientID != "" {
		if err := s.checkClientAccess(ctx, caller, filter.ClientID); err != nil {
			return nil, err
		}
	}

	all, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Task, 0, len(all))
	for _, t := range all {
		if filter.ClientID != "" {
			if t.ClientID != filter.ClientID {
				continue
			}
		} else if caller.Role != domain.RoleAdmin && t.AssignedToUserID != caller.UserID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *TaskService) Get(ctx context.Context, caller ports.Caller, id string) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkTaskAccess(ctx, caller, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Create(ctx context.Context, caller ports.Caller, in ports.TaskInput) (*domain.Task, error) {
	if err := s.checkClientAccess(ctx, caller, in.ClientID); err != nil {
		return nil, err
	}

	task := &domain.Task{
		ID:               uuid.NewString(),
		Title:            in.Title,
		Description:      sanitizeUGC(in.Description),
		Status:           in.Status,
		AssignedToUserID: in.AssignedToUserID,
		ClientID:         in.ClientID,
		DueDate:          in.DueDate,
		CompletedAt:      in.CompletedAt,
		CreatedByUserID:  caller.UserID,
		Comments:         []domain.TaskComment{},
	}
	s.defaultCompletedAt(task)

	if err := s.tasks.Insert(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("client_id", task.ClientID).
		Str("status", string(task.Status)).
		Msg("task created")
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, caller ports.Caller, id string, in ports.TaskInput) (*domain.Task, error) {
	task, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	// Moving a task to another client requires access to the target too.
	if in.ClientID != task.ClientID {
		if err := s.checkClientAccess(ctx, caller, in.ClientID); err != nil {
			return nil, err
		}
	}

	task.Title = in.Title
	task.Description = sanitizeUGC(in.Description)
	task.Status = in.Status
	task.AssignedToUserID = in.AssignedToUserID
	task.ClientID = in.ClientID
	task.DueDate = in.DueDate
	task.CompletedAt = in.CompletedAt
	s.defaultCompletedAt(task)

	if err := s.tasks.Replace(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	task, err := s.Get(ctx, caller, id)
	if err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, task.ID); err != nil {
		return err
	}
	s.logger.Info().Str("task_id", id).Msg("task deleted")
	return nil
}

// AddComment appends an immutable comment with the author's name
// denormalized at creation time. A deleted author renders as unassigned.
func (s *TaskService) AddComment(ctx context.Context, caller ports.Caller, taskID, text string) (*domain.Task, error) {
	task, err := s.Get(ctx, caller, taskID)
	if err != nil {
		return nil, err
	}

	authorName := unassignedName
	if author, err := s.users.FindByID(ctx, caller.UserID); err == nil {
		authorName = author.Name
	}

	task.Comments = append(task.Comments, domain.TaskComment{
		ID:        uuid.NewString(),
		UserID:    caller.UserID,
		UserName:  authorName,
		Text:      sanitizeUGC(text),
		CreatedAt: s.now().UTC(),
	})

	if err := s.tasks.Replace(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// unassignedName is the display value for dangling user references.
const unassignedName = "Unassigned"

// defaultCompletedAt stamps today's date on a DONE task that arrived
// without a completion date, so done counts window correctly. Nothing is
// cleared when a task leaves DONE; the field is advisory outside that
// status.
func (s *TaskService) defaultCompletedAt(t *domain.Task) {
	if t.Status == domain.TaskDone && t.CompletedAt == "" {
		t.CompletedAt = s.now().UTC().Format(domain.DateLayout)
	}
}

// checkClientAccess resolves the owning client and applies the visibility
// rule. A missing client is reported as not found, not forbidden.
func (s *TaskService) checkClientAccess(ctx context.Context, caller ports.Caller, clientID string) error {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return err
	}
	if !CanViewClient(caller, client) {
		return domain.ErrForbidden
	}
	return nil
}

// checkTaskAccess admits admins, the assignee, the creator, and anyone who
// can view the owning client. A dangling client id falls back to the
// direct relations only.
func (s *TaskService) checkTaskAccess(ctx context.Context, caller ports.Caller, task *domain.Task) error {
	if caller.Role == domain.RoleAdmin || task.AssignedToUserID == caller.UserID || task.CreatedByUserID == caller.UserID {
		return nil
	}
	client, err := s.clients.FindByID(ctx, task.ClientID)
	if err == nil && CanViewClient(caller, client) {
		return nil
	}
	return domain.ErrForbidden
}
