package memory

import (
	"context"
	"sync"

	"github.com/corvo-marketing/agency-console/internal/core/domain"
)

// TaskRepository holds tasks in insertion order.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks []domain.Task
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

func cloneTask(t domain.Task) domain.Task {
	t.Comments = append([]domain.TaskComment(nil), t.Comments...)
	return t
}

func (r *TaskRepository) List(_ context.Context) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, cloneTask(t))
	}
	return out, nil
}

func (r *TaskRepository) FindByID(_ context.Context, id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tasks {
		if t.ID == id {
			clone := cloneTask(t)
			return &clone, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (r *TaskRepository) Insert(_ context.Context, t *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, cloneTask(*t))
	return nil
}

func (r *TaskRepository) Replace(_ context.Context, t *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID == t.ID {
			r.tasks[i] = cloneTask(*t)
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

func (r *TaskRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return domain.ErrTaskNotFound
}
