// Package memory implements the directory repositories over in-process
// collections. There is no persistence by design: all state lives for the
// lifetime of the process.
//
// Every repository is copy-on-write. Reads return detached clones and
// mutations replace the stored record wholesale, so a caller can never
// alias store-internal state. Insertion order is preserved; reporting
// relies on it for the commission breakdown ordering.
package memory

import "context"

// Store bundles the four collections behind one constructor.
type Store struct {
	Users   *UserRepository
	Teams   *TeamRepository
	Clients *ClientRepository
	Tasks   *TaskRepository
}

func NewStore() *Store {
	return &Store{
		Users:   NewUserRepository(),
		Teams:   NewTeamRepository(),
		Clients: NewClientRepository(),
		Tasks:   NewTaskRepository(),
	}
}

// Counts reports collection sizes, used by the readiness probe.
func (s *Store) Counts(ctx context.Context) map[string]int {
	users, _ := s.Users.List(ctx)
	teams, _ := s.Teams.List(ctx)
	clients, _ := s.Clients.List(ctx)
	tasks, _ := s.Tasks.List(ctx)
	return map[string]int{
		"users":   len(users),
		"teams":   len(teams),
		"clients": len(clients),
		"tasks":   len(tasks),
	}
}
