package store

import "github.com/NishantDwd/tasktrail/internal/domain"

// Fixed demo credential table. Authentication security is out of scope;
// accounts exist only to exercise the two roles.
var credentials = []struct {
	user     domain.User
	password string
}{
	{
		user: domain.User{
			ID:       "1",
			Username: "developer",
			Role:     domain.RoleDeveloper,
			Name:     "John Developer",
		},
		password: "dev123",
	},
	{
		user: domain.User{
			ID:       "2",
			Username: "manager",
			Role:     domain.RoleManager,
			Name:     "Jane Manager",
		},
		password: "mgr123",
	},
}

// Login matches username+password against the credential table. On success
// the session is set and persisted; no task event is published, a session
// change is local state.
func (s *Store) Login(username, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range credentials {
		if c.user.Username == username && c.password == password {
			u := c.user
			s.state.User = &u
			s.state.IsAuthenticated = true
			s.persist()
			s.logger.Info("login", "user", u.Username, "role", u.Role)
			out := u
			return &out, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// Logout clears the session.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = nil
	s.state.IsAuthenticated = false
	s.persist()
	s.logger.Info("logout")
}
