package domain

// Role controls what a session may see and do.
type Role string

const (
	RoleDeveloper Role = "developer"
	RoleManager   Role = "manager"
)

// User is the currently authenticated principal. It lives inside the
// application snapshot alongside the isAuthenticated flag.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}
