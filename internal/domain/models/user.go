package models

type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleJudge      Role = "judge"
	RoleSuperAdmin Role = "superadmin"
)

// Privileged reports whether the role may access the operator endpoints.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleJudge || r == RoleSuperAdmin
}

type User struct {
	UserID       int    `db:"user_id" json:"user_id"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         Role   `db:"role" json:"role"`
	TeamID       *int   `db:"team_id" json:"team_id,omitempty"`
	IsLeader     bool   `db:"is_leader" json:"is_leader"`
}

// Member is the team-scoped view of a user, without credentials.
type Member struct {
	UserID   int    `db:"user_id" json:"user_id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	IsLeader bool   `db:"is_leader" json:"is_leader"`
}
