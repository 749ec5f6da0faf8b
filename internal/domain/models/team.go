package models

const (
	TeamStatusActive   = "Active"
	TeamStatusRejected = "Rejected"
)

type Team struct {
	TeamID           int      `db:"team_id" json:"team_id"`
	TeamName         string   `db:"team_name" json:"team_name"`
	TrackName        string   `db:"track_name" json:"track_name"`
	ProblemStatement string   `db:"problem_statement" json:"problem_statement"`
	Idea             string   `db:"idea" json:"idea"`
	Status           string   `db:"status" json:"status"`
	Members          []Member `db:"-" json:"members,omitempty"`
}
