package contracts

import "time"

// RankRun is one persisted aggregation run
type RankRun struct {
	ID        int64     `json:"id"`
	Source    string    `json:"source"`
	Policy    string    `json:"policy"`
	Summary   Summary   `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}
