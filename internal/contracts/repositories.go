package contracts

import "context"

// RunRepository persists aggregation runs
// ⭐ SSOT: Run 저장소 인터페이스는 여기서만 정의
type RunRepository interface {
	// Insert stores a run and returns its assigned ID
	Insert(ctx context.Context, run *RankRun) (int64, error)

	// GetByID retrieves a single run
	GetByID(ctx context.Context, id int64) (*RankRun, error)

	// List returns the most recent runs, newest first
	List(ctx context.Context, limit int) ([]RankRun, error)
}
