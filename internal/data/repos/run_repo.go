package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/stabrank/internal/contracts"
)

// ErrRunNotFound is returned when the requested run does not exist
var ErrRunNotFound = errors.New("repos: run not found")

// RunRepository implements contracts.RunRepository on PostgreSQL
// ⭐ SSOT: Run 데이터 저장/조회는 여기서만
type RunRepository struct {
	pool *pgxpool.Pool
}

// NewRunRepository creates a new run repository
func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

// Insert stores a run and returns its assigned ID
func (r *RunRepository) Insert(ctx context.Context, run *contracts.RankRun) (int64, error) {
	payload, err := json.Marshal(run.Summary)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal summary: %w", err)
	}

	query := `
		INSERT INTO stabrank.runs (source, policy, summary)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err = r.pool.QueryRow(ctx, query, run.Source, run.Policy, payload).
		Scan(&run.ID, &run.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	return run.ID, nil
}

// GetByID retrieves a single run
func (r *RunRepository) GetByID(ctx context.Context, id int64) (*contracts.RankRun, error) {
	query := `
		SELECT id, source, policy, summary, created_at
		FROM stabrank.runs
		WHERE id = $1
	`

	run, err := scanRun(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrRunNotFound, id)
		}
		return nil, fmt.Errorf("failed to query run: %w", err)
	}

	return run, nil
}

// List returns the most recent runs, newest first
func (r *RunRepository) List(ctx context.Context, limit int) ([]contracts.RankRun, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, source, policy, summary, created_at
		FROM stabrank.runs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []contracts.RankRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}

	return runs, nil
}

// scanRun scans one row into a RankRun, decoding the summary JSONB
func scanRun(row pgx.Row) (*contracts.RankRun, error) {
	var run contracts.RankRun
	var payload []byte

	if err := row.Scan(&run.ID, &run.Source, &run.Policy, &payload, &run.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &run.Summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	return &run, nil
}
