package repository

import (
	"context"
	"fmt"

	"awardshub/internal/microservices/http-api/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResultsRepository computes vote tallies. It reads through the pgx pool directly.
type ResultsRepository interface {
	Tally(ctx context.Context, categoryID int64, activeOnly bool) ([]models.NomineeTally, error)
}

type resultsRepository struct {
	pool *pgxpool.Pool
}

func NewResultsRepository(pool *pgxpool.Pool) ResultsRepository {
	return &resultsRepository{pool: pool}
}

const tallyQuery = `
SELECT c.id, c.name, c.slug, n.id, n.name, COUNT(v.id) AS votes
FROM nominees n
JOIN categories c ON c.id = n.category_id
LEFT JOIN votes v ON v.nominee_id = n.id
WHERE ($1::bigint = 0 OR c.id = $1)
  AND (NOT $2::boolean OR c.is_active)
GROUP BY c.id, n.id
ORDER BY c.display_order, c.name, votes DESC, n.name`

// Tally returns per-nominee vote counts, zero included. categoryID 0 means all
// categories; activeOnly drops inactive ones.
func (r *resultsRepository) Tally(ctx context.Context, categoryID int64, activeOnly bool) ([]models.NomineeTally, error) {
	rows, err := r.pool.Query(ctx, tallyQuery, categoryID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("tally votes: %w", err)
	}
	tallies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.NomineeTally, error) {
		var t models.NomineeTally
		err := row.Scan(&t.CategoryID, &t.CategoryName, &t.CategorySlug, &t.NomineeID, &t.NomineeName, &t.Votes)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan tally: %w", err)
	}
	return tallies, nil
}
