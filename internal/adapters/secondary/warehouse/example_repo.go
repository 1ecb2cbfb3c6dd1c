package warehouse

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"ml-lifecycle-service/internal/core/domain"
	"ml-lifecycle-service/internal/core/ports/output"
)

type exampleRepo struct {
	pool *pgxpool.Pool
}

// NewExampleRepository reads labeled session rows from the warehouse's
// web_sessions table.
func NewExampleRepository(pool *pgxpool.Pool) ports.ExampleRepository {
	return &exampleRepo{pool: pool}
}

func (r *exampleRepo) Fetch(ctx context.Context, filter ports.ExampleFilter) ([]*domain.Example, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT session_id, pageviews, time_on_site, is_mobile, added_to_cart
		FROM web_sessions
		WHERE pageviews > 0
	`)

	args := []interface{}{}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		fmt.Fprintf(&sb, " AND session_date >= $%d", len(args))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		fmt.Fprintf(&sb, " AND session_date < $%d", len(args))
	}
	sb.WriteString(" ORDER BY session_date, session_id")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query examples: %w", err)
	}
	defer rows.Close()

	var examples []*domain.Example
	for rows.Next() {
		e := &domain.Example{}
		if err := rows.Scan(&e.SessionID, &e.Pageviews, &e.TimeOnSite, &e.IsMobile, &e.AddedToCart); err != nil {
			return nil, fmt.Errorf("scan example: %w", err)
		}
		examples = append(examples, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate examples: %w", err)
	}
	return examples, nil
}

func (r *exampleRepo) LabelBalance(ctx context.Context) (int64, int64, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE added_to_cart),
			COUNT(*) FILTER (WHERE NOT added_to_cart)
		FROM web_sessions
		WHERE pageviews > 0
	`
	var positive, negative int64
	if err := r.pool.QueryRow(ctx, query).Scan(&positive, &negative); err != nil {
		return 0, 0, fmt.Errorf("count labels: %w", err)
	}
	return positive, negative, nil
}
