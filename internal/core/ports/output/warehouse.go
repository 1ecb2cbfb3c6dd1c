package ports

import (
	"context"

	"ml-lifecycle-service/internal/core/domain"
)

type ExampleFilter struct {
	StartDate string // inclusive, YYYY-MM-DD
	EndDate   string // exclusive, YYYY-MM-DD
	Limit     int
}

// ExampleRepository reads labeled training examples out of the data
// warehouse.
type ExampleRepository interface {
	Fetch(ctx context.Context, filter ExampleFilter) ([]*domain.Example, error)
	LabelBalance(ctx context.Context) (positive, negative int64, err error)
}
