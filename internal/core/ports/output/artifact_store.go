package ports

import "context"

// ArtifactStore is the blob bucket holding exported training data and
// saved model artifacts. Upload returns the object's URI.
type ArtifactStore interface {
	EnsureBucket(ctx context.Context) error
	Upload(ctx context.Context, key string, data []byte) (string, error)
	List(ctx context.Context, prefix string) ([]string, error)
	DeleteAll(ctx context.Context, prefix string) (int, error)
	DeleteBucket(ctx context.Context) error
}
