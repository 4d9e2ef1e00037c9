package domain

import "context"

// DatasetRepository defines the interface for dataset access
// This follows the Dependency Inversion Principle - domain defines the interface
type DatasetRepository interface {
	// LoadDataset returns the pollution dataset. Implementations cache the
	// first load; the returned dataset is read-only after that.
	LoadDataset(ctx context.Context) (Dataset, error)

	// Health checks that the backing store is reachable
	Health(ctx context.Context) error
}
