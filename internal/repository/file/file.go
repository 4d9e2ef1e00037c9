// Package file implements the JSON-file-backed dataset repository. The file
// is read once, on the first request that needs data; a missing or malformed
// file degrades to an empty dataset and is never surfaced as an error.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/Disha-01-alt/PollutionBackend/internal/domain"
)

// Repository implements domain.DatasetRepository over a JSON file
type Repository struct {
	path string

	once    sync.Once
	dataset domain.Dataset
}

// NewRepository creates a file repository for the given dataset path.
// The file is not touched until the first LoadDataset call.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// LoadDataset returns the dataset, reading the file on first call. The
// loaded dataset is never mutated afterwards, so concurrent reads are safe
// without locking.
func (r *Repository) LoadDataset(_ context.Context) (domain.Dataset, error) {
	r.once.Do(r.load)
	return r.dataset, nil
}

func (r *Repository) load() {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		log.Printf("file: error loading pollution data from %s: %v", r.path, err)
		r.dataset = domain.EmptyDataset()
		return
	}

	var ds domain.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		log.Printf("file: error parsing pollution data from %s: %v", r.path, err)
		r.dataset = domain.EmptyDataset()
		return
	}

	// Normalize so empty sections encode as [] rather than null
	if ds.Cities == nil {
		ds.Cities = []string{}
	}
	if ds.PollutionTypes == nil {
		ds.PollutionTypes = []string{}
	}
	if ds.Data == nil {
		ds.Data = []domain.PollutionRecord{}
	}

	r.dataset = ds
	log.Printf("file: loaded pollution dataset with %d records", len(ds.Data))
}

// Health checks that the dataset file exists
func (r *Repository) Health(_ context.Context) error {
	if _, err := os.Stat(r.path); err != nil {
		return fmt.Errorf("file: health check failed: %w", err)
	}
	return nil
}
