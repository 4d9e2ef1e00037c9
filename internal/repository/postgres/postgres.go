// Package postgres implements the dataset repository over PostgreSQL. It is
// optional: the server uses it only when DATABASE_URL is set and reachable,
// and the generator seeds it alongside the JSON file.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Disha-01-alt/PollutionBackend/internal/domain"
)

// Repository implements domain.DatasetRepository over PostgreSQL
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// EnsureSchema creates the dataset tables if they do not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS pollution_catalog (
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			position INT NOT NULL,
			PRIMARY KEY (kind, name)
		)`,
		`CREATE TABLE IF NOT EXISTS pollution_records (
			position INT PRIMARY KEY,
			city TEXT NOT NULL,
			type TEXT NOT NULL,
			status TEXT NOT NULL,
			year INT NOT NULL,
			aqi DOUBLE PRECISION,
			contamination_level DOUBLE PRECISION,
			pollution_index DOUBLE PRECISION,
			metrics JSONB NOT NULL
		)`,
	}

	for _, q := range queries {
		if _, err := r.pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("postgres: failed to ensure schema: %w", err)
		}
	}

	return nil
}

// ReplaceDataset atomically replaces the stored dataset
func (r *Repository) ReplaceDataset(ctx context.Context, ds domain.Dataset) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM pollution_catalog`); err != nil {
		return fmt.Errorf("postgres: failed to clear catalog: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM pollution_records`); err != nil {
		return fmt.Errorf("postgres: failed to clear records: %w", err)
	}

	if err := insertCatalog(ctx, tx, "city", ds.Cities); err != nil {
		return err
	}
	if err := insertCatalog(ctx, tx, "pollution_type", ds.PollutionTypes); err != nil {
		return err
	}

	for i, rec := range ds.Data {
		metrics, err := json.Marshal(rec.Metrics)
		if err != nil {
			return fmt.Errorf("postgres: failed to marshal metrics: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO pollution_records (
				position, city, type, status, year,
				aqi, contamination_level, pollution_index, metrics
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, i, rec.City, rec.Type, rec.Status, rec.Year,
			rec.AQI, rec.ContaminationLevel, rec.PollutionIndex, metrics)
		if err != nil {
			return fmt.Errorf("postgres: failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: failed to commit dataset: %w", err)
	}

	return nil
}

func insertCatalog(ctx context.Context, tx pgx.Tx, kind string, names []string) error {
	for i, name := range names {
		_, err := tx.Exec(ctx, `
			INSERT INTO pollution_catalog (kind, name, position) VALUES ($1, $2, $3)
		`, kind, name, i)
		if err != nil {
			return fmt.Errorf("postgres: failed to insert %s %q: %w", kind, name, err)
		}
	}
	return nil
}

// LoadDataset retrieves the stored dataset, preserving generation order
func (r *Repository) LoadDataset(ctx context.Context) (domain.Dataset, error) {
	cities, err := r.loadCatalog(ctx, "city")
	if err != nil {
		return domain.Dataset{}, err
	}

	types, err := r.loadCatalog(ctx, "pollution_type")
	if err != nil {
		return domain.Dataset{}, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT city, type, status, year,
			   aqi, contamination_level, pollution_index, metrics
		FROM pollution_records
		ORDER BY position
	`)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("postgres: failed to query records: %w", err)
	}
	defer rows.Close()

	data := []domain.PollutionRecord{}
	for rows.Next() {
		var rec domain.PollutionRecord
		var metrics []byte

		err := rows.Scan(
			&rec.City, &rec.Type, &rec.Status, &rec.Year,
			&rec.AQI, &rec.ContaminationLevel, &rec.PollutionIndex, &metrics,
		)
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("postgres: failed to scan record: %w", err)
		}

		if err := json.Unmarshal(metrics, &rec.Metrics); err != nil {
			return domain.Dataset{}, fmt.Errorf("postgres: failed to parse metrics: %w", err)
		}

		data = append(data, rec)
	}
	if err := rows.Err(); err != nil {
		return domain.Dataset{}, fmt.Errorf("postgres: failed to read records: %w", err)
	}

	return domain.Dataset{
		Cities:         cities,
		PollutionTypes: types,
		Data:           data,
	}, nil
}

func (r *Repository) loadCatalog(ctx context.Context, kind string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT name FROM pollution_catalog WHERE kind = $1 ORDER BY position
	`, kind)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query %s catalog: %w", kind, err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan %s name: %w", kind, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read %s catalog: %w", kind, err)
	}

	return names, nil
}

// Health checks database connectivity
func (r *Repository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}
