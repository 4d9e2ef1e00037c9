// Command generator synthesizes the pollution dataset consumed by the API
// server and writes it to a JSON file. Output is fully deterministic: running
// the generator twice produces byte-identical files.
//
// Usage:
//
//	go run ./cmd/generator -out data/pollution_data.json
//
// When DATABASE_URL is set the dataset is also seeded into PostgreSQL so the
// server can be pointed at the database instead of the file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/Disha-01-alt/PollutionBackend/internal/domain"
	"github.com/Disha-01-alt/PollutionBackend/internal/generator"
	"github.com/Disha-01-alt/PollutionBackend/internal/repository/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", filepath.Join("data", "pollution_data.json"), "output path for the dataset JSON file")
	indent := flag.Bool("indent", true, "pretty-print the output JSON")
	probe := flag.Bool("probe", false, "probe the reference data source sites and log reachability")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	ctx := context.Background()

	if *probe {
		generator.ProbeSources(ctx)
	}

	log.Println("Generating pollution dataset...")
	ds := generator.BuildDataset()

	if err := writeJSON(*out, ds, *indent); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}
	log.Printf("wrote dataset: %s", *out)

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		if err := seedDatabase(ctx, dbURL, ds); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
		log.Println("seeded dataset into PostgreSQL")
	}

	printStats(ds)
	return nil
}

func writeJSON(path string, v any, indent bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	var data []byte
	var err error
	if indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

func seedDatabase(ctx context.Context, dbURL string, ds domain.Dataset) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := postgres.NewRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}
	return repo.ReplaceDataset(ctx, ds)
}

func printStats(ds domain.Dataset) {
	typeCounts := map[string]int{}
	statusCounts := map[string]int{}
	for _, rec := range ds.Data {
		typeCounts[rec.Type]++
		statusCounts[rec.Status]++
	}

	fmt.Printf("Total records: %d\n", len(ds.Data))
	fmt.Printf("Cities covered: %d\n", len(ds.Cities))
	fmt.Printf("Pollution types: %d (", len(ds.PollutionTypes))
	for i, pt := range ds.PollutionTypes {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Print(pt)
	}
	fmt.Println(")")

	fmt.Printf("By type: water=%d, soil=%d, plastic=%d\n",
		typeCounts[domain.TypeWater], typeCounts[domain.TypeSoil], typeCounts[domain.TypePlastic])

	statuses := make([]string, 0, len(statusCounts))
	for s := range statusCounts {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)
	fmt.Print("By status:")
	for _, s := range statuses {
		fmt.Printf(" %s=%d", s, statusCounts[s])
	}
	fmt.Println()
}
