package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/mauv0809/roster-api/internal/config"
	"github.com/mauv0809/roster-api/internal/database"
)

type passportSeed struct {
	country string
	codeISO string
}

var passports = []passportSeed{
	{"Algérie", "DZ"},
	{"Allemagne", "DE"},
	{"Angleterre", "GB"},
	{"Argentine", "AR"},
	{"Belgique", "BE"},
	{"Brésil", "BR"},
	{"Cameroun", "CM"},
	{"Canada", "CA"},
	{"Colombie", "CO"},
	{"Côte d'Ivoire", "CI"},
	{"Croatie", "HR"},
	{"Danemark", "DK"},
	{"Émirats arabes unis", "AE"},
	{"Espagne", "ES"},
	{"États-Unis", "US"},
	{"France", "FR"},
	{"Ghana", "GH"},
	{"Italie", "IT"},
	{"Japon", "JP"},
	{"Mali", "ML"},
	{"Maroc", "MA"},
	{"Mexique", "MX"},
	{"Nigeria", "NG"},
	{"Pays-Bas", "NL"},
	{"Portugal", "PT"},
	{"Sénégal", "SN"},
	{"Suisse", "CH"},
	{"Tunisie", "TN"},
	{"Uruguay", "UY"},
}

// Simplified config loading for the script
func loadConfig() config.DBConfig {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	cfg := config.DBConfig{
		Name:          "roster.db",
		MigrationsDir: "./migrations",
		MaxOpenConns:  1,
		Turso: config.TursoConfig{
			PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
			AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
		},
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Name = v
	}
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		cfg.MigrationsDir = v
	}
	return cfg
}

func main() {
	log.Info("Starting database seeder...")
	db, teardown, err := database.InitDB(loadConfig())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	ctx := context.Background()
	startTime := time.Now()
	err = database.WithTx(ctx, db, func(tx *sql.Tx) error {
		inserted, err := seedPassports(ctx, tx)
		if err != nil {
			return err
		}
		reindexed, err := reindexPositions(ctx, tx)
		if err != nil {
			return err
		}
		log.Info("Seeded passports", "upserted", inserted, "total", len(passports), "positionsReindexed", reindexed)
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to seed database: %s", err)
	}
	log.Info("Seeding finished", "duration", time.Since(startTime))
}

// seedPassports upserts the reference rows keyed by ISO code, refreshing the
// country name and its search key.
func seedPassports(ctx context.Context, tx *sql.Tx) (int64, error) {
	valueArgs := make([]any, 0, len(passports)*3)
	for _, p := range passports {
		valueArgs = append(valueArgs, p.country, p.codeISO, database.SearchKey(p.country))
	}
	res, err := tx.ExecContext(ctx, `
		INSERT INTO passport (country, code_iso, country_key)
		VALUES `+database.Tuples(len(passports), 3)+`
		ON CONFLICT (code_iso) DO UPDATE SET
			country = excluded.country,
			country_key = excluded.country_key`, valueArgs...)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert passports: %w", err)
	}
	return res.RowsAffected()
}

// reindexPositions rewrites position_key for every player, for rows written
// before the key existed or by tools that bypass the API.
func reindexPositions(ctx context.Context, tx *sql.Tx) (int, error) {
	rows, err := tx.QueryContext(ctx, "SELECT id_player, position FROM player WHERE position IS NOT NULL")
	if err != nil {
		return 0, fmt.Errorf("failed to read positions: %w", err)
	}
	type position struct {
		id   int
		text string
	}
	var positions []position
	for rows.Next() {
		var p position
		if err := rows.Scan(&p.id, &p.text); err != nil {
			rows.Close()
			return 0, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to read positions: %w", err)
	}

	for _, p := range positions {
		if _, err := tx.ExecContext(ctx, "UPDATE player SET position_key = ? WHERE id_player = ?", database.SearchKey(p.text), p.id); err != nil {
			return 0, fmt.Errorf("failed to reindex player %d: %w", p.id, err)
		}
	}
	return len(positions), nil
}
