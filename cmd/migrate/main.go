package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/devfolio/site/internal/config"
	"github.com/devfolio/site/internal/logging"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)   apply pending migrations
  status      list applied and pending migrations`)
	os.Exit(1)
}

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	dir := findMigrationDir()

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "":
		apply(ctx, pool, dir)
	case "status":
		status(ctx, pool, dir)
	default:
		usage()
	}
}

func findMigrationDir() string {
	dir := "migrations"
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		dir = "../migrations"
	}
	return dir
}

// collectFiles returns the .sql migration file names in apply order.
func collectFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.Fatal("read migrations dir failed", "error", err)
	}
	var files []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files
}

func ensureVersionTable(ctx context.Context, pool *pgxpool.Pool) {
	_, err := pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			version text PRIMARY KEY,
			applied_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		logging.Fatal("create schema_migrations failed", "error", err)
	}
}

func appliedVersions(ctx context.Context, pool *pgxpool.Pool) map[string]bool {
	rows, err := pool.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		logging.Fatal("query schema_migrations failed", "error", err)
	}
	defer rows.Close()

	applied := map[string]bool{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			logging.Fatal("scan version failed", "error", err)
		}
		applied[v] = true
	}
	return applied
}

func apply(ctx context.Context, pool *pgxpool.Pool, dir string) {
	ensureVersionTable(ctx, pool)
	applied := appliedVersions(ctx, pool)

	for _, name := range collectFiles(dir) {
		if applied[name] {
			continue
		}
		sql, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logging.Fatal("read migration failed", "file", name, "error", err)
		}

		tx, err := pool.Begin(ctx)
		if err != nil {
			logging.Fatal("begin failed", "error", err)
		}
		if _, err := tx.Exec(ctx, string(sql)); err != nil {
			_ = tx.Rollback(ctx)
			logging.Fatal("migration failed", "file", name, "error", err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
			_ = tx.Rollback(ctx)
			logging.Fatal("record migration failed", "file", name, "error", err)
		}
		if err := tx.Commit(ctx); err != nil {
			logging.Fatal("commit failed", "file", name, "error", err)
		}
		slog.Info("applied", "file", name)
	}
}

func status(ctx context.Context, pool *pgxpool.Pool, dir string) {
	ensureVersionTable(ctx, pool)
	applied := appliedVersions(ctx, pool)

	for _, name := range collectFiles(dir) {
		state := "pending"
		if applied[name] {
			state = "applied"
		}
		fmt.Printf("%-10s %s\n", state, name)
	}
}
