package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	_ "github.com/lib/pq"
	"github.com/mallhub/backend/internal/infrastructure/config"
	"github.com/mallhub/backend/internal/infrastructure/logger"
	"github.com/mallhub/backend/internal/infrastructure/migration"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const defaultMigrationsPath = "migrations"

var errUsage = errors.New("invalid usage")

// dbCommand runs against an open migrator
type dbCommand func(m *migration.Migrator, log *zap.Logger, args []string) error

var dbCommands = map[string]dbCommand{
	"up":      func(m *migration.Migrator, _ *zap.Logger, _ []string) error { return m.Up() },
	"down":    func(m *migration.Migrator, _ *zap.Logger, _ []string) error { return m.Down() },
	"step":    stepCmd,
	"goto":    gotoCmd,
	"version": versionCmd,
	"force":   forceCmd,
	"drop":    dropCmd,
}

func main() {
	var (
		migrationsPath string
		driver         string
		logLevel       string
	)
	flag.StringVar(&migrationsPath, "path", "", "Path to the migrations root (default: database.migrations_path)")
	flag.StringVar(&driver, "driver", "", "Database driver: postgres or sqlite (default: database.driver)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	err = run(args[0], args[1:], migrationsPath, driver, log)
	_ = log.Sync()
	if errors.Is(err, errUsage) {
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal("Migration command failed", zap.String("command", args[0]), zap.Error(err))
	}
}

func run(command string, args []string, migrationsPath, driver string, log *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if driver != "" {
		cfg.Database.Driver = driver
	}
	dialect, err := migration.ParseDialect(cfg.Database.Driver)
	if err != nil {
		return err
	}

	root, err := resolveRoot(migrationsPath, cfg.Database.MigrationsPath)
	if err != nil {
		return err
	}

	log.Info("Migration CLI started",
		zap.String("command", command),
		zap.String("dialect", string(dialect)),
		zap.String("migrations_path", root),
	)

	// File-only commands.
	switch command {
	case "create":
		return createCmd(root, args, log)
	case "list":
		return listCmd(dialect.Dir(root), log)
	case "check":
		if err := migration.CheckAligned(root); err != nil {
			return err
		}
		log.Info("Migration sets are aligned")
		return nil
	}

	cmd, ok := dbCommands[command]
	if !ok {
		log.Error("Unknown command", zap.String("command", command))
		return errUsage
	}

	db, err := sql.Open(dialect.DriverName(), cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping database: %w", err)
	}

	// The migrator owns db from here on.
	m, err := migration.New(db, dialect, root, log)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer func() {
		_ = m.Close()
	}()

	return cmd(m, log, args)
}

// resolveRoot picks the migrations root: the flag, then config, then
// ./migrations or the directory two levels above the executable.
func resolveRoot(flagPath, configured string) (string, error) {
	path := flagPath
	if path == "" && configured != defaultMigrationsPath {
		path = configured
	}
	if path == "" {
		path = defaultMigrationsPath
		if _, err := os.Stat(path); err != nil {
			if exe, err := os.Executable(); err == nil {
				candidate := filepath.Join(filepath.Dir(exe), "..", "..", defaultMigrationsPath)
				if _, err := os.Stat(candidate); err == nil {
					path = candidate
				}
			}
		}
	}
	return filepath.Abs(path)
}

func createCmd(root string, args []string, log *zap.Logger) error {
	if len(args) < 1 {
		log.Error("Migration name required. Usage: migrate create <name> [description]")
		return errUsage
	}
	description := ""
	if len(args) > 1 {
		description = args[1]
	}

	files, err := migration.CreateMigration(root, args[0], description)
	if err != nil {
		return err
	}
	for _, mf := range files {
		log.Info("Migration created",
			zap.String("version", mf.Version),
			zap.String("dialect", string(mf.Dialect)),
			zap.String("up_file", mf.UpPath),
			zap.String("down_file", mf.DownPath),
		)
	}
	return nil
}

func listCmd(dir string, log *zap.Logger) error {
	names, err := migration.ListMigrations(dir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		log.Info("No migrations found")
		return nil
	}
	log.Info("Available migrations", zap.Int("count", len(names)))
	for _, name := range names {
		fmt.Println("  -", name)
	}
	return nil
}

func stepCmd(m *migration.Migrator, log *zap.Logger, args []string) error {
	if len(args) < 1 {
		log.Error("Step count required. Usage: migrate step <n>")
		return errUsage
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid step count %q", args[0])
	}
	return m.Steps(n)
}

func gotoCmd(m *migration.Migrator, log *zap.Logger, args []string) error {
	if len(args) < 1 {
		log.Error("Version required. Usage: migrate goto <version>")
		return errUsage
	}
	version, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid version %q", args[0])
	}
	return m.GoTo(uint(version))
}

func versionCmd(m *migration.Migrator, log *zap.Logger, _ []string) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	if version == 0 {
		log.Info("No migrations applied")
		return nil
	}
	log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

func forceCmd(m *migration.Migrator, log *zap.Logger, args []string) error {
	if len(args) < 1 {
		log.Error("Version required. Usage: migrate force <version>")
		return errUsage
	}
	version, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid version %q", args[0])
	}
	log.Warn("Forcing migration version", zap.Int("version", version))
	return m.Force(version)
}

func dropCmd(m *migration.Migrator, log *zap.Logger, args []string) error {
	if !slices.Contains(args, "-confirm") && !slices.Contains(args, "--confirm") {
		log.Error("Drop removes every table. Re-run as 'migrate drop -confirm'.")
		return errUsage
	}
	return m.Drop()
}

func printUsage() {
	fmt.Println(`Mallhub database migration tool

Usage:
  migrate [flags] <command> [arguments]

Commands:
  up                    Apply all pending migrations
  down                  Roll back all migrations
  step <n>              Apply n migrations (negative rolls back)
  goto <version>        Migrate to a specific version
  version               Show the current version
  force <version>       Set the version without running migrations
  drop -confirm         Drop every table
  create <name> [desc]  Create a migration pair for every dialect
  list                  List migrations of the selected dialect
  check                 Verify that all dialects share one history

Flags:
  -path string          Migrations root (default: ./migrations)
  -driver string        postgres or sqlite (default: database.driver)
  -log-level string     debug, info, warn, error (default: info)

Configuration comes from config.toml and MALLHUB_DATABASE_* variables,
for example MALLHUB_DATABASE_DRIVER=sqlite MALLHUB_DATABASE_PATH=mallhub.db.`)
}
