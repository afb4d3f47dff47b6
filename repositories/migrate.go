package repositories

import (
	"database/sql"
	"embed"
	stderrors "errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrations embed.FS

// Migrate brings the schema of the given database up to date.
// It uses its own connection, closed before returning.
func Migrate(dialect Dialect, dsn string) error {
	driverName, source, err := dataSource(dialect, dsn)
	if err != nil {
		return err
	}
	db, err := sql.Open(driverName, source)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	var driver database.Driver
	switch dialect {
	case DialectSQLite:
		driver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	case DialectPostgres:
		driver, err = migratepostgres.WithInstance(db, &migratepostgres.Config{})
	}
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to prepare migration driver: %w", err)
	}

	src, err := iofs.New(migrations, "migrations/"+string(dialect))
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, string(dialect), driver)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	// Closing the migrator closes db too.
	defer m.Close()

	if err := m.Up(); err != nil && !stderrors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
