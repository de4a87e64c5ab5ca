package migrations

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.etcd.io/bbolt"

	v1 "github.com/Roma7-7-7/node-notifier/internal/dal/migrations/v1"
	v2 "github.com/Roma7-7-7/node-notifier/internal/dal/migrations/v2"
)

const migrationsBucket = "migrations"

// Migration is a single schema step. Versions start at 1 and never repeat.
type Migration interface {
	Version() int
	Description() string
	Up(db *bbolt.DB) error
}

// All returns every known migration sorted by version.
func All() []Migration {
	res := []Migration{
		v1.New(),
		v2.New(),
	}
	slices.SortFunc(res, func(a, b Migration) int {
		return cmp.Compare(a.Version(), b.Version())
	})
	return res
}

// RunMigrations applies every migration from All that is not recorded in the migrations bucket yet.
func RunMigrations(db *bbolt.DB, log *slog.Logger) error {
	return Run(db, log, All()...)
}

func Run(db *bbolt.DB, log *slog.Logger, migrations ...Migration) error {
	log = log.With("component", "migrations")

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(migrationsBucket))
		return err
	}); err != nil {
		return fmt.Errorf("ensure migrations bucket: %w", err)
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return fmt.Errorf("get applied migrations: %w", err)
	}

	count := 0
	for _, m := range migrations {
		version := m.Version()
		if _, ok := applied[version]; ok {
			log.Debug("Skipping applied migration", "version", version)
			continue
		}

		log.Info("Applying migration", "version", version, "description", m.Description())
		start := time.Now()
		if err := m.Up(db); err != nil {
			return fmt.Errorf("migration v%d: %w", version, err)
		}
		if err := recordMigration(db, version, time.Now()); err != nil {
			return fmt.Errorf("record migration v%d: %w", version, err)
		}
		count++
		log.Info("Migration applied", "version", version, "duration", time.Since(start))
	}

	log.Info("Migrations completed", "applied", count)
	return nil
}

func appliedMigrations(db *bbolt.DB) (map[int]time.Time, error) {
	res := make(map[int]time.Time)

	err := db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(migrationsBucket))
		if b == nil {
			return nil
		}

		return b.ForEach(func(k, v []byte) error {
			var version int
			if _, err := fmt.Sscanf(string(k), "v%d", &version); err != nil {
				return fmt.Errorf("parse version from key %s: %w", k, err)
			}
			at, err := time.Parse(time.RFC3339, string(v))
			if err != nil {
				return fmt.Errorf("parse timestamp for v%d: %w", version, err)
			}
			res[version] = at
			return nil
		})
	})

	return res, err
}

func recordMigration(db *bbolt.DB, version int, at time.Time) error {
	return db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(migrationsBucket))
		if b == nil {
			return errors.New("migrations bucket not found")
		}
		return b.Put(fmt.Appendf(nil, "v%d", version), []byte(at.Format(time.RFC3339)))
	})
}
