package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mealtrack/mealtrack-server/internal/config"
	storepkg "github.com/mealtrack/mealtrack-server/internal/store"
	storepg "github.com/mealtrack/mealtrack-server/internal/store/postgres"
	storesqlite "github.com/mealtrack/mealtrack-server/internal/store/sqlite"
)

// NewStore builds the store.Store selected by cfg.DBDriver. The schema is
// applied synchronously; the service serves no traffic before the meals
// table exists.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.DBDriver {
	case "postgres":
		dsn := cfg.PostgresDSN
		if dsn == "" {
			return nil, fmt.Errorf("MEAL_SERVICE_POSTGRES_DSN is required when DB_DRIVER=postgres")
		}
		db, err := storepg.Open(dsn)
		if err != nil {
			return nil, err
		}
		if err := storepg.EnsureSchema(ctx, db); err != nil {
			return nil, err
		}
		log.Debug().Str("driver", cfg.DBDriver).Msg("store schema ensured")
		return storepg.NewWithDB(db), nil

	case "sqlite":
		db, err := storesqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := storesqlite.EnsureSchema(ctx, db); err != nil {
			return nil, err
		}
		log.Debug().Str("driver", cfg.DBDriver).Str("path", cfg.SQLitePath).Msg("store schema ensured")
		return storesqlite.NewWithDB(db), nil

	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
