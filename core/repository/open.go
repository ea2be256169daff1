package repository

import (
	"context"
	"fmt"
	"sort"

	"bulk-seeder/core/database"
)

// Open connects to the backend described by cfg.
func Open(cfg database.Config) (Backend, error) {
	switch cfg.Driver {
	case database.DriverMongoDB:
		client, err := database.ConnectMongo(cfg)
		if err != nil {
			return nil, err
		}
		return NewMongoBackend(client, cfg.Name), nil
	case database.DriverMySQL, database.DriverSQLite, "":
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, err
		}
		return NewGormBackend(db), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// OpenAll opens every configured connection and registers it.
// Connections that fail to open are left unregistered and reported in the
// returned map, so units using them fail with ErrUnavailable at run time.
func OpenAll(ctx context.Context, configs map[string]database.Config) (*Registry, map[string]error) {
	reg := NewRegistry()
	failed := make(map[string]error)

	names := make([]string, 0, len(configs))
	for name := range configs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			failed[name] = err
			continue
		}
		b, err := Open(configs[name])
		if err != nil {
			failed[name] = err
			continue
		}
		reg.Register(name, b)
	}
	return reg, failed
}
