package database

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lysyi3m/grants-import/app/cfg"
)

// Open connects to the datastore selected in the configuration. SQL stores
// get the grants table created on first use.
func Open(c *cfg.Cfg, httpClient *http.Client) (Store, error) {
	switch c.Datastore {
	case cfg.DatastoreREST:
		slog.Info("Using REST datastore", "url", c.SupabaseURL, "table", TableName)
		return NewRESTGrantRepository(c.SupabaseURL, c.SupabaseKey, httpClient, c.UserAgent), nil

	case cfg.DatastoreSQLite, cfg.DatastorePostgres:
		db, err := NewConnection(c.Datastore, c.DSN)
		if err != nil {
			return nil, err
		}

		version, dirty, err := RunMigrations(db)
		if err != nil {
			db.Close()
			return nil, err
		}
		slog.Info("Using SQL datastore", "driver", c.Datastore, "migration_version", version, "dirty", dirty)

		return NewSQLGrantRepository(db), nil

	default:
		return nil, fmt.Errorf("unknown datastore: %s", c.Datastore)
	}
}
