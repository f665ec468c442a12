package database

import (
	"context"

	"github.com/lysyi3m/grants-import/app/grants"
)

// TableName is the datastore table grants are written to
const TableName = "grants"

// GrantRepository inserts one normalized grant per call. Implementations do
// not deduplicate: inserting the same grant twice stores two rows.
type GrantRepository interface {
	InsertGrant(ctx context.Context, grant grants.Grant) error
}

// Store is a GrantRepository owning a connection for the duration of a run
type Store interface {
	GrantRepository
	Close() error
}
