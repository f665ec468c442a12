package cfg

type Cfg struct {
	// Source configuration
	File    string
	Profile string

	// Datastore configuration
	Datastore   string
	SupabaseURL string
	SupabaseKey string
	DSN         string

	// Application configuration
	UserAgent   string
	HTTPTimeout int
	LogFile     string
	EnvFile     string
	Debug       bool
	Version     string
}

// Datastore kinds accepted by --datastore.
const (
	DatastoreREST     = "rest"
	DatastoreSQLite   = "sqlite"
	DatastorePostgres = "postgres"
)

func (c *Cfg) RemoteMode() bool {
	return c.File == ""
}
