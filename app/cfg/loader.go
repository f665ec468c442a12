package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Source configuration
	File    string `long:"file" env:"GRANTS_FILE" description:"Local Grants.gov XML extract to import (remote fetch when empty)"`
	Profile string `long:"profile" env:"IMPORT_PROFILE" description:"YAML import profile (built-in defaults when empty)"`

	// Datastore configuration
	Datastore   string `long:"datastore" env:"DATASTORE" default:"rest" choice:"rest" choice:"sqlite" choice:"postgres" description:"Datastore kind"`
	SupabaseURL string `long:"supabase-url" env:"SUPABASE_URL" description:"Supabase project URL (rest datastore)"`
	SupabaseKey string `long:"supabase-key" env:"SUPABASE_SERVICE_ROLE_KEY" description:"Supabase service role key (rest datastore)"`
	DSN         string `long:"dsn" env:"DATABASE_URL" description:"Database DSN (sqlite or postgres datastore)"`

	// Application configuration
	UserAgent   string `long:"user-agent" env:"USER_AGENT" default:"Grants Import/1.0" description:"User agent string for HTTP requests"`
	HTTPTimeout int    `long:"http-timeout" env:"HTTP_TIMEOUT" default:"0" description:"HTTP timeout in seconds (0 disables the timeout)"`
	LogFile     string `long:"log-file" env:"LOG_FILE" description:"Write logs to a rotated file instead of stdout"`
	EnvFile     string `long:"env-file" env:"ENV_FILE" default:".env" description:"Dotenv file loaded before parsing configuration"`
	Debug       bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	return LoadArgs(os.Args[1:])
}

func LoadArgs(args []string) (*Cfg, error) {
	if err := loadEnvFile(args); err != nil {
		return nil, err
	}

	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		File:        raw.File,
		Profile:     raw.Profile,
		Datastore:   raw.Datastore,
		SupabaseURL: raw.SupabaseURL,
		SupabaseKey: raw.SupabaseKey,
		DSN:         raw.DSN,
		UserAgent:   raw.UserAgent,
		HTTPTimeout: raw.HTTPTimeout,
		LogFile:     raw.LogFile,
		EnvFile:     raw.EnvFile,
		Debug:       raw.Debug,
		Version:     GetVersion(),
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

// loadEnvFile populates the environment from a dotenv file before flags are
// parsed, so env-backed options can come from it. Variables already set in the
// process environment win.
func loadEnvFile(args []string) error {
	path := cmp.Or(envFileArg(args), os.Getenv("ENV_FILE"), ".env")

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func envFileArg(args []string) string {
	for i, arg := range args {
		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
		if value, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return value
		}
	}
	return ""
}

func validate(cfg *Cfg) error {
	switch cfg.Datastore {
	case DatastoreREST:
		if cfg.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required for the %s datastore", cfg.Datastore)
		}
		if cfg.SupabaseKey == "" {
			return fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY is required for the %s datastore", cfg.Datastore)
		}
	case DatastoreSQLite, DatastorePostgres:
		if cfg.DSN == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s datastore", cfg.Datastore)
		}
	default:
		return fmt.Errorf("unknown datastore: %s", cfg.Datastore)
	}

	if cfg.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout must be non-negative")
	}

	return nil
}
