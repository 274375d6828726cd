package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultUsers is the board's user list when none is configured
var DefaultUsers = []string{"User 1", "User 2", "User 3", "User 4"}

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"

	// In-memory journal; lives only as long as the process
	DefaultSQLiteURL = "file::memory:?cache=shared"
)

type Config struct {
	Port         int
	Users        []string
	DefaultUser  string
	Policy       string
	DatabaseURL  string
	DatabaseType string
	EnvFile      string
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var users string

	fs := flag.NewFlagSet("noteboard", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&users, "users", "", "Comma-separated user list")
	fs.StringVar(&cfg.DefaultUser, "default-user", "", "Initial acting user (default: first user)")
	fs.StringVar(&cfg.Policy, "policy", "", "Vote matrix policy when a note is added (additive or reset)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Journal database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Journal database type (sqlite or postgres)")
	fs.StringVar(&cfg.EnvFile, "env-file", ".env", "Optional dotenv file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// .env never overrides variables already set in the environment
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
		}
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if users == "" {
		users = os.Getenv("NOTEBOARD_USERS")
	}
	if users != "" {
		cfg.Users = splitUsers(users)
		if len(cfg.Users) == 0 {
			return Config{}, errors.New("user list is empty")
		}
	} else {
		cfg.Users = append([]string(nil), DefaultUsers...)
	}

	if cfg.DefaultUser == "" {
		cfg.DefaultUser = os.Getenv("NOTEBOARD_DEFAULT_USER")
	}
	if cfg.Policy == "" {
		cfg.Policy = os.Getenv("NOTEBOARD_POLICY")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultSQLiteURL
	}

	return cfg, nil
}

func splitUsers(s string) []string {
	var out []string
	for _, u := range strings.Split(s, ",") {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}
