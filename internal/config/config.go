package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Config holds application configuration values.
type Config struct {
	Secret        string
	DatabaseDSN   string
	DBDriver      string
	HTTPPort      string
	MenuCSV       string
	AdminEmail    string
	AdminPassword string
	Location      *time.Location
	CORSOrigins   []string
}

// Load reads configuration from environment variables with reasonable defaults.
func Load() Config {
	secret := os.Getenv("SECRET")
	if secret == "" {
		secret = "dev_secret"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	driver := strings.ToLower(os.Getenv("DB_DRIVER"))
	switch driver {
	case "", DriverSQLite:
		driver = DriverSQLite
	case "postgres", DriverPostgres:
		driver = DriverPostgres
	default:
		log.Printf("unknown DB_DRIVER value %q, defaulting to %s", driver, DriverSQLite)
		driver = DriverSQLite
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		if driver == DriverSQLite {
			dsn = "hotel.db"
		} else {
			host := envOr("HOST", "localhost")
			user := envOr("USER", "postgres")
			dbPort := envOr("PORT", "5432")
			name := envOr("NAME", "hotel")
			password := os.Getenv("PASSWORD")
			dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, dbPort, name)
		}
	}

	// Validate that port is numeric.
	if _, err := strconv.Atoi(port); err != nil {
		log.Printf("invalid HTTP_PORT value %q, defaulting to 8080", port)
		port = "8080"
	}

	loc := time.UTC
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			log.Printf("invalid TIMEZONE value %q, defaulting to UTC", tz)
		} else {
			loc = l
		}
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Config{
		Secret:        secret,
		DatabaseDSN:   dsn,
		DBDriver:      driver,
		HTTPPort:      port,
		MenuCSV:       envOr("MENU_CSV", "assets/menu.csv"),
		AdminEmail:    strings.ToLower(os.Getenv("ADMIN_EMAIL")),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		Location:      loc,
		CORSOrigins:   origins,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
