package config

import (
    "os"
)

type Config struct {
    Port       string
    DBHost     string
    DBPort     string
    DBUser     string
    DBPassword string
    DBName     string
    DBSSLMode  string
    JWTSecret  string
    // TokenTTLDays is the admin token lifetime in days.
    TokenTTLDays string
    AdminEmail    string
    AdminPassword string
    AdminName     string
    // CORSOrigins is a comma-separated allowlist; empty allows all.
    CORSOrigins  string
    SeedDemoData string
}

func Load() *Config {
    return &Config{
        Port:       getenv("PORT", "8080"),
        DBHost:     getenv("DB_HOST", "localhost"),
        DBPort:     getenv("DB_PORT", "5432"),
        DBUser:     getenv("DB_USER", "postgres"),
        DBPassword: getenv("DB_PASSWORD", "postgres"),
        DBName:     getenv("DB_NAME", "vip_db"),
        DBSSLMode:  getenv("DB_SSLMODE", "disable"),
        JWTSecret:  getenv("JWT_SECRET", "supersecret_change_me"),
        TokenTTLDays: getenv("TOKEN_TTL_DAYS", "7"),
        AdminEmail:    getenv("ADMIN_EMAIL", "admin@acompanhantes.com"),
        AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
        AdminName:     getenv("ADMIN_NAME", "Administrador"),
        CORSOrigins:  getenv("CORS_ORIGINS", ""),
        SeedDemoData: getenv("SEED_DEMO_DATA", "false"),
    }
}

func getenv(key, fallback string) string {
    v := os.Getenv(key)
    if v == "" {
        return fallback
    }
    return v
}
