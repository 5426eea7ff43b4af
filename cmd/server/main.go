package main

import (
    "log"
    "os"
    "strings"

    "github.com/gin-gonic/gin"
    "github.com/joho/godotenv"

    "github.com/acompvip/vip_backend_v1/internal/config"
    "github.com/acompvip/vip_backend_v1/internal/database"
    "github.com/acompvip/vip_backend_v1/internal/routes"
)

func main() {
    // Load .env (non-fatal if missing in production)
    _ = godotenv.Load()

    cfg := config.Load()

    db, err := database.Connect(cfg)
    if err != nil {
        log.Fatalf("database connection failed: %v", err)
    }

    if err := database.Migrate(db); err != nil {
        log.Fatalf("database migration failed: %v", err)
    }

    if err := database.SeedAdmin(db, cfg); err != nil {
        log.Fatalf("admin seed failed: %v", err)
    }

    if err := database.SeedSiteConfig(db); err != nil {
        log.Fatalf("site config seed failed: %v", err)
    }

    if strings.EqualFold(cfg.SeedDemoData, "true") {
        if err := database.SeedDemoData(db); err != nil {
            log.Fatalf("demo data seed failed: %v", err)
        }
    }

    r := gin.Default()
    routes.Register(r, db, cfg)

    port := cfg.Port
    if port == "" {
        port = "8080"
    }

    if err := r.Run(":" + port); err != nil {
        log.Println("server exited with error:", err)
        os.Exit(1)
    }
}
