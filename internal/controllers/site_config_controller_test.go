package controllers_test

import (
    "net/http"
    "testing"

    "github.com/gin-gonic/gin"

    "github.com/acompvip/vip_backend_v1/internal/database"
)

func TestSiteConfigGetAndUpdate(t *testing.T) {
    r, db := setupAPI(t)
    token := adminToken(t, r, db)

    // Nothing seeded yet.
    w := doJSON(t, r, http.MethodGet, "/api/config", "", nil)
    if w.Code != http.StatusNotFound {
        t.Fatalf("unseeded config: got status %d, want 404", w.Code)
    }

    if err := database.SeedSiteConfig(db); err != nil {
        t.Fatalf("seed site config: %v", err)
    }

    w = doJSON(t, r, http.MethodGet, "/api/config", "", nil)
    if w.Code != http.StatusOK {
        t.Fatalf("public config: got status %d, want 200", w.Code)
    }
    var cfg struct {
        SiteName  string `json:"nomeSite"`
        DarkTheme bool   `json:"temaEscuro"`
    }
    decodeBody(t, w, &cfg)
    if cfg.SiteName != "Acompanhantes VIP" || cfg.DarkTheme {
        t.Fatalf("seeded config = %+v", cfg)
    }

    // Partial update leaves other fields alone.
    w = doJSON(t, r, http.MethodPut, "/api/admin/config", token, gin.H{"temaEscuro": true})
    if w.Code != http.StatusOK {
        t.Fatalf("update config: got status %d, want 200", w.Code)
    }

    w = doJSON(t, r, http.MethodGet, "/api/config", "", nil)
    decodeBody(t, w, &cfg)
    if cfg.SiteName != "Acompanhantes VIP" || !cfg.DarkTheme {
        t.Fatalf("after update: %+v, want same name and dark theme on", cfg)
    }
}
