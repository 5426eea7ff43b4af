package controllers_test

import (
    "bytes"
    "encoding/json"
    "io"
    "net/http"
    "net/http/httptest"
    "path/filepath"
    "testing"
    "time"

    "github.com/gin-gonic/gin"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/acompvip/vip_backend_v1/internal/config"
    "github.com/acompvip/vip_backend_v1/internal/database"
    "github.com/acompvip/vip_backend_v1/internal/models"
    "github.com/acompvip/vip_backend_v1/internal/routes"
    "github.com/acompvip/vip_backend_v1/internal/utils"
)

const (
    testAdminEmail    = "admin@x.com"
    testAdminPassword = "admin123"
)

func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
    t.Helper()
    gin.SetMode(gin.TestMode)

    db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
    if err != nil {
        t.Fatalf("open test db: %v", err)
    }
    if err := database.Migrate(db); err != nil {
        t.Fatalf("migrate test db: %v", err)
    }

    cfg := &config.Config{JWTSecret: "test-secret", TokenTTLDays: "7"}
    r := gin.New()
    routes.Register(r, db, cfg)
    return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
    t.Helper()
    var rd io.Reader
    if body != nil {
        b, err := json.Marshal(body)
        if err != nil {
            t.Fatalf("marshal body: %v", err)
        }
        rd = bytes.NewReader(b)
    }
    req := httptest.NewRequest(method, path, rd)
    req.Header.Set("Content-Type", "application/json")
    if token != "" {
        req.Header.Set("Authorization", "Bearer "+token)
    }
    w := httptest.NewRecorder()
    r.ServeHTTP(w, req)
    return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
    t.Helper()
    if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
        t.Fatalf("decode response %q: %v", w.Body.String(), err)
    }
}

func seedAdmin(t *testing.T, db *gorm.DB) models.Admin {
    t.Helper()
    hashed, err := utils.HashPassword(testAdminPassword)
    if err != nil {
        t.Fatalf("hash password: %v", err)
    }
    admin := models.Admin{Email: testAdminEmail, Password: hashed, Name: "Administrador"}
    if err := db.Create(&admin).Error; err != nil {
        t.Fatalf("seed admin: %v", err)
    }
    return admin
}

func adminToken(t *testing.T, r *gin.Engine, db *gorm.DB) string {
    t.Helper()
    seedAdmin(t, db)
    w := doJSON(t, r, http.MethodPost, "/api/admin/auth/login", "", gin.H{
        "email":    testAdminEmail,
        "password": testAdminPassword,
    })
    if w.Code != http.StatusOK {
        t.Fatalf("login failed: status %d body %s", w.Code, w.Body.String())
    }
    var resp struct {
        Token string `json:"token"`
    }
    decodeBody(t, w, &resp)
    if resp.Token == "" {
        t.Fatal("login returned empty token")
    }
    return resp.Token
}

func createCity(t *testing.T, db *gorm.DB, name, state string, active bool) models.City {
    t.Helper()
    city := models.City{Name: name, State: state, Active: active}
    if err := db.Create(&city).Error; err != nil {
        t.Fatalf("create city %s: %v", name, err)
    }
    return city
}

func createAd(t *testing.T, db *gorm.DB, cityID, name string, featured bool, stars int, active bool, createdAt time.Time) models.Ad {
    t.Helper()
    ad := models.Ad{
        StageName:   name,
        Age:         25,
        Description: "desc",
        WhatsApp:    "5511999990000",
        CityID:      cityID,
        Featured:    featured,
        Stars:       stars,
        Active:      active,
        CreatedAt:   createdAt,
    }
    if err := db.Create(&ad).Error; err != nil {
        t.Fatalf("create ad %s: %v", name, err)
    }
    return ad
}

func createPhoto(t *testing.T, db *gorm.DB, adID, url string, primary bool, createdAt time.Time) models.Photo {
    t.Helper()
    photo := models.Photo{URL: url, IsPrimary: primary, AdID: adID, CreatedAt: createdAt}
    if err := db.Create(&photo).Error; err != nil {
        t.Fatalf("create photo %s: %v", url, err)
    }
    return photo
}
