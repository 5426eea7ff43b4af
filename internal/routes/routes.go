package routes

import (
    "strconv"
    "strings"
    "time"

    "github.com/gin-contrib/cors"
    "github.com/gin-gonic/gin"
    "github.com/prometheus/client_golang/prometheus/promhttp"
    "gorm.io/gorm"

    "github.com/acompvip/vip_backend_v1/internal/config"
    "github.com/acompvip/vip_backend_v1/internal/controllers"
    "github.com/acompvip/vip_backend_v1/internal/middleware"
    "github.com/acompvip/vip_backend_v1/internal/ws"
)

func Register(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
    r.Use(middleware.Metrics())
    r.Use(corsMiddleware(cfg))

    hub := ws.NewEventsHub()
    go hub.Run()

    ttlDays, err := strconv.Atoi(cfg.TokenTTLDays)
    if err != nil || ttlDays <= 0 {
        ttlDays = 7
    }

    authCtrl := &controllers.AuthController{
        DB:        db,
        JWTSecret: cfg.JWTSecret,
        ExpiresIn: time.Duration(ttlDays) * 24 * time.Hour,
    }
    cityCtrl := &controllers.CityController{DB: db, Hub: hub}
    adCtrl := &controllers.AdController{DB: db, Hub: hub}
    photoCtrl := &controllers.PhotoController{DB: db, Hub: hub}
    siteCfgCtrl := &controllers.SiteConfigController{DB: db}

    r.GET("/healthz", func(c *gin.Context) {
        c.JSON(200, gin.H{"status": "ok"})
    })
    r.GET("/metrics", gin.WrapH(promhttp.Handler()))

    // Public storefront
    api := r.Group("/api")
    {
        api.GET("/cidades", cityCtrl.ListActive)
        api.GET("/anuncios", adCtrl.ListForCity)
        api.GET("/config", siteCfgCtrl.Get)
        api.POST("/admin/auth/login", authCtrl.Login)
    }

    // Dashboard, token-gated
    authMW := middleware.AuthMiddleware(db, cfg.JWTSecret)
    admin := r.Group("/api/admin", authMW)
    {
        admin.GET("/auth/me", authCtrl.Me)

        admin.GET("/anuncios", adCtrl.ListAll)
        admin.POST("/anuncios", adCtrl.Create)
        admin.PATCH("/anuncios/:id", adCtrl.Update)
        admin.DELETE("/anuncios/:id", adCtrl.Delete)

        admin.POST("/anuncios/:id/fotos", photoCtrl.Create)
        admin.DELETE("/fotos/:id", photoCtrl.Delete)

        admin.GET("/cidades", cityCtrl.ListAll)
        admin.POST("/cidades", cityCtrl.Create)
        admin.PATCH("/cidades/:id", cityCtrl.Update)
        admin.DELETE("/cidades/:id", cityCtrl.Delete)

        admin.GET("/config", siteCfgCtrl.Get)
        admin.PUT("/config", siteCfgCtrl.Update)

        admin.GET("/ws", ws.EventsHandler(hub))
    }
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
    corsCfg := cors.DefaultConfig()
    corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"}
    corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
    if cfg.CORSOrigins != "" {
        origins := strings.Split(cfg.CORSOrigins, ",")
        for i := range origins {
            origins[i] = strings.TrimSpace(origins[i])
        }
        corsCfg.AllowOrigins = origins
    } else {
        corsCfg.AllowAllOrigins = true
    }
    return cors.New(corsCfg)
}
