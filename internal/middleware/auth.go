package middleware

import (
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"
    "github.com/golang-jwt/jwt/v5"
    "gorm.io/gorm"

    "github.com/acompvip/vip_backend_v1/internal/models"
)

type Claims struct {
    AdminID string `json:"id"`
    Email   string `json:"email"`
    jwt.RegisteredClaims
}

// AuthMiddleware gates the admin API. It accepts a Bearer token signed
// with secret, rejects anything malformed, expired, or tampered, and
// loads the admin record into the request context.
func AuthMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
    return func(c *gin.Context) {
        auth := c.GetHeader("Authorization")
        if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization header"})
            return
        }
        tokenStr := strings.TrimSpace(auth[len("Bearer "):])

        claims := &Claims{}
        token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
            return []byte(secret), nil
        })
        if err != nil || !token.Valid {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
            return
        }

        var admin models.Admin
        if err := db.Where("id = ?", claims.AdminID).First(&admin).Error; err != nil {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin not found"})
            return
        }

        c.Set("admin", admin)
        c.Next()
    }
}
