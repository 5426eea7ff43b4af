package controllers

import (
    "net/http"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/golang-jwt/jwt/v5"
    "gorm.io/gorm"

    "github.com/acompvip/vip_backend_v1/internal/middleware"
    "github.com/acompvip/vip_backend_v1/internal/models"
    "github.com/acompvip/vip_backend_v1/internal/utils"
)

type AuthController struct {
    DB        *gorm.DB
    JWTSecret string
    ExpiresIn time.Duration
}

type loginRequest struct {
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required"`
}

func (a *AuthController) Login(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
        return
    }

    var admin models.Admin
    if err := a.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
        return
    }
    if !utils.CheckPassword(admin.Password, req.Password) {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
        return
    }

    token, err := a.issueToken(admin)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "message": "login successful",
        "token":   token,
        "admin": gin.H{
            "id":    admin.ID,
            "email": admin.Email,
            "name":  admin.Name,
        },
    })
}

func (a *AuthController) Me(c *gin.Context) {
    aVal, _ := c.Get("admin")
    admin := aVal.(models.Admin)
    c.JSON(http.StatusOK, gin.H{
        "id":    admin.ID,
        "email": admin.Email,
        "name":  admin.Name,
    })
}

func (a *AuthController) issueToken(admin models.Admin) (string, error) {
    now := time.Now().UTC()
    claims := middleware.Claims{
        AdminID: admin.ID,
        Email:   admin.Email,
        RegisteredClaims: jwt.RegisteredClaims{
            Issuer:    "vip_backend_v1",
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(now.Add(a.ExpiresIn)),
            Subject:   admin.ID,
        },
    }
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return token.SignedString([]byte(a.JWTSecret))
}
