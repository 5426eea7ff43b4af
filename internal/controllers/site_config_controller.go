package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"
    "gorm.io/gorm"

    "github.com/acompvip/vip_backend_v1/internal/models"
)

type SiteConfigController struct {
    DB *gorm.DB
}

type updateSiteConfigRequest struct {
    SiteName       *string `json:"nomeSite"`
    WhatsApp       *string `json:"whatsappComercial"`
    Phone          *string `json:"telefoneComercial"`
    PrimaryColor   *string `json:"corPrimaria"`
    SecondaryColor *string `json:"corSecundaria"`
    AccentColor    *string `json:"corDestaque"`
    DarkTheme      *bool   `json:"temaEscuro"`
}

func (sc *SiteConfigController) Get(c *gin.Context) {
    var cfg models.SiteConfig
    if err := sc.DB.Where("id = ?", models.SiteConfigID).First(&cfg).Error; err != nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "site config not found"})
        return
    }
    c.JSON(http.StatusOK, cfg)
}

func (sc *SiteConfigController) Update(c *gin.Context) {
    var cfg models.SiteConfig
    if err := sc.DB.Where("id = ?", models.SiteConfigID).First(&cfg).Error; err != nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "site config not found"})
        return
    }

    var req updateSiteConfigRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    if req.SiteName != nil {
        cfg.SiteName = *req.SiteName
    }
    if req.WhatsApp != nil {
        cfg.WhatsApp = *req.WhatsApp
    }
    if req.Phone != nil {
        cfg.Phone = *req.Phone
    }
    if req.PrimaryColor != nil {
        cfg.PrimaryColor = *req.PrimaryColor
    }
    if req.SecondaryColor != nil {
        cfg.SecondaryColor = *req.SecondaryColor
    }
    if req.AccentColor != nil {
        cfg.AccentColor = *req.AccentColor
    }
    if req.DarkTheme != nil {
        cfg.DarkTheme = *req.DarkTheme
    }

    if err := sc.DB.Save(&cfg).Error; err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, cfg)
}
