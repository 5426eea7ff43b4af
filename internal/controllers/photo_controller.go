package controllers

import (
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"
    "gorm.io/gorm"

    "github.com/acompvip/vip_backend_v1/internal/models"
    "github.com/acompvip/vip_backend_v1/internal/ws"
)

type PhotoController struct {
    DB  *gorm.DB
    Hub *ws.EventsHub
}

type createPhotoRequest struct {
    URL       string `json:"url" binding:"required"`
    IsPrimary bool   `json:"principal"`
}

func (pc *PhotoController) Create(c *gin.Context) {
    adID := strings.TrimSpace(c.Param("id"))
    if err := pc.DB.Where("id = ?", adID).First(&models.Ad{}).Error; err != nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "ad not found"})
        return
    }

    var req createPhotoRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    photo := models.Photo{URL: req.URL, IsPrimary: req.IsPrimary, AdID: adID}
    if err := pc.DB.Create(&photo).Error; err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    pc.Hub.Broadcast("created", "foto", photo.ID)
    c.JSON(http.StatusCreated, photo)
}

func (pc *PhotoController) Delete(c *gin.Context) {
    id := strings.TrimSpace(c.Param("id"))
    var photo models.Photo
    if err := pc.DB.Where("id = ?", id).First(&photo).Error; err != nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "photo not found"})
        return
    }

    if err := pc.DB.Delete(&photo).Error; err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    pc.Hub.Broadcast("deleted", "foto", photo.ID)
    c.JSON(http.StatusOK, gin.H{"message": "photo deleted"})
}
