package controllers

import (
    "errors"
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"
    "github.com/jackc/pgx/v5/pgconn"
    "gorm.io/gorm"

    "github.com/acompvip/vip_backend_v1/internal/models"
    "github.com/acompvip/vip_backend_v1/internal/ws"
)

type CityController struct {
    DB  *gorm.DB
    Hub *ws.EventsHub
}

type createCityRequest struct {
    Name   string `json:"nome" binding:"required"`
    State  string `json:"estado" binding:"required"`
    Active *bool  `json:"ativa"`
}

type updateCityRequest struct {
    Active *bool `json:"ativa"`
}

// ListActive serves the public storefront: only visible cities, by name.
func (cc *CityController) ListActive(c *gin.Context) {
    var cities []models.City
    if err := cc.DB.Where("active = ?", true).Order("name ASC").Find(&cities).Error; err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, cities)
}

// ListAll serves the dashboard: every city regardless of visibility.
func (cc *CityController) ListAll(c *gin.Context) {
    var cities []models.City
    if err := cc.DB.Order("name ASC").Find(&cities).Error; err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, cities)
}

func (cc *CityController) Create(c *gin.Context) {
    var req createCityRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    name := strings.TrimSpace(req.Name)
    if name == "" {
        c.JSON(http.StatusBadRequest, gin.H{"error": "nome is required"})
        return
    }

    if err := cc.DB.Where("name = ?", name).First(&models.City{}).Error; err == nil {
        c.JSON(http.StatusConflict, gin.H{"error": "city name already exists"})
        return
    } else if !errors.Is(err, gorm.ErrRecordNotFound) {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    active := true
    if req.Active != nil {
        active = *req.Active
    }
    city := models.City{Name: name, State: strings.TrimSpace(req.State), Active: active}
    if err := cc.DB.Create(&city).Error; err != nil {
        var pgErr *pgconn.PgError
        if errors.As(err, &pgErr) && pgErr.Code == "23505" {
            c.JSON(http.StatusConflict, gin.H{"error": "city name already exists"})
            return
        }
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    cc.Hub.Broadcast("created", "cidade", city.ID)
    c.JSON(http.StatusCreated, city)
}

func (cc *CityController) Update(c *gin.Context) {
    id := strings.TrimSpace(c.Param("id"))
    var city models.City
    if err := cc.DB.Where("id = ?", id).First(&city).Error; err != nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "city not found"})
        return
    }

    var req updateCityRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    if req.Active != nil {
        city.Active = *req.Active
    }
    if err := cc.DB.Save(&city).Error; err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    cc.Hub.Broadcast("updated", "cidade", city.ID)
    c.JSON(http.StatusOK, city)
}

// Delete refuses to remove a city that still owns ads.
func (cc *CityController) Delete(c *gin.Context) {
    id := strings.TrimSpace(c.Param("id"))
    var city models.City
    if err := cc.DB.Where("id = ?", id).First(&city).Error; err != nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "city not found"})
        return
    }

    var adCount int64
    if err := cc.DB.Model(&models.Ad{}).Where("city_id = ?", id).Count(&adCount).Error; err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    if adCount > 0 {
        c.JSON(http.StatusBadRequest, gin.H{"error": "cannot delete a city that still has ads"})
        return
    }

    if err := cc.DB.Delete(&city).Error; err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    cc.Hub.Broadcast("deleted", "cidade", city.ID)
    c.JSON(http.StatusOK, gin.H{"message": "city deleted"})
}
