package controllers

import (
    "errors"
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"
    "gorm.io/gorm"

    "github.com/acompvip/vip_backend_v1/internal/models"
    "github.com/acompvip/vip_backend_v1/internal/utils"
    "github.com/acompvip/vip_backend_v1/internal/ws"
)

type AdController struct {
    DB  *gorm.DB
    Hub *ws.EventsHub
}

type createAdRequest struct {
    StageName   string  `json:"nomeArtistico" binding:"required"`
    Age         int     `json:"idade" binding:"required"`
    Description string  `json:"descricao" binding:"required"`
    WhatsApp    string  `json:"whatsapp" binding:"required"`
    Phone       *string `json:"telefone"`
    CityID      string  `json:"cidadeId" binding:"required"`
    Featured    bool    `json:"destaque"`
    Stars       int     `json:"estrelas"`
    Active      *bool   `json:"ativo"`
}

type updateAdRequest struct {
    Active   *bool `json:"ativo"`
    Featured *bool `json:"destaque"`
    Stars    *int  `json:"estrelas"`
}

// ListForCity serves the public storefront. Ads are scoped to one city,
// visible only, featured first, then by stars, newest as tie-break.
func (ac *AdController) ListForCity(c *gin.Context) {
    cityID := strings.TrimSpace(c.Query("cidadeId"))
    if cityID == "" {
        c.JSON(http.StatusBadRequest, gin.H{"error": "cidadeId is required"})
        return
    }

    var ads []models.Ad
    err := ac.DB.
        Where("city_id = ? AND active = ?", cityID, true).
        Preload("City").
        Preload("Photos", func(db *gorm.DB) *gorm.DB {
            return db.Where("is_primary = ?", true).Order("created_at ASC")
        }).
        Order("featured DESC, stars DESC, created_at DESC").
        Find(&ads).Error
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    if err := ac.attachFallbackPhotos(ads); err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, presentAds(ads))
}

// ListAll serves the dashboard: every ad, any visibility, newest first.
func (ac *AdController) ListAll(c *gin.Context) {
    var ads []models.Ad
    err := ac.DB.
        Preload("City").
        Preload("Photos", func(db *gorm.DB) *gorm.DB {
            return db.Where("is_primary = ?", true).Order("created_at ASC")
        }).
        Order("created_at DESC").
        Find(&ads).Error
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    if err := ac.attachFallbackPhotos(ads); err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, presentAds(ads))
}

func (ac *AdController) Create(c *gin.Context) {
    var req createAdRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    if req.Age < 18 {
        c.JSON(http.StatusBadRequest, gin.H{"error": "idade must be at least 18"})
        return
    }
    if req.Stars < 0 || req.Stars > 5 {
        c.JSON(http.StatusBadRequest, gin.H{"error": "estrelas must be between 0 and 5"})
        return
    }

    if err := ac.DB.Where("id = ?", req.CityID).First(&models.City{}).Error; err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            c.JSON(http.StatusBadRequest, gin.H{"error": "cidadeId does not match an existing city"})
            return
        }
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    active := true
    if req.Active != nil {
        active = *req.Active
    }
    var phone *string
    if req.Phone != nil && *req.Phone != "" {
        normalized := utils.DigitsOnly(*req.Phone)
        phone = &normalized
    }

    ad := models.Ad{
        StageName:   strings.TrimSpace(req.StageName),
        Age:         req.Age,
        Description: req.Description,
        WhatsApp:    utils.DigitsOnly(req.WhatsApp),
        Phone:       phone,
        CityID:      req.CityID,
        Featured:    req.Featured,
        Stars:       req.Stars,
        Active:      active,
    }
    if err := ac.DB.Create(&ad).Error; err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    ac.Hub.Broadcast("created", "anuncio", ad.ID)
    c.JSON(http.StatusCreated, gin.H{"message": "created", "id": ad.ID})
}

// Update applies only the fields present in the body; absent fields keep
// their stored value.
func (ac *AdController) Update(c *gin.Context) {
    id := strings.TrimSpace(c.Param("id"))
    var ad models.Ad
    if err := ac.DB.Where("id = ?", id).First(&ad).Error; err != nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "ad not found"})
        return
    }

    var req updateAdRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    if req.Stars != nil && (*req.Stars < 0 || *req.Stars > 5) {
        c.JSON(http.StatusBadRequest, gin.H{"error": "estrelas must be between 0 and 5"})
        return
    }

    if req.Active != nil {
        ad.Active = *req.Active
    }
    if req.Featured != nil {
        ad.Featured = *req.Featured
    }
    if req.Stars != nil {
        ad.Stars = *req.Stars
    }
    if err := ac.DB.Save(&ad).Error; err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    ac.Hub.Broadcast("updated", "anuncio", ad.ID)
    c.JSON(http.StatusOK, ad)
}

// Delete removes an ad and its photos in one transaction so a failure
// mid-way can't leave orphaned photo rows.
func (ac *AdController) Delete(c *gin.Context) {
    id := strings.TrimSpace(c.Param("id"))
    var ad models.Ad
    if err := ac.DB.Where("id = ?", id).First(&ad).Error; err != nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "ad not found"})
        return
    }

    err := ac.DB.Transaction(func(tx *gorm.DB) error {
        if err := tx.Where("ad_id = ?", id).Delete(&models.Photo{}).Error; err != nil {
            return err
        }
        return tx.Delete(&ad).Error
    })
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    ac.Hub.Broadcast("deleted", "anuncio", ad.ID)
    c.JSON(http.StatusOK, gin.H{"message": "ad deleted"})
}

// attachFallbackPhotos fills in the earliest-created photo for ads whose
// preload found no primary-flagged photo.
func (ac *AdController) attachFallbackPhotos(ads []models.Ad) error {
    for i := range ads {
        if len(ads[i].Photos) > 0 {
            continue
        }
        var first models.Photo
        err := ac.DB.Where("ad_id = ?", ads[i].ID).Order("created_at ASC").First(&first).Error
        if err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                continue
            }
            return err
        }
        ads[i].Photos = append(ads[i].Photos, first)
    }
    return nil
}

func presentAds(ads []models.Ad) []gin.H {
    out := make([]gin.H, 0, len(ads))
    for _, a := range ads {
        photos := make([]gin.H, 0, len(a.Photos))
        for _, p := range a.Photos {
            photos = append(photos, gin.H{
                "id":        p.ID,
                "url":       p.URL,
                "principal": p.IsPrimary,
                "anuncioId": p.AdID,
                "createdAt": p.CreatedAt,
            })
        }
        out = append(out, gin.H{
            "id":            a.ID,
            "nomeArtistico": a.StageName,
            "idade":         a.Age,
            "descricao":     a.Description,
            "whatsapp":      a.WhatsApp,
            "telefone":      a.Phone,
            "cidadeId":      a.CityID,
            "destaque":      a.Featured,
            "estrelas":      a.Stars,
            "ativo":         a.Active,
            "createdAt":     a.CreatedAt,
            "cidade": gin.H{
                "nome":   a.City.Name,
                "estado": a.City.State,
            },
            "fotos": photos,
        })
    }
    return out
}
