package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"
)

// Photo belongs to one Ad. IsPrimary is a display convention, not a
// uniqueness constraint: clients show the flagged photo, or the
// earliest-created one when no photo is flagged.
type Photo struct {
    ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
    URL       string    `json:"url"`
    IsPrimary bool      `json:"principal"`
    AdID      string    `gorm:"type:uuid;index" json:"anuncioId"`
    CreatedAt time.Time `json:"createdAt"`
}

func (p *Photo) BeforeCreate(tx *gorm.DB) (err error) {
    if p.ID == "" {
        p.ID = uuid.NewString()
    }
    return nil
}
