package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"
)

type City struct {
    ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
    Name      string    `gorm:"uniqueIndex" json:"nome"`
    State     string    `json:"estado"`
    Active    bool      `json:"ativa"`
    CreatedAt time.Time `json:"createdAt"`
    UpdatedAt time.Time `json:"updatedAt"`

    Ads []Ad `gorm:"foreignKey:CityID" json:"-"`
}

func (c *City) BeforeCreate(tx *gorm.DB) (err error) {
    if c.ID == "" {
        c.ID = uuid.NewString()
    }
    return nil
}
