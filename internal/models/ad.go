package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"
)

// Ad is a single listing. JSON field names follow the public API contract
// consumed by the storefront and dashboard clients.
type Ad struct {
    ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
    StageName   string    `json:"nomeArtistico"`
    Age         int       `json:"idade"`
    Description string    `gorm:"type:text" json:"descricao"`
    WhatsApp    string    `json:"whatsapp"`
    Phone       *string   `json:"telefone,omitempty"`
    CityID      string    `gorm:"type:uuid;index" json:"cidadeId"`
    Featured    bool      `json:"destaque"`
    Stars       int       `json:"estrelas"`
    Active      bool      `json:"ativo"`
    CreatedAt   time.Time `json:"createdAt"`
    UpdatedAt   time.Time `json:"updatedAt"`

    City   City    `gorm:"foreignKey:CityID" json:"cidade"`
    Photos []Photo `gorm:"foreignKey:AdID" json:"fotos"`
}

func (a *Ad) BeforeCreate(tx *gorm.DB) (err error) {
    if a.ID == "" {
        a.ID = uuid.NewString()
    }
    return nil
}
