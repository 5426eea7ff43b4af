package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"
)

type Admin struct {
    ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
    Email     string    `gorm:"uniqueIndex" json:"email"`
    Password  string    `json:"-"`
    Name      string    `json:"name"`
    CreatedAt time.Time `json:"createdAt"`
    UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Admin) BeforeCreate(tx *gorm.DB) (err error) {
    if a.ID == "" {
        a.ID = uuid.NewString()
    }
    return nil
}
