package models

import "time"

// SiteConfigID keys the singleton configuration row.
const SiteConfigID = "1"

// SiteConfig stores storefront branding and contact settings managed via
// the admin dashboard.
type SiteConfig struct {
    ID             string    `gorm:"primaryKey" json:"id"`
    SiteName       string    `json:"nomeSite"`
    WhatsApp       string    `json:"whatsappComercial"`
    Phone          string    `json:"telefoneComercial"`
    PrimaryColor   string    `json:"corPrimaria"`
    SecondaryColor string    `json:"corSecundaria"`
    AccentColor    string    `json:"corDestaque"`
    DarkTheme      bool      `json:"temaEscuro"`
    UpdatedAt      time.Time `json:"updatedAt"`
}
