package database

import (
    "log"

    "gorm.io/gorm"

    "github.com/acompvip/vip_backend_v1/internal/config"
    "github.com/acompvip/vip_backend_v1/internal/models"
    "github.com/acompvip/vip_backend_v1/internal/utils"
)

// SeedAdmin creates the initial dashboard admin when none exists.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
    var count int64
    if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
        return err
    }
    if count > 0 {
        return nil
    }

    email := cfg.AdminEmail
    if email == "" {
        email = "admin@acompanhantes.com"
    }
    name := cfg.AdminName
    if name == "" {
        name = "Administrador"
    }
    password := cfg.AdminPassword
    if password == "" {
        password = "admin123"
    }
    hashed, err := utils.HashPassword(password)
    if err != nil {
        return err
    }

    admin := models.Admin{
        Email:    email,
        Password: hashed,
        Name:     name,
    }
    if err := db.Create(&admin).Error; err != nil {
        return err
    }
    log.Println("Seeded initial admin:", email)
    return nil
}

// SeedSiteConfig ensures the singleton configuration row exists.
func SeedSiteConfig(db *gorm.DB) error {
    cfg := models.SiteConfig{
        ID:             models.SiteConfigID,
        SiteName:       "Acompanhantes VIP",
        WhatsApp:       "5511999999999",
        Phone:          "5511999999998",
        PrimaryColor:   "#8b5cf6",
        SecondaryColor: "#ec4899",
        AccentColor:    "#f59e0b",
        DarkTheme:      false,
    }
    return db.Where(models.SiteConfig{ID: models.SiteConfigID}).
        FirstOrCreate(&cfg).Error
}

// SeedDemoData loads the sample cities, ads, and photos used for local
// development and demos. Skipped when any city already exists.
func SeedDemoData(db *gorm.DB) error {
    var count int64
    if err := db.Model(&models.City{}).Count(&count).Error; err != nil {
        return err
    }
    if count > 0 {
        return nil
    }

    cities := []models.City{
        {Name: "São Paulo", State: "SP", Active: true},
        {Name: "Rio de Janeiro", State: "RJ", Active: true},
        {Name: "Belo Horizonte", State: "MG", Active: true},
    }
    for i := range cities {
        if err := db.Create(&cities[i]).Error; err != nil {
            return err
        }
    }
    sp, rj := cities[0].ID, cities[1].ID

    phone := "5511912345679"
    type adDef struct {
        ad     models.Ad
        photos []models.Photo
    }
    ads := []adDef{
        {
            ad: models.Ad{StageName: "Isabella", Age: 25, Description: "Garota de programa elegante e sofisticada",
                WhatsApp: "5511912345678", Phone: &phone, CityID: sp, Featured: true, Stars: 5, Active: true},
            photos: []models.Photo{
                {URL: "https://picsum.photos/400/600?random=1", IsPrimary: true},
                {URL: "https://picsum.photos/400/600?random=2"},
            },
        },
        {
            ad: models.Ad{StageName: "Mariana", Age: 23, Description: "Jovem e vibrante, pronta para te surpreender",
                WhatsApp: "5511987654321", CityID: sp, Featured: true, Stars: 4, Active: true},
            photos: []models.Photo{
                {URL: "https://picsum.photos/400/600?random=3", IsPrimary: true},
                {URL: "https://picsum.photos/400/600?random=4"},
            },
        },
        {
            ad: models.Ad{StageName: "Laura", Age: 28, Description: "Experiência e maturidade para momentos inesquecíveis",
                WhatsApp: "5511955555555", CityID: sp, Stars: 4, Active: true},
            photos: []models.Photo{{URL: "https://picsum.photos/400/600?random=5", IsPrimary: true}},
        },
        {
            ad: models.Ad{StageName: "Sophie", Age: 22, Description: "Doçura e paixão em um só lugar",
                WhatsApp: "5511944444444", CityID: sp, Stars: 3, Active: true},
            photos: []models.Photo{{URL: "https://picsum.photos/400/600?random=6", IsPrimary: true}},
        },
        {
            ad: models.Ad{StageName: "Camila", Age: 26, Description: "A companhia perfeita para qualquer ocasião",
                WhatsApp: "5511933333333", CityID: sp, Stars: 5, Active: true},
            photos: []models.Photo{{URL: "https://picsum.photos/400/600?random=7", IsPrimary: true}},
        },
        {
            ad: models.Ad{StageName: "Bianca", Age: 24, Description: "Elegância e mistério te esperam",
                WhatsApp: "5511922222222", CityID: sp, Stars: 4, Active: true},
            photos: []models.Photo{{URL: "https://picsum.photos/400/600?random=8", IsPrimary: true}},
        },
        {
            ad: models.Ad{StageName: "Carla", Age: 27, Description: "Carioca quente e pronta para tudo",
                WhatsApp: "5521911111111", CityID: rj, Featured: true, Stars: 5, Active: true},
            photos: []models.Photo{{URL: "https://picsum.photos/400/600?random=9", IsPrimary: true}},
        },
        {
            ad: models.Ad{StageName: "Fernanda", Age: 25, Description: "Sol e praia na companhia certa",
                WhatsApp: "5521922222222", CityID: rj, Stars: 4, Active: true},
            photos: []models.Photo{{URL: "https://picsum.photos/400/600?random=10", IsPrimary: true}},
        },
    }

    for i := range ads {
        if err := db.Create(&ads[i].ad).Error; err != nil {
            return err
        }
        for j := range ads[i].photos {
            ads[i].photos[j].AdID = ads[i].ad.ID
            if err := db.Create(&ads[i].photos[j]).Error; err != nil {
                return err
            }
        }
    }

    log.Println("Seeded demo cities, ads, and photos")
    return nil
}
