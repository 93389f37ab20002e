package initializers

import (
	"log"

	"github.com/mwihoti/duka-api/models"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Coupon{},
		&models.Order{},
	)
	if err != nil {
		log.Fatal("Failed to sync database: ", err)
	}
	log.Println("Database synced successfully.")
}
