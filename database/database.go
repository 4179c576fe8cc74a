package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"judge/config"
	"judge/models"
	"judge/utils"
)

var DB *gorm.DB

const adminUsername = "admin"

// InitDB initializes the database connection, migrates the models and creates
// the default administrator account if the user table is empty
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("failed to get underlying sql.DB: ", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(DB); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// Migrate runs the schema migration for all judge models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Contest{},
		&models.Problem{},
		&models.ProblemPart{},
		&models.Attempt{},
		&models.Clarification{},
	)
}

// Populate creates the default admin user when the database is empty
func Populate() {
	var countUser int64
	DB.Model(&models.User{}).Count(&countUser)
	if countUser > 0 {
		return
	}

	password := "admin"
	if config.DefaultPassword != "" {
		password = config.DefaultPassword
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Fatal("failed to hash default admin password: ", err)
	}

	admin := models.User{
		Username: adminUsername,
		Email:    "admin@admin.com",
		Password: hashed,
		IsAdmin:  true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatal("failed to create default admin user: ", err)
	}
	log.Println("Default user admin created")
}
