package database

import (
	"fmt"
	"log"

	"oasis/config"
	"oasis/models"
	"oasis/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

var DefaultAdminEmail = "admin@oasis.com"
var DefaultPassword = "admin"

// InitDB initializes the database connection, migrates the models and seeds default values if needed
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=UTC",
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

	err = DB.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Challenge{},
		&models.AlgorithmicProblem{},
		&models.BuildathonProblem{},
		&models.Flag{},
		&models.Submission{},
		&models.TeamChallenge{},
	)
	if err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// Populate seeds the default admin account when the users table is empty
func Populate() {
	var countUser int64
	DB.Model(&models.User{}).Count(&countUser)
	if countUser != 0 {
		return
	}

	// Default password comes from the .env file or the DefaultPassword constant
	password := DefaultPassword
	if config.DefaultPassword != "" {
		password = config.DefaultPassword
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		panic(err)
	}

	admin := models.User{
		Email:        DefaultAdminEmail,
		PasswordHash: hashed,
		FirstName:    "OASIS",
		LastName:     "Admin",
		Role:         models.RoleAdmin,
	}
	DB.Create(&admin)
	log.Println("Default admin user created")
}
