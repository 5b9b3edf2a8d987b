package database

import (
	"fmt"
	"log"

	"github.com/Teja3804/asset-reddy/config"
	"github.com/Teja3804/asset-reddy/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens the configured database, runs migrations and seeds the
// fund catalog. The default is a local sqlite file; deployments set
// DB_DRIVER=postgres with the usual connection variables.
func ConnectDb() {
	var db *gorm.DB
	var err error

	switch config.AppConfig.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.AppConfig.DBHost,
			config.AppConfig.DBUser,
			config.AppConfig.DBPassword,
			config.AppConfig.DBName,
			config.AppConfig.DBPort,
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		db, err = gorm.Open(sqlite.Open(config.AppConfig.DBName), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	RunMigrations(db)
	SeedFunds(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.OTP{},
		&models.AvailableFund{},
		&models.Transactions{},
		&models.Fund{},
		&models.Investment{},
		&models.SupportTicket{},
		&models.LoginTracking{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// SeedFunds inserts the fixed fund catalog if it is not already present.
func SeedFunds(db *gorm.DB) {
	funds := []models.Fund{
		{FundName: "Equity Growth Fund", TotalValue: 1000000, YearlyReturn: 12.5, Description: "High-growth equity investments", Allocation: "60% Equity, 25% Bonds, 15% Cash"},
		{FundName: "Balanced Fund", TotalValue: 800000, YearlyReturn: 8.2, Description: "Balanced growth and income", Allocation: "40% Equity, 40% Bonds, 20% Cash"},
		{FundName: "Fixed Income Fund", TotalValue: 600000, YearlyReturn: 6.8, Description: "Stable income generation", Allocation: "20% Equity, 70% Bonds, 10% Cash"},
		{FundName: "Technology Fund", TotalValue: 1200000, YearlyReturn: 15.3, Description: "Technology sector focus", Allocation: "80% Technology, 15% Cash, 5% Bonds"},
	}

	for i := range funds {
		if err := db.Where("fund_name = ?", funds[i].FundName).FirstOrCreate(&funds[i]).Error; err != nil {
			log.Printf("Error seeding fund %s: %v", funds[i].FundName, err)
		}
	}
}
