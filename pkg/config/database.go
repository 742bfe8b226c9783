package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"assetledger/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection
func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get database instance:", err)
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetMaxOpenConns(200)
	sqlDB.SetConnMaxLifetime(time.Hour)

	DB = db

	if err := MigrateModels(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
}

// MigrateModels auto-migrates every ledger model onto the given database.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AssetRecord{},
		&models.AssetBalance{},
		&models.Listing{},
		&models.LockedFunds{},
		&models.RevenueSnapshot{},
		&models.RevenueEntitlement{},
		&models.TaxFlag{},
		&models.IdentityRecord{},
		&models.RoleGrant{},
		&models.Proposal{},
		&models.ProposalSignature{},
		&models.ModulePause{},
		&models.LedgerParams{},
		&models.AuditEntry{},
		&models.SettlementAccount{},
		&models.SettlementAllowance{},
		&models.MarketStatRecord{},
	)
}
