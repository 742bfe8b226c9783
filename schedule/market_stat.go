package schedule

import (
	"time"

	"assetledger/internal/models"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RecordMarketStat writes one snapshot of marketplace activity. Run
// periodically by the worker's cron.
func RecordMarketStat(db *gorm.DB) error {
	logger.Info("> Recording market stat snapshot")

	var stat models.MarketStatRecord
	stat.RecordedAt = time.Now().UTC()

	if err := db.Model(&models.Listing{}).
		Where("active = ?", true).Count(&stat.ActiveListings).Error; err != nil {
		logger.Errorf("> Failed to count active listings: %v", err)
		return err
	}

	if err := db.Model(&models.Listing{}).Where("active = ?", true).
		Select("COALESCE(SUM(units_available), 0)").Scan(&stat.UnitsEscrowed).Error; err != nil {
		logger.Errorf("> Failed to sum escrowed units: %v", err)
		return err
	}

	if err := db.Model(&models.AssetRecord{}).Count(&stat.AssetsIssued).Error; err != nil {
		return err
	}

	if err := db.Model(&models.RevenueSnapshot{}).
		Select("COALESCE(SUM(net_amount), 0)").Scan(&stat.TotalDistributed).Error; err != nil {
		return err
	}

	if err := db.Model(&models.RevenueEntitlement{}).Where("claimed = ?", true).
		Select("COALESCE(SUM(amount), 0)").Scan(&stat.TotalClaimed).Error; err != nil {
		return err
	}

	if err := db.Model(&models.AuditEntry{}).Count(&stat.AuditEntries).Error; err != nil {
		return err
	}

	if err := db.Create(&stat).Error; err != nil {
		logger.Errorf("> Failed to write market stat record: %v", err)
		return err
	}

	logger.Infof("> Market stat recorded: %d active listings, %d units escrowed",
		stat.ActiveListings, stat.UnitsEscrowed)
	return nil
}
