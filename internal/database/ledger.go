package database

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"housinglake/server/internal/models"
)

// OpenLedger opens the seen-listing ledger used by the alert checker to
// avoid re-notifying about listings it has already delivered.
func OpenLedger(dbPath string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

// MigrateLedger creates the ledger schema.
func MigrateLedger(db *gorm.DB) error {
	return db.AutoMigrate(&models.SeenListing{})
}

// UpsertSeenListings records a batch of delivered listings; ids already in
// the ledger are left untouched so first_seen stays stable.
func UpsertSeenListings(tx *gorm.DB, listings []*models.StandardizedProperty) error {
	if len(listings) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]models.SeenListing, 0, len(listings))
	for _, p := range listings {
		rows = append(rows, models.SeenListing{
			PropertyID: p.PropertyID,
			Source:     string(p.Source),
			FirstSeen:  now,
		})
	}

	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

// FilterUnseen returns the subset of listings whose ids are not yet in the
// ledger, preserving order.
func FilterUnseen(db *gorm.DB, listings []models.StandardizedProperty) ([]models.StandardizedProperty, error) {
	if len(listings) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(listings))
	for _, p := range listings {
		ids = append(ids, p.PropertyID)
	}

	var seen []string
	err := db.Model(&models.SeenListing{}).
		Where("property_id IN ?", ids).
		Pluck("property_id", &seen).Error
	if err != nil {
		return nil, err
	}

	seenSet := make(map[string]struct{}, len(seen))
	for _, id := range seen {
		seenSet[id] = struct{}{}
	}

	unseen := make([]models.StandardizedProperty, 0, len(listings))
	for _, p := range listings {
		if _, ok := seenSet[p.PropertyID]; !ok {
			unseen = append(unseen, p)
		}
	}
	return unseen, nil
}
