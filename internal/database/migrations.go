package database

import "fmt"

// RunMigrations creates the subscription schema if it does not exist.
func (d *Database) RunMigrations() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS alert_subscriptions (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            chat_id TEXT NOT NULL,
            source TEXT,
            min_price REAL,
            max_price REAL,
            bedrooms INTEGER,
            property_type TEXT,
            ber_rating TEXT,
            locations TEXT,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )`,
		`CREATE INDEX IF NOT EXISTS idx_subscriptions_chat_id
            ON alert_subscriptions(chat_id)`,
	}

	for _, query := range queries {
		if _, err := d.db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
