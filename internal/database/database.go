package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"housinglake/server/internal/models"
)

// Database stores the alert subscriptions the checker replays.
type Database struct {
	db *sql.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		return nil, err
	}

	return &Database{db: db}, nil
}

func (d *Database) GetDB() *sql.DB {
	return d.db
}

func (d *Database) Close() error {
	return d.db.Close()
}

// CreateSubscription stores a saved search and fills in its generated id.
func (d *Database) CreateSubscription(sub *models.AlertSubscription) error {
	result, err := d.db.Exec(`
        INSERT INTO alert_subscriptions (
            chat_id, source, min_price, max_price, bedrooms,
            property_type, ber_rating, locations
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ChatID,
		sub.Criteria.Source,
		sub.Criteria.MinPrice,
		sub.Criteria.MaxPrice,
		sub.Criteria.Bedrooms,
		sub.Criteria.PropertyType,
		sub.Criteria.BerRating,
		strings.Join(sub.Locations, ","),
	)
	if err != nil {
		return fmt.Errorf("failed to insert subscription: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read subscription id: %w", err)
	}
	sub.ID = id
	return nil
}

// ListSubscriptions returns every stored saved search.
func (d *Database) ListSubscriptions() ([]models.AlertSubscription, error) {
	rows, err := d.db.Query(`
        SELECT id, chat_id, source, min_price, max_price, bedrooms,
               property_type, ber_rating, locations, created_at
        FROM alert_subscriptions
        ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.AlertSubscription
	for rows.Next() {
		var sub models.AlertSubscription
		var source, propertyType, berRating, locations sql.NullString
		var minPrice, maxPrice sql.NullFloat64
		var bedrooms sql.NullInt64

		err := rows.Scan(
			&sub.ID,
			&sub.ChatID,
			&source,
			&minPrice,
			&maxPrice,
			&bedrooms,
			&propertyType,
			&berRating,
			&locations,
			&sub.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		sub.Criteria.Source = source.String
		sub.Criteria.PropertyType = propertyType.String
		sub.Criteria.BerRating = berRating.String
		if minPrice.Valid {
			v := minPrice.Float64
			sub.Criteria.MinPrice = &v
		}
		if maxPrice.Valid {
			v := maxPrice.Float64
			sub.Criteria.MaxPrice = &v
		}
		if bedrooms.Valid {
			v := int(bedrooms.Int64)
			sub.Criteria.Bedrooms = &v
		}
		if locations.Valid && locations.String != "" {
			sub.Locations = strings.Split(locations.String, ",")
		}

		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// DeleteSubscription removes a saved search by id.
func (d *Database) DeleteSubscription(id int64) error {
	result, err := d.db.Exec(`DELETE FROM alert_subscriptions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("subscription not found: %d", id)
	}
	return nil
}
