package models

import "time"

// AlertSubscription is a stored search that the alert checker replays
// periodically, notifying the subscriber about unseen matches.
type AlertSubscription struct {
	ID        int64        `json:"id"`
	ChatID    string       `json:"chat_id"`
	Criteria  SearchParams `json:"criteria"`
	Locations []string     `json:"locations"`
	CreatedAt time.Time    `json:"created_at"`
}

// SeenListing records a canonical property id that has already been
// delivered to subscribers, so repeated checker runs stay quiet about it.
type SeenListing struct {
	PropertyID string    `json:"property_id" gorm:"primaryKey;column:property_id"`
	Source     string    `json:"source" gorm:"column:source"`
	FirstSeen  time.Time `json:"first_seen" gorm:"column:first_seen"`
}

func (SeenListing) TableName() string {
	return "seen_listings"
}
