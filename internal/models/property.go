package models

import (
	"fmt"
	"strings"
)

// Source identifies one of the upstream listing providers.
type Source string

const (
	SourceDaft     Source = "daft"
	SourceMyHome   Source = "myhome"
	SourceProperty Source = "property"
)

// AllSources returns the providers in the order they are processed.
func AllSources() []Source {
	return []Source{SourceDaft, SourceMyHome, SourceProperty}
}

// ParseSource matches a provider name case-insensitively.
func ParseSource(name string) (Source, bool) {
	for _, s := range AllSources() {
		if strings.EqualFold(name, string(s)) {
			return s, true
		}
	}
	return "", false
}

// PropertyID builds the canonical identifier for a listing. It is
// deterministic for a given (source, sourceID) pair.
func PropertyID(source Source, sourceID string) string {
	return fmt.Sprintf("%s_%s", source, sourceID)
}

type Address struct {
	DisplayAddress string `json:"display_address"`
}

type Size struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type PriceChange struct {
	Date      string  `json:"date"`
	Amount    float64 `json:"amount"`
	Direction string  `json:"direction"`
}

type Price struct {
	Amount       float64       `json:"amount"`
	Currency     string        `json:"currency"`
	Frequency    *string       `json:"frequency"`
	PriceChanges []PriceChange `json:"price_changes"`
}

type Photo struct {
	URL    string `json:"url"`
	IsMain bool   `json:"is_main"`
}

type Agent struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// StandardizedProperty is the canonical listing representation every source
// is normalized into. It is built once per raw record and never mutated.
type StandardizedProperty struct {
	PropertyID   string  `json:"property_id"`
	Source       Source  `json:"source"`
	SourceID     string  `json:"source_id"`
	Address      Address `json:"address"`
	PropertyType string  `json:"property_type"`
	Bedrooms     *int    `json:"bedrooms"`
	Bathrooms    *int    `json:"bathrooms"`
	Size         *Size   `json:"size"`
	BerRating    *string `json:"ber_rating"`
	Price        Price   `json:"price"`
	CreatedDate  string  `json:"created_date"`
	UpdatedDate  string  `json:"updated_date"`
	ListingType  string  `json:"listing_type"`
	Status       string  `json:"status"`
	Photos       []Photo `json:"photos"`
	HasVideo     bool    `json:"has_video"`
	Agent        *Agent  `json:"agent"`
	SeoURL       *string `json:"seo_url"`
}

// SearchParams carries the optional filter criteria. A nil or empty field
// imposes no constraint.
type SearchParams struct {
	Source       string   `form:"source" json:"source,omitempty"`
	MinPrice     *float64 `form:"min_price" json:"min_price,omitempty"`
	MaxPrice     *float64 `form:"max_price" json:"max_price,omitempty"`
	Bedrooms     *int     `form:"bedrooms" json:"bedrooms,omitempty"`
	PropertyType string   `form:"property_type" json:"property_type,omitempty"`
	BerRating    string   `form:"ber_rating" json:"ber_rating,omitempty"`
}
