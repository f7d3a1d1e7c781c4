// Package filter evaluates the optional search criteria against canonical
// listings. Every supplied criterion must hold (logical AND); criteria
// targeting an attribute the listing lacks reject it rather than passing
// it through.
package filter

import (
	"strings"

	"housinglake/server/internal/models"
)

// Matches reports whether the listing satisfies every supplied criterion.
// String comparisons are case-insensitive; property type and BER rating use
// substring containment, bedrooms exact equality.
func Matches(params models.SearchParams, p *models.StandardizedProperty) bool {
	if params.Source != "" && !strings.EqualFold(params.Source, string(p.Source)) {
		return false
	}

	if params.MinPrice != nil && p.Price.Amount < *params.MinPrice {
		return false
	}
	if params.MaxPrice != nil && p.Price.Amount > *params.MaxPrice {
		return false
	}

	if params.Bedrooms != nil {
		if p.Bedrooms == nil || *p.Bedrooms != *params.Bedrooms {
			return false
		}
	}

	if params.PropertyType != "" && !containsFold(p.PropertyType, params.PropertyType) {
		return false
	}

	if params.BerRating != "" {
		if p.BerRating == nil || !containsFold(*p.BerRating, params.BerRating) {
			return false
		}
	}

	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
