package alerts

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"housinglake/server/internal/models"
)

func listing(id, address string, amount float64, bedrooms *int) models.StandardizedProperty {
	return models.StandardizedProperty{
		PropertyID: id,
		Source:     models.SourceDaft,
		Address:    models.Address{DisplayAddress: address},
		Price:      models.Price{Amount: amount, Currency: "EUR"},
		Bedrooms:   bedrooms,
	}
}

func TestFormatMatches_Empty(t *testing.T) {
	assert.Equal(t, "", FormatMatches(nil))
	assert.Equal(t, "", FormatMatches([]models.StandardizedProperty{}))
}

func TestFormatMatches_SingleListing(t *testing.T) {
	beds := 2
	msg := FormatMatches([]models.StandardizedProperty{
		listing("daft_1", "12 Fitzwilliam Square, Dublin 2", 2100, &beds),
	})

	assert.Contains(t, msg, "Found matching properties!")
	assert.Contains(t, msg, "📍 12 Fitzwilliam Square, Dublin 2")
	assert.Contains(t, msg, "💰 €2100.00")
	assert.Contains(t, msg, "🛏️ 2 bed(s)")
	assert.Contains(t, msg, "🔍 Source: daft")
	assert.NotContains(t, msg, "more properties")
}

func TestFormatMatches_OmitsAbsentBedrooms(t *testing.T) {
	msg := FormatMatches([]models.StandardizedProperty{
		listing("property_1", "1 Main Street", 950, nil),
	})

	assert.NotContains(t, msg, "bed(s)")
}

func TestFormatMatches_CapsAtFiveWithTrailer(t *testing.T) {
	var listings []models.StandardizedProperty
	for i := 0; i < 7; i++ {
		listings = append(listings, listing(
			fmt.Sprintf("daft_%d", i), fmt.Sprintf("%d Main Street", i), 1000, nil))
	}

	msg := FormatMatches(listings)

	assert.Equal(t, 5, strings.Count(msg, "📍"))
	assert.Contains(t, msg, "...and 2 more properties")
}

func TestFilterLocations(t *testing.T) {
	listings := []models.StandardizedProperty{
		listing("daft_1", "12 Fitzwilliam Square, Dublin 2", 2100, nil),
		listing("daft_2", "4 Eyre Square, Galway", 1400, nil),
		listing("daft_3", "8 Patrick Street, Cork", 1200, nil),
	}

	// No fragments, no filter
	assert.Len(t, filterLocations(listings, nil), 3)

	// Case-insensitive substring match on the display address
	got := filterLocations(listings, []string{"dublin", "CORK"})
	assert.Len(t, got, 2)
	assert.Equal(t, "daft_1", got[0].PropertyID)
	assert.Equal(t, "daft_3", got[1].PropertyID)

	// Empty fragments never match everything
	assert.Empty(t, filterLocations(listings, []string{""}))
}
