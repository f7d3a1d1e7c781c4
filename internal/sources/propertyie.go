package sources

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"housinglake/server/internal/models"
	"housinglake/server/internal/normalize"
	"housinglake/server/internal/record"
)

// PropertyParser reads the sparse property.ie schema: an address, a price
// string and the listing id, nothing else. Everything the feed cannot say
// stays absent in the canonical output.
type PropertyParser struct {
	logger *logrus.Logger
	now    func() time.Time
}

func NewPropertyParser(logger *logrus.Logger) *PropertyParser {
	return &PropertyParser{logger: logger, now: time.Now}
}

func (p *PropertyParser) Source() models.Source { return models.SourceProperty }

func (p *PropertyParser) MinColumns() int { return propertyMinColumns }

func (p *PropertyParser) Parse(row record.Row) (*models.StandardizedProperty, error) {
	sourceID, ok := row.StringAt(propertyColumns.id...)
	if !ok || sourceID == "" {
		return nil, fmt.Errorf("property: %w", ErrMissingID)
	}

	priceText, ok := row.StringAt(propertyColumns.price...)
	if !ok {
		return nil, fmt.Errorf("property record %s: %w", sourceID, ErrInvalidPrice)
	}
	amount, ok := normalize.Amount(priceText)
	if !ok {
		return nil, fmt.Errorf("property record %s: %w", sourceID, ErrInvalidPrice)
	}

	address, ok := row.StringAt(propertyColumns.address...)
	if !ok {
		debugAbsent(p.logger, p.Source(), "address")
	}

	now := rfc3339(p.now())

	return &models.StandardizedProperty{
		PropertyID:   models.PropertyID(models.SourceProperty, sourceID),
		Source:       models.SourceProperty,
		SourceID:     sourceID,
		Address:      models.Address{DisplayAddress: address},
		Price:        monthlyPrice(amount),
		CreatedDate:  now,
		UpdatedDate:  now,
		ListingType:  listingTypeRent,
		Status:       statusActive,
		Photos:       []models.Photo{},
	}, nil
}
